package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"campusnest-backend/middleware"
	"campusnest-backend/models"
	"campusnest-backend/repositories"
	"campusnest-backend/services"
	"campusnest-backend/utils"

	"github.com/gin-gonic/gin"
)

const searchCachePrefix = "properties:search"

// CreatePropertyPayload is the allow-listed listing body. Owner and
// timestamps are never accepted from the caller.
type CreatePropertyPayload struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Rent        *float64 `json:"rent" binding:"required,gte=0"`
	Amenities   []string `json:"amenities"`
	Meals       []string `json:"meals"`
	Location    string   `json:"location"`
	IsAvailable *bool    `json:"isAvailable"`
}

type UpdatePropertyPayload struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Rent        *float64 `json:"rent"`
	Amenities   []string `json:"amenities"`
	Meals       []string `json:"meals"`
	Location    *string  `json:"location"`
	IsAvailable *bool    `json:"isAvailable"`
}

type PropertyController struct {
	PropertySvc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{PropertySvc: svc}
}

// AddProperty handles POST /owner/add-property.
func (ctrl *PropertyController) AddProperty(c *gin.Context) {
	var payload CreatePropertyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	ownerID := middleware.CallerID(c)

	property, err := ctrl.PropertySvc.Create(ownerID, services.CreatePropertyInput{
		Title:       payload.Title,
		Description: payload.Description,
		Rent:        *payload.Rent,
		Amenities:   payload.Amenities,
		Meals:       payload.Meals,
		Location:    payload.Location,
		IsAvailable: payload.IsAvailable,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidRent) {
			utils.JSONError(c, http.StatusBadRequest, "rent must be non-negative")
			return
		}
		log.Printf("AddProperty error for owner %d: %v", ownerID, err)
		utils.JSONError(c, http.StatusInternalServerError, "server error")
		return
	}

	if err := utils.InvalidateCached(c.Request.Context(), searchCachePrefix); err != nil {
		log.Printf("warning: failed to invalidate search cache: %v", err)
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"message":  "Property added",
		"property": property,
	})
}

// MyProperties handles GET /owner/my-properties.
func (ctrl *PropertyController) MyProperties(c *gin.Context) {
	ownerID := middleware.CallerID(c)

	properties, err := ctrl.PropertySvc.ListByOwner(ownerID)
	if err != nil {
		log.Printf("MyProperties error for owner %d: %v", ownerID, err)
		utils.JSONError(c, http.StatusInternalServerError, "server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, properties)
}

// UpdateProperty handles PATCH /owner/properties/:id.
func (ctrl *PropertyController) UpdateProperty(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}

	var payload UpdatePropertyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	ownerID := middleware.CallerID(c)

	property, err := ctrl.PropertySvc.Update(ownerID, uint(propertyID), services.UpdatePropertyInput{
		Title:       payload.Title,
		Description: payload.Description,
		Rent:        payload.Rent,
		Amenities:   payload.Amenities,
		Meals:       payload.Meals,
		Location:    payload.Location,
		IsAvailable: payload.IsAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPropertyNotFound):
			utils.JSONError(c, http.StatusNotFound, "property not found")
		case errors.Is(err, services.ErrNotPropertyOwner):
			utils.JSONError(c, http.StatusForbidden, "you do not own this property")
		case errors.Is(err, services.ErrInvalidRent):
			utils.JSONError(c, http.StatusBadRequest, "rent must be non-negative")
		default:
			log.Printf("UpdateProperty error for property %d: %v", propertyID, err)
			utils.JSONError(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	if err := utils.InvalidateCached(c.Request.Context(), searchCachePrefix); err != nil {
		log.Printf("warning: failed to invalidate search cache: %v", err)
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":  "Property updated",
		"property": property,
	})
}

// Search handles GET /properties. Results are cached briefly in Redis; a
// cache outage falls through to the database.
func (ctrl *PropertyController) Search(c *gin.Context) {
	filter := repositories.PropertyFilter{
		Location: c.Query("location"),
	}
	if raw := c.Query("max_rent"); raw != "" {
		maxRent, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxRent < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid max_rent")
			return
		}
		filter.MaxRent = &maxRent
	}
	if c.Query("available") == "true" {
		filter.OnlyAvailable = true
	}

	params := map[string]string{
		"location":  c.Query("location"),
		"max_rent":  c.Query("max_rent"),
		"available": c.Query("available"),
	}
	cacheKey := utils.GenerateQueryCacheKey(searchCachePrefix, params)

	var cached []models.Property
	if hit, err := utils.GetCached(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		utils.JSONSuccess(c, http.StatusOK, cached)
		return
	}

	properties, err := ctrl.PropertySvc.Search(filter)
	if err != nil {
		log.Printf("Search error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "server error")
		return
	}

	if err := utils.SetCached(c.Request.Context(), cacheKey, properties, 60*time.Second); err != nil {
		log.Printf("warning: failed to cache search results: %v", err)
	}

	utils.JSONSuccess(c, http.StatusOK, properties)
}

// GetByID handles GET /properties/:id.
func (ctrl *PropertyController) GetByID(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := ctrl.PropertySvc.Get(uint(propertyID))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		log.Printf("GetByID error for property %d: %v", propertyID, err)
		utils.JSONError(c, http.StatusInternalServerError, "server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, property)
}
