package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"campusnest-backend/models"
	"campusnest-backend/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property_not_found")
	ErrNotPropertyOwner = errors.New("not_property_owner")
	ErrInvalidRent      = errors.New("invalid_rent")
)

// CreatePropertyInput is the allow-listed field set for a new listing.
// Owner is never taken from the request body.
type CreatePropertyInput struct {
	Title       string
	Description string
	Rent        float64
	Amenities   []string
	Meals       []string
	Location    string
	IsAvailable *bool
}

// UpdatePropertyInput carries only the fields the owner wants to change.
type UpdatePropertyInput struct {
	Title       *string
	Description *string
	Rent        *float64
	Amenities   []string
	Meals       []string
	Location    *string
	IsAvailable *bool
}

type PropertyService struct {
	Properties repositories.PropertyRepository
}

func NewPropertyService(properties repositories.PropertyRepository) *PropertyService {
	return &PropertyService{Properties: properties}
}

func jsonList(labels []string) datatypes.JSON {
	if labels == nil {
		labels = []string{}
	}
	raw, _ := json.Marshal(labels)
	return datatypes.JSON(raw)
}

// Create persists a new listing with owner forced to the caller's identity.
func (s *PropertyService) Create(ownerID uint, in CreatePropertyInput) (*models.Property, error) {
	if in.Rent < 0 {
		return nil, ErrInvalidRent
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	property := &models.Property{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Rent:        in.Rent,
		Amenities:   jsonList(in.Amenities),
		Meals:       jsonList(in.Meals),
		Location:    strings.TrimSpace(in.Location),
		IsAvailable: available,
	}

	if err := s.Properties.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

// ListByOwner returns every listing belonging to the caller.
func (s *PropertyService) ListByOwner(ownerID uint) ([]models.Property, error) {
	properties, err := s.Properties.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve properties: %w", err)
	}
	return properties, nil
}

// Update applies the provided fields to a listing the caller owns. The owner
// reference itself is immutable.
func (s *PropertyService) Update(ownerID, propertyID uint, in UpdatePropertyInput) (*models.Property, error) {
	property, err := s.Properties.GetByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to retrieve property: %w", err)
	}

	if property.OwnerID != ownerID {
		return nil, ErrNotPropertyOwner
	}

	if in.Rent != nil {
		if *in.Rent < 0 {
			return nil, ErrInvalidRent
		}
		property.Rent = *in.Rent
	}
	if in.Title != nil {
		property.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		property.Description = *in.Description
	}
	if in.Amenities != nil {
		property.Amenities = jsonList(in.Amenities)
	}
	if in.Meals != nil {
		property.Meals = jsonList(in.Meals)
	}
	if in.Location != nil {
		property.Location = strings.TrimSpace(*in.Location)
	}
	if in.IsAvailable != nil {
		property.IsAvailable = *in.IsAvailable
	}

	if err := s.Properties.Update(property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return property, nil
}

// Search is the public browse surface.
func (s *PropertyService) Search(filter repositories.PropertyFilter) ([]models.Property, error) {
	properties, err := s.Properties.Search(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	return properties, nil
}

// Get returns one listing for the public detail page.
func (s *PropertyService) Get(propertyID uint) (*models.Property, error) {
	property, err := s.Properties.GetByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to retrieve property: %w", err)
	}
	return property, nil
}
