package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"campusnest-backend/controllers"
	"campusnest-backend/middleware"
	"campusnest-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	pc *controllers.PropertyController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		// public browse surface
		properties := api.Group("/properties")
		{
			properties.GET("", pc.Search)
			properties.GET("/:id", pc.GetByID)
		}

		owner := api.Group("/owner")
		owner.Use(middleware.Authenticate(), middleware.RequireRole(models.RoleOwner))
		{
			owner.POST("/add-property", pc.AddProperty)
			owner.GET("/my-properties", pc.MyProperties)
			owner.PATCH("/properties/:id", pc.UpdateProperty)
		}

		bookings := api.Group("/bookings")
		bookings.Use(middleware.Authenticate())
		{
			bookings.GET("", middleware.RequireRole(models.RoleAdmin), bc.ListAll)
			bookings.GET("/my", middleware.RequireRole(models.RoleStudent), bc.MyBookings)
			bookings.POST("/book/:property_id", middleware.RequireRole(models.RoleStudent), bc.Book)
			bookings.PATCH("/admin/:booking_id", middleware.RequireRole(models.RoleAdmin), bc.SetStatus)
		}
	}

	return r
}
