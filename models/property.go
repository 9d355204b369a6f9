package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// OwnerID is set once from the authenticated caller and never reassigned.
	OwnerID uint `gorm:"column:owner_id;index" json:"owner_id"`

	Title       string  `gorm:"size:255" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Rent        float64 `gorm:"column:rent" json:"rent"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Meals     datatypes.JSON `gorm:"column:meals" json:"meals,omitempty"`

	Location string `gorm:"size:255;index" json:"location"`

	// IsAvailable is the sole gate for new bookings. It is not tied to
	// booking state; confirming a booking never flips it.
	IsAvailable bool `gorm:"column:is_available" json:"isAvailable"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
}
