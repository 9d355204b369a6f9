package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusRejected  = "Rejected"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudentID  uint `gorm:"column:student_id;index" json:"student_id"`
	PropertyID uint `gorm:"column:property_id;index" json:"property_id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	MealsSelected datatypes.JSON `gorm:"column:meals_selected" json:"mealsSelected,omitempty"`

	StartDate time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date" json:"endDate"`

	Status string `gorm:"column:status;size:32;index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Student  User     `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
}
