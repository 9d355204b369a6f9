package repositories

import (
	"campusnest-backend/models"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	GetByIDWithRefs(id uint) (*models.Booking, error)
	GetAllWithRefs() ([]models.Booking, error)
	GetByStudent(studentID uint) ([]models.Booking, error)
	UpdateStatus(id uint, status string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) GetByIDWithRefs(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.
		Preload("Student").
		Preload("Property").
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) GetAllWithRefs() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.
		Preload("Student").
		Preload("Property").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) GetByStudent(studentID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.
		Preload("Property").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}
