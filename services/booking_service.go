package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"campusnest-backend/models"
	"campusnest-backend/repositories"
	"campusnest-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrPropertyNotAvailable = errors.New("property_not_available")
	ErrInvalidDates         = errors.New("invalid_dates")
	ErrInvalidStatus        = errors.New("invalid_status")
	ErrBookingNotFound      = errors.New("booking_not_found")
)

// statusTransitions declares which decisions an admin may record against the
// current state. Every state may move to Confirmed or Rejected, so repeating
// a decision is a no-op and a decision may be reversed; Pending is never a
// target, so a booking cannot be pushed back to undecided.
var statusTransitions = map[string]map[string]bool{
	models.BookingStatusPending: {
		models.BookingStatusConfirmed: true,
		models.BookingStatusRejected:  true,
	},
	models.BookingStatusConfirmed: {
		models.BookingStatusConfirmed: true,
		models.BookingStatusRejected:  true,
	},
	models.BookingStatusRejected: {
		models.BookingStatusConfirmed: true,
		models.BookingStatusRejected:  true,
	},
}

type BookingService struct {
	Bookings   repositories.BookingRepository
	Properties repositories.PropertyRepository
}

func NewBookingService(bookings repositories.BookingRepository, properties repositories.PropertyRepository) *BookingService {
	return &BookingService{Bookings: bookings, Properties: properties}
}

func parseBookingDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Create records a booking request against an available property. The
// student reference is forced from the authenticated caller and the status
// always starts at Pending. Overlapping requests from different students are
// allowed; the admin decision step is where conflicts get resolved.
func (s *BookingService) Create(studentID, propertyID uint, mealsSelected []string, startDate, endDate string) (*models.Booking, error) {
	start, err := parseBookingDate(startDate)
	if err != nil {
		return nil, ErrInvalidDates
	}
	end, err := parseBookingDate(endDate)
	if err != nil {
		return nil, ErrInvalidDates
	}
	if !end.After(start) {
		return nil, ErrInvalidDates
	}

	property, err := s.Properties.GetByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotAvailable
		}
		return nil, fmt.Errorf("db error checking property %d: %w", propertyID, err)
	}
	if !property.IsAvailable {
		return nil, ErrPropertyNotAvailable
	}

	// retry on reference code collision
	var booking *models.Booking
	var createErr error
	maxRetries := 5
	for attempt := 0; attempt < maxRetries; attempt++ {
		ref, gErr := utils.GenerateReferenceCode(8)
		if gErr != nil {
			return nil, fmt.Errorf("failed to generate reference code: %w", gErr)
		}

		booking = &models.Booking{
			StudentID:     studentID,
			PropertyID:    property.ID,
			ReferenceCode: ref,
			MealsSelected: jsonList(mealsSelected),
			StartDate:     start,
			EndDate:       end,
			Status:        models.BookingStatusPending,
		}

		createErr = s.Bookings.Create(booking)
		if createErr == nil {
			break
		}

		if isDuplicateKey(createErr) {
			log.Printf("booking reference collision (attempt %d) - retrying", attempt+1)
			continue
		}
		return nil, fmt.Errorf("failed to create booking: %w", createErr)
	}
	if createErr != nil {
		return nil, fmt.Errorf("failed to create booking after retries: %w", createErr)
	}

	return booking, nil
}

// ListAll returns every booking with student and property resolved.
func (s *BookingService) ListAll() ([]models.Booking, error) {
	bookings, err := s.Bookings.GetAllWithRefs()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}

// ListByStudent returns the caller's bookings with properties resolved.
func (s *BookingService) ListByStudent(studentID uint) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}

// SetStatus records the admin decision. Target status is case-sensitive and
// must be Confirmed or Rejected. The property's availability flag is not
// touched; it stays under the owner's manual control.
func (s *BookingService) SetStatus(bookingID uint, newStatus string) (*models.Booking, error) {
	if newStatus != models.BookingStatusConfirmed && newStatus != models.BookingStatusRejected {
		return nil, ErrInvalidStatus
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}

	if allowed := statusTransitions[booking.Status]; !allowed[newStatus] {
		return nil, ErrInvalidStatus
	}

	if err := s.Bookings.UpdateStatus(booking.ID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	updated, err := s.Bookings.GetByIDWithRefs(booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return updated, nil
}
