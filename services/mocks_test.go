package services

import (
	"strings"

	"campusnest-backend/models"
	"campusnest-backend/repositories"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func duplicateKeyErr(detail string) error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry " + detail}
}

// ============================================
// In-memory repository mocks
// ============================================

type mockUserRepository struct {
	users map[uint]*models.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*models.User)}
}

func (m *mockUserRepository) Create(user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return duplicateKeyErr("for key 'email'")
		}
	}
	user.ID = uint(len(m.users) + 1)
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepository) GetByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockPropertyRepository struct {
	properties map[uint]*models.Property
	nextID     uint
}

func newMockPropertyRepository() *mockPropertyRepository {
	return &mockPropertyRepository{properties: make(map[uint]*models.Property), nextID: 1}
}

func (m *mockPropertyRepository) Create(property *models.Property) error {
	property.ID = m.nextID
	m.nextID++
	cp := *property
	m.properties[property.ID] = &cp
	return nil
}

func (m *mockPropertyRepository) GetByID(id uint) (*models.Property, error) {
	property, exists := m.properties[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *property
	return &cp, nil
}

func (m *mockPropertyRepository) GetByOwner(ownerID uint) ([]models.Property, error) {
	var out []models.Property
	for _, p := range m.properties {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPropertyRepository) Update(property *models.Property) error {
	if _, exists := m.properties[property.ID]; !exists {
		return gorm.ErrRecordNotFound
	}
	cp := *property
	m.properties[property.ID] = &cp
	return nil
}

func (m *mockPropertyRepository) Search(filter repositories.PropertyFilter) ([]models.Property, error) {
	var out []models.Property
	for _, p := range m.properties {
		if filter.Location != "" && !strings.Contains(p.Location, filter.Location) {
			continue
		}
		if filter.MaxRent != nil && p.Rent > *filter.MaxRent {
			continue
		}
		if filter.OnlyAvailable && !p.IsAvailable {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

type mockBookingRepository struct {
	bookings map[uint]*models.Booking
	nextID   uint

	// failCreates makes the next N creates collide, for retry tests
	failCreates int
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{bookings: make(map[uint]*models.Booking), nextID: 1}
}

func (m *mockBookingRepository) Create(booking *models.Booking) error {
	if m.failCreates > 0 {
		m.failCreates--
		return duplicateKeyErr("for key 'reference_code'")
	}
	for _, b := range m.bookings {
		if b.ReferenceCode == booking.ReferenceCode {
			return duplicateKeyErr("for key 'reference_code'")
		}
	}
	booking.ID = m.nextID
	m.nextID++
	cp := *booking
	m.bookings[booking.ID] = &cp
	return nil
}

func (m *mockBookingRepository) GetByID(id uint) (*models.Booking, error) {
	booking, exists := m.bookings[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *booking
	return &cp, nil
}

func (m *mockBookingRepository) GetByIDWithRefs(id uint) (*models.Booking, error) {
	return m.GetByID(id)
}

func (m *mockBookingRepository) GetAllWithRefs() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (m *mockBookingRepository) GetByStudent(studentID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.StudentID == studentID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepository) UpdateStatus(id uint, status string) error {
	booking, exists := m.bookings[id]
	if !exists {
		return gorm.ErrRecordNotFound
	}
	booking.Status = status
	return nil
}
