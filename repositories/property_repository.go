package repositories

import (
	"campusnest-backend/models"

	"gorm.io/gorm"
)

// PropertyFilter narrows the public listing search.
type PropertyFilter struct {
	Location      string
	MaxRent       *float64
	OnlyAvailable bool
}

type PropertyRepository interface {
	Create(property *models.Property) error
	GetByID(id uint) (*models.Property, error)
	GetByOwner(ownerID uint) ([]models.Property, error)
	Update(property *models.Property) error
	Search(filter PropertyFilter) ([]models.Property, error)
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

func (r *propertyRepository) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := r.db.First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) GetByOwner(ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.Where("owner_id = ?", ownerID).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}

func (r *propertyRepository) Search(filter PropertyFilter) ([]models.Property, error) {
	q := r.db.Model(&models.Property{})

	if filter.Location != "" {
		q = q.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.MaxRent != nil {
		q = q.Where("rent <= ?", *filter.MaxRent)
	}
	if filter.OnlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var properties []models.Property
	if err := q.Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}
