package persistence

import (
	"context"
	"errors"

	"github.com/mobilitree/backend/internal/domain/parking"
	"github.com/mobilitree/backend/internal/domain/shared"
	"github.com/mobilitree/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements parking.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// GetCustomer retrieves a customer by id.
// Returns shared.ErrNotFound when the customer is unknown.
func (r *GormCustomerRepository) GetCustomer(ctx context.Context, customerID string) (*parking.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveCustomer creates or updates a customer
func (r *GormCustomerRepository) SaveCustomer(ctx context.Context, customer *parking.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ parking.CustomerRepository = (*GormCustomerRepository)(nil)
