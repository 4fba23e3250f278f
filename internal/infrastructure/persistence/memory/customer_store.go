package memory

import (
	"context"
	"sync"

	"github.com/mobilitree/backend/internal/domain/parking"
	"github.com/mobilitree/backend/internal/domain/shared"
)

// CustomerStore is an in-memory parking.CustomerRepository
type CustomerStore struct {
	mu        sync.RWMutex
	customers map[string]parking.Customer
}

// NewCustomerStore creates an empty customer store
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{
		customers: make(map[string]parking.Customer),
	}
}

// GetCustomer returns a customer by id, or shared.ErrNotFound
func (s *CustomerStore) GetCustomer(_ context.Context, customerID string) (*parking.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &customer, nil
}

// SaveCustomer creates or updates a customer
func (s *CustomerStore) SaveCustomer(_ context.Context, customer *parking.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers[customer.ID] = *customer
	return nil
}

var _ parking.CustomerRepository = (*CustomerStore)(nil)
