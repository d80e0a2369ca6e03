package service

import (
	"context"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/domain/repository"
	"github.com/pasalpos/pasal-api/internal/livequery"
	"github.com/pasalpos/pasal-api/pkg/apperror"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	bus          *livequery.Bus
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, bus *livequery.Bus) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, bus: bus}
}

// CustomerInput represents the create/update customer input
type CustomerInput struct {
	Name    string
	Phone   string
	Address *string
	Email   *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Email:   input.Email,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.bus.Notify(livequery.CollectionCustomers)
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers, optionally filtered by name or phone.
func (s *CustomerService) ListCustomers(ctx context.Context, search string) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx, search)
}

// UpdateCustomer replaces a customer's fields
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.Email = input.Email

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.bus.Notify(livequery.CollectionCustomers)
	return customer, nil
}

// DeleteCustomer removes a customer. Deleting a missing id is a no-op.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Notify(livequery.CollectionCustomers)
	return nil
}
