package repository

import (
	"context"

	"storefront/internal/domain/repository"

	mock "github.com/stretchr/testify/mock"
)

// RepositoryFactory hands out the same mocks for every unit of work.
type RepositoryFactory struct {
	Users               *MockUserRepository
	Addresses           *MockAddressRepository
	Products            *MockProductRepository
	Carts               *MockCartRepository
	Transactions        *MockTransactionRepository
	ProductTransactions *MockProductTransactionRepository
	Ratings             *MockRatingRepository
}

// NewRepositoryFactory creates a factory of fresh mocks bound to t.
func NewRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *RepositoryFactory {
	return &RepositoryFactory{
		Users:               NewMockUserRepository(t),
		Addresses:           NewMockAddressRepository(t),
		Products:            NewMockProductRepository(t),
		Carts:               NewMockCartRepository(t),
		Transactions:        NewMockTransactionRepository(t),
		ProductTransactions: NewMockProductTransactionRepository(t),
		Ratings:             NewMockRatingRepository(t),
	}
}

func (f *RepositoryFactory) UserRepo() repository.UserRepository       { return f.Users }
func (f *RepositoryFactory) AddressRepo() repository.AddressRepository { return f.Addresses }
func (f *RepositoryFactory) ProductRepo() repository.ProductRepository { return f.Products }
func (f *RepositoryFactory) CartRepo() repository.CartRepository       { return f.Carts }

func (f *RepositoryFactory) TransactionRepo() repository.TransactionRepository {
	return f.Transactions
}

func (f *RepositoryFactory) ProductTransactionRepo() repository.ProductTransactionRepository {
	return f.ProductTransactions
}

func (f *RepositoryFactory) RatingRepo() repository.RatingRepository { return f.Ratings }

// TransactionManager runs every unit of work against Factory and counts the
// calls. Commits and rollbacks are not simulated: mocks record every call.
type TransactionManager struct {
	Factory *RepositoryFactory
	Calls   int
}

// Execute calls fn with the mock factory.
func (m *TransactionManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	m.Calls++

	return fn(m.Factory)
}
