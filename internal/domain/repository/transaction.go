package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
// This keeps use cases independent of a specific driver such as GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error or panics, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AddressRepo() AddressRepository
	ProductRepo() ProductRepository
	CartRepo() CartRepository
	TransactionRepo() TransactionRepository
	ProductTransactionRepo() ProductTransactionRepository
	RatingRepo() RatingRepository
}
