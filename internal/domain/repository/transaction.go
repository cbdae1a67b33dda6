package repository

import "context"

// TransactionManager runs a unit of work inside a database transaction.
// This keeps the use case layer independent of the concrete driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. A returned error or a panic rolls
	// the transaction back; otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewMentorRepository() MentorRepository
}
