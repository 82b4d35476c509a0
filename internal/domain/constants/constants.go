// Package constants holds values shared across layers.
package constants

// EnvLocal is the env.env value of a developer machine.
const EnvLocal = "local"

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Transaction statuses.
const (
	TransactionStatusInProgress = "inprogress"
	TransactionStatusComplete   = "complete"
)

// Event types published after a committed checkout step.
const (
	EventTransactionCreated   = "transaction.created"
	EventTransactionCompleted = "transaction.completed"
)

// MaxInt32 bounds integer inputs stored in INTEGER columns.
const MaxInt32 = 2147483647
