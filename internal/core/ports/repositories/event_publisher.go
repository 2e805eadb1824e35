package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// Event types published by the account services.
const (
	EventAccountCreated     = "account.created"
	EventTransactionCreated = "transaction.created"
)

// EventPublisher hands domain events to an outbound channel.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

// AccountCreatedEvent is published when an account is registered.
type AccountCreatedEvent struct {
	AccountID      string          `json:"accountId"`
	Variant        string          `json:"variant"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// TransactionCreatedEvent is published for every history entry added by the services.
type TransactionCreatedEvent struct {
	TransactionID string          `json:"transactionId"`
	AccountID     string          `json:"accountId"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
}
