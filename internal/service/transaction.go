package service

import (
	"context"

	"github.com/JRebertt/Cursos/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransactionService scopes every operation to the caller's session id.
type TransactionService struct {
	transactions TransactionStore
	activity     ActivityRecorder
}

func NewTransactionService(transactions TransactionStore, activity ActivityRecorder) *TransactionService {
	return &TransactionService{transactions: transactions, activity: activity}
}

// CreateTransaction stores debits as negative amounts.
func (s *TransactionService) CreateTransaction(ctx context.Context, sessionID string, payload *model.CreateTransactionPayload) (*model.Transaction, error) {
	transaction, err := s.transactions.CreateTransaction(ctx, sessionID, payload.Title, payload.SignedAmount())
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "transaction_created").
		Str("transaction_id", transaction.ID.String()).
		Str("type", string(payload.Type)).
		Msg("Transaction created successfully")

	s.activity.Record(ctx, sessionID, model.ActivityTransactionCreated, &transaction.ID)

	return transaction, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, sessionID string) ([]model.Transaction, error) {
	transactions, err := s.transactions.ListTransactions(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	return transactions, nil
}

// GetTransaction returns nil, not an error, when nothing matches.
func (s *TransactionService) GetTransaction(ctx context.Context, sessionID string, id uuid.UUID) (*model.Transaction, error) {
	return s.transactions.GetTransaction(ctx, sessionID, id)
}

func (s *TransactionService) GetSummary(ctx context.Context, sessionID string) (*model.TransactionSummary, error) {
	sum, err := s.transactions.SumAmount(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &model.TransactionSummary{Amount: sum.Round(2)}, nil
}
