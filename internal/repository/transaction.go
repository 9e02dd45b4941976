package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/JRebertt/Cursos/internal/model"
	"github.com/JRebertt/Cursos/internal/server"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	server *server.Server
}

func NewTransactionRepository(s *server.Server) *TransactionRepository {
	return &TransactionRepository{server: s}
}

// CreateTransaction stores amount as given; the caller applies the sign.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, sessionID, title string, amount decimal.Decimal) (*model.Transaction, error) {
	stmt := `
		INSERT INTO transactions (title, amount, session_id)
		VALUES (@title, @amount, @session_id)
		RETURNING *
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"title":      title,
		"amount":     amount,
		"session_id": sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create transaction query: %w", err)
	}

	transaction, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:transactions: %w", err)
	}

	return &transaction, nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, sessionID string) ([]model.Transaction, error) {
	stmt := `
		SELECT *
		FROM transactions
		WHERE session_id = @session_id
		ORDER BY created_at ASC
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"session_id": sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list transactions query: %w", err)
	}

	transactions, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:transactions: %w", err)
	}

	return transactions, nil
}

// GetTransaction returns nil when the transaction does not exist under sessionID.
func (r *TransactionRepository) GetTransaction(ctx context.Context, sessionID string, id uuid.UUID) (*model.Transaction, error) {
	stmt := `
		SELECT *
		FROM transactions
		WHERE id = @id AND session_id = @session_id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"id":         id,
		"session_id": sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get transaction query for id=%s: %w", id, err)
	}

	transaction, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to collect row from table:transactions for id=%s: %w", id, err)
	}

	return &transaction, nil
}

// SumAmount returns the balance of a session; zero when it has no transactions.
func (r *TransactionRepository) SumAmount(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	stmt := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE session_id = @session_id`

	var sum decimal.Decimal
	if err := r.server.DB.Pool.QueryRow(ctx, stmt, pgx.NamedArgs{"session_id": sessionID}).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return sum, nil
}
