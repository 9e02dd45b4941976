package handler

import (
	"github.com/JRebertt/Cursos/internal/middleware"
	"github.com/JRebertt/Cursos/internal/model"
	"github.com/JRebertt/Cursos/internal/server"
	"github.com/JRebertt/Cursos/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TransactionsResponse struct {
	Transactions []model.Transaction `json:"transactions"`
}

type TransactionResponse struct {
	Transaction *model.Transaction `json:"transaction"`
}

type TransactionSummaryResponse struct {
	Summary *model.TransactionSummary `json:"summary"`
}

// TransactionHandler serves /transactions. Creating a transaction issues a
// session; reading requires one.
type TransactionHandler struct {
	Handler
	transactionService *service.TransactionService
	sessions           *middleware.SessionMiddleware
}

func NewTransactionHandler(s *server.Server, transactionService *service.TransactionService, sessions *middleware.SessionMiddleware) *TransactionHandler {
	return &TransactionHandler{
		Handler:            NewHandler(s),
		transactionService: transactionService,
		sessions:           sessions,
	}
}

func (h *TransactionHandler) CreateTransaction(c echo.Context, payload *model.CreateTransactionPayload) error {
	sessionID := h.sessions.EnsureSession(c)

	_, err := h.transactionService.CreateTransaction(c.Request().Context(), sessionID, payload)
	return err
}

func (h *TransactionHandler) ListTransactions(c echo.Context, _ *model.SessionScopedRequest) (*TransactionsResponse, error) {
	transactions, err := h.transactionService.ListTransactions(c.Request().Context(), middleware.GetSessionID(c))
	if err != nil {
		return nil, err
	}
	return &TransactionsResponse{Transactions: transactions}, nil
}

func (h *TransactionHandler) GetTransaction(c echo.Context, params *model.TransactionIDParams) (*TransactionResponse, error) {
	transaction, err := h.transactionService.GetTransaction(
		c.Request().Context(),
		middleware.GetSessionID(c),
		uuid.MustParse(params.ID),
	)
	if err != nil {
		return nil, err
	}
	return &TransactionResponse{Transaction: transaction}, nil
}

func (h *TransactionHandler) GetSummary(c echo.Context, _ *model.SessionScopedRequest) (*TransactionSummaryResponse, error) {
	summary, err := h.transactionService.GetSummary(c.Request().Context(), middleware.GetSessionID(c))
	if err != nil {
		return nil, err
	}
	return &TransactionSummaryResponse{Summary: summary}, nil
}
