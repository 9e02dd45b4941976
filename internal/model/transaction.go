package model

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

type Transaction struct {
	Base
	Title     string          `json:"title" db:"title"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	SessionID *string         `json:"session_id" db:"session_id"`
}

type TransactionSummary struct {
	Amount decimal.Decimal `json:"amount"`
}

// ------------------------------------------------------------

// CreateTransactionPayload takes amounts in the currency's minor precision:
// more than two decimal places would be rounded away by the amount column.
type CreateTransactionPayload struct {
	Title  string           `json:"title" validate:"required,max=255"`
	Amount *decimal.Decimal `json:"amount" validate:"required,gt=0,decimals=2"`
	Type   TransactionType  `json:"type" validate:"required,oneof=credit debit"`
}

// UnmarshalJSON only accepts amount as a JSON number. decimal.Decimal on its
// own also takes quoted strings.
func (p *CreateTransactionPayload) UnmarshalJSON(data []byte) error {
	type payload CreateTransactionPayload

	aux := struct {
		*payload
		Amount json.RawMessage `json:"amount"`
	}{payload: (*payload)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	p.Amount = nil

	raw := bytes.TrimSpace(aux.Amount)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] != '-' && (raw[0] < '0' || raw[0] > '9') {
		return &json.UnmarshalTypeError{
			Value: jsonKind(raw[0]),
			Type:  reflect.TypeOf(decimal.Decimal{}),
			Field: "amount",
		}
	}

	amount, err := decimal.NewFromString(string(raw))
	if err != nil {
		return err
	}
	p.Amount = &amount

	return nil
}

func jsonKind(first byte) string {
	switch first {
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case '{':
		return "object"
	case '[':
		return "array"
	default:
		return "value"
	}
}

func (p *CreateTransactionPayload) Validate() error {
	return validate.Struct(p)
}

// SignedAmount returns the amount as it is stored: debits are negative.
func (p *CreateTransactionPayload) SignedAmount() decimal.Decimal {
	if p.Type == TransactionTypeDebit {
		return p.Amount.Neg()
	}
	return *p.Amount
}

// ------------------------------------------------------------

type TransactionIDParams struct {
	ID string `param:"id" validate:"required,uuid_rfc4122"`
}

func (p *TransactionIDParams) Validate() error {
	return validate.Struct(p)
}
