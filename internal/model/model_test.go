package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failedFields(t *testing.T, err error) map[string]string {
	t.Helper()

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validator.ValidationErrors, got %v", err)

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

func boolPtr(b bool) *bool { return &b }

func TestCreateTransactionPayload(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		failed map[string]string
	}{
		{
			name: "valid credit",
			body: `{"title":"salary","amount":100,"type":"credit"}`,
		},
		{
			name:   "missing amount",
			body:   `{"title":"salary","type":"credit"}`,
			failed: map[string]string{"amount": "required"},
		},
		{
			name:   "zero amount",
			body:   `{"title":"salary","amount":0,"type":"debit"}`,
			failed: map[string]string{"amount": "gt"},
		},
		{
			name: "two decimal places",
			body: `{"title":"coffee","amount":12.50,"type":"debit"}`,
		},
		{
			name:   "rounds to zero",
			body:   `{"title":"salary","amount":0.001,"type":"credit"}`,
			failed: map[string]string{"amount": "decimals"},
		},
		{
			name:   "three decimal places",
			body:   `{"title":"salary","amount":10.125,"type":"credit"}`,
			failed: map[string]string{"amount": "decimals"},
		},
		{
			name:   "null amount",
			body:   `{"title":"salary","amount":null,"type":"credit"}`,
			failed: map[string]string{"amount": "required"},
		},
		{
			name:   "unknown type",
			body:   `{"title":"salary","amount":10,"type":"refund"}`,
			failed: map[string]string{"type": "oneof"},
		},
		{
			name:   "empty body",
			body:   `{}`,
			failed: map[string]string{"title": "required", "amount": "required", "type": "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p CreateTransactionPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			err := p.Validate()
			if tt.failed == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.failed, failedFields(t, err))
		})
	}
}

func TestCreateTransactionPayloadAmountMustBeNumber(t *testing.T) {
	for _, body := range []string{
		`{"title":"rent","amount":"100","type":"debit"}`,
		`{"title":"rent","amount":true,"type":"debit"}`,
		`{"title":"rent","amount":{"value":100},"type":"debit"}`,
	} {
		var p CreateTransactionPayload
		err := json.Unmarshal([]byte(body), &p)

		var typeErr *json.UnmarshalTypeError
		require.True(t, errors.As(err, &typeErr), body)
		assert.Equal(t, "amount", typeErr.Field)
	}

	var p CreateTransactionPayload
	require.NoError(t, json.Unmarshal([]byte(`{"title":"rent","amount":-1e2,"type":"debit"}`), &p))
	require.NotNil(t, p.Amount)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(-100)))
	assert.Equal(t, "rent", p.Title)
	assert.Equal(t, TransactionTypeDebit, p.Type)
}

func TestSignedAmount(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	debit := CreateTransactionPayload{Title: "rent", Amount: &hundred, Type: TransactionTypeDebit}
	credit := CreateTransactionPayload{Title: "salary", Amount: &hundred, Type: TransactionTypeCredit}

	assert.True(t, debit.SignedAmount().Equal(decimal.NewFromInt(-100)))
	assert.True(t, credit.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, hundred.Equal(decimal.NewFromInt(100)), "payload amount must not be mutated")
}

func TestCreateMealPayload(t *testing.T) {
	valid := CreateMealPayload{Name: "Salad", Description: "Lunch", Diet: boolPtr(false)}
	require.NoError(t, valid.Validate())
	assert.Equal(t, MealInput{Name: "Salad", Description: "Lunch", Diet: false}, valid.Input())

	missingDiet := CreateMealPayload{Name: "Salad", Description: "Lunch"}
	assert.Equal(t, map[string]string{"diet": "required"}, failedFields(t, missingDiet.Validate()))
}

func TestUpdateMealPayload(t *testing.T) {
	p := UpdateMealPayload{ID: "123", Name: "Pizza", Description: "Dinner", Diet: boolPtr(true)}
	assert.Equal(t, map[string]string{"id": "uuid_rfc4122"}, failedFields(t, p.Validate()))

	p.ID = "6f1c1f3e-5d0b-4a4e-9d57-0f6a7f0b9c11"
	assert.NoError(t, p.Validate())
}

func TestIDParams(t *testing.T) {
	assert.Error(t, (&MealIDParams{ID: "abc"}).Validate())
	assert.NoError(t, (&MealIDParams{ID: "6F1C1F3E-5D0B-4A4E-9D57-0F6A7F0B9C11"}).Validate())
	assert.Error(t, (&TransactionIDParams{}).Validate())
	assert.NoError(t, (&TransactionIDParams{ID: "6f1c1f3e-5d0b-4a4e-9d57-0f6a7f0b9c11"}).Validate())
}

func TestCreateUserPayload(t *testing.T) {
	assert.NoError(t, (&CreateUserPayload{Name: "diego"}).Validate())
	assert.Equal(t, map[string]string{"name": "required"}, failedFields(t, (&CreateUserPayload{}).Validate()))
}

func TestMealSummaryJSONShape(t *testing.T) {
	summary := MealSummary{
		Count:      MealCount{TotalMeals: 3},
		DietMeal:   []DietMealCount{{TotalDietMeals: 1}},
		NoDietMeal: []NoDietMealCount{{TotalNoDietMeals: 2}},
		BestMeal:   []Meal{},
	}

	raw, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"count":{"totalMeals":3},"dietMeal":[{"totalDietMeals":1}],"noDietMeal":[{"totalNoDietMeals":2}],"bestMeal":[]}`,
		string(raw))
}

func TestTransactionSummaryAmountIsNumber(t *testing.T) {
	raw, err := json.Marshal(TransactionSummary{Amount: decimal.RequireFromString("-12.50")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":-12.5}`, string(raw))
}
