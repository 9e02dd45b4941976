// Package model holds the persisted entities and the request payloads
// accepted by the HTTP layer.
//
// Request payloads declare their shape with `json`/`param` and
// `validate` struct tags and implement Validate().
package model

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are written as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Base carries the columns every table shares.
type Base struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the name the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	// Lets numeric tags (gt, lte, ...) apply to decimal amounts.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	// decimals=N rejects numbers with more than N places. Decimal fields
	// arrive here as float64 through the custom type func above.
	_ = v.RegisterValidation("decimals", func(fl validator.FieldLevel) bool {
		places, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}

		var d decimal.Decimal
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64:
			d = decimal.NewFromFloat(fl.Field().Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return true
		default:
			return false
		}

		return d.Equal(d.Round(int32(places)))
	})

	return v
}

// SessionScopedRequest is used by routes that take no input besides the
// session cookie.
type SessionScopedRequest struct{}

func (r *SessionScopedRequest) Validate() error {
	return nil
}
