package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JRebertt/Cursos/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	ID    string `param:"id" json:"-" validate:"required,uuid_rfc4122"`
	Title string `json:"title" validate:"required,max=5"`
	Kind  string `json:"kind" validate:"required,oneof=credit debit"`
}

var sampleValidator = validator.New()

func (p *samplePayload) Validate() error {
	return sampleValidator.Struct(p)
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "amount", Message: "must be positive"}}
}

func newContext(t *testing.T, method, body string, id string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/items/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/items/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	id := "6f1c1f3e-5d0b-4a4e-9d57-0f6a7f0b9c11"
	c := newContext(t, http.MethodPut, `{"title":"rent","kind":"debit"}`, id)

	var p samplePayload
	require.NoError(t, BindAndValidate(c, &p))
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "rent", p.Title)
}

func TestBindAndValidateTypeMismatch(t *testing.T) {
	c := newContext(t, http.MethodPut, `{"title":12,"kind":"debit"}`, "6f1c1f3e-5d0b-4a4e-9d57-0f6a7f0b9c11")

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(t, http.MethodPut, `{"title":`, "6f1c1f3e-5d0b-4a4e-9d57-0f6a7f0b9c11")

	requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(t, http.MethodPut, `{"title":"groceries","kind":"refund"}`, "not-a-uuid")

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.True(t, httpErr.Override)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "id", Error: "must be a valid UUID"},
		{Field: "title", Error: "must not exceed 5 characters"},
		{Field: "kind", Error: "must be one of: credit debit"},
	}, httpErr.Errors)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(t, http.MethodPost, `{}`, "")

	httpErr := requireHTTPError(t, BindAndValidate(c, &customPayload{}))
	assert.Equal(t, []errs.FieldError{{Field: "amount", Error: "must be positive"}}, httpErr.Errors)
}
