package tokens

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("unit-test-secret")

func callWithAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	assert.NoError(t, err)
	return rec, c
}

func TestMiddlewareAcceptsGeneratedToken(t *testing.T) {
	token, err := GenerateAccessToken(testSecret, 3600, 42, "bank-1")
	assert.NoError(t, err)

	rec, c := callWithAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), c.Get("UserID"))
	assert.Equal(t, "bank-1", c.Get("BankRef"))
	assert.Equal(t, token, c.Get("BankToken"))
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	rec, _ := callWithAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken([]byte("some other secret"), 3600, 42, "bank-1")
	assert.NoError(t, err)

	rec, _ := callWithAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	token, err := GenerateAccessToken(testSecret, -60, 42, "bank-1")
	assert.NoError(t, err)

	rec, _ := callWithAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
