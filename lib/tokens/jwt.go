package tokens

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/vaultbanking/vaulthub.go/lib/responses"
)

type jwtCustomClaims struct {
	ID int64 `json:"id"`
	// BankRef identifies the user's bank at the upstream core banking
	// API; controllers forward it together with the raw bearer token.
	BankRef string `json:"bank_ref"`

	jwt.StandardClaims
}

// GenerateAccessToken : Generate Access Token
func GenerateAccessToken(secret []byte, expiryInSeconds int, userId int64, bankRef string) (string, error) {
	claims := &jwtCustomClaims{
		ID:      userId,
		BankRef: bankRef,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryInSeconds) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return t, nil
}

// Middleware validates the Authorization bearer token and stores the
// user id, bank ref and the raw token on the request context. The raw
// token is passed through to the upstream bank API.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims := &jwtCustomClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
			}

			c.Set("UserID", claims.ID)
			c.Set("BankRef", claims.BankRef)
			c.Set("BankToken", raw)

			return next(c)
		}
	}
}
