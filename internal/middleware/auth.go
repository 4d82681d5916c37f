package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/VictorGlez97/almperms/internal/auth"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingToken = errors.New("authorization is missing")
	ErrInvalidToken = errors.New("invalid token")
)

// Authenticator resolves the calling operator from an HS256 bearer token.
// The operator is read from the "cveusu" claim, falling back to "sub".
type Authenticator struct {
	secret   []byte
	required bool
	logger   *logrus.Logger
}

func NewAuthenticator(secret string, required bool, logger *logrus.Logger) *Authenticator {
	return &Authenticator{secret: []byte(secret), required: required, logger: logger}
}

// Required reports whether requests without a token are rejected
func (a *Authenticator) Required() bool {
	return a.required
}

// ParseToken validates tokenString and returns the operator key it names
func (a *Authenticator) ParseToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}
	if len(a.secret) == 0 {
		return "", ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if op, ok := claims["cveusu"].(string); ok && op != "" {
		return op, nil
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// Operator puts the token's operator into the request context. Without a token the
// request passes anonymously unless the authenticator is required; a bad token is always rejected.
func (a *Authenticator) Operator() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
			return
		}
		if tokenString == "" {
			if a.required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
				return
			}
			c.Next()
			return
		}

		operator, err := a.ParseToken(tokenString)
		if err != nil {
			a.logger.WithError(err).Debug("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
			return
		}

		c.Request = c.Request.WithContext(auth.WithOperator(c.Request.Context(), operator))
		c.Next()
	}
}

// bearerToken reads the access_token cookie, then the Authorization header.
// It returns "" with no error when neither is present.
func bearerToken(c *gin.Context) (string, error) {
	if tokenString, err := c.Cookie("access_token"); err == nil && tokenString != "" {
		return tokenString, nil
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization format, expected 'Bearer <token>'")
	}
	return parts[1], nil
}
