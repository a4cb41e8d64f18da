package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleCaller = "caller"

	callerIDKey = "auth.caller_id"
)

var (
	ErrMissingToken  = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid token")
	ErrForbiddenRole = errors.New("caller role required")
)

// Claims carries the caller id in sub and the user's role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// CallerIDFromHeader validates an Authorization header and returns the caller id.
func (a *Authenticator) CallerIDFromHeader(header string) (uint, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return 0, ErrMissingToken
	}

	claims := &Claims{}
	_, err := a.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	callerID, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil || callerID == 0 {
		return 0, fmt.Errorf("%w: subject is not a caller id", ErrInvalidToken)
	}

	if claims.Role != RoleCaller {
		return 0, ErrForbiddenRole
	}

	return uint(callerID), nil
}

// RequireCaller rejects requests without a valid caller token.
func (a *Authenticator) RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, err := a.CallerIDFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			status := http.StatusUnauthorized
			code := "unauthorized"
			if errors.Is(err, ErrForbiddenRole) {
				status = http.StatusForbidden
				code = "forbidden"
			}

			slog.WarnContext(c.Request.Context(), "caller authentication failed",
				slog.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(status, gin.H{
				"error":   code,
				"message": err.Error(),
			})
			return
		}

		SetCallerID(c, callerID)
		c.Next()
	}
}

func SetCallerID(c *gin.Context, callerID uint) {
	c.Set(callerIDKey, callerID)
}

func CallerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(callerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
