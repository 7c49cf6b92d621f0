// Package auth issues and validates the bearer tokens handed out on login.
// Tokens are HS256-signed JWTs carrying the user identifier; the HTTP
// middleware resolves them back to the user id stored in the request context.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/patric-chuzhbe/mobileappws/internal/logger"
	"github.com/patric-chuzhbe/mobileappws/internal/models"
)

// ErrInvalidTokenOrJwtParsing is returned for any token that is missing,
// malformed, forged or expired. Callers can't tell these cases apart.
var ErrInvalidTokenOrJwtParsing = errors.New("invalid or expired token")

// Auth mints and validates session tokens.
type Auth struct {
	// signingKey is the HMAC key used to sign JWTs.
	signingKey []byte

	// tokenTTL bounds the lifetime of every issued token.
	tokenTTL time.Duration

	// tokenPrefix is prepended to issued tokens, e.g. "Bearer ".
	tokenPrefix string

	now func() time.Time
}

// Claims represents the JWT claims used by the system.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// ContextKey is a custom type for storing values in context to avoid collisions.
type ContextKey string

// UserIDKey is the context key used to store and retrieve the authenticated user's ID.
const UserIDKey ContextKey = "userID"

// New creates an Auth signing with signingKey. Issued tokens expire after
// tokenTTL and are prefixed with tokenPrefix.
func New(signingKey []byte, tokenTTL time.Duration, tokenPrefix string) *Auth {
	return &Auth{
		signingKey:  signingKey,
		tokenTTL:    tokenTTL,
		tokenPrefix: tokenPrefix,
		now:         time.Now,
	}
}

// IssueToken returns a prefixed bearer token bound to userID.
func (a *Auth) IssueToken(userID string) (string, error) {
	token, err := a.BuildJWTString(&Claims{UserID: userID})
	if err != nil {
		return "", err
	}

	return a.tokenPrefix + token, nil
}

// BuildJWTString signs claims, filling in subject, id, issue and expiry
// times when they're unset.
func (a *Auth) BuildJWTString(claims *Claims) (string, error) {
	now := a.now()

	if claims.Subject == "" {
		claims.Subject = claims.UserID
	}
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(a.tokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, *claims)

	tokenString, err := token.SignedString(a.signingKey)
	if err != nil {
		return "", fmt.Errorf("in internal/auth/auth.go/BuildJWTString(): error while `token.SignedString()` calling: %w", err)
	}

	return tokenString, nil
}

// GetUserIDFromToken validates tokenString, with or without the configured
// prefix, and returns the user id it was issued for.
func (a *Auth) GetUserIDFromToken(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if prefix := strings.TrimSpace(a.tokenPrefix); prefix != "" {
		tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, prefix))
	}
	if tokenString == "" {
		return "", ErrInvalidTokenOrJwtParsing
	}

	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	token, err := parser.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return a.signingKey, nil
		},
	)
	if err != nil || !token.Valid {
		return "", errors.Join(ErrInvalidTokenOrJwtParsing, err)
	}

	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(a.now()) {
		return "", ErrInvalidTokenOrJwtParsing
	}
	if claims.UserID == "" {
		return "", ErrInvalidTokenOrJwtParsing
	}

	return claims.UserID, nil
}

// AuthenticateUser is an HTTP middleware rejecting requests without a valid
// token in the Authorization header with 401. Valid requests carry the
// user id in their context under UserIDKey.
func (a *Auth) AuthenticateUser(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		userID, err := a.GetUserIDFromToken(request.Header.Get("Authorization"))
		if err != nil {
			logger.Log.Debugw("request rejected by `a.GetUserIDFromToken()`", "error", err)
			writeUnauthorized(response)
			return
		}

		ctx := context.WithValue(request.Context(), UserIDKey, userID)
		h.ServeHTTP(response, request.WithContext(ctx))
	}

	return http.HandlerFunc(middleware)
}

// UserIDFromContext returns the authenticated user id put by the middleware
// or the gRPC interceptor.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

func writeUnauthorized(response http.ResponseWriter) {
	response.Header().Set("Content-Type", "application/json")
	response.Header().Set("WWW-Authenticate", "Bearer")
	response.WriteHeader(http.StatusUnauthorized)
	err := json.NewEncoder(response).Encode(models.ErrorResponse{Error: models.ErrUnauthorized.Error()})
	if err != nil {
		logger.Log.Debugw("error while writing the 401 response", "error", err)
	}
}
