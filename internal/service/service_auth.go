// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/MKhiriev/testgen/internal/config"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/utils"
	"github.com/MKhiriev/testgen/models"
)

// authService is the concrete implementation of AuthService. The platform
// has a single operator account configured through the environment, so login
// is a constant-time comparison against the configured credentials rather
// than a database lookup.
type authService struct {
	// username and password are the configured operator credentials.
	username string
	password string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from the configured UI
// credentials and JWT parameters.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(ui config.UIConfig, auth config.AuthConfig, logger *logger.Logger) AuthService {
	return &authService{
		username:      ui.Username,
		password:      ui.Password,
		tokenSignKey:  auth.HashingKey,
		tokenIssuer:   auth.TokenIssuer,
		tokenDuration: auth.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates the operator account.
//
// Both the username and the password comparison run in constant time so a
// failed login does not reveal which of the two was wrong.
//
// Returns the authenticated user or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrWrongPassword if the credentials do not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(user.Username), []byte(a.username))
	passwordMatch := subtle.ConstantTimeCompare([]byte(user.Password), []byte(a.password))
	if usernameMatch&passwordMatch != 1 {
		log.Error().Str("username", user.Username).Msg("wrong credentials")
		return models.User{}, ErrWrongPassword
	}

	return models.User{Username: user.Username}, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, ErrTokenCreationFailed
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
