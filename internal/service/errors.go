package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationInvalidName        = errors.New("dashboard name must be 1 to 255 characters")
	ErrValidationNoScores           = errors.New("at least one of total_score and cde_score must be enabled")
	ErrValidationUnknownCategory    = errors.New("unknown category")
	ErrValidationUnknownFilterField = errors.New("unknown filter field")
	ErrValidationUnknownGroupBy     = errors.New("unknown group-by column")
	ErrValidationUnknownScoreType   = errors.New("unknown score type")
)
