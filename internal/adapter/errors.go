package adapter

import "errors"

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
