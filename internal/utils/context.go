// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key used to store the authenticated login in the
// context. Used together with GetUsernameFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "admin")
var UsernameCtxKey = contextKey("username")

// TraceIDCtxKey is the key used to store the request trace identifier in the
// context.
var TraceIDCtxKey = contextKey("traceID")

// GetUsernameFromContext retrieves the authenticated login from the context.
//
// Returns the login and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// GetTraceIDFromContext retrieves the request trace identifier from the
// context, returning an ok flag analogous to GetUsernameFromContext.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
