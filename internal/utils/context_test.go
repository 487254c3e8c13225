package utils

import (
	"context"
	"testing"
)

func TestGetUsernameFromContext_Found(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "admin")

	username, ok := GetUsernameFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if username != "admin" {
		t.Errorf("expected username admin, got %s", username)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	_, ok := GetUsernameFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, 42)

	_, ok := GetUsernameFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for non-string value")
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-123")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if traceID != "trace-123" {
		t.Errorf("expected trace-123, got %s", traceID)
	}

	_, ok = GetTraceIDFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestContextKey_String(t *testing.T) {
	if UsernameCtxKey.String() != "username" {
		t.Errorf("expected key string username, got %s", UsernameCtxKey.String())
	}
}
