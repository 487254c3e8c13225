package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	recorder := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	n, err := WriteJSON(recorder, payload, http.StatusOK)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected bytes written")
	}

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected application/json, got %s", got)
	}

	var decoded map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if decoded["status"] != "ok" {
		t.Errorf("expected status ok, got %s", decoded["status"])
	}
}

func TestWriteJSON_StatusCode(t *testing.T) {
	recorder := httptest.NewRecorder()

	_, err := WriteJSON(recorder, map[string]string{"error": "not found"}, http.StatusNotFound)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", recorder.Code)
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	recorder := httptest.NewRecorder()

	// channels are not JSON-serializable
	_, err := WriteJSON(recorder, make(chan int), http.StatusOK)
	if err == nil {
		t.Fatal("expected marshal error, got nil")
	}
	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", recorder.Code)
	}
}
