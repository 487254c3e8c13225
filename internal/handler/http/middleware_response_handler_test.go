// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

// ---- WriteHeader ----

func TestResponseWriter_WriteHeader_SetsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError) // should be ignored

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

// ---- Write ----

func TestResponseWriter_Write_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusAccepted)
	_, err := w.Write([]byte("hello, "))
	require.NoError(t, err)
	_, err = w.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, len("hello, world"), w.size)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, "hello, world", rr.Body.String())
}
