// Package server wires and runs the application's transport servers.
//
// The API is served over HTTP only; the package handles startup, signal
// handling, and graceful shutdown.
package server
