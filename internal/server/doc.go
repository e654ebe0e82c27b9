// Package server runs the application's HTTP server.
//
// It owns the server lifecycle: startup, OS signal handling, and
// graceful shutdown with a drain timeout.
package server
