// Package server runs the application's HTTP transport.
//
// It owns server startup, stop-signal handling and graceful shutdown.
package server
