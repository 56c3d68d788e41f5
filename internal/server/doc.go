// Package server wires and runs the application's HTTP server.
//
// It covers startup, signal handling, and graceful shutdown bounded by the
// configured shutdown timeout.
package server
