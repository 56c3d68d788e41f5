package server

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or the listener
// fails, and returns after in-flight requests were drained.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
