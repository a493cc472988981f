package server

// Server is the lifecycle contract a transport server exposes to main.
type Server interface {
	// RunServer serves requests until a shutdown signal arrives, then blocks
	// until in-flight connections have drained.
	RunServer()

	// Shutdown stops the server gracefully. Safe to call more than once.
	Shutdown()
}
