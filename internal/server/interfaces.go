package server

// Server is the lifecycle contract of the testgen API server. [NewServer]
// returns one wrapping whichever transports the config enables.
type Server interface {
	// RunServer serves requests until a stop signal arrives, then returns
	// after the graceful shutdown completes.
	RunServer()

	// Shutdown stops the transports and releases their resources.
	Shutdown()
}
