package module

// ReadyDoneAware provides an easy interface to wait for module startup and
// shutdown. Modules that implement this interface only indicate that they are
// ready when all of their dependencies are ready.
type ReadyDoneAware interface {
	// Ready commences startup of the module, and returns a ready channel that
	// is closed once startup has completed.
	Ready() <-chan struct{}

	// Done commences shutdown of the module, and returns a done channel that
	// is closed once shutdown has completed.
	Done() <-chan struct{}
}
