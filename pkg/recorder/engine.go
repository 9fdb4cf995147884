package recorder

// Engine abstracts the browser-automation runtime. The recorder treats the
// engine as an opaque resource: it launches a browser, binds a capture
// context to an archive path, and is torn down best-effort at close.
type Engine interface {
	// Launch starts the engine and opens a browser instance.
	Launch() (Browser, error)

	// Stop shuts the engine down. Called once during teardown.
	Stop() error
}

// Browser is a single launched browser instance.
type Browser interface {
	// NewCaptureContext opens a browsing context that records all network
	// traffic, including response bodies, to the archive at harPath.
	NewCaptureContext(harPath string) (CaptureContext, error)

	// Close closes the browser instance.
	Close() error
}

// CaptureContext is a browsing context bound to an archive file. Closing
// the context flushes and finalizes the archive.
type CaptureContext interface {
	// NewPage opens a fresh page in the context.
	NewPage() (Page, error)

	// OpenPages reports how many pages remain open.
	OpenPages() int

	// Close finalizes the archive and closes the context.
	Close() error
}

// Page is a single open page.
type Page interface {
	// Goto navigates the page to url.
	Goto(url string) error
}
