// Package recorder owns one browser capture session: launch, the recording
// wait loop, interrupt handling, teardown, and metadata persistence.
package recorder

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/codehornets/reverse-api-engineer/pkg/run"
)

// DefaultPollInterval is how often the recorder checks whether any page is
// still open. Tight enough that close is detected promptly, loose enough to
// avoid busy-waiting.
const DefaultPollInterval = 500 * time.Millisecond

// Notifier receives session lifecycle notifications. Implementations must
// not block; the recorder treats them as purely observational.
type Notifier interface {
	// Interrupted fires when an operator interrupt reaches the recorder.
	Interrupted()

	// Saved fires after the archive is finalized and metadata written.
	Saved(harPath, metadataPath string)
}

type noopNotifier struct{}

func (noopNotifier) Interrupted()         {}
func (noopNotifier) Saved(string, string) {}

// Recorder drives a single capture session through
// IDLE → STARTING → RECORDING → CLOSING → CLOSED.
type Recorder struct {
	runID  string
	prompt string
	layout run.Layout

	engine   Engine
	notifier Notifier
	log      *zap.Logger
	poll     time.Duration
	exit     func(int)

	mu            sync.Mutex
	state         State
	browser       Browser
	context       CaptureContext
	engineStopped bool
	recorded      bool
	startTime     time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithEngine substitutes the browser-automation engine.
func WithEngine(e Engine) Option {
	return func(r *Recorder) { r.engine = e }
}

// WithNotifier registers a lifecycle notifier.
func WithNotifier(n Notifier) Option {
	return func(r *Recorder) { r.notifier = n }
}

// WithLogger sets the debug logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Recorder) { r.log = l }
}

// WithPollInterval overrides the page poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(r *Recorder) {
		if d > 0 {
			r.poll = d
		}
	}
}

// New creates a recorder for one run. The default engine launches a headed
// Playwright Chromium.
func New(runID, prompt string, layout run.Layout, opts ...Option) *Recorder {
	r := &Recorder{
		runID:    runID,
		prompt:   prompt,
		layout:   layout,
		engine:   NewPlaywrightEngine(),
		notifier: noopNotifier{},
		log:      zap.NewNop(),
		poll:     DefaultPollInterval,
		exit:     os.Exit,
		state:    StateIdle,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State reports the current lifecycle state.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start launches the browser with capture enabled, optionally navigates the
// initial page to startURL, then blocks until the operator closes every
// page or interrupts the process. It returns the archive path.
func (r *Recorder) Start(startURL string) (string, error) {
	r.mu.Lock()
	if r.state != StateIdle {
		state := r.state
		r.mu.Unlock()
		return "", fmt.Errorf("recorder in state %s, cannot start", state)
	}
	r.state = StateStarting
	// Duration is measured from session intent, not browser readiness.
	r.startTime = time.Now()
	r.mu.Unlock()

	r.watchSignals()

	if _, err := r.layout.CaptureDir(r.runID); err != nil {
		return "", err
	}
	harPath := r.layout.HARPath(r.runID)

	browser, err := r.engine.Launch()
	if err != nil {
		r.Close() //nolint:errcheck // best-effort teardown on a failed start
		return "", err
	}
	r.mu.Lock()
	r.browser = browser
	r.mu.Unlock()

	context, err := browser.NewCaptureContext(harPath)
	if err != nil {
		r.Close() //nolint:errcheck
		return "", err
	}
	r.mu.Lock()
	r.context = context
	r.mu.Unlock()

	page, err := context.NewPage()
	if err != nil {
		r.Close() //nolint:errcheck
		return "", err
	}

	if startURL != "" {
		if err := page.Goto(startURL); err != nil {
			// A bad start URL should not kill the session; the operator
			// can still navigate by hand.
			r.log.Debug("initial navigation failed", zap.Error(err))
		}
	}

	r.mu.Lock()
	r.state = StateRecording
	r.recorded = true
	r.mu.Unlock()
	r.log.Debug("recording",
		zap.String("run_id", r.runID),
		zap.String("har", harPath))

	r.waitForClose()
	return r.Close()
}

// waitForClose blocks until every page is closed or Close has been invoked
// from the signal path.
func (r *Recorder) waitForClose() {
	ticker := time.NewTicker(r.poll)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			if r.openPages() == 0 {
				return
			}
		}
	}
}

func (r *Recorder) openPages() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.context == nil {
		return 0
	}
	return r.context.OpenPages()
}

// watchSignals routes operator interrupts to Close. The handler performs
// the full close sequence synchronously, then terminates the process with a
// success exit code.
func (r *Recorder) watchSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case <-ch:
			r.notifier.Interrupted()
			if _, err := r.Close(); err != nil {
				r.log.Error("close after interrupt", zap.Error(err))
			}
			r.exit(0)
		case <-r.done:
		}
	}()
}

// Close finalizes the archive, tears the session down, and writes the
// metadata record. Sessions that never reached the recording state leave no
// metadata behind. Safe to call more than once: teardown steps are skipped
// once done and the metadata file is rewritten whole with a fresh end time.
// The returned archive path is identical on every call.
func (r *Recorder) Close() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	endTime := time.Now()
	r.state = StateClosing
	r.stopOnce.Do(func() { close(r.done) })

	// Teardown is best-effort and total: each step runs regardless of
	// earlier failures.
	if r.context != nil {
		if err := r.context.Close(); err != nil {
			r.log.Debug("close capture context", zap.Error(err))
		}
		r.context = nil
	}
	if r.browser != nil {
		if err := r.browser.Close(); err != nil {
			r.log.Debug("close browser", zap.Error(err))
		}
		r.browser = nil
	}
	if !r.engineStopped {
		if err := r.engine.Stop(); err != nil {
			r.log.Debug("stop engine", zap.Error(err))
		}
		r.engineStopped = true
	}

	harPath := r.layout.HARPath(r.runID)
	if !r.recorded {
		// The session never opened, so there is no archive to describe.
		r.state = StateClosed
		return harPath, nil
	}

	metaPath := r.layout.MetadataPath(r.runID)
	meta := run.Metadata{
		RunID:     r.runID,
		Prompt:    r.prompt,
		StartTime: run.Timestamp(r.startTime),
		EndTime:   run.Timestamp(endTime),
		HARFile:   harPath,
	}
	if err := meta.Save(metaPath); err != nil {
		return harPath, err
	}

	r.state = StateClosed
	r.notifier.Saved(harPath, metaPath)
	return harPath, nil
}
