package testing

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/adapt/pkg/core"
	adapterrors "github.com/go-drift/adapt/pkg/errors"
	"github.com/go-drift/adapt/pkg/widgets"
)

// FrameDuration is the virtual time one Pump stands for in PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

var (
	// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
	ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")
	// ErrNoMatch is returned by Tap when the finder matches nothing.
	ErrNoMatch = errors.New("finder matched no elements")
	// ErrNotTappable is returned by Tap when no button is found at or
	// around the matched element.
	ErrNotTappable = errors.New("matched element is not a button")
	// ErrButtonDisabled is returned by Tap for a disabled button or one
	// without OnTap.
	ErrButtonDisabled = errors.New("button is disabled")
)

// FrameError lists the build failures reported while one frame ran.
// The failed widgets were replaced by error widgets, so the tree is still
// usable; the failures also stay in BuildErrors.
type FrameError struct {
	BuildErrors []*adapterrors.BuildError
}

func (e *FrameError) Error() string {
	if len(e.BuildErrors) == 1 {
		return "frame: " + e.BuildErrors[0].Error()
	}
	return fmt.Sprintf("frame: %d build errors, first: %v", len(e.BuildErrors), e.BuildErrors[0])
}

// Unwrap exposes each build failure to errors.Is and errors.As.
func (e *FrameError) Unwrap() []error {
	errs := make([]error, len(e.BuildErrors))
	for i, err := range e.BuildErrors {
		errs[i] = err
	}
	return errs
}

// WidgetTester provides isolated widget testing without a host.
// It drives the same build phase as a real host and records every error
// the framework reports while it is installed.
type WidgetTester struct {
	buildOwner  *core.BuildOwner
	root        core.Element
	dispatches  []func()
	prevHandler adapterrors.ErrorHandler
	recorder    *recordingHandler
}

// NewWidgetTester creates a tester with default test environment.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		buildOwner:  core.NewBuildOwner(),
		prevHandler: adapterrors.Handler(),
		recorder:    &recordingHandler{},
	}
	adapterrors.SetHandler(t.recorder)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the previous error handler.
// Must be called if not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	t.Unmount()
	adapterrors.SetHandler(t.prevHandler)
}

// Unmount unmounts the current tree, disposing its hook state.
func (t *WidgetTester) Unmount() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// BuildOwner returns the owner driving this tester's builds.
func (t *WidgetTester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
// It returns a *FrameError when any build failed while mounting or during
// the frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	mark := t.recorder.buildErrorCount()
	t.Unmount()
	t.root = core.MountRoot(widget, t.buildOwner)
	t.frame()
	return t.frameError(mark)
}

// Pump runs a single frame: queued dispatches, then the build flush.
// It returns a *FrameError when any build failed during the frame.
func (t *WidgetTester) Pump() error {
	mark := t.recorder.buildErrorCount()
	t.frame()
	return t.frameError(mark)
}

func (t *WidgetTester) frame() {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		runDispatch(fn)
	}

	t.buildOwner.FlushBuild()
}

func runDispatch(fn func()) {
	defer adapterrors.Recover("tester.dispatch")
	fn()
}

func (t *WidgetTester) frameError(mark int) error {
	failed := t.recorder.buildErrorsSnapshot()[mark:]
	if len(failed) == 0 {
		return nil
	}
	return &FrameError{BuildErrors: failed}
}

// PumpAndSettle runs frames until the framework is idle or the timeout
// is reached. Each frame stands for FrameDuration of virtual time.
// Returns ErrSettleTimeout if the framework does not settle within timeout.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// Tap taps the button at the first match of finder and pumps a frame.
// The button is the matched element itself, else the first button below
// it, else the nearest button above it.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return ErrNoMatch
	}
	button, ok := buttonAt(result.First())
	if !ok {
		return ErrNotTappable
	}
	if !button.Tap() {
		return ErrButtonDisabled
	}
	return t.Pump()
}

// Errors returns the framework errors reported since the tester was created.
func (t *WidgetTester) Errors() []*adapterrors.Error {
	return t.recorder.errorsSnapshot()
}

// Panics returns the panics reported outside builds since the tester was
// created, such as those recovered from tap handlers.
func (t *WidgetTester) Panics() []*adapterrors.PanicError {
	return t.recorder.panicsSnapshot()
}

// BuildErrors returns the build failures reported since the tester was created.
func (t *WidgetTester) BuildErrors() []*adapterrors.BuildError {
	return t.recorder.buildErrorsSnapshot()
}

func buttonAt(el core.Element) (widgets.Button, bool) {
	if b, ok := el.Widget().(widgets.Button); ok {
		return b, true
	}
	var found core.Element
	walkTree(el, func(e core.Element) bool {
		if _, ok := e.Widget().(widgets.Button); ok {
			found = e
			return false
		}
		return true
	})
	if found == nil {
		found = el.FindAncestor(func(e core.Element) bool {
			_, ok := e.Widget().(widgets.Button)
			return ok
		})
	}
	if found == nil {
		return widgets.Button{}, false
	}
	return found.Widget().(widgets.Button), true
}

// recordingHandler keeps every reported error for later assertions.
type recordingHandler struct {
	mu          sync.Mutex
	errs        []*adapterrors.Error
	panics      []*adapterrors.PanicError
	buildErrors []*adapterrors.BuildError
}

func (h *recordingHandler) HandleError(err *adapterrors.Error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(err *adapterrors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func (h *recordingHandler) HandleBuildError(err *adapterrors.BuildError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buildErrors = append(h.buildErrors, err)
}

func (h *recordingHandler) errorsSnapshot() []*adapterrors.Error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*adapterrors.Error(nil), h.errs...)
}

func (h *recordingHandler) buildErrorsSnapshot() []*adapterrors.BuildError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*adapterrors.BuildError(nil), h.buildErrors...)
}

func (h *recordingHandler) panicsSnapshot() []*adapterrors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*adapterrors.PanicError(nil), h.panics...)
}

func (h *recordingHandler) buildErrorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.buildErrors)
}
