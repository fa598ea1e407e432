package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/widgets"
)

// HookResult hosts a hook call inside a mounted element so it can be
// driven without writing a widget.
type HookResult[R any] struct {
	tester  *WidgetTester
	fn      func(ctx core.BuildContext) R
	current R
	builds  int
}

// RenderHook mounts fn as the build of a fresh element and pumps the
// first frame. The element stays mounted until Unmount or test cleanup.
func RenderHook[R any](t *testing.T, fn func(ctx core.BuildContext) R) *HookResult[R] {
	t.Helper()
	h := &HookResult[R]{
		tester: NewWidgetTesterWithT(t),
		fn:     fn,
	}
	// Build failures are expected in some hook tests and stay available
	// through Tester().BuildErrors().
	var frameErr *FrameError
	if err := h.tester.PumpWidget(widgets.Builder{Fn: h.build}); err != nil && !errors.As(err, &frameErr) {
		t.Fatalf("RenderHook: %v", err)
	}
	return h
}

func (h *HookResult[R]) build(ctx core.BuildContext) core.Widget {
	h.current = h.fn(ctx)
	h.builds++
	return nil
}

// Current returns the value returned by the most recent successful build.
func (h *HookResult[R]) Current() R {
	return h.current
}

// Builds returns the number of successful builds.
func (h *HookResult[R]) Builds() int {
	return h.builds
}

// Tester returns the underlying widget tester.
func (h *HookResult[R]) Tester() *WidgetTester {
	return h.tester
}

// Rerender rebuilds the element with the same hook function.
func (h *HookResult[R]) Rerender() {
	if root := h.tester.RootElement(); root != nil {
		root.MarkNeedsBuild()
	}
	h.tester.Pump()
}

// RerenderWith swaps the hook function and rebuilds the element. Hook
// state is kept, as it is when a parent rebuilds a child with new props.
func (h *HookResult[R]) RerenderWith(fn func(ctx core.BuildContext) R) {
	h.fn = fn
	h.Rerender()
}

// Act runs fn, typically calling setters from Current, then pumps a frame
// so queued updates are applied.
func (h *HookResult[R]) Act(fn func()) {
	fn()
	h.tester.Pump()
}

// Unmount unmounts the element, disposing its hook state.
func (h *HookResult[R]) Unmount() {
	h.tester.Unmount()
}
