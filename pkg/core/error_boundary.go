package core

import "github.com/go-drift/adapt/pkg/errors"

// ErrorBoundaryWidget is a widget whose element captures build failures
// from its descendants. BuildBoundary receives the captured failure, nil
// while the subtree is healthy, and reset, which clears the failure and
// rebuilds the subtree.
type ErrorBoundaryWidget interface {
	Widget
	BuildBoundary(ctx BuildContext, failed *errors.BuildError, reset func()) Widget
}

// ErrorBoundaryElement hosts an ErrorBoundaryWidget. A failure below it is
// still reported to the error handler, and the failed element builds
// nothing; the boundary then rebuilds with the failure. The failure is
// kept across updates until Reset.
type ErrorBoundaryElement struct {
	elementBase
	child  Element
	failed *errors.BuildError
}

func NewErrorBoundaryElement(widget ErrorBoundaryWidget, owner *BuildOwner) *ErrorBoundaryElement {
	element := &ErrorBoundaryElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

// Failed returns the captured failure, or nil.
func (e *ErrorBoundaryElement) Failed() *errors.BuildError {
	return e.failed
}

// CaptureError records err and schedules a rebuild of the boundary.
// The first failure wins until Reset.
func (e *ErrorBoundaryElement) CaptureError(err *errors.BuildError) bool {
	if !e.mounted {
		return false
	}
	if e.failed == nil {
		e.failed = err
		e.MarkNeedsBuild()
	}
	return true
}

// Reset clears the captured failure and rebuilds the subtree.
func (e *ErrorBoundaryElement) Reset() {
	if e.failed == nil {
		return
	}
	e.failed = nil
	e.MarkNeedsBuild()
}

func (e *ErrorBoundaryElement) Mount(parent Element, slot any) {
	e.mountAt(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *ErrorBoundaryElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *ErrorBoundaryElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.hooks.dispose()
}

func (e *ErrorBoundaryElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(ErrorBoundaryWidget)
	failed := e.failed
	built := e.buildWithHooks(func() Widget {
		return widget.BuildBoundary(e, failed, e.Reset)
	})
	e.child = updateChild(e.child, built, e, e.buildOwner)
}

func (e *ErrorBoundaryElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}
