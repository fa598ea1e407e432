// Package errors provides structured error handling for the framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBuild indicates a build-time widget error.
	KindBuild
	// KindHook indicates a hook used against the hook-call rules.
	KindHook
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindRender indicates a rendering error.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindBuild:
		return "build"
	case KindHook:
		return "hook"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Error represents a structured framework error.
type Error struct {
	// Op is the operation that failed (e.g., "core.FlushBuild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "terminal.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type (StatelessElement, StatefulElement, etc.).
	Element string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

// Unwrap returns Err, or the recovered value when it is itself an error.
func (e *BuildError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}

// HookReason says which hook rule was broken.
type HookReason int

const (
	// HookOutsideBuild means a hook was called while no element was building.
	HookOutsideBuild HookReason = iota
	// HookOrderChanged means the slot at Index holds a different hook type
	// than the one requested, i.e. hooks were called in a different order.
	HookOrderChanged
	// HookCountChanged means a build called fewer hooks than the one before.
	HookCountChanged
)

func (r HookReason) String() string {
	switch r {
	case HookOutsideBuild:
		return "outside build"
	case HookOrderChanged:
		return "order changed"
	case HookCountChanged:
		return "count changed"
	default:
		return fmt.Sprintf("HookReason(%d)", int(r))
	}
}

// HookError is raised (as a panic value) when a hook breaks the call rules.
type HookError struct {
	// Op is the hook that detected the problem (e.g., "core.UseState").
	Op string
	// Reason is the rule that was broken.
	Reason HookReason
	// Index is the hook slot involved.
	Index int
	// Want is the type or count expected at Index.
	Want string
	// Got is the type or count actually seen.
	Got string
}

func (e *HookError) Error() string {
	switch e.Reason {
	case HookOutsideBuild:
		return fmt.Sprintf("%s: hooks can only be called while an element is building", e.Op)
	case HookOrderChanged:
		return fmt.Sprintf("%s: hook %d changed type from %s to %s between builds", e.Op, e.Index, e.Want, e.Got)
	case HookCountChanged:
		return fmt.Sprintf("%s: build called %s hooks, previous build called %s", e.Op, e.Got, e.Want)
	default:
		return fmt.Sprintf("%s: hook error (%s)", e.Op, e.Reason)
	}
}

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
