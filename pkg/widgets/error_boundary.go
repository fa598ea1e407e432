package widgets

import (
	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/errors"
)

// ErrorBoundary shows Child until a build below it fails, and a fallback
// from then on. The failure is still reported to the error handler.
//
//	ErrorBoundary{
//	    Child: Page{},
//	    Fallback: func(err *errors.BuildError, reset func()) core.Widget {
//	        return ButtonOf("Try again", reset)
//	    },
//	}
type ErrorBoundary struct {
	Child core.Widget
	// Fallback builds the replacement for Child. reset clears the failure
	// and builds Child again. Nil shows an ErrorWidget.
	Fallback func(err *errors.BuildError, reset func()) core.Widget
	KeyValue any
}

func (b ErrorBoundary) CreateElement() core.Element {
	return core.NewErrorBoundaryElement(b, nil)
}

func (b ErrorBoundary) Key() any {
	return b.KeyValue
}

func (b ErrorBoundary) BuildBoundary(ctx core.BuildContext, failed *errors.BuildError, reset func()) core.Widget {
	if failed == nil {
		return b.Child
	}
	if b.Fallback != nil {
		return b.Fallback(failed, reset)
	}
	return ErrorWidget{Error: failed}
}
