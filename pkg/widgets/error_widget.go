package widgets

import (
	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/errors"
	"github.com/go-drift/adapt/pkg/theme"
)

func init() {
	// Register the default error widget builder
	core.SetErrorWidgetBuilder(func(err *errors.BuildError) core.Widget {
		return ErrorWidget{Error: err}
	})
}

// ErrorHeadline is the first line of every ErrorWidget.
const ErrorHeadline = "Something went wrong"

// ErrorWidget displays error information when a widget build fails.
// It shows the error details in debug mode, or only a headline in
// release mode.
type ErrorWidget struct {
	// Error is the build error that occurred.
	Error *errors.BuildError
	// Verbose overrides DebugMode for this widget instance.
	// If not explicitly set, defaults to core.DebugMode.
	Verbose *bool
}

func (e ErrorWidget) CreateElement() core.Element {
	return core.NewStatelessElement(e, nil)
}

func (e ErrorWidget) Key() any {
	return nil
}

func (e ErrorWidget) Build(ctx core.BuildContext) core.Widget {
	verbose := core.DebugMode
	if e.Verbose != nil {
		verbose = *e.Verbose
	}

	red := theme.LightColorScheme().Error
	children := []core.Widget{
		Text{Content: ErrorHeadline, Color: red},
	}
	if verbose {
		detail := "Unknown error"
		if e.Error != nil {
			detail = e.Error.Error()
		}
		children = append(children, Text{Content: detail, Color: red})
	}
	return Column{ChildrenWidgets: children}
}
