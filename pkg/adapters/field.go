package adapters

import (
	"strings"

	"github.com/go-drift/adapt/pkg/adapt"
	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/option"
)

// Field is the view of a text input's string state.
type Field struct {
	Value string
	// Empty reports whether Value is blank after trimming spaces.
	Empty  bool
	Change func(text string)
	Reset  func()
}

// AsField adapts a string state holding the text of an input.
func AsField(value option.Option[string], set core.Setter[string]) Field {
	text := value.OrElse("")
	return Field{
		Value:  text,
		Empty:  strings.TrimSpace(text) == "",
		Change: set.Set,
		Reset:  set.Clear,
	}
}

// UseField is the hook for AsField.
var UseField = adapt.Create(AsField)
