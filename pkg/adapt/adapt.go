// Package adapt builds reusable stateful hooks from small adapter functions.
//
// An adapter receives the current state value and its setter and returns
// derived fields and behaviors. Create turns it into a hook that, on every
// build, reads the element-local state, runs the adapter and merges the
// adapter output with the base value/set pair:
//
//	type DarkMode struct {
//	    Value  string
//	    IsDark bool
//	    Toggle func()
//	}
//
//	var UseDarkMode = adapt.Create(func(v option.Option[string], set core.Setter[string]) DarkMode {
//	    mode := v.OrElse("light")
//	    return DarkMode{
//	        Value:  mode,
//	        IsDark: mode == "dark",
//	        Toggle: func() {
//	            if mode == "light" {
//	                set.Set("dark")
//	            } else {
//	                set.Set("light")
//	            }
//	        },
//	    }
//	})
//
//	func (w Page) Build(ctx core.BuildContext) core.Widget {
//	    mode := UseDarkMode(ctx)
//	    return widgets.Button{Label: mode.Ext.Value, OnTap: mode.Ext.Toggle}
//	}
//
// The hook follows the core hook rules: one state cell per element, claimed
// by call order, created on the first build from the optional initial value.
package adapt

import (
	"maps"

	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/option"
)

// Adapter derives fields and behaviors from a state value and its setter.
// It must not change state except through set; calls to set made while
// the adapter runs take effect on the next build.
type Adapter[T, S any] func(value option.Option[T], set core.Setter[T]) S

// Hook is the function produced by Create. Call it from Build with the
// build context. initial seeds the state on the element's first build and
// is ignored afterwards; only the first value is used.
type Hook[T, S any] func(ctx core.BuildContext, initial ...T) Result[T, S]

// Create returns a hook that combines element-local state with adapter.
// A nil adapter yields results holding only the value and set fields.
// The adapter is fixed for the lifetime of the returned hook.
func Create[T, S any](adapter Adapter[T, S]) Hook[T, S] {
	return func(ctx core.BuildContext, initial ...T) Result[T, S] {
		seed := option.None[T]()
		if len(initial) > 0 {
			seed = option.Some(initial[0])
		}
		value, set := core.UseState(ctx, seed)
		if adapter == nil {
			var zero S
			return newResult(value, set, zero, nil)
		}
		ext := adapter(value, set)
		return newResult(value, set, ext, FieldsOf(ext))
	}
}

// Basic returns a hook with no adapter: its results hold exactly the
// value and set fields.
func Basic[T any]() Hook[T, struct{}] {
	return Create[T, struct{}](nil)
}

// Result is the merged output of a Hook.
//
// Value and Set start as the state cell's value and setter. The adapter's
// fields are then merged over them: an adapter field named "value" that
// holds a T or an option.Option[T] replaces Value, and one named "set"
// that holds a non-nil core.Setter[T] replaces Set. Ext is the adapter
// output itself, for typed access to the derived fields.
type Result[T, S any] struct {
	Value option.Option[T]
	Set   core.Setter[T]
	Ext   S

	fields Fields
}

func newResult[T, S any](value option.Option[T], set core.Setter[T], ext S, extFields Fields) Result[T, S] {
	merged := Merge(Fields{FieldValue: value, FieldSet: set}, extFields)
	r := Result[T, S]{Value: value, Set: set, Ext: ext, fields: merged}

	switch v := merged[FieldValue].(type) {
	case option.Option[T]:
		r.Value = v
	case T:
		r.Value = option.Some(v)
	}
	if s, ok := merged[FieldSet].(core.Setter[T]); ok && s != nil {
		r.Set = s
	}
	return r
}

// Fields returns a copy of the merged field set.
func (r Result[T, S]) Fields() Fields {
	return maps.Clone(r.fields)
}

// Field returns the merged field called name.
func (r Result[T, S]) Field(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Keys returns the merged field names in sorted order.
func (r Result[T, S]) Keys() []string {
	return r.fields.Keys()
}
