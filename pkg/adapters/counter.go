package adapters

import (
	"github.com/go-drift/adapt/pkg/adapt"
	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/option"
)

// Counter is the view of an int state.
type Counter struct {
	Value     int
	Increment func()
	Decrement func()
	// Reset clears the state; Value then reads 0.
	Reset func()
}

// AsCounter returns an adapter that steps an int state by step.
// Increment and Decrement compose: two calls before a build move the
// count by two steps.
func AsCounter(step int) adapt.Adapter[int, Counter] {
	return func(value option.Option[int], set core.Setter[int]) Counter {
		add := func(delta int) func() {
			return func() {
				set.Update(func(v option.Option[int]) option.Option[int] {
					return option.Some(v.OrElse(0) + delta)
				})
			}
		}
		return Counter{
			Value:     value.OrElse(0),
			Increment: add(step),
			Decrement: add(-step),
			Reset:     set.Clear,
		}
	}
}

// UseCounter is the hook for AsCounter(1).
var UseCounter = adapt.Create(AsCounter(1))
