package adapters

import (
	"github.com/go-drift/adapt/pkg/adapt"
	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/option"
)

// Toggle is the view of a bool state.
type Toggle struct {
	Value  bool
	On     bool
	Flip   func()
	SetOn  func()
	SetOff func()
}

// AsToggle adapts a bool state; an absent state reads as false.
func AsToggle(value option.Option[bool], set core.Setter[bool]) Toggle {
	on := value.OrElse(false)
	return Toggle{
		Value: on,
		On:    on,
		Flip: func() {
			set.Update(func(v option.Option[bool]) option.Option[bool] {
				return option.Some(!v.OrElse(false))
			})
		},
		SetOn:  func() { set.Set(true) },
		SetOff: func() { set.Set(false) },
	}
}

// UseToggle is the hook for AsToggle.
var UseToggle = adapt.Create(AsToggle)
