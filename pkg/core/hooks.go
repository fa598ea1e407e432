package core

import (
	"reflect"
	"strconv"

	"github.com/go-drift/adapt/pkg/errors"
	"github.com/go-drift/adapt/pkg/option"
)

// hookScope is the ordered list of hook slots owned by one element.
// Slots are claimed by position, so hooks must be called in the same
// order on every build of the element.
type hookScope struct {
	owner    Element
	slots    []any
	cursor   int
	building bool
	built    bool
}

// hookDisposer is implemented by slots that release resources on unmount.
type hookDisposer interface {
	disposeHook()
}

func (h *hookScope) begin() {
	h.cursor = 0
	h.building = true
}

func (h *hookScope) end() {
	h.building = false
}

// finish checks that a completed build claimed every slot.
func (h *hookScope) finish() {
	if h.built && h.cursor != len(h.slots) {
		panic(&errors.HookError{
			Op:     "core.build",
			Reason: errors.HookCountChanged,
			Want:   strconv.Itoa(len(h.slots)),
			Got:    strconv.Itoa(h.cursor),
		})
	}
	h.built = true
}

func (h *hookScope) dispose() {
	for i := len(h.slots) - 1; i >= 0; i-- {
		if d, ok := h.slots[i].(hookDisposer); ok {
			d.disposeHook()
		}
	}
	h.slots = nil
	h.cursor = 0
	h.built = false
}

func scopeOf(ctx BuildContext, op string) *hookScope {
	host, ok := ctx.(interface{ hookScope() *hookScope })
	if !ok {
		panic(&errors.HookError{Op: op, Reason: errors.HookOutsideBuild})
	}
	scope := host.hookScope()
	if !scope.building {
		panic(&errors.HookError{Op: op, Reason: errors.HookOutsideBuild})
	}
	return scope
}

// useSlot claims the next hook slot for ctx, creating it on first use.
func useSlot[H any](ctx BuildContext, op string, create func(owner Element) H) H {
	scope := scopeOf(ctx, op)
	index := scope.cursor
	scope.cursor++

	if index < len(scope.slots) {
		slot, ok := scope.slots[index].(H)
		if !ok {
			panic(&errors.HookError{
				Op:     op,
				Reason: errors.HookOrderChanged,
				Index:  index,
				Want:   reflect.TypeOf(scope.slots[index]).String(),
				Got:    reflect.TypeFor[H]().String(),
			})
		}
		return slot
	}
	if scope.built {
		panic(&errors.HookError{
			Op:     op,
			Reason: errors.HookCountChanged,
			Want:   strconv.Itoa(len(scope.slots)),
			Got:    strconv.Itoa(index + 1),
		})
	}

	slot := create(scope.owner)
	scope.slots = append(scope.slots, slot)
	return slot
}

// UseState returns the element-local state value and its setter.
//
// The first build of an element allocates a StateCell holding initial.
// Later builds ignore initial, apply the updates queued since the previous
// build in the order they were made, and return the result. Updates queued
// while this build runs are seen by the next build.
//
// Example:
//
//	func (w Counter) Build(ctx core.BuildContext) core.Widget {
//	    count, set := core.UseState(ctx, option.Some(0))
//	    return widgets.Button{
//	        Label: fmt.Sprintf("Count: %d", count.OrElse(0)),
//	        OnTap: func() {
//	            set.Update(func(c option.Option[int]) option.Option[int] {
//	                return option.Some(c.OrElse(0) + 1)
//	            })
//	        },
//	    }
//	}
func UseState[T any](ctx BuildContext, initial option.Option[T]) (option.Option[T], Setter[T]) {
	cell := useSlot(ctx, "core.UseState", func(owner Element) *StateCell[T] {
		return newStateCell(owner, initial)
	})
	cell.commit()
	return cell.value, cell
}

type disposableSlot[C Disposable] struct {
	value C
}

func (s *disposableSlot[C]) disposeHook() {
	s.value.Dispose()
}

// UseDisposable creates a resource on the first build of the calling
// element and disposes it when the element unmounts.
func UseDisposable[C Disposable](ctx BuildContext, create func() C) C {
	slot := useSlot(ctx, "core.UseDisposable", func(Element) *disposableSlot[C] {
		return &disposableSlot[C]{value: create()}
	})
	return slot.value
}

// UseController creates a controller and registers it for automatic disposal.
// The controller will be disposed when the state is disposed.
//
// Example:
//
//	func (s *myState) InitState() {
//	    s.ticker = core.UseController(s, func() *Ticker {
//	        return NewTicker()
//	    })
//	}
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseListenable subscribes to a listenable and triggers rebuilds.
// The subscription is automatically cleaned up when the state is disposed.
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}
