package core

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/adapt/pkg/errors"
	"github.com/go-drift/adapt/pkg/option"
)

type mockDisposable struct {
	disposed int
}

func (m *mockDisposable) Dispose() {
	m.disposed++
}

// mountHooks mounts a stateless widget whose Build runs fn and returns
// the element together with its owner.
func mountHooks(fn func(ctx BuildContext)) (*StatelessElement, *BuildOwner) {
	owner := NewBuildOwner()
	element := MountRoot(testStatelessWidget{buildFn: func(ctx BuildContext) Widget {
		fn(ctx)
		return nil
	}}, owner).(*StatelessElement)
	return element, owner
}

func TestUseState_InitialValue(t *testing.T) {
	var got option.Option[int]
	mountHooks(func(ctx BuildContext) {
		got, _ = UseState(ctx, option.Some(5))
	})

	if v, ok := got.Get(); !ok || v != 5 {
		t.Errorf("Expected Some(5), got %v", got)
	}
}

func TestUseState_AbsentInitialValue(t *testing.T) {
	var got option.Option[string]
	mountHooks(func(ctx BuildContext) {
		got, _ = UseState(ctx, option.None[string]())
	})

	if got.IsSome() {
		t.Errorf("Expected None, got %v", got)
	}
}

func TestUseState_SetAppliesOnNextBuild(t *testing.T) {
	var value option.Option[int]
	var setter Setter[int]
	builds := 0
	_, owner := mountHooks(func(ctx BuildContext) {
		builds++
		value, setter = UseState(ctx, option.Some(1))
	})

	setter.Set(2)
	if value.OrElse(0) != 1 {
		t.Errorf("Expected value to stay 1 until rebuild, got %v", value)
	}
	if !owner.NeedsWork() {
		t.Fatal("Expected Set to schedule a rebuild")
	}

	owner.FlushBuild()
	if value.OrElse(0) != 2 {
		t.Errorf("Expected 2 after rebuild, got %v", value)
	}
	if builds != 2 {
		t.Errorf("Expected 2 builds, got %d", builds)
	}
}

func TestUseState_UpdatesApplyInOrder(t *testing.T) {
	var value option.Option[int]
	var setter Setter[int]
	_, owner := mountHooks(func(ctx BuildContext) {
		value, setter = UseState(ctx, option.Some(1))
	})

	double := func(o option.Option[int]) option.Option[int] { return option.Some(o.OrElse(0) * 2) }
	setter.Update(double)
	setter.Set(10)
	setter.Update(double)
	setter.Update(nil)
	owner.FlushBuild()

	if value.OrElse(0) != 20 {
		t.Errorf("Expected 20, got %v", value)
	}
}

func TestUseState_Clear(t *testing.T) {
	var value option.Option[string]
	var setter Setter[string]
	_, owner := mountHooks(func(ctx BuildContext) {
		value, setter = UseState(ctx, option.Some("x"))
	})

	setter.Clear()
	owner.FlushBuild()

	if value.IsSome() {
		t.Errorf("Expected None after Clear, got %v", value)
	}
}

func TestUseState_InitialIgnoredAfterFirstBuild(t *testing.T) {
	initial := 1
	var value option.Option[int]
	element, owner := mountHooks(func(ctx BuildContext) {
		value, _ = UseState(ctx, option.Some(initial))
	})

	initial = 99
	element.MarkNeedsBuild()
	owner.FlushBuild()

	if value.OrElse(0) != 1 {
		t.Errorf("Expected state cell to keep 1, got %v", value)
	}
}

func TestUseState_SameSetterEveryBuild(t *testing.T) {
	var setters []Setter[int]
	element, owner := mountHooks(func(ctx BuildContext) {
		_, set := UseState(ctx, option.Some(0))
		setters = append(setters, set)
	})

	element.MarkNeedsBuild()
	owner.FlushBuild()

	if len(setters) != 2 || setters[0] != setters[1] {
		t.Error("Expected the same setter on every build")
	}
}

func TestUseState_SetDuringBuildSeenNextBuild(t *testing.T) {
	var seen []int
	_, owner := mountHooks(func(ctx BuildContext) {
		v, set := UseState(ctx, option.Some(0))
		seen = append(seen, v.OrElse(-1))
		if v.OrElse(0) < 2 {
			set.Set(v.OrElse(0) + 1)
		}
	})
	owner.FlushBuild()

	want := []int{0, 1, 2}
	if len(seen) != len(want) {
		t.Fatalf("Expected builds %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Expected builds %v, got %v", want, seen)
		}
	}
}

func TestUseState_IndependentCellsPerElement(t *testing.T) {
	var setters []Setter[int]
	values := map[string]option.Option[int]{}
	build := func(name string) Widget {
		return testStatelessWidget{key: name, buildFn: func(ctx BuildContext) Widget {
			v, set := UseState(ctx, option.Some(0))
			values[name] = v
			setters = append(setters, set)
			return nil
		}}
	}
	owner := NewBuildOwner()
	MountRoot(testContainer{children: []Widget{build("a"), build("b")}}, owner)

	setters[0].Set(7)
	owner.FlushBuild()

	if values["a"].OrElse(0) != 7 || values["b"].OrElse(0) != 0 {
		t.Errorf("Expected a=7 b=0, got a=%v b=%v", values["a"], values["b"])
	}
}

func TestUseState_SetAfterUnmountIsNoop(t *testing.T) {
	var setter Setter[int]
	element, owner := mountHooks(func(ctx BuildContext) {
		_, setter = UseState(ctx, option.Some(0))
	})

	element.Unmount()
	setter.Set(3)

	if owner.NeedsWork() {
		t.Error("Expected no rebuild after unmount")
	}
	if cell := setter.(*StateCell[int]); cell.Pending() != 0 {
		t.Errorf("Expected no pending updates, got %d", cell.Pending())
	}
}

func TestStateCell_ValueAndPending(t *testing.T) {
	cell := newStateCell[int](nil, option.Some(1))
	cell.Set(2)
	cell.Set(3)

	if cell.Pending() != 2 {
		t.Errorf("Expected 2 pending, got %d", cell.Pending())
	}
	if cell.Value().OrElse(0) != 1 {
		t.Errorf("Expected committed value 1, got %v", cell.Value())
	}

	cell.commit()
	if cell.Value().OrElse(0) != 3 || cell.Pending() != 0 {
		t.Errorf("Expected 3 with nothing pending, got %v (%d pending)", cell.Value(), cell.Pending())
	}
}

func recoverHookError(t *testing.T, fn func()) *errors.HookError {
	t.Helper()
	var got *errors.HookError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err, ok := r.(error)
			if !ok || !stderrors.As(err, &got) {
				t.Fatalf("Expected *errors.HookError panic, got %v", r)
			}
		}()
		fn()
	}()
	return got
}

func TestUseState_OutsideBuildPanics(t *testing.T) {
	element, _ := mountHooks(func(BuildContext) {})

	err := recoverHookError(t, func() {
		UseState(element, option.Some(1))
	})
	if err == nil || err.Reason != errors.HookOutsideBuild {
		t.Errorf("Expected HookOutsideBuild, got %v", err)
	}

	err = recoverHookError(t, func() {
		UseState[int](nil, option.None[int]())
	})
	if err == nil || err.Reason != errors.HookOutsideBuild {
		t.Errorf("Expected HookOutsideBuild for nil context, got %v", err)
	}
}

func TestHooks_OrderChangeReported(t *testing.T) {
	handler := installTestHandler(t)
	swap := false
	element, owner := mountHooks(func(ctx BuildContext) {
		if swap {
			UseState(ctx, option.Some("a"))
			UseState(ctx, option.Some(1))
		} else {
			UseState(ctx, option.Some(1))
			UseState(ctx, option.Some("a"))
		}
	})

	swap = true
	element.MarkNeedsBuild()
	owner.FlushBuild()

	if len(handler.buildErrors) != 1 {
		t.Fatalf("Expected 1 build error, got %d", len(handler.buildErrors))
	}
	var hookErr *errors.HookError
	if !stderrors.As(handler.buildErrors[0], &hookErr) {
		t.Fatalf("Expected HookError, got %v", handler.buildErrors[0])
	}
	if hookErr.Reason != errors.HookOrderChanged || hookErr.Index != 0 {
		t.Errorf("Expected order change at 0, got %+v", hookErr)
	}
}

func TestHooks_CountChangeReported(t *testing.T) {
	tests := []struct {
		name  string
		first int
		next  int
	}{
		{"fewer", 2, 1},
		{"more", 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := installTestHandler(t)
			count := tt.first
			element, owner := mountHooks(func(ctx BuildContext) {
				for range count {
					UseState(ctx, option.Some(0))
				}
			})

			count = tt.next
			element.MarkNeedsBuild()
			owner.FlushBuild()

			if len(handler.buildErrors) != 1 {
				t.Fatalf("Expected 1 build error, got %d", len(handler.buildErrors))
			}
			var hookErr *errors.HookError
			if !stderrors.As(handler.buildErrors[0], &hookErr) || hookErr.Reason != errors.HookCountChanged {
				t.Errorf("Expected HookCountChanged, got %v", handler.buildErrors[0])
			}
		})
	}
}

func TestUseDisposable(t *testing.T) {
	created := 0
	var got *mockDisposable
	element, owner := mountHooks(func(ctx BuildContext) {
		got = UseDisposable(ctx, func() *mockDisposable {
			created++
			return &mockDisposable{}
		})
	})

	element.MarkNeedsBuild()
	owner.FlushBuild()

	if created != 1 {
		t.Errorf("Expected 1 creation, got %d", created)
	}
	if got.disposed != 0 {
		t.Error("Disposable should not be disposed while mounted")
	}

	element.Unmount()
	if got.disposed != 1 {
		t.Errorf("Expected 1 dispose on unmount, got %d", got.disposed)
	}
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed != 0 {
		t.Error("Controller should not be disposed initially")
	}

	base.Dispose()

	if controller.disposed != 1 {
		t.Error("Controller should be disposed when StateBase is disposed")
	}
}

func TestUseListenable(t *testing.T) {
	base := &StateBase{}
	notifier := NewNotifier()

	UseListenable(base, notifier)

	if notifier.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", notifier.ListenerCount())
	}

	notifier.Notify()
	base.Dispose()

	if notifier.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after dispose, got %d", notifier.ListenerCount())
	}
}

func TestUseListenable_RebuildsState(t *testing.T) {
	notifier := NewNotifier()
	builds := 0
	owner := NewBuildOwner()
	MountRoot(testStatefulWidget{createStateFn: func() State {
		s := &listeningState{notifier: notifier}
		s.onBuild = func() { builds++ }
		return s
	}}, owner)

	notifier.Notify()
	owner.FlushBuild()

	if builds != 2 {
		t.Errorf("Expected 2 builds, got %d", builds)
	}
}

type listeningState struct {
	StateBase
	notifier *Notifier
	onBuild  func()
}

func (s *listeningState) InitState() {
	UseListenable(s, s.notifier)
}

func (s *listeningState) Build(BuildContext) Widget {
	s.onBuild()
	return nil
}

func TestStateBase_DisposersRunInReverse(t *testing.T) {
	base := &StateBase{}
	var order []int
	base.OnDispose(func() { order = append(order, 1) })
	unregister := base.OnDispose(func() { order = append(order, 2) })
	base.OnDispose(func() { order = append(order, 3) })
	unregister()

	base.Dispose()
	base.Dispose()

	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("Expected [3 1], got %v", order)
	}
	if !base.IsDisposed() {
		t.Error("Expected IsDisposed after Dispose")
	}

	ran := false
	base.OnDispose(func() { ran = true })
	if !ran {
		t.Error("Expected cleanup registered after disposal to run immediately")
	}
}

func TestStateBase_SetStateAfterDisposeIsNoop(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	called := false
	base.SetState(func() { called = true })
	if called {
		t.Error("SetState should be a no-op after disposal")
	}
}
