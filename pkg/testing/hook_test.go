package testing

import (
	"testing"

	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/option"
)

type counterHook struct {
	value option.Option[int]
	set   core.Setter[int]
}

func useCounterHook(ctx core.BuildContext) counterHook {
	v, set := core.UseState(ctx, option.Some(1))
	return counterHook{value: v, set: set}
}

func TestRenderHook_InitialBuild(t *testing.T) {
	h := RenderHook(t, useCounterHook)

	if got := h.Current().value.OrElse(0); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if h.Builds() != 1 {
		t.Errorf("expected 1 build, got %d", h.Builds())
	}
}

func TestRenderHook_Act(t *testing.T) {
	h := RenderHook(t, useCounterHook)

	h.Act(func() { h.Current().set.Set(5) })

	if got := h.Current().value.OrElse(0); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
	if h.Builds() != 2 {
		t.Errorf("expected 2 builds, got %d", h.Builds())
	}
}

func TestRenderHook_Rerender(t *testing.T) {
	h := RenderHook(t, useCounterHook)
	h.Rerender()
	h.Rerender()

	if h.Builds() != 3 {
		t.Errorf("expected 3 builds, got %d", h.Builds())
	}
	if got := h.Current().value.OrElse(0); got != 1 {
		t.Errorf("expected value to stay 1, got %d", got)
	}
}

func TestRenderHook_RerenderWithKeepsState(t *testing.T) {
	h := RenderHook(t, useCounterHook)
	h.Act(func() { h.Current().set.Set(9) })

	h.RerenderWith(func(ctx core.BuildContext) counterHook {
		v, set := core.UseState(ctx, option.Some(100))
		return counterHook{value: v, set: set}
	})

	if got := h.Current().value.OrElse(0); got != 9 {
		t.Errorf("expected state 9 to survive, got %d", got)
	}
}

func TestRenderHook_UnmountDisablesSetter(t *testing.T) {
	h := RenderHook(t, useCounterHook)
	set := h.Current().set
	h.Unmount()

	set.Set(3)
	h.Tester().Pump()

	if h.Builds() != 1 {
		t.Errorf("expected no build after unmount, got %d builds", h.Builds())
	}
	if cell, ok := set.(*core.StateCell[int]); ok && cell.Pending() != 0 {
		t.Errorf("expected no pending updates after unmount, got %d", cell.Pending())
	}
}

func TestRenderHook_HookOrderError(t *testing.T) {
	h := RenderHook(t, useCounterHook)

	h.RerenderWith(func(ctx core.BuildContext) counterHook {
		core.UseState(ctx, option.Some("wrong type"))
		return counterHook{}
	})

	if len(h.Tester().BuildErrors()) != 1 {
		t.Fatalf("expected 1 build error, got %d", len(h.Tester().BuildErrors()))
	}
	if h.Builds() != 1 {
		t.Errorf("failed build must not count, got %d builds", h.Builds())
	}
}
