package core

import (
	"testing"

	"github.com/go-drift/adapt/pkg/option"
)

type testStatelessBaseWidget struct {
	StatelessBase
	label string
}

func (w testStatelessBaseWidget) Build(ctx BuildContext) Widget { return nil }

type testStatefulBaseWidget struct {
	StatefulBase
}

func (testStatefulBaseWidget) CreateState() State { return &testState{} }

type keyedStatelessBaseWidget struct {
	StatelessBase
	myKey string
}

func (w keyedStatelessBaseWidget) Build(ctx BuildContext) Widget { return nil }
func (w keyedStatelessBaseWidget) Key() any                      { return w.myKey }

func TestStatelessBase_SatisfiesInterface(t *testing.T) {
	var w any = testStatelessBaseWidget{label: "hello"}
	if _, ok := w.(StatelessWidget); !ok {
		t.Error("widget embedding StatelessBase should satisfy StatelessWidget")
	}
	if (testStatelessBaseWidget{}).Key() != nil {
		t.Error("expected nil key")
	}
	if (keyedStatelessBaseWidget{myKey: "custom"}).Key() != "custom" {
		t.Error("expected key override to win")
	}
}

func TestStatelessBase_MountUsesOuterWidget(t *testing.T) {
	w := testStatelessBaseWidget{label: "hello"}
	element := MountRoot(w, NewBuildOwner())

	if _, ok := element.(*StatelessElement); !ok {
		t.Fatalf("expected *StatelessElement, got %T", element)
	}
	if got := element.Widget().(testStatelessBaseWidget).label; got != "hello" {
		t.Errorf("expected mounted widget label 'hello', got %q", got)
	}
}

func TestStatefulBase_Mount(t *testing.T) {
	element := MountRoot(testStatefulBaseWidget{}, NewBuildOwner())

	stateful, ok := element.(*StatefulElement)
	if !ok {
		t.Fatalf("expected *StatefulElement, got %T", element)
	}
	if _, ok := stateful.State().(*testState); !ok {
		t.Errorf("expected *testState, got %T", stateful.State())
	}
}

func TestContainerBase_Mount(t *testing.T) {
	element := MountRoot(testContainer{}, NewBuildOwner())
	if _, ok := element.(*ContainerElement); !ok {
		t.Fatalf("expected *ContainerElement, got %T", element)
	}
}

func TestStateful_InitAndSetState(t *testing.T) {
	var setStateFn func(func(int) int)
	var seen []int

	owner := NewBuildOwner()
	MountRoot(Stateful(
		func() int { return 7 },
		func(state int, ctx BuildContext, setState func(func(int) int)) Widget {
			seen = append(seen, state)
			setStateFn = setState
			return nil
		},
	), owner)

	setStateFn(func(c int) int { return c + 1 })
	owner.FlushBuild()

	if len(seen) != 2 || seen[0] != 7 || seen[1] != 8 {
		t.Errorf("expected builds [7 8], got %v", seen)
	}
}

func TestStateful_HooksWorkInsideStatefulBuild(t *testing.T) {
	owner := NewBuildOwner()
	var hooked []int
	var bump func(func(int) int)

	MountRoot(Stateful(
		func() int { return 0 },
		func(state int, ctx BuildContext, setState func(func(int) int)) Widget {
			v, _ := UseState(ctx, option.Some(100))
			hooked = append(hooked, v.OrElse(0)+state)
			bump = setState
			return nil
		},
	), owner)

	bump(func(c int) int { return c + 1 })
	owner.FlushBuild()

	if len(hooked) != 2 || hooked[1] != 101 {
		t.Errorf("expected [100 101], got %v", hooked)
	}
}
