// Package core provides the widget and element framework and its hooks.
//
// Widgets are immutable descriptions of the UI. Mounting a widget creates
// an Element; a mounted element is a component instance, and it is where
// hook state lives.
//
// # Hooks
//
// Hooks are functions called from Build with the build context. Each
// element keeps an ordered list of hook slots, and every build claims the
// slots in call order:
//
//	func (w Toggle) Build(ctx core.BuildContext) core.Widget {
//	    on, set := core.UseState(ctx, option.Some(false))
//	    return widgets.Button{
//	        Label: fmt.Sprint(on.OrElse(false)),
//	        OnTap: func() { set.Set(!on.OrElse(false)) },
//	    }
//	}
//
// The rules follow from slot ordering: call hooks unconditionally, in the
// same order on every build, and only while the element is building.
// Breaking a rule panics with an *errors.HookError, which the build
// recovers and reports as an *errors.BuildError.
//
// Setters never change state immediately. Set, Update and Clear queue the
// change and mark the element dirty; BuildOwner.FlushBuild rebuilds it and
// UseState applies the queue at the start of that build.
//
// # Stateful Widgets
//
// For widgets with lifecycle needs, embed StateBase in a State:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
// UseController and UseListenable tie resources and subscriptions to the
// state's disposal.
//
// # Threading
//
// The tree, hook cells and StateBase are owned by the UI thread. Only
// BuildOwner.ScheduleBuild and Notifier are safe to call from other
// goroutines.
package core
