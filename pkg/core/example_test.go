package core_test

import (
	"fmt"

	"github.com/go-drift/adapt/pkg/core"
	"github.com/go-drift/adapt/pkg/option"
	"github.com/go-drift/adapt/pkg/widgets"
)

// This example shows UseState from a function component. Updates queued
// by the setter apply, in order, on the element's next build.
func ExampleUseState() {
	var set core.Setter[int]
	owner := core.NewBuildOwner()
	root := core.MountRoot(widgets.Builder{Fn: func(ctx core.BuildContext) core.Widget {
		count, setter := core.UseState(ctx, option.Some(1))
		set = setter
		fmt.Println("build:", count)
		return nil
	}}, owner)
	defer root.Unmount()

	set.Set(10)
	set.Update(func(c option.Option[int]) option.Option[int] {
		return option.Some(c.OrElse(0) + 1)
	})
	owner.FlushBuild()

	set.Clear()
	owner.FlushBuild()

	// Output:
	// build: Some(1)
	// build: Some(11)
	// build: None
}

// This example shows the Notifier type for event broadcasting.
func ExampleNotifier() {
	refresh := core.NewNotifier()

	unsub := refresh.AddListener(func() {
		fmt.Println("Refresh triggered!")
	})

	refresh.Notify()
	unsub()
	refresh.Notify()

	fmt.Println("listeners:", refresh.ListenerCount())

	// Output:
	// Refresh triggered!
	// listeners: 0
}
