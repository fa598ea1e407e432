package core

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement returns the element that will host this widget.
	CreateElement() Element
	// Key identifies the widget among its siblings. Nil means unkeyed.
	Key() any
}

// StatelessWidget builds its subtree from its own fields and from hooks.
// Hook calls made inside Build are bound to the hosting element.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a long-lived State object.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// ParentWidget hosts a fixed list of child widgets without building.
// Nil entries in ChildWidgets are skipped.
type ParentWidget interface {
	Widget
	ChildWidgets() []Widget
}

// State holds mutable data for a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// Element is a widget mounted at a location in the tree. A mounted
// element is the component instance that hook state belongs to.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	Depth() int
}

// BuildContext is passed to Build and to hooks.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
}

// Disposable is implemented by resources released on unmount.
type Disposable interface {
	Dispose()
}
