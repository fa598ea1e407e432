package widgets

import "github.com/go-drift/adapt/pkg/core"

// Column lays out children vertically from top to bottom.
//
//	Column{ChildrenWidgets: []core.Widget{
//	    Text{Content: "Title"},
//	    Button{Label: "OK", OnTap: onOK},
//	}}
//
// Children are matched to the previous build's children by position.
// Give children a KeyValue when their order can change.
type Column struct {
	// ChildrenWidgets are the widgets to display, top first.
	ChildrenWidgets []core.Widget
	// KeyValue identifies the widget for finders and element reuse.
	KeyValue any
}

// ColumnOf creates a column with the given children.
func ColumnOf(children ...core.Widget) Column {
	return Column{ChildrenWidgets: children}
}

func (c Column) CreateElement() core.Element {
	return core.NewContainerElement(c, nil)
}

func (c Column) Key() any {
	return c.KeyValue
}

// ChildWidgets returns the non-nil children.
func (c Column) ChildWidgets() []core.Widget {
	children := make([]core.Widget, 0, len(c.ChildrenWidgets))
	for _, child := range c.ChildrenWidgets {
		if child != nil {
			children = append(children, child)
		}
	}
	return children
}
