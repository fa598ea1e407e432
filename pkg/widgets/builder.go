package widgets

import "github.com/go-drift/adapt/pkg/core"

// Builder is a function component: Fn runs on every build of the element
// and may call hooks.
//
//	Builder{Fn: func(ctx core.BuildContext) core.Widget {
//	    count := adapters.UseCounter(ctx, 0)
//	    return Button{Label: strconv.Itoa(count.Ext.Value), OnTap: count.Ext.Increment}
//	}}
//
// A new Builder with the same key at the same position reuses the element,
// so hook state survives parent rebuilds.
type Builder struct {
	// Fn builds the child. A nil Fn builds nothing.
	Fn func(ctx core.BuildContext) core.Widget
	// KeyValue identifies the widget for finders and element reuse.
	KeyValue any
}

func (b Builder) CreateElement() core.Element {
	return core.NewStatelessElement(b, nil)
}

func (b Builder) Key() any {
	return b.KeyValue
}

func (b Builder) Build(ctx core.BuildContext) core.Widget {
	if b.Fn == nil {
		return nil
	}
	return b.Fn(ctx)
}
