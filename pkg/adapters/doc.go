// Package adapters holds ready-made adapters for adapt.Create and the
// hooks built from them.
//
//	func (p Page) Build(ctx core.BuildContext) core.Widget {
//	    mode := adapters.UseDarkMode(ctx)
//	    count := adapters.UseCounter(ctx, 0)
//	    ...
//	}
package adapters
