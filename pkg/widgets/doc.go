// Package widgets provides the widgets used to compose adapted-hook UIs.
//
// Widgets are plain structs. Leaf widgets (Text, Button) carry data for a
// renderer; Column and Surface arrange children; Builder runs a build
// function, which is where hooks are called:
//
//	widgets.Builder{Fn: func(ctx core.BuildContext) core.Widget {
//	    mode := adapters.UseDarkMode(ctx)
//	    return widgets.Surface{
//	        Brightness: mode.Ext.Brightness,
//	        Child: widgets.Column{ChildrenWidgets: []core.Widget{
//	            widgets.Text{Content: "Mode: " + mode.Ext.Value},
//	            widgets.Button{Label: "Toggle", OnTap: mode.Ext.Toggle, KeyValue: "toggle"},
//	        }},
//	    }
//	}}
//
// Widgets are constructed with struct literals. WithX methods return
// copies; they never mutate the receiver.
package widgets
