// Package testing provides a widget testing framework for adapted hooks.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := adapttest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    // Find elements
//	    button := tester.Find(adapttest.ByText("Submit")).First()
//
//	    // Tap runs the button's OnTap and pumps a frame
//	    tester.Tap(adapttest.ByText("Submit"))
//
//	    // Assert state
//	    if !tester.Find(adapttest.ByText("Submitted")).Exists() {
//	        t.Error("expected 'Submitted' text")
//	    }
//	}
//
// # Hook Testing
//
// RenderHook mounts a hook call in a throwaway element:
//
//	h := adapttest.RenderHook(t, func(ctx core.BuildContext) adapt.Result[int, struct{}] {
//	    return adapt.Basic[int]()(ctx, 5)
//	})
//	h.Act(func() { h.Current().Set.Set(6) })
//	// h.Current().Value is Some(6)
//
// # Snapshot Testing
//
// Capture and compare element tree snapshots stored as YAML:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.yaml")
//
// Update snapshots with:
//
//	UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import adapttest "github.com/go-drift/adapt/pkg/testing"
package testing
