package core

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-drift/adapt/pkg/errors"
)

// MaxBuildPasses bounds the passes of one FlushBuild. Elements that are
// still dirty after this many passes stay queued for the next flush.
const MaxBuildPasses = 50

// BuildOwner tracks dirty elements that need rebuilding.
type BuildOwner struct {
	dirty    []Element
	dirtySet map[Element]bool
	mu       sync.Mutex

	// OnNeedsFrame is called when a new element is scheduled for rebuild,
	// signalling the host that a frame should be produced.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{}
}

// ScheduleBuild marks an element as needing rebuild.
func (b *BuildOwner) ScheduleBuild(element Element) {
	added := func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.dirtySet[element] {
			return false
		}
		if b.dirtySet == nil {
			b.dirtySet = make(map[Element]bool)
		}
		b.dirtySet[element] = true
		b.dirty = append(b.dirty, element)
		return true
	}()

	if added && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// NeedsWork returns true if there are dirty elements.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.dirty) > 0
}

// FlushBuild rebuilds all dirty elements in depth order, repeating while
// builds dirty further elements.
func (b *BuildOwner) FlushBuild() {
	for pass := 0; ; pass++ {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			return
		}
		if pass == MaxBuildPasses {
			remaining := len(b.dirty)
			b.mu.Unlock()
			errors.Report(&errors.Error{
				Op:   "core.FlushBuild",
				Kind: errors.KindBuild,
				Err:  fmt.Errorf("%d elements still dirty after %d build passes; a build is probably setting state unconditionally", remaining, MaxBuildPasses),
			})
			return
		}

		slices.SortFunc(b.dirty, func(a, b Element) int {
			return a.Depth() - b.Depth()
		})

		dirty := b.dirty
		b.dirty = nil
		clear(b.dirtySet)
		b.mu.Unlock()

		for _, element := range dirty {
			if mountable, ok := element.(interface{ isMounted() bool }); ok && !mountable.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
}
