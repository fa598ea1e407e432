package adapt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_OverlayWins(t *testing.T) {
	base := Fields{"value": 1, "set": "base-set"}
	overlay := Fields{"value": 2, "extra": true}

	merged := Merge(base, overlay)

	assert.Equal(t, Fields{"value": 2, "set": "base-set", "extra": true}, merged)
	assert.Equal(t, 1, base["value"], "base must not be modified")
	assert.Len(t, overlay, 2, "overlay must not be modified")
}

func TestMerge_Nil(t *testing.T) {
	assert.Equal(t, Fields{"a": 1}, Merge(Fields{"a": 1}, nil))
	assert.Equal(t, Fields{"a": 1}, Merge(nil, Fields{"a": 1}))
	assert.Empty(t, Merge(nil, nil))
}

type inner struct {
	Shared string
	Deep   int
}

type tagged struct {
	inner
	Shared  string
	Renamed int    `adapt:"custom"`
	Hidden  string `adapt:"-"`
	private int
	URL     string
}

func TestFieldsOf_Struct(t *testing.T) {
	fields := FieldsOf(tagged{
		inner:   inner{Shared: "inner", Deep: 3},
		Shared:  "outer",
		Renamed: 5,
		Hidden:  "x",
		private: 9,
		URL:     "u",
	})

	assert.Equal(t, Fields{
		"shared": "outer",
		"deep":   3,
		"custom": 5,
		"uRL":    "u",
	}, fields)
}

func TestFieldsOf_Pointer(t *testing.T) {
	type small struct{ A int }
	assert.Equal(t, Fields{"a": 1}, FieldsOf(&small{A: 1}))

	var nilPtr *small
	assert.Empty(t, FieldsOf(nilPtr))
}

func TestFieldsOf_Maps(t *testing.T) {
	src := map[string]any{"k": "v"}
	fields := FieldsOf(src)
	assert.Equal(t, Fields{"k": "v"}, fields)

	fields["k"] = "changed"
	assert.Equal(t, "v", src["k"], "FieldsOf must copy maps")

	assert.Equal(t, Fields{"x": 1}, FieldsOf(Fields{"x": 1}))
}

func TestFieldsOf_NonStruct(t *testing.T) {
	assert.Empty(t, FieldsOf(nil))
	assert.Empty(t, FieldsOf(42))
	assert.Empty(t, FieldsOf("text"))
	assert.Empty(t, FieldsOf(struct{}{}))
}

type Exported struct {
	Promoted string
}

type withEmbeddedPointer struct {
	*Exported
	Own int
}

func TestFieldsOf_EmbeddedPointer(t *testing.T) {
	assert.Equal(t, Fields{"promoted": "p", "own": 1},
		FieldsOf(withEmbeddedPointer{Exported: &Exported{Promoted: "p"}, Own: 1}))
	assert.Equal(t, Fields{"own": 1}, FieldsOf(withEmbeddedPointer{Own: 1}))
}

type taggedEmbed struct {
	Exported `adapt:"nested"`
}

func TestFieldsOf_TaggedEmbedIsNotFlattened(t *testing.T) {
	fields := FieldsOf(taggedEmbed{Exported{Promoted: "p"}})
	assert.Equal(t, Fields{"nested": Exported{Promoted: "p"}}, fields)
}

func TestFields_Keys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Fields{"c": 1, "a": 2, "b": 3}.Keys())
	assert.Empty(t, Fields{}.Keys())
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "isDark", lowerFirst("IsDark"))
	assert.Equal(t, "value", lowerFirst("Value"))
	assert.Equal(t, "", lowerFirst(""))
	assert.Equal(t, "éclair", lowerFirst("Éclair"))
}
