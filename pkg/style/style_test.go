package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeCodes(t *testing.T) {
	tests := []struct {
		keyword string
		want    string
	}{
		{"bold", "1"},
		{"faint", "2"},
		{"italic", "3"},
		{"underline", "4"},
		{"blink", "5"},
		{"fast-blink", "6"},
		{"fblink", "6"},
		{"reverse", "7"},
		{"hide", "8"},
		{"strike", "9"},
		{"normal", "10"},
		{"double-underline", "21"},
		{"dunderline", "21"},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			a, ok := LookupAttribute(tt.keyword)
			assert.True(t, ok)
			assert.Equal(t, tt.want, a.Code())
		})
	}
}

func TestAttributeString(t *testing.T) {
	assert.Equal(t, "double-underline", DoubleUnderline.String())
	assert.Equal(t, "fast-blink", FastBlink.String())
	assert.Equal(t, "attribute(42)", Attribute(42).String())
}

func TestKeywords(t *testing.T) {
	kw := Keywords()
	assert.Len(t, kw, len(attributeNames))
	assert.Equal(t, "blink", kw[0])
	assert.IsIncreasing(t, kw)
}

func TestLookupAttributeUnknown(t *testing.T) {
	_, ok := LookupAttribute("Bold")
	assert.False(t, ok, "keywords are matched after lower-casing by the resolver")

	_, ok = LookupAttribute("red")
	assert.False(t, ok)
}
