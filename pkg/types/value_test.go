package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "text passes through", v: TextValue("hello"), want: "hello"},
		{name: "integer-valued number has no decimal point", v: NumberValue(10), want: "10"},
		{name: "fractional number keeps digits", v: NumberValue(2.5), want: "2.5"},
		{name: "negative number", v: NumberValue(-3), want: "-3"},
		{name: "sentinel is plain text", v: TextValue(Sentinel), want: "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestValueIsSentinel(t *testing.T) {
	assert.True(t, TextValue(Sentinel).IsSentinel())
	assert.False(t, TextValue("N/B").IsSentinel())
	assert.False(t, TextValue(RawSentinel).IsSentinel(), "raw sentinel is rewritten before storage, not special afterward")
	assert.False(t, NumberValue(0).IsSentinel())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, TextValue("x").Equal(TextValue("x")))
	assert.False(t, TextValue("x").Equal(TextValue("y")))
	assert.True(t, NumberValue(1.5).Equal(NumberValue(1.5)))
	assert.False(t, NumberValue(1).Equal(TextValue("1")), "kind participates in equality")
}
