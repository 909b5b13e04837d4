package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "4", want: 4},
		{input: " 4 ", want: 4},
		{input: "\t12\n", want: 12},
		{input: "0", want: 0},
	}
	for _, tt := range tests {
		n, err := ParseChoice(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, n)
	}
}

func TestParseChoice_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "4a", "a4", "1 2", "-3", "+3", "1.5"} {
		_, err := ParseChoice(input)
		assert.ErrorIs(t, err, ErrNotANumber, "input %q", input)
	}
}

func TestParseQuantity(t *testing.T) {
	n, err := ParseQuantity(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = ParseQuantity("0")
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = ParseQuantity("-3")
	assert.ErrorIs(t, err, ErrNotANumber)

	_, err = ParseQuantity("abc")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestProductID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "a", want: "A"},
		{input: "J", want: "J"},
		{input: "  b ", want: "B"},
	}
	for _, tt := range tests {
		id, ok := ProductID(tt.input)
		require.True(t, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, id)
	}
}

func TestProductID_Invalid(t *testing.T) {
	for _, input := range []string{"", "  ", "ab", "1", "!", "a b"} {
		_, ok := ProductID(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestIsYes(t *testing.T) {
	assert.True(t, IsYes("Y"))
	assert.True(t, IsYes("y"))
	assert.True(t, IsYes(" yes "))

	assert.False(t, IsYes(""))
	assert.False(t, IsYes("   "))
	assert.False(t, IsYes("N"))
	assert.False(t, IsYes("no"))
	assert.False(t, IsYes("ok"))
}
