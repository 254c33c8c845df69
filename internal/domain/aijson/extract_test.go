package aijson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractFencedBlock(t *testing.T) {
	raw := "blah ```json {\"a\":1} ``` trailing"
	got, ok := Extract(raw)
	require.True(t, ok)
	require.Equal(t, `{"a":1}`, got)
}

func TestExtractPlainObject(t *testing.T) {
	raw := "Here you go:\n{\"destination\":\"Paris\"}\nEnjoy!"
	got, ok := Extract(raw)
	require.True(t, ok)
	require.Equal(t, `{"destination":"Paris"}`, got)
}

func TestExtractNoBraces(t *testing.T) {
	_, ok := Extract("no json here at all")
	require.False(t, ok)
}

func TestExtractEmptyInput(t *testing.T) {
	_, ok := Extract("")
	require.False(t, ok)
}

func TestExtractDoesNotBalanceBraces(t *testing.T) {
	got, ok := Extract("{a}{b}")
	require.True(t, ok)
	require.Equal(t, "{a}{b}", got)
}

func TestExtractClosingBeforeOpening(t *testing.T) {
	_, ok := Extract("} nothing {")
	require.False(t, ok)
}

func TestExtractFenceWithoutClosingFence(t *testing.T) {
	got, ok := Extract("```json\n{\"a\":1}")
	require.True(t, ok)
	require.Equal(t, `{"a":1}`, got)
}
