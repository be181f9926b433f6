package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beccau/fix-mode/internal/decoder"
)

func TestFormatResolved(t *testing.T) {
	rf := decoder.ResolvedField{
		Tag:       "35",
		TagName:   "MsgType",
		Value:     "D",
		ValueName: "NewOrderSingle",
	}
	assert.Equal(t, "> MsgType[35] = NewOrderSingle[D]", decoder.Format(rf))
}

func TestFormatMissingNames(t *testing.T) {
	rf := decoder.ResolvedField{Tag: "9999", Value: "5"}
	assert.Equal(t, "> [9999] = [5]", decoder.Format(rf))
}

func TestFormatMessagePreservesOrder(t *testing.T) {
	fields := []decoder.ResolvedField{
		{Tag: "8", TagName: "BeginString", Value: "FIX.4.4"},
		{Tag: "35", TagName: "MsgType", Value: "D", ValueName: "NewOrderSingle"},
		{Tag: "54", TagName: "Side", Value: "2", ValueName: "Sell"},
	}
	lines := decoder.FormatMessage(fields)
	require.Len(t, lines, 3)
	assert.Equal(t, "> BeginString[8] = [FIX.4.4]", lines[0])
	assert.Equal(t, "> MsgType[35] = NewOrderSingle[D]", lines[1])
	assert.Equal(t, "> Side[54] = Sell[2]", lines[2])
}

func TestDecodeLinePipeline(t *testing.T) {
	lines := decoder.DecodeLine("8=FIX.4.4|35=D|54=2|", builtinStore())
	require.Len(t, lines, 3)
	assert.Equal(t, "> MsgType[35] = NewOrderSingle[D]", lines[1])
	assert.Equal(t, "> Side[54] = Sell[2]", lines[2])
}

func TestDecodeLineNonMessage(t *testing.T) {
	lines := decoder.DecodeLine("connection established", builtinStore())
	assert.Empty(t, lines)
}
