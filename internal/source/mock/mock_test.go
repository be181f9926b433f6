package mock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beccau/fix-mode/internal/decoder"
	"github.com/beccau/fix-mode/internal/dictionary"
	"github.com/beccau/fix-mode/internal/source/mock"
)

func TestMockEmitsDecodableTraffic(t *testing.T) {
	src := mock.New()
	require.NoError(t, src.Start(context.Background()))
	defer src.Stop()

	assert.True(t, src.Connected())

	// first message is emitted synchronously on Start
	lines, err := src.Read()
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	pairs := decoder.Tokenize(lines[0])
	require.NotEmpty(t, pairs)

	version, ok := decoder.ResolveVersion(pairs)
	require.True(t, ok)
	assert.Equal(t, dictionary.BuiltinVersion, version)

	store := dictionary.NewStore()
	store.Add(dictionary.BuiltinVersion, dictionary.Builtin())
	resolved := decoder.Decode(pairs, store)
	require.Len(t, resolved, len(pairs))

	// every generated message carries a resolvable MsgType
	var sawMsgType bool
	for _, rf := range resolved {
		if rf.Tag == "35" {
			sawMsgType = true
			assert.Equal(t, "MsgType", rf.TagName)
			assert.NotEmpty(t, rf.ValueName)
		}
	}
	assert.True(t, sawMsgType)
}

func TestMockStartIdempotent(t *testing.T) {
	src := mock.New()
	require.NoError(t, src.Start(context.Background()))
	require.NoError(t, src.Start(context.Background()))
	defer src.Stop()

	lines, err := src.Read()
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestMockStop(t *testing.T) {
	src := mock.New()
	require.NoError(t, src.Start(context.Background()))
	src.Stop()
	assert.False(t, src.Connected())
}
