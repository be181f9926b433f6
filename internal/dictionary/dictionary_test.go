package dictionary_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beccau/fix-mode/internal/dictionary"
	"github.com/beccau/fix-mode/internal/schema"
)

const sampleXML = `<fix major="4" minor="2">
  <fields>
    <field number="54" name="Side">
      <value enum="1" description="Buy"/>
      <value enum="2" description="Sell"/>
    </field>
    <field number="55" name="Symbol"/>
  </fields>
</fix>`

func sampleDictionary(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	doc, err := schema.Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)
	return dictionary.FromSchema(doc)
}

func TestFromSchemaIndexes(t *testing.T) {
	d := sampleDictionary(t)
	assert.Equal(t, 2, d.Size())

	side, ok := d.Field("54")
	require.True(t, ok)
	assert.Equal(t, "Side", side.Name)

	desc, ok := side.EnumDescription("2")
	require.True(t, ok)
	assert.Equal(t, "Sell", desc)
}

func TestFieldUnknownNumber(t *testing.T) {
	d := sampleDictionary(t)
	_, ok := d.Field("9999")
	assert.False(t, ok)
}

func TestEnumLookupScopedToField(t *testing.T) {
	d := sampleDictionary(t)
	symbol, ok := d.Field("55")
	require.True(t, ok)

	// "2" is a valid Side enum but Symbol is free-form
	_, ok = symbol.EnumDescription("2")
	assert.False(t, ok)
}

func TestEnumUnknownValue(t *testing.T) {
	d := sampleDictionary(t)
	side, ok := d.Field("54")
	require.True(t, ok)

	_, ok = side.EnumDescription("9")
	assert.False(t, ok)
}

func TestStoreLookup(t *testing.T) {
	s := dictionary.NewStore()
	s.Add("FIX.4.2", sampleDictionary(t))

	d, ok := s.Lookup("FIX.4.2")
	require.True(t, ok)
	assert.Equal(t, 2, d.Size())

	_, ok = s.Lookup("FIX.4.4")
	assert.False(t, ok)
}

func TestLoadPartialStore(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "FIX.4.2.xml")
	bad := filepath.Join(dir, "FIX.4.4.xml")
	require.NoError(t, os.WriteFile(good, []byte(sampleXML), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("<fix><fields>"), 0o644))

	s := dictionary.Load(map[string]string{
		"FIX.4.2": good,
		"FIX.4.4": bad,
		"FIX.5.0": filepath.Join(dir, "missing.xml"),
	})

	_, ok := s.Lookup("FIX.4.2")
	assert.True(t, ok, "good dictionary should load")
	_, ok = s.Lookup("FIX.4.4")
	assert.False(t, ok, "malformed dictionary should be absent")
	_, ok = s.Lookup("FIX.5.0")
	assert.False(t, ok, "missing file should be absent")
	assert.Equal(t, []string{"FIX.4.2"}, s.Versions())
}

func TestBuiltin(t *testing.T) {
	d := dictionary.Builtin()

	msgType, ok := d.Field("35")
	require.True(t, ok)
	assert.Equal(t, "MsgType", msgType.Name)

	desc, ok := msgType.EnumDescription("D")
	require.True(t, ok)
	assert.Equal(t, "NewOrderSingle", desc)

	checksum, ok := d.Field("10")
	require.True(t, ok)
	_, ok = checksum.EnumDescription("000")
	assert.False(t, ok)
}
