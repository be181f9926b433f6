package decoder

import (
	"github.com/beccau/fix-mode/internal/dictionary"
)

// VersionTag is the BeginString tag carrying the protocol version of a
// message.
const VersionTag = "8"

// ResolvedField annotates one raw pair with the names the dictionary knows.
// An empty TagName or ValueName means the lookup missed; the raw tag and
// value are always preserved for cross-reference.
type ResolvedField struct {
	Tag       string
	TagName   string
	Value     string
	ValueName string
}

// ResolveVersion scans pairs for the version tag and returns its value, or
// false when the tag is absent.
func ResolveVersion(pairs []RawPair) (string, bool) {
	for _, p := range pairs {
		if p.Tag == VersionTag {
			return p.Value, true
		}
	}
	return "", false
}

// Decode resolves every pair against the store. The result has the same
// length and order as pairs: a missed version, field, or enum lookup leaves
// the corresponding name empty rather than dropping the pair.
func Decode(pairs []RawPair, store *dictionary.Store) []ResolvedField {
	var dict *dictionary.Dictionary
	if version, ok := ResolveVersion(pairs); ok {
		dict, _ = store.Lookup(version)
	}

	resolved := make([]ResolvedField, 0, len(pairs))
	for _, p := range pairs {
		rf := ResolvedField{Tag: p.Tag, Value: p.Value}
		if field, ok := dict.Field(p.Tag); ok {
			rf.TagName = field.Name
			if desc, ok := field.EnumDescription(p.Value); ok {
				rf.ValueName = desc
			}
		}
		resolved = append(resolved, rf)
	}
	return resolved
}
