// Package decoder turns raw FIX log lines into annotated, human-readable
// field listings using the loaded dictionaries.
package decoder

import (
	"strings"
)

const (
	// DelimiterSOH is the control character FIX engines write between fields.
	DelimiterSOH = "\x01"
	// DelimiterPipe is the visible stand-in many log pipelines substitute
	// for SOH.
	DelimiterPipe = "|"
)

// RawPair is one tag=value token in source order. Tags may repeat within a
// line; every occurrence is kept.
type RawPair struct {
	Tag   string
	Value string
}

// DetectDelimiter returns the field delimiter present in line, checking SOH
// before pipe. The second return is false when neither occurs.
func DetectDelimiter(line string) (string, bool) {
	if strings.Contains(line, DelimiterSOH) {
		return DelimiterSOH, true
	}
	if strings.Contains(line, DelimiterPipe) {
		return DelimiterPipe, true
	}
	return "", false
}

// Tokenize splits a raw log line into ordered tag/value pairs. A line with
// no recognized delimiter is not a message and yields no pairs. Empty
// segments and segments without an equals sign are skipped; values keep any
// equals signs past the first.
func Tokenize(line string) []RawPair {
	delim, ok := DetectDelimiter(line)
	if !ok {
		return nil
	}
	var pairs []RawPair
	for _, segment := range strings.Split(line, delim) {
		if segment == "" {
			continue
		}
		tag, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		pairs = append(pairs, RawPair{Tag: tag, Value: value})
	}
	return pairs
}
