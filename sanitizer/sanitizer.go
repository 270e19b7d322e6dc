// FILE: tidelock/plog/sanitizer/sanitizer.go

// Package sanitizer provides a composable interface for sanitizing record
// content based on configurable rules using bitwise filter flags and
// transforms. Its primary job in this module is structural: the record marker
// and bare control characters are hex-encoded so no line of a record body can
// ever begin with the marker the truncator realigns to.
package sanitizer

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker mirrors the record-start byte used by the log wire format. It is
// duplicated here so the package stays free of upward imports.
const Marker rune = 0x0B

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Runes not classified as printable by strconv.IsPrint
	FilterBareControl                     // Control characters except '\n' and '\t'
	FilterRecordMarker                    // The record-start marker byte
	FilterWhitespace                      // Whitespace characters (unicode.IsSpace)
)

// Transform flags for character transformation
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformHexEncode                    // Encodes the character's UTF-8 bytes as "<XXYY>"
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	// PolicyRaw is a no-op (passthrough)
	PolicyRaw PolicyPreset = "raw"
	// PolicyRecord hex-encodes the record marker and bare control characters
	// while leaving newlines and tabs intact, preserving multi-line record
	// bodies without ever letting a body line start with the marker
	PolicyRecord PolicyPreset = "record"
	// PolicyStrict hex-encodes everything non-printable including newlines
	PolicyStrict PolicyPreset = "strict"
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy
var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:    {},
	PolicyRecord: {{filter: FilterRecordMarker | FilterBareControl, transform: TransformHexEncode}},
	PolicyStrict: {{filter: FilterNonPrintable, transform: TransformHexEncode}},
}

// filterCheckers maps individual filter flags to their check functions
var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterBareControl: func(r rune) bool {
		return unicode.IsControl(r) && r != '\n' && r != '\t'
	},
	FilterRecordMarker: func(r rune) bool { return r == Marker },
	FilterWhitespace:   unicode.IsSpace,
}

// Sanitizer applies an ordered rule chain to record content. The zero value
// passes everything through; use New plus Policy/Rule to configure. A
// configured Sanitizer is immutable and safe for concurrent use.
type Sanitizer struct {
	rules []rule
}

// New creates an empty Sanitizer
func New() *Sanitizer {
	return &Sanitizer{}
}

// Rule appends a custom rule (earliest rule wins per rune)
func (s *Sanitizer) Rule(filter, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy appends the rules of a pre-configured policy
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies the rule chain to data. Unmatched input is returned
// unchanged without allocation, which is the common case for log messages.
func (s *Sanitizer) Sanitize(data string) string {
	if len(s.rules) == 0 {
		return data
	}

	first := s.firstMatch(data)
	if first < 0 {
		return data
	}

	var b strings.Builder
	b.Grow(len(data) + 8)
	b.WriteString(data[:first])
	for _, r := range data[first:] {
		matched := false
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				applyTransform(&b, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// firstMatch returns the byte offset of the first rune any rule matches, or -1
func (s *Sanitizer) firstMatch(data string) int {
	for i, r := range data {
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				return i
			}
		}
	}
	return -1
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for flag, checker := range filterCheckers {
		if (filterMask&flag) != 0 && checker(r) {
			return true
		}
	}
	return false
}

// applyTransform writes the transformed representation of r
func applyTransform(b *strings.Builder, r rune, transformMask uint64) {
	switch {
	case (transformMask & TransformStrip) != 0:
		// Dropped

	case (transformMask & TransformHexEncode) != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		b.WriteByte('<')
		b.WriteString(hex.EncodeToString(runeBytes[:n]))
		b.WriteByte('>')

	default:
		b.WriteRune(r)
	}
}
