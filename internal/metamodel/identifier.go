// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package metamodel

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// NormalizeIdentifier turns an arbitrary string into a valid declaration or property
// identifier. Percent-escapes are decoded first, then every character that cannot
// appear in an identifier is replaced by "_" followed by its lowercase hex code point.
// A leading digit is prefixed with "_" and the empty string becomes "_".
func NormalizeIdentifier(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}

	var sb strings.Builder
	for i, r := range s {
		switch {
		case isIdentifierStart(r):
			sb.WriteRune(r)
		case isIdentifierPart(r):
			if i == 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r)
		default:
			fmt.Fprintf(&sb, "_%x", r)
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

// IsValidIdentifier reports whether s needs no normalization.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if isIdentifierStart(r) {
			continue
		}
		if i > 0 && isIdentifierPart(r) {
			continue
		}
		return false
	}
	return true
}

func isIdentifierStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentifierPart(r rune) bool {
	return unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc) ||
		r == '\u200c' || r == '\u200d'
}
