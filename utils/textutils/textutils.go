// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var printer = message.NewPrinter(language.English)

// LowerASCIIFolding normalizes a string by removing accents, lowercasing, and trimming spaces.
func LowerASCIIFolding(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.TrimSpace(strings.ToLower(s)),
	)

	return s
}

// NormalizeName puts a display name in NFC form and collapses runs of
// whitespace into a single space.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// ContainsFolded reports whether needle occurs in haystack ignoring case and
// accents. An empty needle never matches.
func ContainsFolded(haystack, needle string) bool {
	needle = LowerASCIIFolding(needle)
	if needle == "" {
		return false
	}

	return strings.Contains(LowerASCIIFolding(haystack), needle)
}

// FormatInt formats an integer with commas for human readability.
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with grouping and the given number of decimals.
func FormatFloat(f float64, decimals int) string {
	return printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}
