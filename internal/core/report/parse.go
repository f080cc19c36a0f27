// Package report contains the pure parsing and normalization logic for
// reconnaissance report text. It has no store access; extraction here,
// persistence decisions elsewhere.
package report

import (
	"regexp"
	"strconv"
	"strings"
)

// Candidate is a report extracted from raw text, before normalization
// and persistence. Kingdom carries the original casing; the storage
// boundary normalizes it.
type Candidate struct {
	Kingdom      string
	DefensePower int64
	Castles      int64

	// Optional enrichment fields. Their absence never fails a parse.
	Alliance    string
	Networth    int64
	HasNetworth bool
}

// reportPattern is the single combined pattern for a well-formed report:
// a Target line, then (anywhere later) the defensive power figure, then
// (anywhere later again) the castle count. Case-insensitive, and (?s) lets
// the gaps span arbitrary intervening lines. Numeric groups admit only
// digits and grouping commas, so negative values can never match.
var reportPattern = regexp.MustCompile(
	`(?is)target\s*[:：][ \t]*([^\r\n]+).*?` +
		`approximate\s+defensive\s+power\*?\s*[:：][ \t]*(\d[\d,]*).*?` +
		`number\s+of\s+castles\s*[:：][ \t]*(\d[\d,]*)`)

var (
	alliancePattern = regexp.MustCompile(`(?im)^[ \t]*alliance\s*[:：][ \t]*(.+)$`)
	networthPattern = regexp.MustCompile(`(?im)^[ \t]*networth\s*[:：][ \t]*(\d[\d,]*)`)
	urlTagPattern   = regexp.MustCompile(`\[/?url[^\]]*\]`)
)

// Parse extracts a report candidate from raw message text.
// Returns false when the combined pattern does not match; it never
// returns a partially extracted candidate.
func Parse(text string) (*Candidate, bool) {
	m := reportPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	kingdom := strings.TrimSpace(m[1])
	if len(kingdom) < 2 {
		return nil, false
	}

	dp, err := parseGroupedInt(m[2])
	if err != nil {
		return nil, false
	}
	castles, err := parseGroupedInt(m[3])
	if err != nil {
		return nil, false
	}

	c := &Candidate{
		Kingdom:      kingdom,
		DefensePower: dp,
		Castles:      castles,
	}

	if am := alliancePattern.FindStringSubmatch(text); am != nil {
		c.Alliance = strings.TrimSpace(urlTagPattern.ReplaceAllString(am[1], ""))
	}
	if nm := networthPattern.FindStringSubmatch(text); nm != nil {
		if nw, err := parseGroupedInt(nm[1]); err == nil {
			c.Networth = nw
			c.HasNetworth = true
		}
	}

	return c, true
}

// parseGroupedInt converts a digit sequence with optional grouping commas
// ("12,345") to an integer.
func parseGroupedInt(s string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
}
