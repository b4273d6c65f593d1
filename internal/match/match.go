// Package match resolves a free-text leader name from the roster to an
// enrolled student. Matching is a tiered containment heuristic over
// normalized names; the first tier that produces a hit wins, and within a
// tier the first student in directory order wins. There is no scoring and
// no ambiguity detection: a common first name can resolve to whichever
// student the directory lists first.
package match

import (
	"strings"
	"unicode"

	"groupctl/internal/canvas"
	"groupctl/internal/logging"
)

// Normalize lowercases s, strips every rune that is not a lowercase letter
// or whitespace, and collapses whitespace runs to single spaces. Applied
// identically to the roster name and every candidate, so normalization is
// idempotent across both sides of a comparison.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Resolve finds the best-matching student for target.
//
// Tier 1: exact normalized equality.
// Tier 2: the candidate contains every whitespace-delimited part of the
// target as a substring, in any order.
// Tier 3: the candidate contains at least one target part longer than two
// characters.
//
// A miss returns ok=false; that is a normal outcome the caller must handle,
// not an error.
func Resolve(students []canvas.User, target string) (canvas.User, bool) {
	want := Normalize(target)
	if want == "" {
		return canvas.User{}, false
	}
	parts := strings.Fields(want)

	for _, s := range students {
		if Normalize(s.Name) == want {
			logging.MatchDebug("%q resolved exactly to %q (id %d)", target, s.Name, s.ID)
			return s, true
		}
	}

	for _, s := range students {
		name := Normalize(s.Name)
		all := true
		for _, p := range parts {
			if !strings.Contains(name, p) {
				all = false
				break
			}
		}
		if all {
			logging.MatchDebug("%q resolved by all parts to %q (id %d)", target, s.Name, s.ID)
			return s, true
		}
	}

	for _, s := range students {
		name := Normalize(s.Name)
		for _, p := range parts {
			if len(p) > 2 && strings.Contains(name, p) {
				logging.MatchDebug("%q resolved by part %q to %q (id %d)", target, p, s.Name, s.ID)
				return s, true
			}
		}
	}

	logging.Match("no student matched %q", target)
	return canvas.User{}, false
}
