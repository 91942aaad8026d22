// Package dateparse canonicalizes the three date formats the media corpus
// uses (YYYY-MM-DD, DD.MM.YYYY, DD/MM/YYYY) into ISO form. It performs no
// calendar validation: an impossible date like 31.02.2024 is accepted and
// emitted as 2024-02-31, matching observed upstream behavior (see
// SPEC_FULL.md's Open Question decisions).
package dateparse

import (
	"fmt"
	"regexp"
)

var (
	dotForm   = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	slashForm = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoForm   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Parse converts s into an ISO YYYY-MM-DD string. It returns ok=false for
// any input that does not match one of the three recognized formats.
func Parse(s string) (iso string, ok bool) {
	if m := dotForm.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1])), true
	}
	if m := slashForm.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1])), true
	}
	if isoForm.MatchString(s) {
		return s, true
	}
	return "", false
}

// pad2 left-pads a 1-2 digit numeric string to two digits.
func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
