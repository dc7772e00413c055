package transpile

import (
	"regexp"
	"strings"
)

var (
	withDefaultPrefixRe = regexp.MustCompile(`(?i)^WITH\s+DEFAULT\s+`)
	currentTimestampRe  = regexp.MustCompile(`(?i)\bCURRENT\s+TIMESTAMP\b`)
	currentDateRe       = regexp.MustCompile(`(?i)\bCURRENT\s+DATE\b`)
	currentTimeRe       = regexp.MustCompile(`(?i)\bCURRENT\s+TIME\b`)
	// Whole-word only: identifiers containing USER (USERNAME, CURRENT_USER)
	// must not be rewritten.
	userRe = regexp.MustCompile(`(?i)\bUSER\b`)
)

// DefaultConversion is the outcome of mapping one default expression.
type DefaultConversion struct {
	Clause  string // full "DEFAULT <expr>" clause, empty when no default survives
	Note    string // diagnostic issue text, empty when the mapping is clean
	Snippet string // offending text for the diagnostic
}

// ConvertDefault rewrites a DB2 default expression as a Snowflake DEFAULT
// clause. A bare WITH DEFAULT names no value to carry over; guessing one
// would be wrong, so the default is dropped and flagged instead. DB2's
// two-word register functions become their underscore-joined Snowflake
// names, and the USER register becomes CURRENT_USER with a note.
func ConvertDefault(raw string) DefaultConversion {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return DefaultConversion{}
	}

	if fields := strings.Fields(strings.ToUpper(expr)); len(fields) == 2 && fields[0] == "WITH" && fields[1] == "DEFAULT" {
		return DefaultConversion{Note: "ambiguous default removed", Snippet: "WITH DEFAULT"}
	}

	if m := withDefaultPrefixRe.FindString(expr); m != "" {
		expr = expr[len(m):]
	}

	expr = currentTimestampRe.ReplaceAllString(expr, "CURRENT_TIMESTAMP")
	expr = currentDateRe.ReplaceAllString(expr, "CURRENT_DATE")
	expr = currentTimeRe.ReplaceAllString(expr, "CURRENT_TIME")

	var out DefaultConversion
	if userRe.MatchString(expr) {
		out.Note = "USER converted to CURRENT_USER"
		out.Snippet = expr
		expr = userRe.ReplaceAllString(expr, "CURRENT_USER")
	}

	out.Clause = "DEFAULT " + expr
	return out
}
