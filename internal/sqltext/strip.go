// Package sqltext prepares raw DDL text for the line-oriented statement
// scanner.
package sqltext

import (
	"regexp"
	"strings"
)

// Block comments may span lines, so removing one can change the line count.
var blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// StripComments removes /* ... */ block comments entirely and trims
// -- line comments. A line with content before the marker keeps that
// content; a line that is only a comment becomes empty, so line positions
// survive for the scanner downstream.
func StripComments(content string) string {
	content = blockCommentRe.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if pos := strings.Index(line, "--"); pos != -1 {
			lines[i] = strings.TrimRight(line[:pos], " \t")
		}
	}
	return strings.Join(lines, "\n")
}
