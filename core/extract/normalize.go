package extract

import (
	"regexp"
	"strings"
)

var multipleSpaces = regexp.MustCompile(` {2,}`)

// leadingArticles are the tokens stripped by RemoveArticles, checked in
// order. Only a token followed by a space matches, so a bare "a" or a word
// like "Anthem" is left alone.
var leadingArticles = []string{"a ", "an ", "the "}

// FormatValue replaces every underscore with a space. Extraction output
// sometimes carries snake_cased values that should display with spaces.
func FormatValue(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// RemoveParentheticalContent deletes, on each line, the span from the
// first "(" to the last ")". The match is deliberately greedy: nested and
// multiple parenthetical groups on one line are removed as a single span.
// Runs of spaces left behind are collapsed and the line is trimmed.
func RemoveParentheticalContent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		opening := strings.Index(line, "(")
		closing := strings.LastIndex(line, ")")
		if opening >= 0 && closing > opening {
			line = line[:opening] + line[closing+1:]
		}
		line = multipleSpaces.ReplaceAllString(line, " ")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// RemoveArticles strips a single leading English article ("a ", "an ",
// "the ", case-insensitive) together with its trailing space. Articles
// elsewhere in the string are untouched.
func RemoveArticles(s string) string {
	lower := strings.ToLower(s)
	for _, article := range leadingArticles {
		if strings.HasPrefix(lower, article) {
			return s[len(article):]
		}
	}
	return s
}

// Clean is the full normalization pipeline applied to entity and topic
// values before hashing and display: underscores to spaces, then
// parenthetical content removed, then the leading article stripped.
func Clean(s string) string {
	return RemoveArticles(RemoveParentheticalContent(FormatValue(s)))
}
