package scan

import (
	"strings"
	"unicode"
)

const (
	startKeyword = "TODO"
	endKeyword   = "ENDTODO"
)

// commentIntroducers are the comment-opening tokens a marker line may start
// with, after leading whitespace. Recognition is lexical: no source-language
// grammar is involved.
var commentIntroducers = []string{"#", "//", "<!--"}

// Recognizer classifies single lines as start markers, end markers or
// neither. The default form requires a comment introducer immediately
// followed by the marker keyword; the legacy form is a plain substring test
// kept for compatibility with older annotation conventions. The two forms
// are never mixed within one scan.
type Recognizer struct {
	legacy bool
}

// NewRecognizer returns a Recognizer. When legacy is true the looser
// substring form is used.
func NewRecognizer(legacy bool) *Recognizer {
	return &Recognizer{legacy: legacy}
}

// IsStartMarker reports whether the line opens an annotated region.
//
// A line that also contains the end keyword anywhere is never a start:
// a same-line "TODO ... ENDTODO" is a self-terminated note, not a region.
func (r *Recognizer) IsStartMarker(line string) bool {
	if r.legacy {
		return strings.Contains(line, startKeyword) && !strings.Contains(line, endKeyword)
	}
	if strings.Contains(line, endKeyword) {
		return false
	}
	return matchesIntroducedKeyword(line, startKeyword)
}

// IsEndMarker reports whether the line terminates an annotated region.
func (r *Recognizer) IsEndMarker(line string) bool {
	if r.legacy {
		return strings.Contains(line, endKeyword)
	}
	return matchesIntroducedKeyword(line, endKeyword)
}

// matchesIntroducedKeyword reports whether the line, after leading
// whitespace, begins with a comment introducer followed by optional
// whitespace and the keyword as a complete token.
func matchesIntroducedKeyword(line, keyword string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, introducer := range commentIntroducers {
		rest, ok := strings.CutPrefix(trimmed, introducer)
		if !ok {
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		body, ok := strings.CutPrefix(rest, keyword)
		if !ok {
			continue
		}
		// Token boundary: "TODOIST" must not count as "TODO".
		if body == "" || !isWordChar(rune(body[0])) {
			return true
		}
	}
	return false
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
