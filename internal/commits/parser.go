package commits

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// subjectPattern matches conventional-commit subjects:
//
//	type(scope)!: description
//
// where the scope and the breaking-change marker are optional. The marker is
// matched but not surfaced; breaking changes get no distinct grouping.
var subjectPattern = regexp.MustCompile(`^([A-Za-z]+)(?:\(([^)]+)\))?!?:\s*(.+)$`)

// ParseSubject classifies one commit subject line. It is total: every input
// produces a type and a cleaned message, never an error. Subjects that do not
// match the conventional-commit grammar come back as TypeOther with the whole
// subject as the message.
//
// The returned type is the lowercased type token as written, which may fall
// outside the recognized set; callers building a Record should pass it
// through Canonical.
func ParseSubject(subject string) (TypeTag, string) {
	subject = strings.TrimSpace(subject)

	matches := subjectPattern.FindStringSubmatch(subject)
	if matches == nil {
		return TypeOther, cleanMessage(subject)
	}

	tag := TypeTag(strings.ToLower(matches[1]))
	scope := matches[2]
	message := cleanMessage(matches[3])

	if scope != "" {
		message = scope + ": " + message
	}
	return tag, message
}

// cleanMessage trims the text, strips exactly one trailing period, and
// capitalizes the first character.
func cleanMessage(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ".")
	if text == "" {
		return text
	}

	first, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(first)) + text[size:]
}
