// Package cmdline splits command strings into argv the way a POSIX shell
// would, without invoking one.
package cmdline

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted string is not properly closed
	ErrUnclosedQuote = errors.New("unclosed quote in command string")

	// ErrTrailingEscape is returned when a backslash appears at the end of input
	ErrTrailingEscape = errors.New("trailing escape character at end of command")
)

type quoteState int

const (
	unquoted quoteState = iota
	singleQuoted
	doubleQuoted
)

// Split parses a command string into arguments.
//
// Words are separated by unquoted whitespace. Single quotes are literal.
// Double quotes honour backslash escapes of " \ $ and `. Outside quotes a
// backslash escapes any character. Quoted empty strings ('' or "") produce
// an empty argument.
//
//	Split(`brew install imagemagick`) => ["brew", "install", "imagemagick"]
//	Split(`sudo apt-get install -y "imagemagick"`) => ["sudo", "apt-get", "install", "-y", "imagemagick"]
func Split(input string) ([]string, error) {
	args := []string{}
	var word strings.Builder
	inWord := false
	state := unquoted

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch state {
		case singleQuoted:
			if ch == '\'' {
				state = unquoted
				continue
			}
			word.WriteRune(ch)

		case doubleQuoted:
			switch ch {
			case '"':
				state = unquoted
			case '\\':
				if i+1 >= len(runes) {
					return nil, ErrTrailingEscape
				}
				i++
				next := runes[i]
				if !strings.ContainsRune("\"\\$`", next) {
					word.WriteRune('\\')
				}
				word.WriteRune(next)
			default:
				word.WriteRune(ch)
			}

		default:
			switch {
			case unicode.IsSpace(ch):
				if inWord {
					args = append(args, word.String())
					word.Reset()
					inWord = false
				}
			case ch == '\'':
				state, inWord = singleQuoted, true
			case ch == '"':
				state, inWord = doubleQuoted, true
			case ch == '\\':
				if i+1 >= len(runes) {
					return nil, ErrTrailingEscape
				}
				i++
				word.WriteRune(runes[i])
				inWord = true
			default:
				word.WriteRune(ch)
				inWord = true
			}
		}
	}

	if state != unquoted {
		return nil, ErrUnclosedQuote
	}
	if inWord {
		args = append(args, word.String())
	}
	return args, nil
}

// Join renders argv back into a single display string, quoting arguments
// that contain whitespace or quotes so the result survives Split.
func Join(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n'\"\\$`") {
			quoted[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
			continue
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
