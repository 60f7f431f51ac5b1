package cmdline

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only whitespace",
			input:    "  \t ",
			expected: []string{},
		},
		{
			name:     "brew install",
			input:    "brew install imagemagick",
			expected: []string{"brew", "install", "imagemagick"},
		},
		{
			name:     "extra spacing",
			input:    "  sudo   apt-get\tinstall  -y imagemagick ",
			expected: []string{"sudo", "apt-get", "install", "-y", "imagemagick"},
		},
		{
			name:     "double quoted",
			input:    `port install "image magick"`,
			expected: []string{"port", "install", "image magick"},
		},
		{
			name:     "single quoted keeps backslash",
			input:    `echo 'a\b'`,
			expected: []string{"echo", `a\b`},
		},
		{
			name:     "escaped space",
			input:    `run my\ tool`,
			expected: []string{"run", "my tool"},
		},
		{
			name:     "double quote escapes",
			input:    `echo "say \"hi\" \n"`,
			expected: []string{"echo", `say "hi" \n`},
		},
		{
			name:     "adjacent quoting joins word",
			input:    `a"b"'c'd`,
			expected: []string{"abcd"},
		},
		{
			name:     "empty quoted argument",
			input:    `cmd "" ''`,
			expected: []string{"cmd", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Split(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{`brew install "imagemagick`, ErrUnclosedQuote},
		{`brew install 'imagemagick`, ErrUnclosedQuote},
		{`brew install \`, ErrTrailingEscape},
		{`brew "install \`, ErrTrailingEscape},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Split(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Split(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestJoinRoundTrip(t *testing.T) {
	args := []string{"brew", "install", "image magick", "it's", ""}
	joined := Join(args)
	got, err := Split(joined)
	if err != nil {
		t.Fatalf("split %q: %v", joined, err)
	}
	if !reflect.DeepEqual(got, args) {
		t.Errorf("round trip of %q = %q", joined, got)
	}
	if plain := Join([]string{"brew", "install", "imagemagick"}); plain != "brew install imagemagick" {
		t.Errorf("plain join = %q", plain)
	}
}
