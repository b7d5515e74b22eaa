// Package wordlist reads a line-oriented dictionary and keeps the entries
// usable for a word square of a given size: exactly that many letters,
// lowercased, a–z only. Input order is preserved, since it fixes the order
// in which squares are found.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Load reads r line by line and returns the words of the given length.
// Each line is trimmed; lines that are not purely alphabetic or do not have
// exactly length letters are skipped and counted in Stats.
func Load(r io.Reader, length int, opts ...Option) ([]string, Stats, error) {
	var st Stats

	// 1. Validate and apply options
	if length < 1 {
		return nil, st, ErrBadLength
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Scan
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{})
	words := make([]string, 0)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "":
			st.Blank++
			continue
		case utf8.RuneCountInString(line) != length:
			st.WrongLength++
			continue
		case !isAlpha(line):
			st.NonAlpha++
			continue
		}

		w := lower.String(line)
		if !isLowerASCII(w) {
			st.NonASCII++
			continue
		}

		if o.Dedupe {
			if _, dup := seen[w]; dup {
				st.Duplicates++
				continue
			}
			seen[w] = struct{}{}
		}

		words = append(words, w)
		st.Kept++
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("wordlist: read line %d: %w", st.Lines+1, err)
	}

	return words, st, nil
}

// LoadFile opens path and calls Load on it.
func LoadFile(path string, length int, opts ...Option) ([]string, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	words, st, err := Load(f, length, opts...)
	if err != nil {
		return nil, st, fmt.Errorf("%s: %w", path, err)
	}

	return words, st, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}

	return true
}
