package variant

import (
	"strings"
	"unicode"
)

// digitLookalikes maps characters OCR commonly returns in place of digits.
var digitLookalikes = map[rune]rune{
	'O': '0', 'o': '0', 'D': '0', 'Q': '0',
	'I': '1', 'l': '1', '|': '1', 'i': '1', '!': '1',
	'Z': '2', 'z': '2',
	'S': '5', 's': '5',
	'G': '6', 'b': '6',
	'T': '7',
	'B': '8',
	'g': '9', 'q': '9',
}

// letterLookalikes maps digits OCR commonly returns in place of letters.
var letterLookalikes = map[rune]rune{
	'0': 'O',
	'1': 'I',
	'2': 'Z',
	'5': 'S',
	'8': 'B',
}

// NormalizeDigits replaces digit look-alikes and drops every character that
// is still not a digit afterwards.
func NormalizeDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if d, ok := digitLookalikes[r]; ok {
			r = d
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeWord replaces letter look-alikes, drops anything other than
// letters, spaces, apostrophes and hyphens, and collapses whitespace.
func NormalizeWord(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if l, ok := letterLookalikes[r]; ok {
			r = l
		}
		switch {
		case unicode.IsLetter(r), r == '\'', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
