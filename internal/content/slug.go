package content

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugNamespace prefixes every derived slug so generated identifiers can never
// collide with explicit ones from the remote table.
const slugNamespace = "artwork"

// deriveSlug builds the URL-safe identifier used when a record carries no
// explicit slug: lowercase ASCII title, namespace prefix, year suffix.
func deriveSlug(title string, year int) string {
	return slugNamespace + "-" + slugify(title) + "-" + strconv.Itoa(year)
}

// slugify reduces arbitrary titles to lowercase ASCII letters, digits and
// single hyphens. Latin diacritics are stripped by NFD decomposition, Hangul
// syllables are romanized, and everything else non-alphanumeric collapses to
// a hyphen.
func slugify(title string) string {
	stripped, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), title)
	if err != nil {
		stripped = title
	}

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(stripped) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case isHangul(r):
			b.WriteString(romanizeHangul(r))
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Revised Romanization jamo tables, indexed by the arithmetic decomposition of
// a precomposed Hangul syllable.
var (
	hangulLeads = [...]string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	hangulVowels = [...]string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	hangulTails = [...]string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs",
		"s", "ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

const (
	hangulBase = rune(0xAC00)
	hangulLast = rune(0xD7A3)
)

func isHangul(r rune) bool {
	return r >= hangulBase && r <= hangulLast
}

// romanizeHangul decomposes one precomposed syllable into lead, vowel and tail
// jamo and joins their romanizations: 여 → "yeo", 행 → "haeng".
func romanizeHangul(r rune) string {
	s := int(r - hangulBase)
	lead := s / (21 * 28)
	vowel := (s % (21 * 28)) / 28
	tail := s % 28
	return hangulLeads[lead] + hangulVowels[vowel] + hangulTails[tail]
}
