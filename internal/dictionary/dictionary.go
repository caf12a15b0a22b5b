// Package dictionary provides the legal-word oracle and the
// "words formable from a letter multiset" query the search engine filters
// candidates through.
package dictionary

import (
	"bufio"
	"io"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"qless/internal/domain"
)

// Dictionary is an immutable set of lowercase words, indexed by length with
// each word's letter-count signature precomputed. The formability query
// skips lengths above the multiset's total and checks every word of the
// remaining lengths against the multiset by signature.
type Dictionary struct {
	words    map[string]struct{}
	byLength map[int][]signed
}

type signed struct {
	word string
	sig  domain.Multiset
}

// New builds an empty Dictionary. Prefer Load for the common case of
// reading a word list.
func New() *Dictionary {
	return &Dictionary{
		words:    make(map[string]struct{}),
		byLength: make(map[int][]signed),
	}
}

// Add inserts word if it is a non-empty lowercase a-z string; otherwise it
// is silently rejected, matching the loader's non-conforming-entry rule.
func (d *Dictionary) Add(word string) bool {
	if !isLowerAlpha(word) {
		return false
	}
	if _, exists := d.words[word]; exists {
		return true
	}
	d.words[word] = struct{}{}
	d.byLength[len(word)] = append(d.byLength[len(word)], signed{
		word: word,
		sig:  domain.NewMultiset([]byte(word)),
	})
	return true
}

// IsWord reports whether s (case-insensitive) is in the dictionary.
func (d *Dictionary) IsWord(s string) bool {
	_, ok := d.words[strings.ToLower(s)]
	return ok
}

// Size returns the number of distinct words loaded.
func (d *Dictionary) Size() int {
	return len(d.words)
}

// WordsFormableFrom returns every word whose letter-count vector is
// dominated by multiset, with length in [3, 12]. Order is implementation
// defined; callers re-sort (the search engine sorts by rarity).
func (d *Dictionary) WordsFormableFrom(multiset domain.Multiset) []string {
	var out []string
	maxLen := multiset.Total()
	if maxLen > domain.FullTileCount {
		maxLen = domain.FullTileCount
	}
	for length := 3; length <= maxLen; length++ {
		for _, sw := range d.byLength[length] {
			if multiset.Dominates(sw.sig) {
				out = append(out, sw.word)
			}
		}
	}
	return out
}

// Load reads a line-delimited word list, normalizing accented entries to
// plain ASCII before applying the lowercase-letter-only rule so a source
// list that mixes clean English words with a handful of diacritic-bearing
// loanwords does not lose those entries outright.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d.Add(stripDiacritics(strings.ToLower(line)))
	}
	return d, scanner.Err()
}

// Words returns every loaded word, sorted.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func isLowerAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// stripDiacritics NFD-decomposes s and discards combining marks, e.g.
// "naïve" -> "naive".
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
