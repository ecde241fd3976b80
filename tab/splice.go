package tab

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	tabOpen  = "[tab]"
	tabClose = "[/tab]"
	chOpen   = "[ch]"
	chClose  = "[/ch]"
)

var chordTag = regexp.MustCompile(`\[ch\]([^\[]*?)\[/ch\]`)

func stripChordTags(line string) string {
	return chordTag.ReplaceAllString(line, "$1")
}

func stripTabTags(line string) string {
	return strings.ReplaceAll(strings.ReplaceAll(line, tabOpen, ""), tabClose, "")
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// TokenStarts returns every offset where an alphanumeric run begins.
func TokenStarts(chordLine string) []int {
	runes := []rune(chordLine)
	var res []int
	for i, r := range runes {
		if isAlnum(r) && (i == 0 || !isAlnum(runes[i-1])) {
			res = append(res, i)
		}
	}
	return res
}

// fieldStarts returns the offset of every whitespace separated token.
func fieldStarts(chordLine string) []int {
	runes := []rune(chordLine)
	var res []int
	for i, r := range runes {
		if !unicode.IsSpace(r) && (i == 0 || unicode.IsSpace(runes[i-1])) {
			res = append(res, i)
		}
	}
	return res
}

// Splice inserts "[label]" into the lyric line at the offset of each chord
// in the parallel chord line. Offsets are counted in runes and shifted by
// the length of every earlier insertion. When the alphanumeric token starts
// disagree in count with the whitespace separated labels (e.g. "C#m" or
// "G/B" hold two runs), the labels are placed at their own start offsets
// instead and ok is false.
func Splice(chordLine, lyricLine string) (merged string, ok bool) {
	bare := stripChordTags(chordLine)
	labels := strings.Fields(bare)
	positions := TokenStarts(bare)
	ok = len(positions) == len(labels)
	if !ok {
		positions = fieldStarts(bare)
	}

	res := []rune(lyricLine)
	offset := 0
	for i, label := range labels {
		insert := []rune("[" + label + "]")
		at := positions[i] + offset
		if at > len(res) {
			at = len(res)
		}
		res = append(res[:at], append(insert, res[at:]...)...)
		offset += len(insert)
	}
	return string(res), ok
}
