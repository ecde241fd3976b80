package tab

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultLabel = "verse"

var markerKeywords = []struct {
	keyword string
	label   string
	titled  bool
}{
	{"intro", "verse", true},
	{"verse", "verse", false},
	{"chorus", "chorus", false},
	{"bridge", "bridge", false},
	{"outro", "verse", true},
}

var titleCaser = cases.Title(language.Und)

// isMarker reports whether the line is a standalone section marker such as
// "[Chorus]", as opposed to a [tab] or [ch] wrapped line.
func isMarker(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return false
	}
	for _, wrapper := range []string{tabOpen, tabClose, chOpen, chClose} {
		if strings.Contains(s, wrapper) {
			return false
		}
	}
	return true
}

// classifyMarker maps a marker to a section label by keyword. Intro and
// outro become verses titled after the marker text, e.g. "[intro riff]"
// gives "Intro Riff". Unmatched markers default to a verse and report
// ok=false.
func classifyMarker(line string) (label string, title string, ok bool) {
	text := strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "[]"))
	name := strings.ToLower(text)
	for _, k := range markerKeywords {
		if !strings.Contains(name, k.keyword) {
			continue
		}
		if k.titled {
			title = titleCaser.String(strings.Join(strings.Fields(text), " "))
		}
		return k.label, title, true
	}
	return defaultLabel, "", false
}
