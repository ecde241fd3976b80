package chordpro

import (
	"strings"
)

const (
	startPrefix = "start_of_"
	endPrefix   = "end_of_"
)

var shortDirectives = map[string]string{
	"t":   "title",
	"soc": startPrefix + "chorus",
	"eoc": endPrefix + "chorus",
	"sov": startPrefix + "verse",
	"eov": endPrefix + "verse",
	"sob": startPrefix + "bridge",
	"eob": endPrefix + "bridge",
}

// directive is a "{name}" or "{name: value}" tag alone on a line.
type directive struct {
	name     string
	value    string
	hasValue bool
}

func isDirective(line string) bool {
	s := strings.TrimSpace(line)
	return !strings.Contains(s, "\n") && strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

func parseDirective(line string) (directive, bool) {
	if !isDirective(line) {
		return directive{}, false
	}
	s := strings.TrimSpace(line)
	name, value, hasValue := strings.Cut(s[1:len(s)-1], ":")
	d := directive{
		name:     strings.TrimSpace(name),
		value:    strings.TrimSpace(value),
		hasValue: hasValue,
	}
	if long, ok := shortDirectives[d.name]; ok {
		d.name = long
	}
	return d, true
}

func (d directive) opens() (string, bool) {
	if !strings.HasPrefix(d.name, startPrefix) {
		return "", false
	}
	return strings.TrimPrefix(d.name, startPrefix), true
}

func (d directive) closes() (string, bool) {
	if !strings.HasPrefix(d.name, endPrefix) {
		return "", false
	}
	return strings.TrimPrefix(d.name, endPrefix), true
}
