package pitch

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, label string) Tone {
	tone, err := ParseTone(label)
	require.NoError(t, err)
	return tone
}

func TestToneTransposeWrapsAroundOctave(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(mustParse(t, "C"), mustParse(t, "C").Transpose(12))
	assert.Equal(mustParse(t, "C"), mustParse(t, "B").Transpose(1))
	assert.Equal(mustParse(t, "A#"), mustParse(t, "C").Transpose(-2))
	assert.Equal(mustParse(t, "E"), mustParse(t, "E").Transpose(-24))
}

func TestEnharmonicLabelsShareAPitchClass(t *testing.T) {
	cases := [][]string{
		{"C#", "Db"},
		{"D#", "Eb"},
		{"F#", "Gb"},
		{"G#", "Ab"},
		{"A#", "Bb", "Hb"},
		{"B", "H"},
	}
	for _, labels := range cases {
		t.Run(fmt.Sprint(labels), func(t *testing.T) {
			first := mustParse(t, labels[0])
			for _, label := range labels[1:] {
				assert.Equal(t, first, mustParse(t, label))
			}
		})
	}
}

func TestToneDisplaysSharpSpelling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("A#", mustParse(t, "Bb").String())
	assert.Equal("B", mustParse(t, "H").String())
	assert.Equal("C#", mustParse(t, "Db").String())
}

func TestParseToneUnknownLabel(t *testing.T) {
	_, err := ParseTone("X")
	assert := assert.New(t)
	assert.True(errors.Is(err, ErrUnknownToneLabel))

	var labelErr *UnknownToneLabelError
	assert.True(errors.As(err, &labelErr))
	assert.Equal("X", labelErr.Label)
}

func TestNewToneReducesNegativeValues(t *testing.T) {
	assert.Equal(t, Tone(11), NewTone(-1))
	assert.Equal(t, Tone(0), NewTone(-12))
}

func TestDistance(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Interval(7), mustParse(t, "C").Distance(mustParse(t, "G")))
	assert.Equal(Interval(5), mustParse(t, "G").Distance(mustParse(t, "C")))
}

func TestIntervalString(t *testing.T) {
	cases := map[Interval]string{
		0:   "P1",
		4:   "M3",
		6:   "TT",
		12:  "P8",
		13:  "13",
		-3:  "-m3",
		-7:  "-P5",
		-15: "-15",
	}
	for interval, want := range cases {
		t.Run(want, func(t *testing.T) {
			assert.Equal(t, want, interval.String())
		})
	}
}

func TestParseInterval(t *testing.T) {
	cases := map[string]Interval{
		"5":   5,
		"-3":  -3,
		"+2":  2,
		"M3":  4,
		"-P5": -7,
		"+TT": 6,
	}
	for text, want := range cases {
		t.Run(text, func(t *testing.T) {
			got, err := ParseInterval(text)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := ParseInterval("up a bit")
	assert.Error(t, err)
}

func TestToneJSON(t *testing.T) {
	data, err := json.Marshal(mustParse(t, "Db"))
	require.NoError(t, err)
	assert.Equal(t, `"C#"`, string(data))

	var tone Tone
	require.NoError(t, json.Unmarshal([]byte(`"H"`), &tone))
	assert.Equal(t, Tone(11), tone)

	assert.Error(t, json.Unmarshal([]byte(`"Q"`), &tone))
}
