package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/songbook/chord"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	middleC       = 60
	defaultTempo  = 100
	ticksPerQuart = 960
)

type Options struct {
	BPM         float64
	BeatsPerBar uint8
	Velocity    uint8
	Channel     uint8
}

func (o Options) withDefaults() Options {
	if o.BPM <= 0 {
		o.BPM = defaultTempo
	}
	if o.BeatsPerBar == 0 {
		o.BeatsPerBar = 4
	}
	if o.Velocity == 0 {
		o.Velocity = 80
	}
	return o
}

// Voicing lays the chord tones out from middle C upwards with the bass an
// octave below the root.
func Voicing(c chord.Chord) []uint8 {
	root := middleC + int(c.Root)
	notes := []uint8{uint8(middleC - 12 + int(c.BassTone()))}
	if !c.IsKnown() {
		return append(notes, uint8(root))
	}
	for _, interval := range c.Quality.Intervals() {
		notes = append(notes, uint8(root+int(interval)))
	}
	return notes
}

// WriteProgression writes one bar per chord to a single track SMF.
func WriteProgression(w io.Writer, chords []chord.Chord, opts Options) error {
	opts = opts.withDefaults()
	s := smf.New()
	ticks := smf.MetricTicks(ticksPerQuart)
	s.TimeFormat = ticks
	bar := ticks.Ticks4th() * uint32(opts.BeatsPerBar)

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(opts.BeatsPerBar, 4))
	tr.Add(0, smf.MetaTempo(opts.BPM))
	for _, c := range chords {
		tr.Add(0, smf.MetaText(c.String()))
		notes := Voicing(c)
		for _, note := range notes {
			tr.Add(0, midi.NoteOn(opts.Channel, note, opts.Velocity))
		}
		for i, note := range notes {
			var delta uint32
			if i == 0 {
				delta = bar
			}
			tr.Add(delta, midi.NoteOff(opts.Channel, note))
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return errors.Wrap(err, "could not add track")
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi")
	}
	return nil
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		switch r := recover().(type) {
		case nil:
		case error:
			s, e = &blank, errors.Wrap(r, "Error parsing midi file...")
		default:
			s, e = &blank, errors.Errorf("Error parsing midi file: %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file...")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file...")
	}
	return res, nil
}

// Sounding is the set of notes held at an absolute tick offset.
type Sounding struct {
	Offset int64
	Notes  []uint8
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	note      uint8
}

// GetChords sweeps every note on/off event in tick order and records the
// held notes after each change. Offsets with no held notes are skipped.
func GetChords(s *smf.SMF) []Sounding {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			if key, on, ok := noteEvent(event.Message); ok {
				events = append(events, reducedEvent{offset: absTicks, isNoteOff: !on, note: key})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	pressed := make(map[uint8]bool)
	var offsets []int64
	byOffset := make(map[int64][]uint8)
	for _, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		if _, ok := byOffset[evt.offset]; !ok {
			offsets = append(offsets, evt.offset)
		}
		byOffset[evt.offset] = heldNotes(pressed)
	}

	var res []Sounding
	for _, offset := range offsets {
		if notes := byOffset[offset]; len(notes) > 0 {
			res = append(res, Sounding{Offset: offset, Notes: notes})
		}
	}
	return res
}

// noteEvent reports the key of a note on or off message. A note on with
// zero velocity counts as a note off.
func noteEvent(msg smf.Message) (key uint8, on bool, ok bool) {
	var channel, velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		return key, velocity > 0, true
	case msg.GetNoteOff(&channel, &key, &velocity):
		return key, false, true
	}
	return 0, false, false
}

func heldNotes(pressed map[uint8]bool) []uint8 {
	notes := make([]uint8, 0, len(pressed))
	for note := range pressed {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return notes
}

// ReadProgression names every sounding of the file. Soundings that match
// no known chord are reported by their chord key.
func ReadProgression(s *smf.SMF) ([]chord.Chord, error) {
	var res []chord.Chord
	for _, sounding := range GetChords(s) {
		c, ok := chord.Identify(sounding.Notes)
		if !ok {
			return res, fmt.Errorf("no chord matches notes %v at tick %d", chord.CreateChordKey(sounding.Notes), sounding.Offset)
		}
		res = append(res, c)
	}
	return res, nil
}
