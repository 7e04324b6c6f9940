package decoder

import (
	"math"
	"testing"
)

func TestFrequency(t *testing.T) {
	for _, tt := range []struct {
		note uint8
		want float64
	}{
		{69, 440},
		{81, 880},
		{57, 220},
		{60, 261.6255653005986},
	} {
		got := Note{Note: tt.note}.Frequency()
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Frequency(%d): got %v, want %v", tt.note, got, tt.want)
		}
	}
}

func TestEnd(t *testing.T) {
	if got := End(nil); got != 0 {
		t.Errorf("End(nil): got %v, want 0", got)
	}
	notes := []Note{
		{Start: 0, Stop: 2},
		{Start: 1, Stop: 3.5},
		{Start: 3, Stop: 3.25},
	}
	if got := End(notes); got != 3.5 {
		t.Errorf("End: got %v, want 3.5", got)
	}
}

func TestSortByStart(t *testing.T) {
	notes := Decode(480, []Track{
		{on(480, 60, 100), off(480, 60)},
		{on(0, 62, 100), off(480, 62), on(0, 64, 100), off(10, 64)},
	})
	SortByStart(notes)
	want := []uint8{62, 60, 64}
	if len(notes) != len(want) {
		t.Fatalf("got %d notes, want %d", len(notes), len(want))
	}
	for i, n := range notes {
		if n.Note != want[i] {
			t.Errorf("note %d: got %d, want %d", i, n.Note, want[i])
		}
	}
}

func TestSortByStartIsStable(t *testing.T) {
	notes := []Note{
		{Start: 1, Note: 3},
		{Start: 0, Note: 1},
		{Start: 1, Note: 2},
		{Start: 0, Note: 0},
	}
	SortByStart(notes)
	for i, want := range []uint8{1, 0, 3, 2} {
		if notes[i].Note != want {
			t.Errorf("note %d: got %d, want %d", i, notes[i].Note, want)
		}
	}
}
