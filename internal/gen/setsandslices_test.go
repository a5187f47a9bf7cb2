//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"sort"
	"testing"
)

func TestToSet(t *testing.T) {
	words := []string{"cat", "dog", "cat", "bird"}
	set := ToSet(words)

	if len(set) != 3 {
		t.Error("expected 3 members but got", len(set))
	}

	if _, ok := set["dog"]; !ok {
		t.Error("expected dog in the set")
	}

	if _, ok := set["fish"]; ok {
		t.Error("did not expect fish in the set")
	}
}

func TestUnique(t *testing.T) {
	// non-consecutive repeats are the interesting case
	got := Unique([]string{"cat", "dog", "cat", "bird", "dog"})
	sort.Strings(got)

	want := []string{"bird", "cat", "dog"}
	if len(got) != len(want) {
		t.Fatal("expected", want, "but got", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Error("expected", want, "but got", got)
		}
	}
}

func TestSetSubtraction(t *testing.T) {
	aa := []string{"cat", "dog", "bird", "fish"}
	bb := []string{"dog", "fish", "goat"}

	got := SetSubtraction(aa, bb)

	if len(got) != 2 || got[0] != "cat" || got[1] != "bird" {
		t.Error("expected [cat bird] but got", got)
	}
}

func TestChunkSlice(t *testing.T) {
	chunks := ChunkSlice([]int{1, 2, 3, 4, 5, 6, 7}, 3)

	if len(chunks) != 3 {
		t.Fatal("expected 3 chunks but got", len(chunks))
	}

	if len(chunks[0]) != 3 || len(chunks[1]) != 3 || len(chunks[2]) != 1 {
		t.Error("unexpected chunk sizes:", chunks)
	}

	if chunks[2][0] != 7 {
		t.Error("expected the remainder chunk to hold 7 but got", chunks[2])
	}

	// an empty slice still yields one (empty) chunk
	none := ChunkSlice([]int{}, 3)
	if len(none) != 1 || len(none[0]) != 0 {
		t.Error("expected a single empty chunk but got", none)
	}
}
