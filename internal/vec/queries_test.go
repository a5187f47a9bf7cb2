//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"math"
	"testing"
)

// onehotmodel - rows are standard basis vectors, so every similarity is legible by hand
func onehotmodel(t *testing.T) *Model {
	t.Helper()

	vocab := buildtestvocab(t, "aa bb cc dd ee ff")
	m := NewModel(vocab, vocab.Size(), 2, 42)

	for id := 0; id < vocab.Size(); id++ {
		row := m.InRow(int32(id))
		for i := range row {
			row[i] = 0
		}
		if id > 0 {
			row[id] = 1
		}
		// UNK stays at the origin and scores zero against everything
	}

	return m
}

func TestTopAnalogies(t *testing.T) {
	m := onehotmodel(t)

	aa := m.Vocab.ID("aa")
	bb := m.Vocab.ID("bb")
	cc := m.Vocab.ID("cc")
	dd := m.Vocab.ID("dd")

	// dd = bb + cc - aa: the canonical analogy answer
	row := m.InRow(dd)
	for i := range row {
		row[i] = 0
	}
	norm := math.Sqrt(3)
	row[aa] = -1 / norm
	row[bb] = 1 / norm
	row[cc] = 1 / norm

	s := m.Normalized()
	preds := s.TopAnalogies(aa, bb, cc, 4)

	if preds[0] != dd {
		t.Error("expected", dd, "as the top prediction but got", preds)
	}
}

func TestNeighbors(t *testing.T) {
	m := onehotmodel(t)
	s := m.Normalized()

	bb := m.Vocab.ID("bb")
	nn := s.Neighbors(bb, 3)

	if len(nn) != 3 {
		t.Fatal("expected 3 neighbors but got", len(nn))
	}

	// a word is always its own nearest neighbor
	if nn[0].Rank != 1 || nn[0].Word != "bb" {
		t.Error("expected bb itself at rank 1 but got", nn[0])
	}

	if nn[0].Similarity < 0.999 {
		t.Error("expected self-similarity 1.0 but got", nn[0].Similarity)
	}
}

func TestAnalogyAndNearby(t *testing.T) {
	m := onehotmodel(t)

	aa := m.Vocab.ID("aa")
	bb := m.Vocab.ID("bb")
	cc := m.Vocab.ID("cc")
	dd := m.Vocab.ID("dd")

	row := m.InRow(dd)
	for i := range row {
		row[i] = 0
	}
	norm := math.Sqrt(3)
	row[aa] = -1 / norm
	row[bb] = 1 / norm
	row[cc] = 1 / norm

	words := m.Analogy("aa", "bb", "cc")
	if len(words) != 4 {
		t.Fatal("expected 4 candidates but got", len(words))
	}
	if words[0] != "dd" {
		t.Error("expected dd first but got", words)
	}

	nn := m.Nearby([]string{"aa", "ee"}, 2)
	if len(nn) != 2 {
		t.Fatal("expected results for 2 words but got", len(nn))
	}
	if nn["aa"][0].Word != "aa" || nn["ee"][0].Word != "ee" {
		t.Error("expected each word to head its own neighbor list:", nn)
	}
}
