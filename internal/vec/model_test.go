//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/voc"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

func buildtestvocab(t *testing.T, text string) *voc.Vocabulary {
	t.Helper()

	fl := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(fl, []byte(text), vv.WRITEPERMS); err != nil {
		t.Fatal(err)
	}

	vocab, err := voc.BuildVocabulary(fl, 1)
	if err != nil {
		t.Fatal(err)
	}
	return vocab
}

func TestNewModelInitialization(t *testing.T) {
	vocab := buildtestvocab(t, "aa bb cc dd ee")
	m := NewModel(vocab, 8, 2, 42)

	if len(m.Win) != vocab.Size()*8 || len(m.Wout) != vocab.Size()*8 {
		t.Fatal("unexpected matrix sizes:", len(m.Win), len(m.Wout))
	}

	// Win is uniform in [-0.5/dim, 0.5/dim); Wout starts all zero
	bound := 0.5 / 8.0
	for i := range m.Win {
		if m.Win[i] < -bound || m.Win[i] >= bound {
			t.Fatal("Win out of its initialization range at", i, ":", m.Win[i])
		}
	}
	for i := range m.Wout {
		if m.Wout[i] != 0 {
			t.Fatal("expected Wout to start at zero but index", i, "is", m.Wout[i])
		}
	}
}

func TestTrainBatchUpdatesOnlyTouchedRows(t *testing.T) {
	vocab := buildtestvocab(t, "aa bb cc dd ee")
	m := NewModel(vocab, 8, 2, 42)
	m.Serial = true

	// Wout starts at zero, which would leave the input gradient at zero too
	for i := range m.Wout {
		m.Wout[i] = 0.01
	}

	before := append([]float64(nil), m.Win...)

	rng := rand.New(rand.NewSource(7))
	m.TrainBatch([]str.TrainPair{{Target: 2, Context: 3}}, 0.05, rng)

	if m.GlobalStep.Load() != 1 {
		t.Error("expected the step counter to tick once but got", m.GlobalStep.Load())
	}

	for id := 0; id < vocab.Size(); id++ {
		row := m.Win[id*8 : (id+1)*8]
		was := before[id*8 : (id+1)*8]
		changed := false
		for i := range row {
			if row[i] != was[i] {
				changed = true
			}
		}
		if id == 2 && !changed {
			t.Error("expected the target row to move")
		}
		if id != 2 && changed {
			t.Error("expected only the target row to move but row", id, "changed")
		}
	}
}

func TestScheduledLR(t *testing.T) {
	const initial = 0.025

	if got := ScheduledLR(initial, 0, 1000, 10); got != initial {
		t.Error("expected the initial rate at zero words but got", got)
	}

	// linear decay is monotonically nonincreasing
	prev := initial
	for words := int64(0); words <= 10000; words += 500 {
		lr := ScheduledLR(initial, words, 1000, 10)
		if lr > prev {
			t.Error("rate increased at", words, "words:", lr, ">", prev)
		}
		if lr < vv.MINLEARNRATE {
			t.Error("rate fell below the floor at", words, "words:", lr)
		}
		prev = lr
	}

	if got := ScheduledLR(initial, 10000, 1000, 10); got != vv.MINLEARNRATE {
		t.Error("expected the floor once the budget is spent but got", got)
	}
}

func TestUnigramSampler(t *testing.T) {
	// id 0 has count zero and must never be drawn
	counts := []int{0, 5, 1, 10}
	s := newunigramsampler(counts)
	rng := rand.New(rand.NewSource(11))

	drawn := make([]int, len(counts))
	for i := 0; i < 10000; i++ {
		id := s.draw(rng)
		if id < 0 || int(id) >= len(counts) {
			t.Fatal("draw out of range:", id)
		}
		drawn[id]++
	}

	if drawn[0] != 0 {
		t.Error("expected the zero-count id never to be drawn but got", drawn[0])
	}

	if drawn[3] <= drawn[2] {
		t.Error("expected the frequent word to dominate but got", drawn)
	}
}
