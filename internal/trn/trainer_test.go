//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package trn

import (
	"testing"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vec"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vlt"
)

// draintraininfo - no hub runs under test, so empty the buffered progress channel between calls
func draintraininfo() {
	for {
		select {
		case <-vlt.TInfo.Insert:
		default:
			return
		}
	}
}

func TestTrainEpoch(t *testing.T) {
	corpus, vocab := buildtestcorpus(t, "aa bb cc dd ee ff gg hh ii jj aa bb cc dd ee")

	prior := lnch.Config
	lnch.Config = lnch.BuildDefaultConfig()
	defer func() { lnch.Config = prior }()

	lnch.Config.Epochs = 1
	lnch.Config.WorkerCount = 2
	lnch.Config.BatchSize = 8
	lnch.Config.LearnRate = 0.05

	m := vec.NewModel(vocab, 16, 5, 42)
	m.Serial = true

	g, err := NewGenerator(corpus, vocab, 2, 0, 42)
	if err != nil {
		t.Fatal(err)
	}

	TrainEpoch(g, m, "trainepochtest")
	draintraininfo()

	// each worker trains the batch that crosses the wrap and then exits, so two workers
	// can spill at most 2*BatchSize pairs into the next pass: far short of a traversal
	if g.Epoch() != 1 {
		t.Error("expected exactly one traversal but the epoch counter reads", g.Epoch())
	}

	if m.GlobalStep.Load() == 0 {
		t.Error("expected the model step counter to advance")
	}

	if g.TotalWords() < int64(len(corpus)) {
		t.Error("expected at least", len(corpus), "words scanned but got", g.TotalWords())
	}
}

func TestTrainEpochAdvancesPerCall(t *testing.T) {
	corpus, vocab := buildtestcorpus(t, "aa bb cc dd ee ff gg hh")

	prior := lnch.Config
	lnch.Config = lnch.BuildDefaultConfig()
	defer func() { lnch.Config = prior }()

	lnch.Config.Epochs = 2
	lnch.Config.WorkerCount = 1
	lnch.Config.BatchSize = 4
	lnch.Config.LearnRate = 0.05

	m := vec.NewModel(vocab, 8, 2, 7)
	m.Serial = true

	g, err := NewGenerator(corpus, vocab, 2, 0, 7)
	if err != nil {
		t.Fatal(err)
	}

	TrainEpoch(g, m, "trainepochtest2")
	draintraininfo()
	first := m.GlobalStep.Load()
	TrainEpoch(g, m, "trainepochtest2")
	draintraininfo()

	if g.Epoch() != 2 {
		t.Error("expected two traversals after two calls but got", g.Epoch())
	}

	if m.GlobalStep.Load() <= first {
		t.Error("expected the second call to train more batches:", first, "->", m.GlobalStep.Load())
	}
}
