//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/voc"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"gonum.org/v1/gonum/floats"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

//
// THE MODEL: skip-gram with negative sampling
//

// Model - the two embedding matrices and the training state that goes with them
//
// concurrent workers write to Win and Wout without locks; overlapping row updates can and will race;
// asynchronous SGD converges anyway, and the serialized mode exists for tests that need reproducibility
type Model struct {
	Dim        int
	NegSamples int
	Vocab      *voc.Vocabulary
	Win        []float64 // vocab_size x Dim; the embeddings you query
	Wout       []float64 // vocab_size x Dim; the classifier weights; training only
	GlobalStep atomic.Int64
	Serial     bool
	sampler    *unigramsampler
	mtx        sync.Mutex
}

// NewModel - Win is uniform in [-0.5/dim, 0.5/dim); Wout starts at zero
func NewModel(vocab *voc.Vocabulary, dim int, negsamples int, seed int64) *Model {
	m := &Model{
		Dim:        dim,
		NegSamples: negsamples,
		Vocab:      vocab,
		Win:        make([]float64, vocab.Size()*dim),
		Wout:       make([]float64, vocab.Size()*dim),
		sampler:    newunigramsampler(vocab.Counts),
	}

	rng := rand.New(rand.NewSource(seed))
	for i := range m.Win {
		m.Win[i] = (rng.Float64() - 0.5) / float64(dim)
	}

	return m
}

// InRow - the input-embedding row for an id
func (m *Model) InRow(id int32) []float64 {
	return m.Win[int(id)*m.Dim : (int(id)+1)*m.Dim]
}

// OutRow - the output-embedding row for an id
func (m *Model) OutRow(id int32) []float64 {
	return m.Wout[int(id)*m.Dim : (int(id)+1)*m.Dim]
}

// TrainBatch - run one SGD step per pair; the step counter ticks once per batch
func (m *Model) TrainBatch(pairs []str.TrainPair, lr float64, rng *rand.Rand) {
	if m.Serial {
		m.mtx.Lock()
		defer m.mtx.Unlock()
	}

	acc := make([]float64, m.Dim)
	for i := range pairs {
		m.trainpair(pairs[i].Target, pairs[i].Context, lr, rng, acc)
	}
	m.GlobalStep.Add(1)
}

// trainpair - one true-SGD update: the positive example plus NegSamples negatives
func (m *Model) trainpair(target int32, context int32, lr float64, rng *rand.Rand, acc []float64) {
	v := m.InRow(target)

	for i := range acc {
		acc[i] = 0
	}

	// gradient against one output row; the input-row gradient accumulates in acc
	gradone := func(id int32, truth float64) {
		u := m.OutRow(id)
		g := (truth - sigmoid(floats.Dot(v, u))) * lr
		floats.AddScaled(acc, g, u)
		floats.AddScaled(u, g, v)
	}

	gradone(context, 1)

	for j := 0; j < m.NegSamples; j++ {
		sample := m.sampler.draw(rng)
		if sample == context {
			// best-effort exclusion only
			continue
		}
		gradone(sample, 0)
	}

	floats.Add(v, acc)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// ScheduledLR - linear decay against total raw words consumed, floored at MINLEARNRATE
func ScheduledLR(initial float64, wordsprocessed int64, wordsperepoch int64, epochs int) float64 {
	wordstotrain := float64(wordsperepoch) * float64(epochs)
	if wordstotrain <= 0 {
		return vv.MINLEARNRATE
	}
	lr := initial * (1 - float64(wordsprocessed)/wordstotrain)
	if lr < vv.MINLEARNRATE {
		lr = vv.MINLEARNRATE
	}
	return lr
}

//
// NEGATIVE SAMPLING: the 3/4-power-smoothed unigram distribution
//

type unigramsampler struct {
	cumulative []float64
	total      float64
}

func newunigramsampler(counts []int) *unigramsampler {
	s := &unigramsampler{cumulative: make([]float64, len(counts))}
	running := 0.0
	for i := range counts {
		running += math.Pow(float64(counts[i]), vv.UNIGRAMPOWER)
		s.cumulative[i] = running
	}
	s.total = running
	return s
}

func (s *unigramsampler) draw(rng *rand.Rand) int32 {
	r := rng.Float64() * s.total
	return int32(sort.SearchFloat64s(s.cumulative, r))
}
