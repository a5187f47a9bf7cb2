//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package trn

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/voc"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

//
// THE EXAMPLE STREAM: corpus ids -> subsampled sentences -> windowed (target, context) pairs
//

// Generator - an endless, thread-safe stream of skip-gram training pairs
//
// the cursor, the sentence buffer, and the rng all live behind one mutex; the epoch and word
// counters are atomics so the coordinator can read them without taking the lock
type Generator struct {
	corpus    []int32
	vocab     *voc.Vocabulary
	window    int
	subsample float64

	// FixedWindow pins the radius at window_size instead of drawing R in [1, window_size];
	// tests that need an exact pair count per token set this
	FixedWindow bool

	mtx      sync.Mutex
	rng      *rand.Rand
	cursor   int
	sentence []int32
	sentpos  int
	queue    []str.TrainPair
	qhead    int
	epoch    atomic.Int64
	words    atomic.Int64
}

// NewGenerator - wire a generator to an encoded corpus
func NewGenerator(corpus []int32, vocab *voc.Vocabulary, window int, subsample float64, seed int64) (*Generator, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: nothing to generate examples from", voc.ErrEmptyCorpus)
	}

	g := &Generator{
		corpus:    corpus,
		vocab:     vocab,
		window:    window,
		subsample: subsample,
		rng:       rand.New(rand.NewSource(seed)),
		sentence:  make([]int32, 0, vv.MAXSENTENCELEN),
	}

	return g, nil
}

// Epoch - how many times has the corpus cursor wrapped?
func (g *Generator) Epoch() int {
	return int(g.epoch.Load())
}

// TotalWords - raw corpus words scanned so far; monotonic across the whole run
func (g *Generator) TotalWords() int64 {
	return g.words.Load()
}

// WordsPerEpoch - raw corpus words per full traversal; fixed once the vocabulary is built
func (g *Generator) WordsPerEpoch() int64 {
	return g.vocab.WordsPerEpoch
}

// NextBatch - fill buf with pairs; returns the count and the epoch as of this pull
//
// the returned epoch is what a worker compares against the epoch it recorded at launch:
// a batch straddling the boundary still trains before the worker notices and exits
func (g *Generator) NextBatch(buf []str.TrainPair) (int, int) {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	n := 0
	for n < len(buf) {
		if g.qhead >= len(g.queue) {
			g.refillqueue()
		}
		k := copy(buf[n:], g.queue[g.qhead:])
		g.qhead += k
		n += k
	}

	return n, int(g.epoch.Load())
}

// refillqueue - advance the target pointer through the sentence until pairs appear
func (g *Generator) refillqueue() {
	g.queue = g.queue[:0]
	g.qhead = 0

	for len(g.queue) == 0 {
		if g.sentpos >= len(g.sentence) {
			g.refillsentence()
		}

		i := g.sentpos
		g.sentpos++

		// the standard dynamic-window trick: radius R ~ U[1, window_size] per target
		r := g.window
		if !g.FixedWindow {
			r = 1 + g.rng.Intn(g.window)
		}

		lo := i - r
		if lo < 0 {
			lo = 0
		}
		hi := i + r
		if hi > len(g.sentence)-1 {
			hi = len(g.sentence) - 1
		}

		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}
			g.queue = append(g.queue, str.TrainPair{Target: g.sentence[i], Context: g.sentence[j]})
		}
	}
}

// refillsentence - scan raw corpus ids into the kept-token buffer, subsampling as we go
//
// the window is measured over this filtered sequence, not over raw corpus positions:
// dropping a frequent word pulls its neighbors together, exactly as in word2vec.c
func (g *Generator) refillsentence() {
	g.sentence = g.sentence[:0]
	g.sentpos = 0

	total := float64(g.vocab.WordsPerEpoch)

	for len(g.sentence) < vv.MAXSENTENCELEN {
		if g.cursor >= len(g.corpus) {
			// increment-and-wrap happens exactly here, and only under the generator lock
			g.cursor = 0
			g.epoch.Add(1)
			if len(g.sentence) > 0 {
				// sentences never straddle an epoch boundary
				break
			}
		}

		id := g.corpus[g.cursor]
		g.cursor++
		g.words.Add(1)

		if g.subsample > 0 {
			f := float64(g.vocab.Counts[id])
			if f > 0 {
				keep := math.Sqrt(g.subsample * total / f)
				if keep < 1 && g.rng.Float64() > keep {
					continue
				}
			}
		}

		g.sentence = append(g.sentence, id)
	}
}
