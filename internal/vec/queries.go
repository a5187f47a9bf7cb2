//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"math"

	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"gonum.org/v1/gonum/mat"
)

//
// QUERIES: analogy and nearest-neighbor lookups against a normalized copy of Win
//

// Snapshot - the L2-row-normalized input embeddings frozen at a moment in time
//
// no barrier stops the workers while a snapshot is taken; a mid-epoch snapshot can copy rows
// that are being rewritten, which perturbs a few scores and nothing else
type Snapshot struct {
	dim   int
	model *Model
	nemb  *mat.Dense // vocab_size x dim
}

// Normalized - copy Win and scale every row onto the unit sphere
func (m *Model) Normalized() *Snapshot {
	vs := m.Vocab.Size()
	data := make([]float64, len(m.Win))
	copy(data, m.Win)

	for r := 0; r < vs; r++ {
		row := data[r*m.Dim : (r+1)*m.Dim]
		norm := 0.0
		for i := range row {
			norm += row[i] * row[i]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		for i := range row {
			row[i] /= norm
		}
	}

	return &Snapshot{dim: m.Dim, model: m, nemb: mat.NewDense(vs, m.Dim, data)}
}

// scores - cosine similarity of every vocabulary row against a target vector
func (s *Snapshot) scores(target []float64) []float64 {
	var out mat.VecDense
	out.MulVec(s.nemb, mat.NewVecDense(s.dim, target))
	return out.RawVector().Data
}

// topk - the ids of the k best scores, best first; k is tiny, so k scans beat a full sort
func topk(scores []float64, k int) []int32 {
	if k > len(scores) {
		k = len(scores)
	}

	best := make([]int32, 0, k)
	taken := make(map[int32]bool, k)

	for j := 0; j < k; j++ {
		hi := int32(-1)
		for i := range scores {
			id := int32(i)
			if taken[id] {
				continue
			}
			if hi < 0 || scores[id] > scores[hi] {
				hi = id
			}
		}
		best = append(best, hi)
		taken[hi] = true
	}

	return best
}

// TopAnalogies - the k vocabulary rows nearest to c + (b - a); input words are not excluded here
func (s *Snapshot) TopAnalogies(a int32, b int32, c int32, k int) []int32 {
	target := make([]float64, s.dim)
	ra := s.nemb.RawRowView(int(a))
	rb := s.nemb.RawRowView(int(b))
	rc := s.nemb.RawRowView(int(c))
	for i := 0; i < s.dim; i++ {
		target[i] = rc[i] + rb[i] - ra[i]
	}
	return topk(s.scores(target), k)
}

// Neighbors - the k nearest vocabulary rows to a word, the word itself included at rank 1
func (s *Snapshot) Neighbors(id int32, k int) []str.Neighbor {
	scores := s.scores(s.nemb.RawRowView(int(id)))
	ids := topk(scores, k)

	nn := make([]str.Neighbor, len(ids))
	for i := range ids {
		nn[i] = str.Neighbor{
			Rank:       i + 1,
			Word:       s.model.Vocab.Word(ids[i]),
			Similarity: scores[ids[i]],
		}
	}
	return nn
}

// Analogy - predict w3 as in w0:w1 :: w2:w3; unknown query words collapse onto UNK
func (m *Model) Analogy(w0 string, w1 string, w2 string) []string {
	s := m.Normalized()
	ids := s.TopAnalogies(m.Vocab.ID(w0), m.Vocab.ID(w1), m.Vocab.ID(w2), vv.ANALOGYCOUNT)

	words := make([]string, len(ids))
	for i := range ids {
		words[i] = m.Vocab.Word(ids[i])
	}
	return words
}

// Nearby - ranked nearest neighbors for each query word
func (m *Model) Nearby(words []string, k int) map[string][]str.Neighbor {
	s := m.Normalized()
	nn := make(map[string][]str.Neighbor, len(words))
	for _, w := range words {
		nn[w] = s.Neighbors(m.Vocab.ID(w), k)
	}
	return nn
}
