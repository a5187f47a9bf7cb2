//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package evl

import (
	"fmt"
	"strings"

	"github.com/e-gun/AnalogiaGoTrainer/internal/gen"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vec"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

//
// ANALOGY EVALUATION: precision@1 through precision@4, with question words skipped
//

// BlockScore - the tallies for one question file
//
// Correct[p] counts questions answered at rank priority p: a hit at prediction j lands in
// bucket j minus the question words encountered before it. Skips[s] histograms how many of
// the four predictions were question words.
type BlockScore struct {
	Guessed int
	Total   int
	Correct [vv.ANALOGYCOUNT]int
	Skips   [vv.ANALOGYCOUNT + 1]int
}

// Evaluate - score every loaded question block against the current embeddings and report
func Evaluate(m *vec.Model, blocks []AnalogyBlock) []BlockScore {
	const (
		MSG1 = "Eval%s %4d/%d accuracy = %5.1f%% [%s] skips [%s]"
		MSG2 = "Eval global %4d/%d accuracy = %4.1f%%"
	)

	snapshot := m.Normalized()
	multi := len(blocks) > 1

	Msg.MAND("")

	var scores []BlockScore
	globalguessed := 0
	globaltotal := 0

	for i := range blocks {
		sc := scoreblock(snapshot, blocks[i])

		suffix := ""
		if multi {
			suffix = fmt.Sprintf(" for #%d", i+1)
		}

		if sc.Total > 0 {
			acc := make([]string, vv.ANALOGYCOUNT)
			for p := range sc.Correct {
				acc[p] = fmt.Sprintf("%5.1f%%", float64(sc.Correct[p])*100.0/float64(sc.Total))
			}

			// every question lands in exactly one skip bucket, so the histogram sums to Total
			sk := make([]string, vv.ANALOGYCOUNT)
			for s := 1; s <= vv.ANALOGYCOUNT; s++ {
				sk[s-1] = fmt.Sprintf("%5.1f%%", float64(sc.Skips[s])*100.0/float64(sc.Total))
			}

			pct := float64(sc.Guessed) * 100.0 / float64(sc.Total)
			Msg.MAND(fmt.Sprintf(MSG1, suffix, sc.Guessed, sc.Total, pct, strings.Join(acc, " "), strings.Join(sk, " ")))
		}

		globalguessed += sc.Guessed
		globaltotal += sc.Total
		scores = append(scores, sc)
	}

	if multi && globaltotal > 0 {
		pct := float64(globalguessed) * 100.0 / float64(globaltotal)
		Msg.MAND(fmt.Sprintf(MSG2, globalguessed, globaltotal, pct))
	}

	return scores
}

// scoreblock - predict the top answers for every question, in batches, and bucket the results
func scoreblock(snapshot *vec.Snapshot, bl AnalogyBlock) BlockScore {
	sc := BlockScore{Total: len(bl.Questions)}

	for _, batch := range gen.ChunkSlice(bl.Questions, vv.EVALBATCHSIZE) {
		for _, q := range batch {
			preds := snapshot.TopAnalogies(q[0], q[1], q[2], vv.ANALOGYCOUNT)

			prio := 0
			skips := 0
			for j := range preds {
				if preds[j] == q[3] {
					// bingo: e.g. [italy, rome, france] predicted paris
					sc.Correct[prio]++
					sc.Guessed++
					break
				} else if preds[j] == q[0] || preds[j] == q[1] || preds[j] == q[2] {
					// words already in the question do not count against the rank
					skips++
					continue
				} else {
					prio++
				}
			}
			sc.Skips[skips]++
		}
	}

	return sc
}
