//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package trn

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vec"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vlt"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

//
// THE TRAINING LOOP: N workers hammer the model while a coordinator reports progress
//

// TrainEpoch - run one full pass over the corpus with cfg.WorkerCount concurrent workers
//
// each worker records the epoch at launch and exits after training the first batch whose
// epoch differs: the boundary batch is trained, not discarded, so a few hundred examples
// of epoch N+1 leak into epoch N; word2vec does not care
func TrainEpoch(g *Generator, m *vec.Model, runid string) {
	const (
		PROG = "Epoch %4d Step %8d: lr = %6.4f words/sec = %8.0f"
	)

	cfg := lnch.Config
	initialepoch := g.Epoch()

	var wg sync.WaitGroup
	for w := 0; w < cfg.WorkerCount; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			buf := make([]str.TrainPair, cfg.BatchSize)
			for {
				n, epoch := g.NextBatch(buf)
				lr := vec.ScheduledLR(cfg.LearnRate, g.TotalWords(), g.WordsPerEpoch(), cfg.Epochs)
				m.TrainBatch(buf[:n], lr, rng)
				if epoch != initialepoch {
					break
				}
			}
		}(time.Now().UnixNano() + int64(w)*7993)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	report := func(wps float64, exhausted bool) str.TrainInfo {
		return str.TrainInfo{
			ID:        runid,
			Epoch:     g.Epoch(),
			Epochs:    cfg.Epochs,
			Step:      m.GlobalStep.Load(),
			Words:     g.TotalWords(),
			LearnRate: vec.ScheduledLR(cfg.LearnRate, g.TotalWords(), g.WordsPerEpoch(), cfg.Epochs),
			WPS:       wps,
			Exhausted: exhausted,
		}
	}

	lastwords := g.TotalWords()
	lasttime := time.Now()

	ticker := time.NewTicker(vv.PROGRESSINTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			vlt.TInfo.Insert <- report(0, g.Epoch() >= cfg.Epochs)
			return
		case <-ticker.C:
			now := time.Now()
			words := g.TotalWords()
			wps := float64(words-lastwords) / now.Sub(lasttime).Seconds()
			lastwords = words
			lasttime = now

			ti := report(wps, false)
			Msg.NOTE(fmt.Sprintf(PROG, ti.Epoch, ti.Step, ti.LearnRate, ti.WPS))
			vlt.TInfo.Insert <- ti
		}
	}
}
