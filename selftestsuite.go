//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/e-gun/AnalogiaGoTrainer/internal/evl"
	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/trn"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vec"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vlt"
	"github.com/e-gun/AnalogiaGoTrainer/internal/voc"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"github.com/google/uuid"
)

// runselftestsuite - exercise the whole pipeline in a temp directory: nothing on disk survives the run
func runselftestsuite(round int) {
	const (
		MSG1      = "entering selftestsuite() round %d"
		MSG2      = "exiting selftestsuite() round %d"
		SKIPDIM   = 16
		SKIPNEGS  = 5
		QUESTIONS = `: selftest
alpha beta gamma delta
beta gamma delta epsilon
gamma delta epsilon zeta
alpha beta notaword delta
`
	)

	Msg.MAND(fmt.Sprintf(MSG1, round))

	start := time.Now()
	previous := time.Now()

	td, err := os.MkdirTemp("", "agtselftest")
	Msg.EF(err, "runselftestsuite()")
	defer os.RemoveAll(td)

	// [I] a tiny cyclical corpus: every word always has the same neighbors

	cycle := strings.Fields("alpha beta gamma delta epsilon zeta eta theta iota kappa")
	var sb strings.Builder
	for i := 0; i < 300; i++ {
		sb.WriteString(strings.Join(cycle, " "))
		sb.WriteString(" ")
	}

	corpusfile := filepath.Join(td, "corpus.txt")
	err = os.WriteFile(corpusfile, []byte(sb.String()), vv.WRITEPERMS)
	Msg.EF(err, "runselftestsuite()")

	vocab, err := voc.BuildVocabulary(corpusfile, 1)
	Msg.EF(err, "runselftestsuite()")
	Msg.Timer("A1", fmt.Sprintf("%d word vocabulary built", vocab.Size()), start, previous)
	previous = time.Now()

	corpus, err := voc.EncodeCorpus(corpusfile, vocab)
	Msg.EF(err, "runselftestsuite()")
	Msg.Timer("A2", fmt.Sprintf("%d words mapped onto ids", len(corpus)), start, previous)
	previous = time.Now()

	// [II] a small model and one epoch of training

	stash := *lnch.Config
	lnch.Config.Epochs = 1
	lnch.Config.BatchSize = 64
	lnch.Config.WorkerCount = 2
	lnch.Config.LearnRate = 0.05

	model := vec.NewModel(vocab, SKIPDIM, SKIPNEGS, time.Now().UnixNano())

	gen, err := trn.NewGenerator(corpus, vocab, 2, 0, time.Now().UnixNano())
	Msg.EF(err, "runselftestsuite()")

	runid := uuid.New().String()
	trn.TrainEpoch(gen, model, runid)
	vlt.TInfo.Del <- runid
	*lnch.Config = stash

	Msg.Timer("B1", "one training epoch", start, previous)
	previous = time.Now()

	// [III] the checkpoint round trip

	err = model.SaveCheckpoint(td)
	Msg.EF(err, "runselftestsuite()")

	twin := vec.NewModel(vocab, SKIPDIM, SKIPNEGS, time.Now().UnixNano())
	err = twin.RestoreCheckpoint(td)
	Msg.EF(err, "runselftestsuite()")

	Msg.Timer("B2", "checkpoint saved and restored", start, previous)
	previous = time.Now()

	// [IV] the question file and the evaluation; the last question has an unknown word and gets skipped

	qfile := filepath.Join(td, "questions.txt")
	err = os.WriteFile(qfile, []byte(QUESTIONS), vv.WRITEPERMS)
	Msg.EF(err, "runselftestsuite()")

	blocks, err := evl.ReadAnalogies(qfile, vocab)
	Msg.EF(err, "runselftestsuite()")

	evl.Evaluate(twin, blocks)

	Msg.Timer("C1", "analogies evaluated", start, previous)

	Msg.MAND(fmt.Sprintf(MSG2, round))
}
