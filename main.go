//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/e-gun/AnalogiaGoTrainer/internal/evl"
	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/mm"
	"github.com/e-gun/AnalogiaGoTrainer/internal/trn"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vec"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vlt"
	"github.com/e-gun/AnalogiaGoTrainer/internal/voc"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"github.com/e-gun/AnalogiaGoTrainer/web"
	"github.com/google/uuid"
	"github.com/pkg/profile"
)

//    AGT reworks the classic word2vec skip-gram trainer as a server-capable Go binary:
//
//    [a] build a vocabulary from a whitespace-tokenized corpus; rare words collapse onto UNK
//    [b] stream subsampled skip-gram pairs to N lock-free SGD workers
//    [c] evaluate "king - man + woman = queen" analogy questions after every epoch
//    [d] save/restore the model as gzipped JSON; "-ld" serves a saved model without retraining
//    [e] query the result via an interactive shell ("-in") and/or the echo webserver ("-wb")

var (
	Msg = lnch.Msg
)

func main() {
	lnch.LookForConfigFile()
	lnch.ConfigAtLaunch()

	if !lnch.Config.QuietStart {
		fmt.Println(fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJMAIL))
	}

	lnch.PrintVersion(*lnch.Config)
	lnch.PrintBuildInfo(*lnch.Config)

	if lnch.Config.ProfileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	// the hubs that outlive any one request or training run
	go mm.PathInfoHub()
	go vlt.TrainInfoHub()
	go vlt.WebsocketPool.WSPoolStartListening()
	go Msg.Ticker(vv.TICKERDELAY)

	// utility modes do one job and exit
	utilitydispatch()

	for i := 0; i < lnch.Config.SelfTest; i++ {
		runselftestsuite(i + 1)
	}

	runtrainer()
}

// runtrainer - the main pipeline: vocabulary, training, evaluation, persistence, then queries
func runtrainer() {
	const (
		FAIL1    = "runtrainer() requires both a training corpus (-td) and an analogy question file (-ed)"
		EPOCHMSG = "*** model train epoch %d %.2f sec"
		SAVED    = "saved the model to '%s'"
		DRYRUN   = "dry run: skipping the save"
	)

	cfg := lnch.Config

	if cfg.TrainData == "" || cfg.EvalData == "" {
		Msg.MAND(FAIL1)
		Msg.ExitOrHang(1)
	}

	start := time.Now()
	previous := time.Now()

	// [a] the vocabulary

	vocab, err := voc.BuildVocabulary(cfg.TrainData, cfg.MinCount)
	Msg.EF(err, "runtrainer()")

	Msg.MAND(fmt.Sprintf("Data file: %s", cfg.TrainData))
	Msg.MAND(fmt.Sprintf("Vocab size: %d + UNK", vocab.Size()-1))
	Msg.MAND(fmt.Sprintf("Words per epoch: %d", vocab.WordsPerEpoch))

	Msg.Timer("A1", fmt.Sprintf("%d word vocabulary built", vocab.Size()), start, previous)
	previous = time.Now()

	err = os.MkdirAll(cfg.SavePath, os.ModePerm)
	Msg.EF(err, "runtrainer()")

	err = vocab.Save(filepath.Join(cfg.SavePath, vv.VOCABBASENAME))
	Msg.EF(err, "runtrainer()")

	// [b] the encoded corpus and the model

	corpus, err := voc.EncodeCorpus(cfg.TrainData, vocab)
	Msg.EF(err, "runtrainer()")

	Msg.Timer("A2", fmt.Sprintf("%d words mapped onto ids", len(corpus)), start, previous)
	previous = time.Now()

	model := vec.NewModel(vocab, cfg.EmbedDim, cfg.NegSamples, time.Now().UnixNano())
	model.Serial = cfg.SerialUpdates

	if cfg.LoadData {
		err = model.RestoreCheckpoint(cfg.SavePath)
		Msg.EF(err, "runtrainer()")
		Msg.Timer("A3", "checkpoint restored", start, previous)
		previous = time.Now()
	}

	// [c] the questions and the baseline score

	blocks, err := evl.ReadAnalogies(cfg.EvalData, vocab)
	Msg.EF(err, "runtrainer()")

	lnch.PrintLaunchSettings()

	evl.Evaluate(model, blocks)

	// [d] training

	gen, err := trn.NewGenerator(corpus, vocab, cfg.Window, cfg.Subsample, time.Now().UnixNano())
	Msg.EF(err, "runtrainer()")

	runid := uuid.New().String()

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		estart := time.Now()
		trn.TrainEpoch(gen, model, runid)
		Msg.MAND(fmt.Sprintf(EPOCHMSG, gen.Epoch(), time.Since(estart).Seconds()))
		evl.Evaluate(model, blocks)
	}

	// [e] persistence

	if cfg.Epochs > 0 {
		if cfg.DryRun {
			Msg.NOTE(DRYRUN)
		} else {
			err = model.SaveCheckpoint(cfg.SavePath)
			Msg.EF(err, "runtrainer()")
			Msg.NOTE(fmt.Sprintf(SAVED, cfg.SavePath))
		}
		// retire the run from the progress hub; pollers see the zero value and stop
		vlt.TInfo.Del <- runid
	}

	// [f] queries

	if cfg.WebUI {
		web.TheModel = model
		web.TheVocab = vocab
		if cfg.Interactive == 1 {
			go web.StartEchoServer()
			interactiveshell(model)
		} else {
			web.StartEchoServer()
		}
		return
	}

	if cfg.Interactive == 1 {
		interactiveshell(model)
	}
}

// utilitydispatch - run any requested one-shot utility mode and exit
func utilitydispatch() {
	const (
		NORMSUFF = ".normalized"
		EXPDSUFF = ".expanded"
		WIPED    = "erased '%s'"
		NOWIPE   = "nothing to erase at '%s'"
	)

	cfg := lnch.Config
	ran := false

	if cfg.PrepareFile != "" {
		err := voc.NormalizeTextFile(cfg.PrepareFile, cfg.PrepareFile+NORMSUFF)
		Msg.EF(err, "utilitydispatch()")
		ran = true
	}

	if cfg.QuestionFile != "" {
		err := voc.ExpandQuestionPairs(cfg.QuestionFile, cfg.QuestionFile+EXPDSUFF)
		Msg.EF(err, "utilitydispatch()")
		ran = true
	}

	if len(cfg.VocabDiff) == 2 {
		_, _, err := voc.DiffVocabFiles(cfg.VocabDiff[0], cfg.VocabDiff[1])
		Msg.EF(err, "utilitydispatch()")
		ran = true
	}

	if cfg.WipeData {
		for _, fl := range []string{vv.VOCABBASENAME, vv.CHECKPOINTBASENAME} {
			target := filepath.Join(cfg.SavePath, fl)
			if e := os.Remove(target); e != nil {
				Msg.NOTE(fmt.Sprintf(NOWIPE, target))
			} else {
				Msg.MAND(fmt.Sprintf(WIPED, target))
			}
		}
		ran = true
	}

	if ran {
		os.Exit(0)
	}
}
