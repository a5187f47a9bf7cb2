//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "Analogia Golang Trainer"
	SHORTNAME = "AGT"
	VERSION   = "1.2.4"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "agt-conf.json"

	// training defaults; the canonical hyperparameters for skip-gram negative sampling

	DEFAULTBATCHSIZE  = 500
	DEFAULTEMBDIM     = 200
	DEFAULTEPOCHS     = 15
	DEFAULTLEARNRATE  = 0.025
	DEFAULTMINCOUNT   = 5
	DEFAULTNEGSAMPLES = 25
	DEFAULTSAVEPATH   = "savedata"
	DEFAULTSUBSAMPLE  = 1e-3
	DEFAULTWINDOW     = 5
	DEFAULTWORKERS    = 12

	ANALOGYCOUNT   = 4  // predictions fetched per analogy question
	NEARBYCOUNT    = 20 // neighbors listed per query word
	EVALBATCHSIZE  = 2500
	MAXSENTENCELEN = 1000 // kept tokens buffered between corpus scans
	MINLEARNRATE   = 0.0001
	UNIGRAMPOWER   = 0.75
	UNKTOKEN       = "UNK"
	USELESSINPUT   = `"'“”‘’.,;:!?()` // the normalizer strips these from the corpus, so queries carrying them find nothing

	CHECKPOINTBASENAME = "model.ckpt.json.gz"
	VOCABBASENAME      = "vocab.txt"

	PROGRESSINTERVAL = 1 * time.Second

	BLACKANDWHITE            = false
	DEFAULTECHOLOGLEVEL      = 0
	DEFAULTGOLOGLEVEL        = 0
	JSONINDENT               = "  "
	MAXECHOREQPERSECONDPERIP = 60
	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8802
	TICKERDELAY              = 30 * time.Second
	TICKERISACTIVE           = false
	TIMEOUTRD                = 15 * time.Second
	TIMEOUTWR                = 120 * time.Second
	USEGZIP                  = false
	WRITEPERMS               = 0644
	WSPOLLINGPAUSE           = 10000000 * 10 // 10000000 * 10 = every .1s
)
