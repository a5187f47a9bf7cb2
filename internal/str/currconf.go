//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BatchSize     int
	BlackAndWhite bool
	DryRun        bool
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	EmbedDim      int
	Epochs        int
	EvalData      string
	Gzip          bool
	HostIP        string
	HostPort      int
	Interactive   int // -1: decide from LoadData/Resume; 0: off; 1: on
	LearnRate     float64
	LoadData      bool
	LogLevel      int
	ManualGC      bool // see messenger.LogPaths()
	MinCount      int
	NegSamples    int
	PrepareFile   string // "-pr": normalize this file into a corpus, then exit
	ProfileCPU    bool
	ProfileMEM    bool
	QuestionFile  string // "-qx": expand this word-pair file into quadruples, then exit
	QuietStart    bool
	Resume        bool
	SavePath      string
	SelfTest      int
	SerialUpdates bool
	Subsample     float64
	TickerActive  bool
	TrainData     string
	VocabDiff     []string // "-vd": report the difference between two vocabulary files, then exit
	WebUI         bool
	Window        int
	WipeData      bool // "-00": erase the saved vocabulary and checkpoint, then exit
	WorkerCount   int
}
