//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"text/template"

	"github.com/e-gun/AnalogiaGoTrainer/internal/mm"
	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMaker()
)

// LookForConfigFile - if no config file exists, write one with the default values in it
func LookForConfigFile() {
	_, a := os.Stat(fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC))

	var b error

	h, e := os.UserHomeDir()
	if e != nil {
		// how likely is this...?
		b = e
	} else {
		_, b = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC)
	}

	notfound := (a != nil) && (b != nil)

	if notfound {
		WriteDefaultConfig(h)
	}
}

// WriteDefaultConfig - save BuildDefaultConfig() as JSON in the user's config directory
func WriteDefaultConfig(h string) {
	const (
		MSG1 = "wrote default configuration file: '%s'"
		FYI1 = "could not write '%s'; settings will not persist between runs"
	)

	cfg := BuildDefaultConfig()
	content, err := json.MarshalIndent(cfg, "", vv.JSONINDENT)
	Msg.EC(err)

	fl := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC
	err = os.WriteFile(fl, content, vv.WRITEPERMS)
	if err != nil {
		Msg.NOTE(fmt.Sprintf(FYI1, fl))
		return
	}
	Msg.TMI(fmt.Sprintf(MSG1, fl))
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead."
		FAIL2 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL3 = "Could not open '%s'"
		FAIL4 = "ConfigAtLaunch() failed to execute help text template"
		FAIL5 = "'%s' requires two vocabulary files"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	basiccfg := fmt.Sprintf("%s%s", h, vv.CONFIGBASIC)

	loadedcfg, e := os.Open(basiccfg)
	if e != nil {
		Msg.TMI(fmt.Sprintf(FAIL3, basiccfg))
	}

	decoderc := json.NewDecoder(loadedcfg)
	confc := str.CurrentConfiguration{}
	errc := decoderc.Decode(&confc)
	_ = loadedcfg.Close()

	if errc == nil {
		Config = &confc
	} else if e == nil {
		Msg.CRIT(fmt.Sprintf(FAIL1, basiccfg))
	}

	// an old config might zero out values that must never be zero
	if Config.BatchSize == 0 {
		Config.BatchSize = vv.DEFAULTBATCHSIZE
	}

	if Config.EmbedDim == 0 {
		Config.EmbedDim = vv.DEFAULTEMBDIM
	}

	if Config.LearnRate == 0 {
		Config.LearnRate = vv.DEFAULTLEARNRATE
	}

	if Config.WorkerCount == 0 {
		Config.WorkerCount = vv.DEFAULTWORKERS
	}

	args := os.Args[1:len(os.Args)]

	help := func() {
		PrintVersion(*Config)
		PrintBuildInfo(*Config)

		m := map[string]interface{}{
			"agtll":     Config.LogLevel,
			"batch":     Config.BatchSize,
			"conffile":  vv.CONFIGBASIC,
			"cpus":      runtime.NumCPU(),
			"dim":       Config.EmbedDim,
			"echoll":    Config.EchoLog,
			"epochs":    Config.Epochs,
			"home":      h,
			"host":      Config.HostIP,
			"lrate":     Config.LearnRate,
			"mincount":  Config.MinCount,
			"negs":      Config.NegSamples,
			"port":      Config.HostPort,
			"projurl":   vv.PROJURL,
			"savepath":  Config.SavePath,
			"subsample": Config.Subsample,
			"window":    Config.Window,
			"workers":   Config.WorkerCount}

		t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

		var b bytes.Buffer
		if ee := t.Execute(&b, m); ee != nil {
			Msg.CRIT(FAIL4)
		}
		fmt.Println(Msg.Styled(Msg.Color(b.String())))

		os.Exit(0)
	}

	for i, a := range args {
		switch a {
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-bs":
			bs, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.BatchSize = bs
		case "-bw":
			Config.BlackAndWhite = true
		case "-cs":
			cs, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = cs
		case "-dr":
			Config.DryRun = true
		case "-ed":
			Config.EvalData = args[i+1]
		case "-el":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.EchoLog = ll
		case "-ep":
			ep, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.Epochs = ep
		case "-es":
			es, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.EmbedDim = es
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-h":
			help()
		case "-in":
			Config.Interactive = 1
		case "-ld":
			Config.LoadData = true
		case "-lr":
			lr, err := strconv.ParseFloat(args[i+1], 64)
			Msg.EC(err)
			Config.LearnRate = lr
		case "-mc":
			mc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MinCount = mc
		case "-ni":
			Config.Interactive = 0
		case "-ns":
			ns, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.NegSamples = ns
		case "-pc":
			Config.ProfileCPU = true
		case "-pm":
			Config.ProfileMEM = true
		case "-pr":
			Config.PrepareFile = args[i+1]
		case "-q":
			Config.QuietStart = true
		case "-qx":
			Config.QuestionFile = args[i+1]
		case "-rs":
			Config.Resume = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sp":
			p, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.HostPort = p
		case "-ss":
			ss, err := strconv.ParseFloat(args[i+1], 64)
			Msg.EC(err)
			Config.Subsample = ss
		case "-st":
			Config.SelfTest += 1
		case "-su":
			Config.SerialUpdates = true
		case "-sv":
			Config.SavePath = args[i+1]
		case "-td":
			Config.TrainData = args[i+1]
		case "-tk":
			Config.TickerActive = true
		case "-vd":
			if i+2 >= len(args) {
				Msg.MAND(fmt.Sprintf(FAIL5, a))
				os.Exit(1)
			}
			Config.VocabDiff = []string{args[i+1], args[i+2]}
		case "-wb":
			Config.WebUI = true
		case "-ws":
			ws, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.Window = ws
		case "-00":
			Config.WipeData = true
		default:
			// do nothing
		}
	}

	y := ""
	if errc != nil {
		y = " *not*"
	}
	Msg.TMI(fmt.Sprintf("'%s'%s loaded", basiccfg, y))

	// "--resume" implies "--load_data"
	if Config.Resume {
		Config.LoadData = true
	}

	// "--load_data" without "--resume" turns off training and turns the shell on
	if Config.LoadData && !Config.Resume {
		Config.Epochs = 0
		if Config.Interactive < 0 {
			Config.Interactive = 1
		}
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL2, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	UpdateMessageMakerWithConfig(Msg)
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with the default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BatchSize = vv.DEFAULTBATCHSIZE
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.DryRun = false
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.EmbedDim = vv.DEFAULTEMBDIM
	c.Epochs = vv.DEFAULTEPOCHS
	c.EvalData = ""
	c.Gzip = vv.USEGZIP
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.Interactive = -1
	c.LearnRate = vv.DEFAULTLEARNRATE
	c.LoadData = false
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.ManualGC = false
	c.MinCount = vv.DEFAULTMINCOUNT
	c.NegSamples = vv.DEFAULTNEGSAMPLES
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.Resume = false
	c.SavePath = vv.DEFAULTSAVEPATH
	c.SelfTest = 0
	c.SerialUpdates = false
	c.Subsample = vv.DEFAULTSUBSAMPLE
	c.TickerActive = vv.TICKERISACTIVE
	c.TrainData = ""
	c.WebUI = false
	c.Window = vv.DEFAULTWINDOW
	c.WorkerCount = vv.DEFAULTWORKERS
	if c.WorkerCount > runtime.NumCPU() {
		c.WorkerCount = runtime.NumCPU()
	}
	return &c
}

// PrintLaunchSettings - the "====" block that heads every training run
func PrintLaunchSettings() {
	const (
		BAR  = "===================="
		TMPL = `embedding_size:   C3%dC0
epochs_to_train:  C3%dC0
learning_rate:    C3%gC0
num_neg_samples:  C3%dC0
batch_size:       C3%dC0
window_size:      C3%dC0
subsample:        C3%gC0`
	)
	fmt.Println(BAR)
	fmt.Println(Msg.Color(fmt.Sprintf(TMPL, Config.EmbedDim, Config.Epochs, Config.LearnRate,
		Config.NegSamples, Config.BatchSize, Config.Window, Config.Subsample)))
	fmt.Println(BAR)
}
