//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2024-26"
	PROJAUTH = "E. Gunderson"
	PROJMAIL = "Department of Classics, 125 Queen’s Park, Toronto, ON  M5S 2C7 Canada"
	PROJURL  = "https://github.com/e-gun/AnalogiaGoTrainer"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bsC0 C2{num}C0    examples per training batch [C6currentC0: C3{{.batch}}C0]
   C1-bwC0          disable color output in the console
   C1-csC0 C2{num}C0    concurrent training workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]
   C1-drC0          dry run: train and evaluate but do not save anything
   C1-edC0 C2{file}C0   analogy question file; "C4name-%d.txtC0" will read "C4name-1.txtC0", "C4name-2.txtC0", ...
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-epC0 C2{num}C0    epochs to train [C6currentC0: C3{{.epochs}}C0]
   C1-esC0 C2{num}C0    embedding dimension [C6currentC0: C3{{.dim}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.agtll}}C0]
   C1-hC0           print this help information
   C1-inC0          enter the interactive query shell when the run completes
   C1-niC0          never enter the interactive query shell
   C1-ldC0          load a saved model from the save path instead of training from scratch
                   turns off training and defaults the interactive shell ON unless C1-rsC0 is also given
   C1-lrC0 C2{float}C0  initial learning rate [C6currentC0: C3{{.lrate}}C0]
   C1-mcC0 C2{num}C0    discard words seen fewer than this many times [C6currentC0: C3{{.mincount}}C0]
   C1-nsC0 C2{num}C0    negative samples per example [C6currentC0: C3{{.negs}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-prC0 C2{file}C0   normalize a raw text file into a training corpus and exit
   C1-qC0           quiet startup: suppress copyright notice
   C1-qxC0 C2{file}C0   expand a word-pair question file into analogy quadruples and exit
   C1-rsC0          resume training from the saved checkpoint (implies C1-ldC0)
   C1-saC0 C2{string}C0 server IP address [C6currentC0: C3{{.host}}C0]
   C1-spC0 C2{num}C0    server port [C6currentC0: C3{{.port}}C0]
   C1-ssC0 C2{float}C0  subsampling threshold for frequent words [C6currentC0: C3{{.subsample}}C0]
   C1-stC0          run the self-test suite at launch; repeat the flag to iterate: e.g., "C1-st -stC0" will run twice
   C1-suC0          serialize matrix updates: slower, but runs are reproducible
   C1-svC0 C2{dir}C0    directory for the vocabulary and checkpoint [C6currentC0: C3{{.savepath}}C0]
   C1-tdC0 C2{file}C0   training corpus: normalized, lowercased, whitespace-tokenized text
   C1-tkC0          turn on the uptime ticker [unavailable if OS is Windows]
   C1-vC0           print version and exit
   C1-vvC0          print full version info and exit
   C1-vdC0 C2{f1} {f2}C0 report the vocabulary difference between two saved vocabulary files and exit
   C1-wbC0          serve the web query interface once the run completes
   C1-wsC0 C2{num}C0    sliding window radius [C6currentC0: C3{{.window}}C0]
   C1-00C0          erase the saved vocabulary and checkpoint in the save path

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
         See the sample configuration files at
             C3{{.projurl}}C0
`
)
