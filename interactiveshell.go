//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/e-gun/AnalogiaGoTrainer/internal/gen"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vec"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

// interactiveshell - query the trained model from the console until "quit"
func interactiveshell(m *vec.Model) {
	const (
		PROMPT = "[%s] > "
		BAR    = "====================================="
		NEIGHB = "%-20s %6.4f"
		HELP   = `commands:
   analogy {a} {b} {c}      'a is to b as c is to ...'
   nearby {word} [{word}…]  nearest neighbors of each word
   quit                     leave the shell`
	)

	fmt.Println(Msg.Color("type C1helpC0 for the commands"))

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf(PROMPT, vv.SHORTNAME)

	for scanner.Scan() {
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		for i := range fields {
			fields[i] = gen.Purgechars(vv.USELESSINPUT, fields[i])
		}

		switch {
		case len(fields) == 0:
			// just a newline
		case fields[0] == "quit" || fields[0] == "exit":
			return
		case fields[0] == "analogy" && len(fields) == 4:
			for _, w := range m.Analogy(fields[1], fields[2], fields[3]) {
				fmt.Println(w)
			}
		case fields[0] == "nearby" && len(fields) > 1:
			nn := m.Nearby(fields[1:], vv.NEARBYCOUNT)
			for _, w := range fields[1:] {
				fmt.Printf("%s\n%s\n", w, BAR)
				for _, n := range nn[w] {
					fmt.Println(fmt.Sprintf(NEIGHB, n.Word, n.Similarity))
				}
			}
		default:
			fmt.Println(HELP)
		}

		fmt.Printf(PROMPT, vv.SHORTNAME)
	}
}
