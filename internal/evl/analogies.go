//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package evl

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/voc"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	ErrNoQuestionFile = errors.New("cannot read analogy question file")
)

//
// ANALOGY QUESTION FILES: "athens greece baghdad iraq", one question per line
//

// AnalogyBlock - one question file mapped onto vocabulary ids
type AnalogyBlock struct {
	Path      string
	Questions [][4]int32
	Skipped   int
}

// ReadAnalogies - load one question file, or a numbered series if the path contains "%d"
//
// a series runs from 1 upwards until the first missing file; "questions-%d.txt" with only
// "questions-2.txt" on disk loads nothing and is an error
func ReadAnalogies(pattern string, vocab *voc.Vocabulary) ([]AnalogyBlock, error) {
	var blocks []AnalogyBlock

	if strings.Contains(pattern, "%d") {
		idx := 1
		for {
			fl := fmt.Sprintf(pattern, idx)
			if _, e := os.Stat(fl); e != nil {
				break
			}
			bl, err := readquestionfile(fl, vocab)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, bl)
			idx++
		}
		if len(blocks) == 0 {
			return nil, fmt.Errorf("%w: no file matches '%s'", ErrNoQuestionFile, pattern)
		}
		return blocks, nil
	}

	bl, err := readquestionfile(pattern, vocab)
	if err != nil {
		return nil, err
	}
	return append(blocks, bl), nil
}

// readquestionfile - questions with any out-of-vocabulary word are tallied and dropped
func readquestionfile(path string, vocab *voc.Vocabulary) (AnalogyBlock, error) {
	const (
		MSG1 = `Eval analogy file: "%s", questions %4d, skipped %d`
	)

	bl := AnalogyBlock{Path: path}

	fh, e := os.Open(path)
	if e != nil {
		return bl, fmt.Errorf("%w: '%s'", ErrNoQuestionFile, path)
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ":") {
			// skip comments and empty lines
			continue
		}

		words := strings.Fields(strings.ToLower(line))
		if len(words) != 4 {
			bl.Skipped++
			continue
		}

		var q [4]int32
		known := true
		for i := range words {
			id, ok := vocab.Known(words[i])
			if !ok {
				known = false
				break
			}
			q[i] = id
		}

		if !known {
			bl.Skipped++
			continue
		}
		bl.Questions = append(bl.Questions, q)
	}

	if err := scanner.Err(); err != nil {
		return bl, fmt.Errorf("%w: '%s' (%v)", ErrNoQuestionFile, path, err)
	}

	Msg.MAND(fmt.Sprintf(MSG1, path, len(bl.Questions), bl.Skipped))
	return bl, nil
}
