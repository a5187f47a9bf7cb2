//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package voc

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/e-gun/AnalogiaGoTrainer/internal/gen"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//
// CORPUS AND QUESTION FILE PREPARATION
//

// tokenizer: anything that is not a letter (or is a digit) separates words
var nonword = regexp.MustCompile(`[\W\d]+`)

// StripaccentsSTR - turn "héllo wörld" into "hello world"
func StripaccentsSTR(s string) string {
	// diacritics are combining marks once you decompose; drop them and recompose
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(chain, s)
	if err != nil {
		return s
	}
	return stripped
}

// NormalizeText - lowercase, de-accent, and squash every non-word run into a single space
func NormalizeText(raw string) string {
	cooked := strings.ToLower(StripaccentsSTR(raw))
	cooked = nonword.ReplaceAllString(cooked, " ")
	return strings.TrimSpace(cooked)
}

// NormalizeTextFile - turn a raw text file into a one-line training corpus
func NormalizeTextFile(in string, out string) error {
	const (
		MSG1 = "NormalizeTextFile() wrote %d words to '%s'"
	)

	raw, e := os.ReadFile(in)
	if e != nil {
		return fmt.Errorf("%w: '%s'", ErrNoCorpus, in)
	}

	cooked := NormalizeText(string(raw))
	if cooked == "" {
		return fmt.Errorf("%w: '%s'", ErrEmptyCorpus, in)
	}

	err := os.WriteFile(out, []byte(cooked), vv.WRITEPERMS)
	if err != nil {
		return err
	}

	Msg.NOTE(fmt.Sprintf(MSG1, len(strings.Fields(cooked)), out))
	return nil
}

// ExpandQuestionPairs - expand every ":section" of word pairs into its n*(n-1) ordered analogy quadruples
func ExpandQuestionPairs(in string, out string) error {
	const (
		MSG1 = "ExpandQuestionPairs() wrote %d sections to '%s'"
	)

	raw, e := os.ReadFile(in)
	if e != nil {
		return fmt.Errorf("%w: '%s'", ErrNoCorpus, in)
	}

	var headers []string
	var sections [][][]string

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			headers = append(headers, strings.TrimPrefix(line, ":"))
			sections = append(sections, [][]string{})
			continue
		}
		if len(sections) == 0 {
			// a pair before the first header has no section to live in
			continue
		}
		sections[len(sections)-1] = append(sections[len(sections)-1], strings.Fields(line))
	}

	var sb strings.Builder
	for s := range sections {
		if s > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf(":%s\n", headers[s]))
		var lines []string
		for x := range sections[s] {
			for y := range sections[s] {
				if x == y {
					continue
				}
				pair := append(append([]string{}, sections[s][x]...), sections[s][y]...)
				lines = append(lines, strings.Join(pair, " "))
			}
		}
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n")
	}

	err := os.WriteFile(out, []byte(sb.String()), vv.WRITEPERMS)
	if err != nil {
		return err
	}

	Msg.NOTE(fmt.Sprintf(MSG1, len(sections), out))
	return nil
}

// DiffVocabFiles - which words are in one saved vocabulary but not the other?
func DiffVocabFiles(a string, b string) (onlya []string, onlyb []string, err error) {
	const (
		MSG1 = "'%s': %d words; %d do not appear in '%s'"
	)

	va, err := LoadVocabulary(a)
	if err != nil {
		return nil, nil, err
	}

	vb, err := LoadVocabulary(b)
	if err != nil {
		return nil, nil, err
	}

	// UNK lives in both files and so never survives the subtraction
	onlya = gen.SetSubtraction(append([]string{}, va.Words...), vb.Words)
	onlyb = gen.SetSubtraction(append([]string{}, vb.Words...), va.Words)

	Msg.MAND(fmt.Sprintf(MSG1, a, va.Size(), len(onlya), b))
	Msg.MAND(fmt.Sprintf(MSG1, b, vb.Size(), len(onlyb), a))

	return onlya, onlyb, nil
}
