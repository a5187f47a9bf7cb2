//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package voc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	ErrNoCorpus    = errors.New("cannot open the training corpus")
	ErrEmptyCorpus = errors.New("the training corpus contains no words")
	ErrAllFiltered = errors.New("min_count filtered every word out of the vocabulary")
)

// max token size for the corpus scanner; no real word is this long, but raw files can surprise you
const SCANNERBUFF = 1024 * 1024

//
// THE VOCABULARY
//

// Vocabulary - every trainable word mapped onto a dense id; id 0 is the UNK sentinel and owns the discards
type Vocabulary struct {
	Words         []string
	Counts        []int
	WordsPerEpoch int64
	wordtoid      map[string]int32
}

// BuildVocabulary - scan the corpus once; count the words; sort by descending count; collapse the rare into UNK
func BuildVocabulary(path string, mincount int) (*Vocabulary, error) {
	const (
		MSG1 = "BuildVocabulary() counted %d words (%d distinct) in '%s'"
	)

	fh, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrNoCorpus, path)
	}
	defer func() { _ = fh.Close() }()

	counts := make(map[string]int)
	var seen []string

	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, SCANNERBUFF), SCANNERBUFF)
	scanner.Split(bufio.ScanWords)

	var total int64
	for scanner.Scan() {
		w := scanner.Text()
		if _, ok := counts[w]; !ok {
			seen = append(seen, w)
		}
		counts[w]++
		total++
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if total == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrEmptyCorpus, path)
	}

	// stable sort: equal counts stay in first-seen order so rebuilds are deterministic
	var kept str.WWList
	for _, w := range seen {
		if counts[w] >= mincount {
			kept = append(kept, str.WeightedWord{Word: w, Count: counts[w]})
		}
	}
	sort.Stable(kept)

	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: min_count=%d", ErrAllFiltered, mincount)
	}

	v := &Vocabulary{
		Words:         make([]string, 0, len(kept)+1),
		Counts:        make([]int, 0, len(kept)+1),
		WordsPerEpoch: total,
		wordtoid:      make(map[string]int32, len(kept)+1),
	}

	// id 0 is reserved; its count is everything that did not survive the cut
	sum := 0
	for i := range kept {
		sum += kept[i].Count
	}

	v.Words = append(v.Words, vv.UNKTOKEN)
	v.Counts = append(v.Counts, int(total)-sum)
	v.wordtoid[vv.UNKTOKEN] = 0

	for i := range kept {
		v.wordtoid[kept[i].Word] = int32(len(v.Words))
		v.Words = append(v.Words, kept[i].Word)
		v.Counts = append(v.Counts, kept[i].Count)
	}

	Msg.PEEK(fmt.Sprintf(MSG1, total, len(seen), path))

	return v, nil
}

// Size - the number of ids, UNK included
func (v *Vocabulary) Size() int {
	return len(v.Words)
}

// ID - the id for a word; unknown words collapse onto the UNK sentinel
func (v *Vocabulary) ID(w string) int32 {
	return v.wordtoid[w]
}

// Known - the id for a word plus whether the word is actually in the vocabulary
func (v *Vocabulary) Known(w string) (int32, bool) {
	id, ok := v.wordtoid[w]
	return id, ok
}

// Word - the word at an id; out of range ids yield UNK
func (v *Vocabulary) Word(id int32) string {
	if id < 0 || int(id) >= len(v.Words) {
		return vv.UNKTOKEN
	}
	return v.Words[id]
}

// IDs - map a slice of words onto their ids
func (v *Vocabulary) IDs(words []string) []int32 {
	ids := make([]int32, len(words))
	for i := range words {
		ids[i] = v.wordtoid[words[i]]
	}
	return ids
}

//
// PERSISTENCE: "word count" lines, descending count, UNK first
//

// Save - write the vocabulary so the model can be reloaded
func (v *Vocabulary) Save(path string) error {
	var sb strings.Builder
	for i := range v.Words {
		sb.WriteString(fmt.Sprintf("%s %d\n", v.Words[i], v.Counts[i]))
	}
	return os.WriteFile(path, []byte(sb.String()), vv.WRITEPERMS)
}

// LoadVocabulary - re-read a saved vocabulary; WordsPerEpoch is the sum of the counts since UNK holds the remainder
func LoadVocabulary(path string) (*Vocabulary, error) {
	const (
		FAIL1 = "LoadVocabulary() cannot parse line %d of '%s'"
	)

	fh, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrNoCorpus, path)
	}
	defer func() { _ = fh.Close() }()

	v := &Vocabulary{wordtoid: make(map[string]int32)}

	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, SCANNERBUFF), SCANNERBUFF)

	ln := 0
	for scanner.Scan() {
		ln++
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			return nil, fmt.Errorf(FAIL1, ln, path)
		}
		ct, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf(FAIL1, ln, path)
		}
		v.wordtoid[fields[0]] = int32(len(v.Words))
		v.Words = append(v.Words, fields[0])
		v.Counts = append(v.Counts, ct)
		v.WordsPerEpoch += int64(ct)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(v.Words) == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrEmptyCorpus, path)
	}

	return v, nil
}

// EncodeCorpus - re-scan the corpus and map every token onto its id; out-of-vocabulary tokens become UNK
func EncodeCorpus(path string, v *Vocabulary) ([]int32, error) {
	fh, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrNoCorpus, path)
	}
	defer func() { _ = fh.Close() }()

	encoded := make([]int32, 0, v.WordsPerEpoch)

	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, SCANNERBUFF), SCANNERBUFF)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		encoded = append(encoded, v.wordtoid[scanner.Text()])
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(encoded) == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrEmptyCorpus, path)
	}

	return encoded, nil
}
