//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package trn

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/voc"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

func buildtestcorpus(t *testing.T, text string) ([]int32, *voc.Vocabulary) {
	t.Helper()

	fl := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(fl, []byte(text), vv.WRITEPERMS); err != nil {
		t.Fatal(err)
	}

	vocab, err := voc.BuildVocabulary(fl, 1)
	if err != nil {
		t.Fatal(err)
	}

	corpus, err := voc.EncodeCorpus(fl, vocab)
	if err != nil {
		t.Fatal(err)
	}

	return corpus, vocab
}

// pairsperpass - with a fixed radius every token i yields min(i, r) + min(T-1-i, r) pairs
func pairsperpass(tokens int, radius int) int {
	n := 0
	for i := 0; i < tokens; i++ {
		left := i
		if left > radius {
			left = radius
		}
		right := tokens - 1 - i
		if right > radius {
			right = radius
		}
		n += left + right
	}
	return n
}

func TestFixedWindowPairCount(t *testing.T) {
	corpus, vocab := buildtestcorpus(t, "aa bb cc dd ee ff gg hh ii jj")

	g, err := NewGenerator(corpus, vocab, 2, 0, 42)
	if err != nil {
		t.Fatal(err)
	}
	g.FixedWindow = true

	want := pairsperpass(len(corpus), 2)

	buf := make([]str.TrainPair, want)
	n, _ := g.NextBatch(buf)
	if n != want {
		t.Fatal("expected", want, "pairs but got", n)
	}

	// the first target is token 0 and its first context is token 1
	if buf[0].Target != corpus[0] || buf[0].Context != corpus[1] {
		t.Error("unexpected first pair:", buf[0])
	}

	// the last pair of the pass is (last token, second-to-last token)
	last := buf[n-1]
	if last.Target != corpus[len(corpus)-1] || last.Context != corpus[len(corpus)-2] {
		t.Error("unexpected last pair:", last)
	}

	if g.TotalWords() != int64(len(corpus)) {
		t.Error("expected", len(corpus), "raw words scanned but got", g.TotalWords())
	}

	// the next pull starts the corpus over
	two := make([]str.TrainPair, 2)
	n, _ = g.NextBatch(two)
	if n != 2 || two[0].Target != corpus[0] || two[0].Context != corpus[1] {
		t.Error("expected the stream to wrap to the start but got", two)
	}
}

func TestEpochIncrementsOncePerTraversal(t *testing.T) {
	corpus, vocab := buildtestcorpus(t, "aa bb cc dd ee ff")

	g, err := NewGenerator(corpus, vocab, 2, 0, 42)
	if err != nil {
		t.Fatal(err)
	}
	g.FixedWindow = true

	perpass := pairsperpass(len(corpus), 2)

	// two full traversals pulled concurrently in small batches: exactly two wraps
	// perpass is 18 here, so 4 workers * 3 pulls * 3 pairs covers it exactly
	if 2*perpass != 36 {
		t.Fatal("the corpus changed shape; expected 18 pairs per pass but got", perpass)
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]str.TrainPair, 3)
			for i := 0; i < 3; i++ {
				g.NextBatch(buf)
			}
		}()
	}
	wg.Wait()

	if g.Epoch() != 2 {
		t.Error("expected epoch 2 after two traversals but got", g.Epoch())
	}

	if g.TotalWords() != int64(2*len(corpus)) {
		t.Error("expected", 2*len(corpus), "raw words but got", g.TotalWords())
	}
}

func TestSubsampleDropsFrequentWords(t *testing.T) {
	// "the" dominates the corpus; an aggressive threshold should all but eliminate it
	text := strings.TrimSpace(strings.Repeat("the ", 1000) + strings.Repeat("cat dog ", 25))
	corpus, vocab := buildtestcorpus(t, text)

	g, err := NewGenerator(corpus, vocab, 2, 1e-6, 42)
	if err != nil {
		t.Fatal(err)
	}

	the := vocab.ID("the")

	buf := make([]str.TrainPair, 200)
	n, _ := g.NextBatch(buf)

	hits := 0
	for i := 0; i < n; i++ {
		if buf[i].Target == the {
			hits++
		}
	}

	if hits > n/10 {
		t.Error("expected 'the' to be subsampled away but it is the target of", hits, "of", n, "pairs")
	}
}

func TestNewGeneratorEmptyCorpus(t *testing.T) {
	_, vocab := buildtestcorpus(t, "aa bb cc")

	if _, err := NewGenerator([]int32{}, vocab, 2, 0, 42); err == nil {
		t.Error("expected an error for an empty corpus")
	}
}
