//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package evl

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/e-gun/AnalogiaGoTrainer/internal/vec"
	"github.com/e-gun/AnalogiaGoTrainer/internal/voc"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

func buildtestvocab(t *testing.T, text string) *voc.Vocabulary {
	t.Helper()

	fl := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(fl, []byte(text), vv.WRITEPERMS); err != nil {
		t.Fatal(err)
	}

	vocab, err := voc.BuildVocabulary(fl, 1)
	if err != nil {
		t.Fatal(err)
	}
	return vocab
}

func writequestions(t *testing.T, name string, content string) string {
	t.Helper()
	fl := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fl, []byte(content), vv.WRITEPERMS); err != nil {
		t.Fatal(err)
	}
	return fl
}

func TestReadAnalogies(t *testing.T) {
	vocab := buildtestvocab(t, "aa bb cc dd ee ff")

	raw := `: some-section
aa bb cc dd
AA BB CC DD

aa bb cc
aa bb cc zz
ee ff aa bb
`
	fl := writequestions(t, "questions.txt", raw)

	blocks, err := ReadAnalogies(fl, vocab)
	if err != nil {
		t.Fatal(err)
	}

	if len(blocks) != 1 {
		t.Fatal("expected 1 block but got", len(blocks))
	}

	// upper case folds onto lower; the 3-word line and the unknown-word line are skipped
	if len(blocks[0].Questions) != 3 {
		t.Error("expected 3 questions but got", len(blocks[0].Questions))
	}

	if blocks[0].Skipped != 2 {
		t.Error("expected 2 skips but got", blocks[0].Skipped)
	}

	first := blocks[0].Questions[0]
	want := [4]int32{vocab.ID("aa"), vocab.ID("bb"), vocab.ID("cc"), vocab.ID("dd")}
	if first != want {
		t.Error("expected", want, "but got", first)
	}
}

func TestReadAnalogiesNumberedSeries(t *testing.T) {
	vocab := buildtestvocab(t, "aa bb cc dd")

	td := t.TempDir()
	for i, content := range []string{"aa bb cc dd\n", "bb cc dd aa\naa bb cc dd\n"} {
		fl := filepath.Join(td, "questions-"+string(rune('1'+i))+".txt")
		if err := os.WriteFile(fl, []byte(content), vv.WRITEPERMS); err != nil {
			t.Fatal(err)
		}
	}

	blocks, err := ReadAnalogies(filepath.Join(td, "questions-%d.txt"), vocab)
	if err != nil {
		t.Fatal(err)
	}

	if len(blocks) != 2 {
		t.Fatal("expected 2 blocks but got", len(blocks))
	}

	if len(blocks[0].Questions) != 1 || len(blocks[1].Questions) != 2 {
		t.Error("unexpected question counts:", len(blocks[0].Questions), len(blocks[1].Questions))
	}
}

func TestReadAnalogiesMissingFirstFile(t *testing.T) {
	vocab := buildtestvocab(t, "aa bb cc dd")
	td := t.TempDir()

	// only #2 exists, so the series loads nothing
	fl := filepath.Join(td, "questions-2.txt")
	if err := os.WriteFile(fl, []byte("aa bb cc dd\n"), vv.WRITEPERMS); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadAnalogies(filepath.Join(td, "questions-%d.txt"), vocab); !errors.Is(err, ErrNoQuestionFile) {
		t.Error("expected ErrNoQuestionFile but got", err)
	}

	if _, err := ReadAnalogies(filepath.Join(td, "nothere.txt"), vocab); !errors.Is(err, ErrNoQuestionFile) {
		t.Error("expected ErrNoQuestionFile but got", err)
	}
}

func TestEvaluate(t *testing.T) {
	// one-hot rows make every score legible: a question's b and c words score 1.0,
	// its a word scores -1.0, and everything else scores 0
	vocab := buildtestvocab(t, "aa bb cc dd ee ff")
	m := vec.NewModel(vocab, vocab.Size(), 2, 42)

	for id := 0; id < vocab.Size(); id++ {
		row := m.InRow(int32(id))
		for i := range row {
			row[i] = 0
		}
		if id > 0 {
			row[id] = 1
		}
	}

	// dd = bb + cc - aa, so question 1 is answered at rank priority 0
	dd := m.InRow(vocab.ID("dd"))
	for i := range dd {
		dd[i] = 0
	}
	norm := math.Sqrt(3)
	dd[vocab.ID("aa")] = -1 / norm
	dd[vocab.ID("bb")] = 1 / norm
	dd[vocab.ID("cc")] = 1 / norm

	// q1: hit at priority 0, no skips
	// q2: predictions run [aa ff UNK bb]; two skips, one miss, then the hit -> priority 1
	// q3: predictions run [ee ff UNK aa]; the answer bb never surfaces
	// q4: zz is unknown and the question is dropped at load time
	raw := `: synthetic
aa bb cc dd
ee ff aa bb
cc ee ff bb
aa bb cc zz
`
	fl := writequestions(t, "questions.txt", raw)

	blocks, err := ReadAnalogies(fl, vocab)
	if err != nil {
		t.Fatal(err)
	}

	scores := Evaluate(m, blocks)

	if len(scores) != 1 {
		t.Fatal("expected 1 block score but got", len(scores))
	}

	sc := scores[0]

	if sc.Total != 3 {
		t.Error("expected 3 loaded questions but got", sc.Total)
	}

	if sc.Guessed != 2 {
		t.Error("expected 2 correct answers but got", sc.Guessed)
	}

	wantcorrect := [vv.ANALOGYCOUNT]int{1, 1, 0, 0}
	if sc.Correct != wantcorrect {
		t.Error("expected rank buckets", wantcorrect, "but got", sc.Correct)
	}

	wantskips := [vv.ANALOGYCOUNT + 1]int{1, 0, 2, 0, 0}
	if sc.Skips != wantskips {
		t.Error("expected skip histogram", wantskips, "but got", sc.Skips)
	}
}
