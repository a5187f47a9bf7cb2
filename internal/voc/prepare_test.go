//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package voc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

func TestStripaccentsSTR(t *testing.T) {
	pairs := map[string]string{
		"café":        "cafe",
		"naïve":       "naive",
		"héllo wörld": "hello world",
		"plain":       "plain",
	}

	for in, want := range pairs {
		if got := StripaccentsSTR(in); got != want {
			t.Error("expected", want, "but got", got)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	got := NormalizeText("  Héllo, Wörld! 42 times -- naïve?  ")
	if got != "hello world times naive" {
		t.Error("unexpected normalization:", got)
	}
}

func TestNormalizeTextFile(t *testing.T) {
	td := t.TempDir()
	in := filepath.Join(td, "raw.txt")
	out := filepath.Join(td, "cooked.txt")

	if err := os.WriteFile(in, []byte("First sentence.\nSecond sentence!\n"), vv.WRITEPERMS); err != nil {
		t.Fatal(err)
	}

	if err := NormalizeTextFile(in, out); err != nil {
		t.Fatal(err)
	}

	cooked, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	if string(cooked) != "first sentence second sentence" {
		t.Error("unexpected output:", string(cooked))
	}
}

func TestExpandQuestionPairs(t *testing.T) {
	td := t.TempDir()
	in := filepath.Join(td, "pairs.txt")
	out := filepath.Join(td, "questions.txt")

	raw := ":capital-common-countries\nathens greece\nbaghdad iraq\nbeijing china\n:currency\njapan yen\nusa dollar\n"
	if err := os.WriteFile(in, []byte(raw), vv.WRITEPERMS); err != nil {
		t.Fatal(err)
	}

	if err := ExpandQuestionPairs(in, out); err != nil {
		t.Fatal(err)
	}

	cooked, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(string(cooked), "\n"), "\n")

	// 3 pairs expand into 3*2 questions; 2 pairs into 2*1; plus 2 headers and a blank spacer
	if len(lines) != 11 {
		t.Fatal("expected 11 lines but got", len(lines), lines)
	}

	if lines[0] != ":capital-common-countries" {
		t.Error("expected the section header to survive but got", lines[0])
	}

	// x-major ordering: every pairing of row x with every other row y
	want := []string{
		"athens greece baghdad iraq",
		"athens greece beijing china",
		"baghdad iraq athens greece",
		"baghdad iraq beijing china",
		"beijing china athens greece",
		"beijing china baghdad iraq",
	}
	for i := range want {
		if lines[i+1] != want[i] {
			t.Error("at line", i+1, "expected", want[i], "but got", lines[i+1])
		}
	}

	if lines[8] != ":currency" {
		t.Error("expected the second header at line 8 but got", lines[8])
	}

	if lines[9] != "japan yen usa dollar" || lines[10] != "usa dollar japan yen" {
		t.Error("unexpected second section:", lines[9:])
	}
}

func TestDiffVocabFiles(t *testing.T) {
	td := t.TempDir()
	a := filepath.Join(td, "a.txt")
	b := filepath.Join(td, "b.txt")

	if err := os.WriteFile(a, []byte("UNK 0\nshared 5\nonlyina 2\n"), vv.WRITEPERMS); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("UNK 0\nshared 7\nonlyinb 3\nalsob 1\n"), vv.WRITEPERMS); err != nil {
		t.Fatal(err)
	}

	onlya, onlyb, err := DiffVocabFiles(a, b)
	if err != nil {
		t.Fatal(err)
	}

	if len(onlya) != 1 || onlya[0] != "onlyina" {
		t.Error("unexpected onlya:", onlya)
	}

	if len(onlyb) != 2 || onlyb[0] != "onlyinb" || onlyb[1] != "alsob" {
		t.Error("unexpected onlyb:", onlyb)
	}
}
