//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"
)

func TestPurgechars(t *testing.T) {
	bad := `"'.,;:!?()`

	if got := Purgechars(bad, `"rome,"`); got != "rome" {
		t.Error("expected 'rome' but got", got)
	}

	if got := Purgechars(bad, "athens"); got != "athens" {
		t.Error("expected 'athens' untouched but got", got)
	}

	if got := Purgechars(bad, "?!()"); got != "" {
		t.Error("expected an empty string but got", got)
	}
}
