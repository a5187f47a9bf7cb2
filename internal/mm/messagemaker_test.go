//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"testing"
	"time"
)

func TestFetchPathStats(t *testing.T) {
	go PathInfoHub()

	m := NewMessageMaker()
	m.LogPaths("RtAlpha()")
	m.LogPaths("RtAlpha()")
	m.LogPaths("RtBeta()")

	// updates ride a buffered channel; poll until all three have landed
	deadline := time.Now().Add(time.Second)
	for {
		stats := FetchPathStats()
		if stats["RtAlpha()"] == 2 && stats["RtBeta()"] == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("the hub never counted the logged paths:", stats)
		}
		time.Sleep(5 * time.Millisecond)
	}

	// the hub hands out copies; scribbling on one must not corrupt the ledger
	stats := FetchPathStats()
	stats["RtAlpha()"] = 999

	if again := FetchPathStats(); again["RtAlpha()"] != 2 {
		t.Error("expected the hub's own count to stay 2 but got", again["RtAlpha()"])
	}
}
