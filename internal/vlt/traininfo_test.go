//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"testing"
	"time"

	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
)

func TestTrainInfoHubLifecycle(t *testing.T) {
	go TrainInfoHub()

	ti := str.TrainInfo{ID: "run-aa", Epoch: 3, Step: 99}
	TInfo.Insert <- ti

	// inserts ride a buffered channel; poll until the hub has stored this one
	deadline := time.Now().Add(time.Second)
	for {
		got := FetchTrainInfo("run-aa")
		if got.ID == "run-aa" {
			if got.Epoch != 3 || got.Step != 99 {
				t.Error("the stored snapshot came back mangled:", got)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("the hub never stored the inserted run")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := FetchTrainInfo("run-zz"); got.ID != "" {
		t.Error("expected the zero value for an unknown run but got", got)
	}

	// Del is unbuffered: once the send returns the hub has retired the run
	TInfo.Del <- "run-aa"

	if got := FetchTrainInfo("run-aa"); got.ID != "" {
		t.Error("expected the run to be gone after Del but got", got)
	}

	// a straggler report from a retired run must not respawn it
	TInfo.Insert <- ti
	for i := 0; i < 20; i++ {
		time.Sleep(5 * time.Millisecond)
		if got := FetchTrainInfo("run-aa"); got.ID != "" {
			t.Fatal("a retired run respawned from a stale insert")
		}
	}
}
