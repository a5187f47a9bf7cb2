//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
)

//
// CHANNEL-BASED PROGRESS REPORTING TO COMMUNICATE BETWEEN ROUTINES: the trainer writes; the web routes and websocket read
//

// TIReply - TrainInfoHub helper struct for returning the str.TrainInfo stored at map[Key]
type TIReply struct {
	Key      string
	Response chan str.TrainInfo
}

// TICount - TrainInfoHub helper struct for asking how many runs are registered
type TICount struct {
	Response chan int
}

type TrainInfoHubInterface struct {
	Insert  chan str.TrainInfo
	Request chan TIReply
	Count   chan TICount
	Del     chan string
}

// BuildTrainInfoHubIf - build the TrainInfoHubInterface that will interact with TrainInfoHub (one and only one built at app startup)
func BuildTrainInfoHubIf() *TrainInfoHubInterface {
	return &TrainInfoHubInterface{
		Insert:  make(chan str.TrainInfo, 2*runtime.NumCPU()),
		Request: make(chan TIReply),
		Count:   make(chan TICount),
		Del:     make(chan string),
	}
}

// TrainInfoHub - the loop that lets you read/write training run info via the TInfo global (a *TrainInfoHubInterface)
func TrainInfoHub() {
	const (
		FINWAIT = 10
		FINCHK  = 60
	)

	var (
		Allinfo  = make(map[string]str.TrainInfo)
		Finished = make(map[string]time.Time)
	)

	reporter := func(r TIReply) {
		if _, ok := Allinfo[r.Key]; ok {
			r.Response <- Allinfo[r.Key]
		} else {
			// an empty ID triggers a break in rt-websocket.go
			r.Response <- str.TrainInfo{}
		}
	}

	// a run that respawns right after deletion would re-register stale info; rare, but...
	storeunlessfinished := func(ti str.TrainInfo) {
		if _, ok := Finished[ti.ID]; !ok {
			Allinfo[ti.ID] = ti
		}
	}

	// storeunlessfinished() requires a cleanup function too...
	cleanfinished := func() {
		for {
			for f := range Finished {
				ft := Finished[f]
				later := ft.Add(time.Second * FINWAIT)
				if time.Now().After(later) {
					delete(Finished, f)
				}
			}
			time.Sleep(time.Second * FINCHK)
		}
	}

	go cleanfinished()

	// the main loop; it will never exit
	for {
		select {
		case rq := <-TInfo.Request:
			reporter(rq)
		case ti := <-TInfo.Insert:
			storeunlessfinished(ti)
		case ct := <-TInfo.Count:
			ct.Response <- len(Allinfo)
		case del := <-TInfo.Del:
			Finished[del] = time.Now()
			delete(Allinfo, del)
		}
	}
}

// FetchTrainInfo - get the current snapshot of a training run; the zero value means "no such run"
func FetchTrainInfo(id string) str.TrainInfo {
	responder := TIReply{Key: id, Response: make(chan str.TrainInfo)}
	TInfo.Request <- responder
	return <-responder.Response
}

//
// FOR DEBUGGING ONLY
//

// wsclientreport - report the # and names of the active wsclients every N seconds
func wsclientreport(d time.Duration) {
	// add the following to main.go: "go wsclientreport()"
	for {
		cl := WebsocketPool.ClientMap
		var cc []string
		for k := range cl {
			cc = append(cc, k.ID)
		}
		Msg.NOTE(fmt.Sprintf("%d WebsocketPool clients: %s", len(cl), strings.Join(cc, ", ")))
		time.Sleep(d)
	}
}
