//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"github.com/gorilla/websocket"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// WEBSOCKET INFRASTRUCTURE: see https://tutorialedge.net/projects/chat-system-in-go-and-react/part-4-handling-multiple-clients/
//

type PollData struct {
	Epoch     int     `json:"Epoch"`
	Epochs    int     `json:"Epochs"`
	Step      int64   `json:"Step"`
	Words     int64   `json:"Words"`
	LearnRate float64 `json:"Learnrate"`
	WPS       float64 `json:"Wordspersecond"`
	Elapsed   string  `json:"Elapsed"`
	ID        string  `json:"ID"`
	Exhausted bool
}

type WSClient struct {
	ID   string
	Conn *websocket.Conn
	Pool *WSPool
}

type WSPool struct {
	Add       chan *WSClient
	Remove    chan *WSClient
	ClientMap map[*WSClient]bool
	JSO       chan *WSJSOut
	ReadID    chan string
}

type WSJSOut struct {
	V     string `json:"value"`
	ID    string `json:"ID"`
	Close string `json:"close"`
}

// ReceiveID - get the training run ID from the client; record it; then exit
func (c *WSClient) ReceiveID() {
	const (
		FAIL1 = `WSClient.ReceiveID() failed`
		FAIL2 = `WSClient.ReceiveID() never received the run id`
	)

	quit := time.Now().Add(time.Second * 1)

	for {
		_, m, err := c.Conn.ReadMessage()
		if err != nil {
			Msg.FYI(FAIL1)
			return
		}

		if len(m) != 0 {
			id := string(m)
			id = strings.Replace(id, `"`, "", -1)
			c.ID = id
			c.Pool.ReadID <- id
			break
		}

		if time.Now().After(quit) {
			Msg.FYI(FAIL2)
			break
		}
	}
}

// WSMessageLoop - output the constantly updated training progress to the websocket; then exit
func (c *WSClient) WSMessageLoop() {
	const (
		FAIL    = `WSClient.WSMessageLoop() never found '%s' in the run map`
		SUCCESS = `WSClient.WSMessageLoop() found '%s' in the run map`
	)

	// wait for the run to exist
	quit := time.Now().Add(time.Second * 1)

	for {
		ti := FetchTrainInfo(c.ID)
		if ti.ID != "" {
			Msg.FYI(fmt.Sprintf(SUCCESS, c.ID))
			break
		}

		if time.Now().After(quit) {
			Msg.FYI(fmt.Sprintf(FAIL, c.ID))
			break
		}
	}

	launched := time.Now()

	// loop until the trainer marks the run exhausted or deletes it
	for {
		ti := FetchTrainInfo(c.ID)
		if ti.ID == "" {
			break
		}

		pd := PollData{
			Epoch:     ti.Epoch,
			Epochs:    ti.Epochs,
			Step:      ti.Step,
			Words:     ti.Words,
			LearnRate: ti.LearnRate,
			WPS:       ti.WPS,
			Elapsed:   fmt.Sprintf("%.1fs", time.Now().Sub(launched).Seconds()),
			ID:        c.ID,
			Exhausted: ti.Exhausted,
		}

		jso := &WSJSOut{
			V:     formatpoll(pd),
			ID:    c.ID,
			Close: "open",
		}

		c.Pool.JSO <- jso

		if ti.Exhausted {
			break
		}
		time.Sleep(vv.WSPOLLINGPAUSE)
	}
	WebsocketPool.Remove <- c
}

// WSPoolStartListening - the WSPool will listen for activity on its various channels (only called once at app startup)
func (pool *WSPool) WSPoolStartListening() {
	const (
		MSG1 = "Starting polling loop for %s"
		MSG2 = "WSPool client failed on WriteMessage()"
	)

	writemsg := func(jso *WSJSOut) {
		for cl := range pool.ClientMap {
			if cl.ID == jso.ID {
				js, y := json.Marshal(jso)
				Msg.EC(y)
				e := cl.Conn.WriteMessage(websocket.TextMessage, js)
				if e != nil {
					Msg.WARN(MSG2)
					delete(pool.ClientMap, cl)
				}
			}
		}
	}

	for {
		select {
		case id := <-pool.Add:
			pool.ClientMap[id] = true
		case id := <-pool.Remove:
			delete(pool.ClientMap, id)
		case id := <-pool.ReadID:
			Msg.PEEK(fmt.Sprintf(MSG1, id))
		case wrt := <-pool.JSO:
			writemsg(wrt)
		}
	}
}

// WSFillNewPool - build a new WSPool (one and only one built at app startup)
func WSFillNewPool() *WSPool {
	return &WSPool{
		Add:       make(chan *WSClient),
		Remove:    make(chan *WSClient),
		ClientMap: make(map[*WSClient]bool),
		JSO:       make(chan *WSJSOut),
		ReadID:    make(chan string),
	}
}

// formatpoll - build HTML to send to the JS on the other side
func formatpoll(pd PollData) string {
	// example:
	// Epoch <span class="progress">3/15</span>: lr 0.0198&nbsp;(12.3s)<br>
	// (<span class="progress">184021</span> words/sec)<br>

	const (
		EP  = `Epoch <span class="progress">%d/%d</span>: lr %.4f&nbsp;(%s)<br>`
		WPS = `(<span class="progress">%.0f</span> words/sec)<br>`
		FIN = `Training complete&nbsp;(%s)<br>`
	)

	var htm string
	if pd.Exhausted {
		htm = fmt.Sprintf(FIN, pd.Elapsed)
	} else {
		htm = fmt.Sprintf(EP, pd.Epoch, pd.Epochs, pd.LearnRate, pd.Elapsed)
		if pd.WPS > 0 {
			htm += fmt.Sprintf(WPS, pd.WPS)
		}
	}

	return htm
}

// PollDataFromInfo - shape a training run snapshot for the JSON progress route
func PollDataFromInfo(ti str.TrainInfo) PollData {
	return PollData{
		Epoch:     ti.Epoch,
		Epochs:    ti.Epochs,
		Step:      ti.Step,
		Words:     ti.Words,
		LearnRate: ti.LearnRate,
		WPS:       ti.WPS,
		ID:        ti.ID,
		Exhausted: ti.Exhausted,
	}
}
