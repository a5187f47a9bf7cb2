//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/e-gun/AnalogiaGoTrainer/internal/gen"
	"github.com/e-gun/AnalogiaGoTrainer/internal/str"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vlt"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"github.com/labstack/echo/v4"
)

//
// MODEL QUERY ROUTES
//

// AnalogyJSON - the response shape for RtAnalogy
type AnalogyJSON struct {
	A         string   `json:"a"`
	B         string   `json:"b"`
	C         string   `json:"c"`
	Predicted []string `json:"predicted"`
}

// NeighborsJSON - the response shape for RtNearby
type NeighborsJSON struct {
	Word      string         `json:"word"`
	Neighbors []str.Neighbor `json:"neighbors"`
}

// RtAnalogy - answer "a is to b as c is to ?" with the top candidates
func RtAnalogy(c echo.Context) error {
	Msg.LogPaths("RtAnalogy()")

	if TheModel == nil {
		return emptyjsreturn(c)
	}

	a := gen.Purgechars(vv.USELESSINPUT, c.Param("a"))
	b := gen.Purgechars(vv.USELESSINPUT, c.Param("b"))
	cc := gen.Purgechars(vv.USELESSINPUT, c.Param("c"))

	jso := AnalogyJSON{
		A:         a,
		B:         b,
		C:         cc,
		Predicted: TheModel.Analogy(a, b, cc),
	}

	return gen.JSONresponse(c, jso)
}

// RtNearby - the nearest neighbors of a word; unknown words collapse onto UNK
func RtNearby(c echo.Context) error {
	Msg.LogPaths("RtNearby()")

	if TheModel == nil {
		return emptyjsreturn(c)
	}

	wd := gen.Purgechars(vv.USELESSINPUT, c.Param("wd"))
	nn := TheModel.Nearby([]string{wd}, vv.NEARBYCOUNT)

	jso := NeighborsJSON{
		Word:      wd,
		Neighbors: nn[wd],
	}

	return gen.JSONresponse(c, jso)
}

// RtProgress - a JSON snapshot of a training run in progress
func RtProgress(c echo.Context) error {
	Msg.LogPaths("RtProgress()")

	id := c.Param("id")
	ti := vlt.FetchTrainInfo(id)
	if ti.ID == "" {
		return emptyjsreturn(c)
	}

	return gen.JSONresponse(c, vlt.PollDataFromInfo(ti))
}
