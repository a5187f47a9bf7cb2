//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"net/http"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vec"
	"github.com/e-gun/AnalogiaGoTrainer/internal/voc"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"github.com/labstack/echo/v4"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	// TheModel and TheVocab are set by main() before StartEchoServer(); every route reads them
	TheModel *vec.Model
	TheVocab *voc.Vocabulary

	// have the option to return/generate some sort of fail message...
	emptyjsreturn = func(c echo.Context) error { return c.JSONPretty(http.StatusOK, "", vv.JSONINDENT) }
)
