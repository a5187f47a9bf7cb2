//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer() {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		if len(ua) == 0 {
			return 0, nil
		} else {
			last := ua[len(ua)-1]
			buf.Write([]byte(last))
			return 1, nil
		}
	}

	//
	// SETUP
	//

	e := echo.New()

	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	switch lnch.Config.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// TRAINER ROUTES
	//

	//
	// [a] frontpage ("rt-frontpage.go")
	//

	e.GET("/", RtFrontpage)

	//
	// [b] model queries ("rt-queries.go")
	//

	e.GET("/analogy/:a/:b/:c", RtAnalogy)  // "u: /analogy/athens/greece/baghdad"
	e.GET("/neighbors/:wd", RtNearby)      // "u: /neighbors/france"
	e.GET("/neighbors/", RtGetEmptyGet)

	//
	// [c] training progress ("rt-queries.go")
	//

	e.GET("/progress/:id", RtProgress) // "u: /progress/6fe9a06d-e16c-4899-a432-bdbb8ff34b39"

	//
	// [d] graphing ("rt-graph.go")
	//

	e.GET("/graph/:wd", RtGraph) // "u: /graph/france"

	//
	// [e] websocket ("rt-websocket.go")
	//

	e.GET("/ws", RtWebsocket)

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort)))
}

// RtGetEmptyGet - somebody requested an empty value
func RtGetEmptyGet(c echo.Context) error {
	return emptyjsreturn(c)
}
