//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"net/http"
	"runtime"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/e-gun/AnalogiaGoTrainer/internal/lnch"
	"github.com/e-gun/AnalogiaGoTrainer/internal/mm"
	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
	"github.com/labstack/echo/v4"
)

//
// ROUTING
//

const frontpagehtml = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
</head>
<body>
    <h1>{{.Title}}</h1>
    <p>{{.Version}}</p>
    <p>{{.Env}}</p>
    <p>Model: {{.Model}}</p>
    <p>Uptime: {{.Uptime}}</p>
    <p>Requests served: {{.Served}}</p>
    <h2>Routes</h2>
    <ul>
        <li><code>/analogy/{a}/{b}/{c}</code></li>
        <li><code>/neighbors/{word}</code></li>
        <li><code>/graph/{word}</code></li>
        <li><code>/progress/{runid}</code></li>
        <li><code>/ws</code></li>
    </ul>
</body>
</html>
`

// RtFrontpage - send the html for "/"
func RtFrontpage(c echo.Context) error {
	const (
		STATTMPL = "%s: %d"
		JOINER   = " * "
		NOMODEL  = "no model loaded"
		MODELSTR = "%d words, %d dimensions, step %d"
	)

	Msg.LogPaths("RtFrontpage()")

	gc := lnch.GitCommit
	if gc == "" {
		gc = "UNKNOWN"
	}
	ver := fmt.Sprintf("Version: %s [git: %s]", vv.VERSION+lnch.VersSuppl, gc)

	env := fmt.Sprintf("%s: %s - %s (%d workers)", runtime.Version(), runtime.GOOS, runtime.GOARCH, lnch.Config.WorkerCount)

	mdl := NOMODEL
	if TheModel != nil {
		mdl = fmt.Sprintf(MODELSTR, TheModel.Vocab.Size(), TheModel.Dim, TheModel.GlobalStep.Load())
	}

	// svd() will report what requests have been made
	svd := func() string {
		ctr := mm.FetchPathStats()
		var pairs []string
		for k, v := range ctr {
			this := strings.TrimPrefix(k, "Rt")
			this = strings.TrimSuffix(this, "()")
			pairs = append(pairs, fmt.Sprintf(STATTMPL, this, v))
		}
		sort.Strings(pairs)
		return strings.Join(pairs, JOINER)
	}

	fp := struct {
		Title   string
		Version string
		Env     string
		Model   string
		Uptime  string
		Served  string
	}{
		Title:   vv.MYNAME,
		Version: ver,
		Env:     env,
		Model:   mdl,
		Uptime:  time.Since(Msg.Lnc).Truncate(time.Second).String(),
		Served:  svd(),
	}

	tmpl, e := template.New("fp").Parse(frontpagehtml)
	Msg.EC(e)

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, fp)
	Msg.EC(err)

	return c.HTML(http.StatusOK, buf.String())
}
