//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/e-gun/AnalogiaGoTrainer/internal/vv"
)

var ErrBadCheckpoint = errors.New("cannot restore model checkpoint")

// checkpointdata - everything needed to resume training or to serve queries without retraining
type checkpointdata struct {
	Version    string    `json:"version"`
	Dim        int       `json:"dim"`
	VocabSize  int       `json:"vocabsize"`
	GlobalStep int64     `json:"globalstep"`
	Win        []float64 `json:"win"`
	Wout       []float64 `json:"wout"`
}

// SaveCheckpoint - gzipped JSON of both matrices plus the step counter
func (m *Model) SaveCheckpoint(dir string) error {
	const (
		MSG1 = "SaveCheckpoint(): wrote '%s' (%dM)"
		GZ   = gzip.BestSpeed
	)

	ck := checkpointdata{
		Version:    vv.VERSION,
		Dim:        m.Dim,
		VocabSize:  m.Vocab.Size(),
		GlobalStep: m.GlobalStep.Load(),
		Win:        m.Win,
		Wout:       m.Wout,
	}

	eb, err := json.Marshal(ck)
	if err != nil {
		return err
	}

	// compressed is c. 33% of original
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	if err != nil {
		return err
	}
	_, err = zw.Write(eb)
	if err != nil {
		return err
	}
	err = zw.Close()
	if err != nil {
		return err
	}

	fl := filepath.Join(dir, vv.CHECKPOINTBASENAME)
	err = os.WriteFile(fl, buf.Bytes(), vv.WRITEPERMS)
	if err != nil {
		return err
	}

	Msg.PEEK(fmt.Sprintf(MSG1, fl, buf.Len()/1024/1024))
	buf.Reset()
	return nil
}

// RestoreCheckpoint - load a saved checkpoint into a model built from the same vocabulary
func (m *Model) RestoreCheckpoint(dir string) error {
	const (
		FAIL1 = "%w: missing file '%s'"
		FAIL2 = "%w: '%s' is corrupt (%v)"
		FAIL3 = "%w: dimension mismatch: have %dx%d, want %dx%d"
	)

	fl := filepath.Join(dir, vv.CHECKPOINTBASENAME)
	compressed, e := os.ReadFile(fl)
	if e != nil {
		return fmt.Errorf(FAIL1, ErrBadCheckpoint, fl)
	}

	zr, e := gzip.NewReader(bytes.NewReader(compressed))
	if e != nil {
		return fmt.Errorf(FAIL2, ErrBadCheckpoint, fl, e)
	}
	decompr, e := io.ReadAll(zr)
	if e != nil {
		return fmt.Errorf(FAIL2, ErrBadCheckpoint, fl, e)
	}
	e = zr.Close()
	if e != nil {
		return fmt.Errorf(FAIL2, ErrBadCheckpoint, fl, e)
	}

	var ck checkpointdata
	e = json.Unmarshal(decompr, &ck)
	if e != nil {
		return fmt.Errorf(FAIL2, ErrBadCheckpoint, fl, e)
	}

	if ck.Dim != m.Dim || ck.VocabSize != m.Vocab.Size() {
		return fmt.Errorf(FAIL3, ErrBadCheckpoint, ck.VocabSize, ck.Dim, m.Vocab.Size(), m.Dim)
	}

	copy(m.Win, ck.Win)
	copy(m.Wout, ck.Wout)
	m.GlobalStep.Store(ck.GlobalStep)

	return nil
}
