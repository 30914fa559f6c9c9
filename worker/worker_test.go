// Copyright 2024 Institute for Language Sciences,
//                Faculty of Humanities, Utrecht University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package worker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pextract/perror"
	"pextract/rdb"
	"pextract/results"
)

type fakeJobLogger struct {
	records []results.JobLog
}

func (f *fakeJobLogger) Log(rec results.JobLog) {
	f.records = append(f.records, rec)
}

func TestNormalizeErrNil(t *testing.T) {
	assert.Nil(t, normalizeErr(nil))
}

func TestNormalizeErrKeepsTransportSafeTypes(t *testing.T) {
	err := perror.InputError{Msg: "bad input"}
	assert.Equal(t, err, normalizeErr(err))

	ferr := perror.FormatError{Msg: "broken link"}
	assert.Equal(t, ferr, normalizeErr(ferr))
}

func TestNormalizeErrWrapsForeignTypes(t *testing.T) {
	err := fmt.Errorf("opening file: %w", errors.New("no such file"))
	norm := normalizeErr(err)
	var derr rdb.DecodedError
	assert.True(t, errors.As(norm, &derr))
	assert.Equal(t, err.Error(), norm.Error())
}

func TestIsUserError(t *testing.T) {
	assert.True(t, isUserError(perror.InputError{Msg: "x"}))
	assert.False(t, isUserError(errors.New("x")))
	assert.False(t, isUserError(nil))
}

func TestFinishJobLogClosesEntry(t *testing.T) {
	fl := &fakeJobLogger{}
	w := &Worker{ID: "w1", jobLogger: fl}
	begin := time.Now().Add(-time.Second)
	w.currJobLog = &results.JobLog{WorkerID: "w1", Func: "extraction", Begin: begin}

	jobErr := errors.New("failed")
	procBegin, procEnd := w.finishJobLog(jobErr)
	assert.Equal(t, begin, procBegin)
	assert.False(t, procEnd.Before(begin))
	assert.Nil(t, w.currJobLog)
	assert.Len(t, fl.records, 1)
	assert.Equal(t, "extraction", fl.records[0].Func)
	assert.Equal(t, jobErr, fl.records[0].Err)
}

func TestFinishJobLogRepeatedCallIsSafe(t *testing.T) {
	fl := &fakeJobLogger{}
	w := &Worker{ID: "w1", jobLogger: fl}
	w.currJobLog = &results.JobLog{WorkerID: "w1", Func: "extraction", Begin: time.Now()}

	w.finishJobLog(nil)
	// an error result published after a failed publish attempt finds
	// the entry already closed
	procBegin, procEnd := w.finishJobLog(nil)
	assert.Equal(t, procBegin, procEnd)
	assert.Len(t, fl.records, 1)
}
