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

package rdb

import (
	"encoding/gob"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func init() {
	gob.Register(ExtractionArgs{})
	gob.Register(ErrorResult{})
}

func TestQuerySerialization(t *testing.T) {
	q := Query{
		Channel: "pextractResults:123",
		Func:    "extraction",
		Args: ExtractionArgs{
			CorpusID: "dpc",
			DataDir:  "/data/dpc",
			LangFrom: "en",
			LangsTo:  []string{"nl", "fr"},
			Detector: "perfect",
			MaxItems: 50,
		},
	}
	data, err := q.Serialize()
	assert.NoError(t, err)

	q2, err := DeserializeQuery(data)
	assert.NoError(t, err)
	assert.Equal(t, q.Channel, q2.Channel)
	assert.Equal(t, q.Func, q2.Func)
	args, ok := q2.Args.(ExtractionArgs)
	assert.True(t, ok)
	assert.Equal(t, "dpc", args.CorpusID)
	assert.Equal(t, []string{"nl", "fr"}, args.LangsTo)
}

func TestWorkerResultSerialization(t *testing.T) {
	begin := time.Now().Add(-2 * time.Second)
	wr := WorkerResult{
		ID:           "res1",
		Value:        ErrorResult{Func: "extraction", Error: "something failed"},
		HasUserError: true,
		ProcBegin:    begin,
		ProcEnd:      begin.Add(time.Second),
	}
	data, err := wr.Serialize()
	assert.NoError(t, err)

	wr2, err := DeserializeWorkerResult(data)
	assert.NoError(t, err)
	assert.Equal(t, "res1", wr2.ID)
	assert.True(t, wr2.HasUserError)
	assert.EqualError(t, wr2.Value.Err(), "something failed")
	assert.Equal(t, time.Second, wr2.ProcTime())
}

func TestErrorResultWithoutError(t *testing.T) {
	res := ErrorResult{Func: "extraction"}
	assert.NoError(t, res.Err())
}
