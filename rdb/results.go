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
	"bytes"
	"encoding/gob"
	"time"
)

const (
	ResultTypeExtraction ResultType = "extraction"
	ResultTypeCorpusInfo ResultType = "corpusInfo"
	ResultTypeAlignInfo  ResultType = "alignInfo"
	ResultTypeError      ResultType = "error"
)

type ResultType string

func (rt ResultType) String() string {
	return string(rt)
}

// ----------------

// FuncResult is a value a worker function may produce.
// Concrete types must be gob-registered in main.
type FuncResult interface {
	Err() error
	Type() ResultType
}

type WorkerResult struct {
	ID           string
	Value        FuncResult
	HasUserError bool
	ProcBegin    time.Time
	ProcEnd      time.Time
}

func (wr *WorkerResult) ProcTime() time.Duration {
	return wr.ProcEnd.Sub(wr.ProcBegin)
}

func (wr *WorkerResult) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(wr)
	return buf.Bytes(), err
}

func DeserializeWorkerResult(data []byte) (WorkerResult, error) {
	var ans WorkerResult
	err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&ans)
	return ans, err
}
