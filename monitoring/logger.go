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

package monitoring

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"pextract/results"
)

const (
	StaleWorkerLoadTTL       = time.Hour * 24
	tickerIntervalSecs int64 = 10
	ticksPerLoadReport int64 = 30
)

// WorkerJobLogger keeps an in-memory picture of worker activity
// and forwards each finished job to the configured status writer.
// The accumulated load is reported to the application log
// periodically.
type WorkerJobLogger struct {
	loadData     WorkersLoad
	dataLock     sync.RWMutex
	tz           *time.Location
	numTicks     int64
	statusWriter StatusWriter
}

func (w *WorkerJobLogger) Log(rec results.JobLog) {
	w.dataLock.Lock()
	defer w.dataLock.Unlock()

	entry, ok := w.loadData[rec.WorkerID]
	if !ok {
		entry.FirstUpdate = rec.Begin
	}
	entry.NumJobs++
	entry.LastUpdate = rec.End
	if rec.Err != nil {
		entry.NumErrors++
	}
	entry.TotalTimeSecs += rec.End.Sub(rec.Begin).Seconds()
	w.loadData[rec.WorkerID] = entry
	w.statusWriter.Write(rec)
}

func (w *WorkerJobLogger) TotalLoad() WorkerLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	return w.loadData.SumLoad(w.tz)
}

func (w *WorkerJobLogger) reportLoad() {
	load := w.TotalLoad()
	log.Info().
		Int("numWorkers", load.NumWorkers).
		Int("numJobs", load.NumJobs).
		Int("numErrors", load.NumErrors).
		Float64("totalTimeSecs", load.TotalTimeSecs).
		Msg("worker load report")
}

func (w *WorkerJobLogger) Start(ctx context.Context) {
	ticksPerCleanup := int64(StaleWorkerLoadTTL.Seconds()) / tickerIntervalSecs
	log.Info().Msg("starting worker job logger")
	go func() {
		ticker := time.NewTicker(time.Duration(tickerIntervalSecs) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("requesting worker job logger stop")
				return
			case <-ticker.C:
				w.numTicks++
				if w.numTicks%ticksPerLoadReport == 0 {
					w.reportLoad()
				}
				if w.numTicks%ticksPerCleanup == 0 {
					w.dataLock.Lock()
					w.loadData.cleanOldRecords()
					w.dataLock.Unlock()
					w.numTicks = 0
				}
			}
		}
	}()
}

func (w *WorkerJobLogger) Stop(ctx context.Context) error {
	log.Info().Msg("shutting down worker job logger")
	return nil
}

func NewWorkerJobLogger(
	statusWriter StatusWriter,
	tz *time.Location,
) *WorkerJobLogger {
	return &WorkerJobLogger{
		loadData:     make(WorkersLoad),
		statusWriter: statusWriter,
		tz:           tz,
	}
}
