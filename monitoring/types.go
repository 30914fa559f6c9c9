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
	"time"

	"pextract/results"
)

// StatusWriter is a sink for finished job records.
type StatusWriter interface {
	Write(rec results.JobLog)
}

// WorkerLoad summarizes the activity of one or more workers.
type WorkerLoad struct {
	NumWorkers    int       `json:"numWorkers"`
	NumJobs       int       `json:"numJobs"`
	NumErrors     int       `json:"numErrors"`
	TotalTimeSecs float64   `json:"totalTimeSecs"`
	FirstUpdate   time.Time `json:"firstUpdate"`
	LastUpdate    time.Time `json:"lastUpdate"`
}

// WorkersLoad maps a worker ID to its accumulated load.
type WorkersLoad map[string]WorkerLoad

func (wl WorkersLoad) SumLoad(tz *time.Location) WorkerLoad {
	var ans WorkerLoad
	for _, item := range wl {
		ans.NumWorkers++
		ans.NumJobs += item.NumJobs
		ans.NumErrors += item.NumErrors
		ans.TotalTimeSecs += item.TotalTimeSecs
		if ans.FirstUpdate.IsZero() || item.FirstUpdate.Before(ans.FirstUpdate) {
			ans.FirstUpdate = item.FirstUpdate
		}
		if item.LastUpdate.After(ans.LastUpdate) {
			ans.LastUpdate = item.LastUpdate
		}
	}
	ans.FirstUpdate = ans.FirstUpdate.In(tz)
	ans.LastUpdate = ans.LastUpdate.In(tz)
	return ans
}

func (wl WorkersLoad) cleanOldRecords() {
	now := time.Now()
	for k, item := range wl {
		if now.Sub(item.LastUpdate) > StaleWorkerLoadTTL {
			delete(wl, k)
		}
	}
}
