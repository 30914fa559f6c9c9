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

package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog/log"

	"pextract/cnf"
	"pextract/engine"
	"pextract/monitoring"
	"pextract/rdb"
	"pextract/results"
	"pextract/worker"
)

func getWorkerID() (workerID string) {
	workerID = getEnv("WORKER_ID")
	if workerID == "" {
		workerID = strconv.Itoa(os.Getpid())
	}
	return
}

// -------

type NullStatusWriter struct{}

func (n *NullStatusWriter) Write(rec results.JobLog) {}

// -------

func runWorker(conf *cnf.Conf) {
	workerID := getWorkerID()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(ctx, conf.Redis, conf.ResultCacheDir)
	err := radapter.TestConnection(redisConnectionTestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}

	var statusWriter monitoring.StatusWriter
	if conf.Monitoring != nil {
		tsWriter, err := monitoring.NewTimescaleDBWriter(
			ctx, conf.Monitoring.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize the monitoring writer")
			return
		}
		tsWriter.Start(ctx)
		statusWriter = tsWriter

	} else {
		log.Warn().Msg("job monitoring not configured, status reporting will be disabled")
		statusWriter = &NullStatusWriter{}
	}

	jobLogger := monitoring.NewWorkerJobLogger(statusWriter, conf.TimezoneLocation())
	jobLogger.Start(ctx)

	var archive *engine.ResultArchive
	if conf.ResultDB != nil {
		db, err := engine.Open(conf.ResultDB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open the result archive database")
			return
		}
		archive = engine.NewResultArchive(ctx, db)
	}

	exitEvent := make(chan os.Signal, 1)
	signal.Notify(exitEvent, syscall.SIGINT, syscall.SIGTERM)

	ch := radapter.Subscribe()
	wrk := worker.NewWorker(
		workerID, conf.CorporaSetup, radapter, ch, exitEvent, jobLogger, archive)
	log.Info().Str("workerId", workerID).Msg("starting worker")
	wrk.Listen()

	if err := jobLogger.Stop(ctx); err != nil {
		log.Error().Err(err).Msg("failed to stop the job logger")
	}
}
