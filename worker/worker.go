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
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"pextract/corpus"
	"pextract/engine"
	"pextract/perror"
	"pextract/rdb"
	"pextract/results"
)

const (
	DefaultTickerInterval = 2 * time.Second
)

type jobLogger interface {
	Log(rec results.JobLog)
}

type recoveredError struct {
	error
}

// Worker picks extraction jobs from the Redis queue and runs them.
// Several workers may listen on the same queue; each query is
// processed by exactly one of them.
type Worker struct {
	ID         string
	corpora    *corpus.CorporaSetup
	messages   <-chan *redis.Message
	radapter   *rdb.Adapter
	archive    *engine.ResultArchive
	exitEvent  chan os.Signal
	ticker     time.Ticker
	jobLogger  jobLogger
	currJobLog *results.JobLog
}

// finishJobLog closes the current job log entry and hands it over to
// the job logger. A repeated call within the same job (e.g. when the
// first publish attempt fails and an error result is published next)
// finds no open entry and just reports the current time.
func (w *Worker) finishJobLog(jobErr error) (procBegin, procEnd time.Time) {
	procEnd = time.Now()
	if w.currJobLog == nil {
		return procEnd, procEnd
	}
	w.currJobLog.End = procEnd
	w.currJobLog.Err = jobErr
	w.jobLogger.Log(*w.currJobLog)
	procBegin = w.currJobLog.Begin
	w.currJobLog = nil
	return procBegin, procEnd
}

func (w *Worker) publishResult(res rdb.FuncResult, channel string) error {
	procBegin, procEnd := w.finishJobLog(res.Err())
	ans := rdb.WorkerResult{
		ID:           uuid.New().String(),
		Value:        res,
		HasUserError: isUserError(res.Err()),
		ProcBegin:    procBegin,
		ProcEnd:      procEnd,
	}
	return w.radapter.PublishResult(channel, ans)
}

func isUserError(err error) bool {
	var inpErr perror.InputError
	return errors.As(err, &inpErr)
}

// normalizeErr makes an error safe for gob transport. Only the error
// types registered in main survive encoding; anything else travels
// as a plain message.
func normalizeErr(err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case perror.InputError, perror.InternalError, perror.FormatError,
		perror.TimeoutError, perror.RecoveredError, rdb.DecodedError:
		return err
	}
	return rdb.DecodedError{Msg: err.Error()}
}

func (w *Worker) sendPublishingErr(query rdb.Query, err error) {
	if err := w.publishResult(rdb.ErrorResult{Func: query.Func, Error: err.Error()}, query.Channel); err != nil {
		log.Error().Err(err).Msg("failed to publish general publishing error")
	}
}

func (w *Worker) runQueryProtected(query rdb.Query) (ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = recoveredError{fmt.Errorf("recovered error: %v", r)}
			return
		}
	}()
	switch query.Func {
	case "extraction":
		args, ok := query.Args.(rdb.ExtractionArgs)
		if !ok {
			return fmt.Errorf("invalid args for %s", query.Func)
		}
		ans := w.extraction(args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	case "corpusInfo":
		args, ok := query.Args.(rdb.CorpusInfoArgs)
		if !ok {
			return fmt.Errorf("invalid args for %s", query.Func)
		}
		ans := w.corpusInfo(args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	case "alignInfo":
		args, ok := query.Args.(rdb.AlignInfoArgs)
		if !ok {
			return fmt.Errorf("invalid args for %s", query.Func)
		}
		ans := w.alignInfo(args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	default:
		ans := rdb.ErrorResult{Error: fmt.Sprintf("unknown query function: %s", query.Func)}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) tryNextQuery() error {

	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	query, err := w.radapter.DequeueQuery()
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Any("args", query.Args).
		Msg("received query")

	isActive, err := w.radapter.SomeoneListens(query)
	if err != nil {
		return err
	}
	if !isActive {
		log.Warn().
			Str("func", query.Func).
			Str("channel", query.Channel).
			Any("args", query.Args).
			Msg("worker found an inactive query")
		return nil
	}

	w.currJobLog = &results.JobLog{
		WorkerID: w.ID,
		Func:     query.Func,
		Begin:    time.Now(),
	}

	err = w.runQueryProtected(query)
	var rcvErr recoveredError
	if errors.As(err, &rcvErr) {
		ans := rdb.ErrorResult{
			Error: fmt.Sprintf("worker panicked: %s", rcvErr.Error()),
			Func:  query.Func,
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) Listen() {
	for {
		select {
		case <-w.ticker.C:
			w.tryNextQuery()
		case <-w.exitEvent:
			log.Info().Msg("worker exiting")
			return
		case msg := <-w.messages:
			if msg.Payload == rdb.MsgNewQuery {
				w.tryNextQuery()
			}
		}
	}
}

func NewWorker(
	workerID string,
	corpora *corpus.CorporaSetup,
	radapter *rdb.Adapter,
	messages <-chan *redis.Message,
	exitEvent chan os.Signal,
	jobLogger jobLogger,
	archive *engine.ResultArchive,
) *Worker {
	return &Worker{
		ID:        workerID,
		corpora:   corpora,
		radapter:  radapter,
		messages:  messages,
		exitEvent: exitEvent,
		ticker:    *time.NewTicker(DefaultTickerInterval),
		jobLogger: jobLogger,
		archive:   archive,
	}
}
