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
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"pextract/perror"
)

const (
	MsgNewQuery                = "newQuery"
	MsgNewResult               = "newResult"
	DefaultQueueKey            = "pextractQueue"
	DefaultResultChannelPrefix = "pextractResults"
	DefaultQueryChannel        = "pextractQueries"
	DefaultResultExpiration    = 10 * time.Minute
	DefaultQueryAnswerTimeout  = 5 * time.Minute
)

var (
	ErrorEmptyQueue = errors.New("no queries in the queue")
)

type Conf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DB       int    `json:"db"`
	Password string `json:"password"`
}

func (conf *Conf) ValidateAndDefaults() error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `redis`")
	}
	if conf.Host == "" {
		return fmt.Errorf("missing `redis.host`")
	}
	if conf.Port == 0 {
		return fmt.Errorf("missing `redis.port`")
	}
	return nil
}

// Query is a job request passed from the API server to a worker.
// Args must be one of the gob-registered Args types.
type Query struct {
	Channel string
	Func    string
	Args    any
}

func (q Query) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(q)
	return buf.Bytes(), err
}

func DeserializeQuery(data []byte) (Query, error) {
	var ans Query
	err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&ans)
	return ans, err
}

// Adapter provides a Redis-backed job queue with per-query
// pub/sub result channels.
type Adapter struct {
	ctx                 context.Context
	c                   *redis.Client
	channelQuery        string
	channelResultPrefix string
	cachePath           string
}

func (a *Adapter) TestConnection(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(a.ctx, timeout)
	defer cancel()
	tick := time.NewTicker(2 * time.Second)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return perror.TimeoutError{
				Msg: fmt.Sprintf("failed to connect to the Redis server within %s", timeout)}
		case <-tick.C:
			if err := a.c.Ping(ctx).Err(); err != nil {
				log.Error().Err(err).Msg("Redis connection test failed, retrying...")

			} else {
				return nil
			}
		}
	}
}

func (a *Adapter) SomeoneListens(query Query) (bool, error) {
	cmd := a.c.PubSubNumSub(a.ctx, query.Channel)
	if cmd.Err() != nil {
		return false, fmt.Errorf("failed to check channel listeners: %w", cmd.Err())
	}
	return cmd.Val()[query.Channel] > 0, nil
}

// PublishQuery enqueues a query and returns a channel the caller
// can wait on for the worker result.
func (a *Adapter) PublishQuery(query Query) (<-chan WorkerResult, error) {
	query.Channel = fmt.Sprintf("%s:%s", a.channelResultPrefix, uuid.New().String())
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Msg("publishing query")

	msg, err := query.Serialize()
	if err != nil {
		return nil, err
	}
	if err := a.c.LPush(a.ctx, DefaultQueueKey, msg).Err(); err != nil {
		return nil, err
	}
	sub := a.c.Subscribe(a.ctx, query.Channel)
	ans := make(chan WorkerResult)

	go func() {
		defer func() {
			sub.Close()
			close(ans)
		}()
		var result WorkerResult
		select {
		case item := <-sub.Channel():
			cmd := a.c.Get(a.ctx, item.Payload)
			if cmd.Err() != nil {
				result.Value = ErrorResult{Func: query.Func, Error: cmd.Err().Error()}

			} else {
				data, err := DeserializeWorkerResult([]byte(cmd.Val()))
				if err != nil {
					result.Value = ErrorResult{Func: query.Func, Error: err.Error()}

				} else {
					result = data
				}
			}
		case <-time.After(DefaultQueryAnswerTimeout):
			result.Value = ErrorResult{
				Func:  query.Func,
				Error: fmt.Sprintf("worker result timeout after %s", DefaultQueryAnswerTimeout),
			}
		}
		ans <- result
	}()
	return ans, a.c.Publish(a.ctx, a.channelQuery, MsgNewQuery).Err()
}

func (a *Adapter) DequeueQuery() (Query, error) {
	cmd := a.c.RPop(a.ctx, DefaultQueueKey)
	if cmd.Err() == redis.Nil {
		return Query{}, ErrorEmptyQueue

	} else if cmd.Err() != nil {
		return Query{}, fmt.Errorf("failed to dequeue query: %w", cmd.Err())
	}
	q, err := DeserializeQuery([]byte(cmd.Val()))
	if err != nil {
		return Query{}, fmt.Errorf("failed to deserialize query: %w", err)
	}
	return q, nil
}

func (a *Adapter) PublishResult(channelName string, value WorkerResult) error {
	log.Debug().
		Str("channel", channelName).
		Str("resultType", value.Value.Type().String()).
		Msg("publishing result")
	data, err := value.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	if err := a.c.Set(a.ctx, channelName, data, DefaultResultExpiration).Err(); err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}
	return a.c.Publish(a.ctx, channelName, channelName).Err()
}

// Subscribe returns a channel with worker wake-up messages.
func (a *Adapter) Subscribe() <-chan *redis.Message {
	sub := a.c.Subscribe(a.ctx, a.channelQuery)
	return sub.Channel()
}

func NewAdapter(ctx context.Context, conf *Conf, cachePath string) *Adapter {
	return &Adapter{
		ctx: ctx,
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		channelQuery:        DefaultQueryChannel,
		channelResultPrefix: DefaultResultChannelPrefix,
		cachePath:           cachePath,
	}
}
