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
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// CacheResult wraps a query dispatch with a file-backed result cache.
// With no cache path configured it is a pass-through. Cache files are
// keyed by the query function and a hash of its arguments.
func (a *Adapter) CacheResult(
	fn func(Query) (<-chan WorkerResult, error),
	query Query,
) (<-chan WorkerResult, error) {
	if len(a.cachePath) == 0 {
		return fn(query)
	}

	hashKey := sha1.Sum([]byte(fmt.Sprintf("%s#%v", query.Func, query.Args)))
	path := filepath.Join(a.cachePath, query.Func+hex.EncodeToString(hashKey[:]))

	pe := fs.PathExists(path)
	isf, _ := fs.IsFile(path)
	if pe && isf {
		ans := make(chan WorkerResult)
		go func() {
			defer close(ans)
			var result WorkerResult
			content, err := os.ReadFile(path)
			if err != nil {
				log.Err(err).Msgf("Error while reading cache file %s", path)
				result.Value = ErrorResult{Func: query.Func, Error: err.Error()}

			} else {
				result, err = DeserializeWorkerResult(content)
				if err != nil {
					log.Err(err).Msgf("Error while decoding cache file %s", path)
					result.Value = ErrorResult{Func: query.Func, Error: err.Error()}
				}
			}
			ans <- result
		}()
		return ans, nil
	}

	wr, err := fn(query)
	if err != nil {
		return nil, err
	}
	ans := make(chan WorkerResult)
	go func(wr <-chan WorkerResult) {
		defer close(ans)
		rawResult := <-wr
		if rawResult.Value != nil && rawResult.Value.Err() == nil {
			data, err := rawResult.Serialize()
			if err != nil {
				log.Err(err).Msg("Error while serializing result for cache")

			} else if err := os.WriteFile(path, data, 0644); err != nil {
				log.Err(err).Msgf("Error while writing cache file %s", path)
			}
		}
		ans <- rawResult
	}(wr)
	return ans, nil
}
