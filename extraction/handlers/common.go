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

package handlers

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"pextract/corpus"
	"pextract/extractor"
	"pextract/rdb"
)

type queryProps struct {
	corpus     string
	langFrom   string
	langsTo    []string
	detector   extractor.DetectorType
	documents  []string
	err        error
	corpusConf *corpus.CorpusSetup
	status     int
}

func (qp queryProps) hasError() bool {
	return qp.err != nil
}

// DetermineQueryProps collects and validates the arguments shared by
// the extraction actions:
//   - `from` - source language code
//   - `to` - target language code(s), repeatable
//   - `detector` - construction family (dflt. "perfect")
//   - `doc` - document name(s) to restrict to, repeatable
func DetermineQueryProps(ctx *gin.Context, cConf *corpus.CorporaSetup) queryProps {
	var ans queryProps
	ans.corpus = ctx.Param("corpusId")
	corpusConf := cConf.Resources.Get(ans.corpus)
	if corpusConf == nil {
		ans.err = fmt.Errorf("corpus %s not found", ans.corpus)
		ans.status = http.StatusNotFound
		return ans
	}
	ans.corpusConf = corpusConf

	ans.langFrom = ctx.Query("from")
	if ans.langFrom == "" {
		ans.err = fmt.Errorf("missing `from` argument")
		ans.status = http.StatusBadRequest
		return ans
	}
	if !corpusConf.HasLanguage(ans.langFrom) {
		ans.err = fmt.Errorf("corpus %s has no language %s", ans.corpus, ans.langFrom)
		ans.status = http.StatusUnprocessableEntity
		return ans
	}
	ans.langsTo = ctx.QueryArray("to")
	for _, lang := range ans.langsTo {
		if lang == ans.langFrom {
			ans.err = fmt.Errorf("target language %s equals the source language", lang)
			ans.status = http.StatusUnprocessableEntity
			return ans
		}
		if !corpusConf.HasLanguage(lang) {
			ans.err = fmt.Errorf("corpus %s has no language %s", ans.corpus, lang)
			ans.status = http.StatusUnprocessableEntity
			return ans
		}
	}
	ans.detector = extractor.DetectorType(ctx.DefaultQuery("detector", "perfect"))
	if err := ans.detector.Validate(); err != nil {
		ans.err = err
		ans.status = http.StatusUnprocessableEntity
		return ans
	}
	ans.documents = ctx.QueryArray("doc")
	return ans
}

func TypedOrRespondError[T any](ctx *gin.Context, w rdb.WorkerResult) (T, bool) {
	if w.Value == nil {
		var ans T
		return ans, false
	}
	vt, ok := w.Value.(T)
	if !ok {
		var n T
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf(
				"unexpected type for %s: %s",
				reflect.TypeOf(n), reflect.TypeOf(w.Value)),
			http.StatusInternalServerError,
		)
		return n, false
	}
	return vt, true
}

func HandleWorkerError(ctx *gin.Context, result rdb.WorkerResult) bool {
	if err := result.Value.Err(); err != nil {
		if result.HasUserError {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer,
				uniresp.NewActionErrorFrom(err),
				http.StatusBadRequest,
			)

		} else {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer,
				uniresp.NewActionErrorFrom(err),
				http.StatusInternalServerError,
			)
		}
		return false
	}
	return true
}
