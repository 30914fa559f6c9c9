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

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"pextract/corpus"
	"pextract/engine"
	"pextract/rdb"
	"pextract/results"
)

// Actions exposes the extraction service HTTP endpoints. The actual
// work is performed by workers; handlers validate arguments, enqueue
// jobs and translate worker results into HTTP responses.
type Actions struct {
	conf     *corpus.CorporaSetup
	radapter *rdb.Adapter
	archive  *engine.ResultArchive
}

func NewActions(
	conf *corpus.CorporaSetup,
	radapter *rdb.Adapter,
	archive *engine.ResultArchive,
) *Actions {
	return &Actions{
		conf:     conf,
		radapter: radapter,
		archive:  archive,
	}
}

func (a *Actions) publishAndWait(
	ctx *gin.Context,
	fn string,
	args any,
) (rdb.WorkerResult, bool) {
	wait, err := a.radapter.CacheResult(a.radapter.PublishQuery, rdb.Query{
		Func: fn,
		Args: args,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return rdb.WorkerResult{}, false
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return rdb.WorkerResult{}, false
	}
	return rawResult, true
}

// Extract godoc
// @Summary      Extract verb constructions from a corpus
// @Description  Detects verb constructions (e.g. perfects) in the documents of a source language and resolves each hit against the requested target languages.
// @Produce      json
// @Param        corpusId path string true "corpus identifier"
// @Param        from query string true "source language code"
// @Param        to query []string false "target language code (repeatable)"
// @Param        detector query string false "construction family" default(perfect)
// @Param        doc query []string false "restrict to named document(s) (repeatable)"
// @Success      200 {object} results.ExtractionResponse
// @Router       /extraction/{corpusId} [get]
func (a *Actions) Extract(ctx *gin.Context) {
	result, ok := a.anyExtraction(ctx)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// ExtractCSV godoc
// @Summary      Extract verb constructions as CSV
// @Description  Like /extraction but the result is a downloadable semicolon-delimited CSV file.
// @Produce      text/csv
// @Param        corpusId path string true "corpus identifier"
// @Param        from query string true "source language code"
// @Param        to query []string false "target language code (repeatable)"
// @Param        detector query string false "construction family" default(perfect)
// @Param        doc query []string false "restrict to named document(s) (repeatable)"
// @Success      200 {string} string
// @Router       /extraction-csv/{corpusId} [get]
func (a *Actions) ExtractCSV(ctx *gin.Context) {
	result, ok := a.anyExtraction(ctx)
	if !ok {
		return
	}
	ctx.Writer.Header().Set("Content-Type", "text/csv; charset=utf-8")
	ctx.Writer.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=\"%s-%s.csv\"", result.CorpusID, result.LangFrom))
	ctx.Writer.WriteHeader(http.StatusOK)
	if err := results.ExportCSV(ctx.Writer, &result); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
	}
}

func (a *Actions) anyExtraction(ctx *gin.Context) (results.Extraction, bool) {
	queryProps := DetermineQueryProps(ctx, a.conf)
	if queryProps.hasError() {
		uniresp.RespondWithErrorJSON(ctx, queryProps.err, queryProps.status)
		return results.Extraction{}, false
	}
	args := rdb.ExtractionArgs{
		CorpusID:  queryProps.corpus,
		DataDir:   corpus.ResolveDataDir(a.conf.DataDir, queryProps.corpusConf),
		LangFrom:  queryProps.langFrom,
		LangsTo:   queryProps.langsTo,
		Detector:  string(queryProps.detector),
		Documents: queryProps.documents,
		MaxItems:  queryProps.corpusConf.MaximumRecords,
	}
	rawResult, ok := a.publishAndWait(ctx, "extraction", args)
	if !ok {
		return results.Extraction{}, false
	}
	return TypedOrRespondError[results.Extraction](ctx, rawResult)
}

// AlignInfo godoc
// @Summary      Alignment quality of a language pair
// @Description  Lists the documents aligned between two languages of a corpus with their mean alignment certainty, most confident first.
// @Produce      json
// @Param        corpusId path string true "corpus identifier"
// @Param        from query string true "source language code"
// @Param        to query string true "target language code"
// @Success      200 {object} results.AlignInfoResponse
// @Router       /alignment/{corpusId} [get]
func (a *Actions) AlignInfo(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	corpusConf := a.conf.Resources.Get(corpusID)
	if corpusConf == nil {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("corpus %s not found", corpusID), http.StatusNotFound)
		return
	}
	langFrom := ctx.Query("from")
	langTo := ctx.Query("to")
	if langFrom == "" || langTo == "" {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("missing `from` or `to` argument"), http.StatusBadRequest)
		return
	}
	for _, lang := range []string{langFrom, langTo} {
		if !corpusConf.HasLanguage(lang) {
			uniresp.RespondWithErrorJSON(
				ctx,
				fmt.Errorf("corpus %s has no language %s", corpusID, lang),
				http.StatusUnprocessableEntity,
			)
			return
		}
	}
	rawResult, ok := a.publishAndWait(ctx, "alignInfo", rdb.AlignInfoArgs{
		CorpusID: corpusID,
		DataDir:  corpus.ResolveDataDir(a.conf.DataDir, corpusConf),
		LangFrom: langFrom,
		LangTo:   langTo,
	})
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.AlignInfo](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// CorpusInfo godoc
// @Summary      Corpus information
// @Produce      json
// @Param        corpusId path string true "corpus identifier"
// @Success      200 {object} results.CorpusInfoResponse
// @Router       /corpora/{corpusId} [get]
func (a *Actions) CorpusInfo(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	corpusConf := a.conf.Resources.Get(corpusID)
	if corpusConf == nil {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("corpus %s not found", corpusID), http.StatusNotFound)
		return
	}
	rawResult, ok := a.publishAndWait(ctx, "corpusInfo", rdb.CorpusInfoArgs{
		CorpusID: corpusID,
		DataDir:  corpus.ResolveDataDir(a.conf.DataDir, corpusConf),
	})
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.CorpusInfo](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

type corpusCompactInfo struct {
	ID          string   `json:"id"`
	FullName    string   `json:"fullName"`
	Description string   `json:"description"`
	Languages   []string `json:"languages"`
}

type corplistResponse struct {
	Corpora []corpusCompactInfo `json:"corpora"`
	Locale  string              `json:"locale"`
}

func getTranslation(data map[string]string, lang string) string {
	v, ok := data[lang]
	if ok {
		return v
	}
	return data["en"]
}

// Corplist godoc
// @Summary      List configured corpora
// @Produce      json
// @Param        lang query string false "locale of the corpora descriptions" default(en)
// @Success      200 {object} corplistResponse
// @Router       /corpora [get]
func (a *Actions) Corplist(ctx *gin.Context) {
	lang := ctx.DefaultQuery("lang", "en")
	ans := corplistResponse{
		Corpora: make([]corpusCompactInfo, 0, len(a.conf.Resources)),
		Locale:  lang,
	}
	for _, conf := range a.conf.Resources.GetAllCorpora() {
		ans.Corpora = append(ans.Corpora, corpusCompactInfo{
			ID:          conf.ID,
			FullName:    getTranslation(conf.FullName, lang),
			Description: conf.LocaleDescription(lang),
			Languages:   conf.LanguageList(),
		})
	}
	uniresp.WriteJSONResponse(ctx.Writer, &ans)
}

// ArchivedResult godoc
// @Summary      Fetch an archived extraction result
// @Description  Returns a previously produced extraction result stored in the result archive database.
// @Produce      json
// @Param        resultId path string true "result identifier"
// @Success      200 {object} results.ExtractionResponse
// @Router       /result/{resultId} [get]
func (a *Actions) ArchivedResult(ctx *gin.Context) {
	if a.archive == nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("result archive is not configured"),
			http.StatusNotFound,
		)
		return
	}
	resultID := ctx.Param("resultId")
	data, err := a.archive.Get(resultID)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		return
	}
	if data == nil {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("result %s not found", resultID), http.StatusNotFound)
		return
	}
	ctx.Data(http.StatusOK, "application/json", data)
}
