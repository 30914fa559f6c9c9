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
	"fmt"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pextract/corpus"
	"pextract/extraction"
	"pextract/extractor"
	"pextract/perror"
	"pextract/rdb"
	"pextract/results"
)

func (w *Worker) extraction(args rdb.ExtractionArgs) results.Extraction {
	ans := results.Extraction{
		CorpusID: args.CorpusID,
		LangFrom: args.LangFrom,
		LangsTo:  args.LangsTo,
		Detector: args.Detector,
	}
	corpConf := w.corpora.GetCorpus(args.CorpusID)
	if corpConf == nil {
		ans.Error = perror.InputError{
			Msg: fmt.Sprintf("corpus %s not found", args.CorpusID)}
		return ans
	}
	pipeline := extraction.NewPipeline(corpConf, args.DataDir)

	docs := args.Documents
	if len(docs) == 0 {
		var err error
		docs, err = pipeline.ListDocuments(args.LangFrom)
		if err != nil {
			ans.Error = normalizeErr(err)
			return ans
		}
	}
	maxItems := args.MaxItems
	if maxItems <= 0 {
		maxItems = corpus.DfltMaximumRecords
	}
	for _, docName := range docs {
		items, err := pipeline.ProcessDocument(
			docName, args.LangFrom, args.LangsTo, extractor.DetectorType(args.Detector))
		if err != nil {
			ans.Error = normalizeErr(err)
			return ans
		}
		ans.Items = append(ans.Items, items...)
		if len(ans.Items) >= maxItems {
			ans.Items = ans.Items[:maxItems]
			break
		}
	}
	w.archiveResult(&ans)
	return ans
}

// archiveResult stores a finished extraction in the result archive
// (when configured) and stamps the result with its archive ID.
// An archiving failure does not fail the job.
func (w *Worker) archiveResult(ans *results.Extraction) {
	if w.archive == nil {
		return
	}
	ans.ResultID = uuid.New().String()
	data, err := sonic.Marshal(ans)
	if err != nil {
		log.Error().Err(err).Msg("failed to serialize result for archiving")
		ans.ResultID = ""
		return
	}
	if err := w.archive.Insert(ans.ResultID, data); err != nil {
		log.Error().Err(err).Msg("failed to archive result")
		ans.ResultID = ""
	}
}

func (w *Worker) corpusInfo(args rdb.CorpusInfoArgs) results.CorpusInfo {
	ans := results.CorpusInfo{ID: args.CorpusID}
	corpConf := w.corpora.GetCorpus(args.CorpusID)
	if corpConf == nil {
		ans.Error = perror.InputError{
			Msg: fmt.Sprintf("corpus %s not found", args.CorpusID)}
		return ans
	}
	ans.FullName = corpConf.FullName
	ans.Description = corpConf.LocaleDescription("en")
	ans.Languages = corpConf.LanguageList()
	sort.Strings(ans.Languages)
	ans.NumDocuments = make(map[string]int, len(ans.Languages))
	for _, lang := range ans.Languages {
		docs, err := corpus.ListDocuments(args.DataDir, lang)
		if err != nil {
			ans.Error = normalizeErr(err)
			return ans
		}
		ans.NumDocuments[lang] = len(docs)
	}
	return ans
}

func (w *Worker) alignInfo(args rdb.AlignInfoArgs) results.AlignInfo {
	ans := results.AlignInfo{
		CorpusID: args.CorpusID,
		LangFrom: args.LangFrom,
		LangTo:   args.LangTo,
	}
	corpConf := w.corpora.GetCorpus(args.CorpusID)
	if corpConf == nil {
		ans.Error = perror.InputError{
			Msg: fmt.Sprintf("corpus %s not found", args.CorpusID)}
		return ans
	}
	pipeline := extraction.NewPipeline(corpConf, args.DataDir)
	docs, err := pipeline.AlignmentInfo(args.LangFrom, args.LangTo)
	if err != nil {
		ans.Error = normalizeErr(err)
		return ans
	}
	ans.Documents = docs
	return ans
}
