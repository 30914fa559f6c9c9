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

package results

import (
	"github.com/bytedance/sonic"

	"pextract/rdb"
)

// TranslatedSegment carries the resolved counterpart of one
// extracted construction in one target language.
type TranslatedSegment struct {

	// Lang is the target language code.
	Lang string `json:"lang"`

	// AlignmentType encodes the alignment cardinality
	// (e.g. "1 => 2"); empty means "not translated".
	AlignmentType string `json:"alignmentType"`

	SegmentIDs []string `json:"segmentIds"`

	Sentences []string `json:"sentences"`

	// Construction is the counterpart construction found in the
	// aligned segments (empty when none was detected there).
	Construction string `json:"construction,omitempty"`

	// MarkedSentences mirror Sentences with the counterpart
	// construction highlighted where one was found.
	MarkedSentences []string `json:"markedSentences"`
}

// ExtractedItem is one detected construction with its source context
// and all its per-target-language translations.
type ExtractedItem struct {
	Document       string              `json:"document"`
	SegmentID      string              `json:"segmentId"`
	CType          string              `json:"type"`
	Construction   string              `json:"construction"`
	WordIDs        []string            `json:"wordIds"`
	WordsBetween   int                 `json:"wordsBetween"`
	Sentence       string              `json:"sentence"`
	MarkedSentence string              `json:"markedSentence"`
	Translations   []TranslatedSegment `json:"translations"`
}

type ExtractionResponse struct {
	CorpusID string           `json:"corpusId"`
	LangFrom string           `json:"langFrom"`
	LangsTo  []string         `json:"langsTo"`
	Detector string           `json:"detector"`
	Items    []*ExtractedItem `json:"items"`

	// ResultID identifies this result in the archive database
	// (empty when archiving is disabled).
	ResultID   string         `json:"resultId,omitempty"`
	ResultType rdb.ResultType `json:"resultType"`
	Error      string         `json:"error,omitempty"`
} // @name Extraction

type Extraction struct {
	CorpusID string
	LangFrom string
	LangsTo  []string
	Detector string
	Items    []*ExtractedItem
	ResultID string
	Error    error
}

func (res Extraction) Err() error {
	return res.Error
}

func (res Extraction) Type() rdb.ResultType {
	return rdb.ResultTypeExtraction
}

func (res Extraction) MarshalJSON() ([]byte, error) {
	items := res.Items
	if items == nil {
		items = []*ExtractedItem{}
	}
	return sonic.Marshal(ExtractionResponse{
		CorpusID:   res.CorpusID,
		LangFrom:   res.LangFrom,
		LangsTo:    res.LangsTo,
		Detector:   res.Detector,
		Items:      items,
		ResultID:   res.ResultID,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type CorpusInfoResponse struct {
	ID           string            `json:"id"`
	FullName     map[string]string `json:"fullName"`
	Description  string            `json:"description"`
	Languages    []string          `json:"languages"`
	NumDocuments map[string]int    `json:"numDocuments"`
	ResultType   rdb.ResultType    `json:"resultType"`
	Error        string            `json:"error,omitempty"`
} // @name CorpusInfo

type CorpusInfo struct {
	ID           string
	FullName     map[string]string
	Description  string
	Languages    []string
	NumDocuments map[string]int
	Error        error
}

func (res CorpusInfo) Err() error {
	return res.Error
}

func (res CorpusInfo) Type() rdb.ResultType {
	return rdb.ResultTypeCorpusInfo
}

func (res CorpusInfo) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(CorpusInfoResponse{
		ID:           res.ID,
		FullName:     res.FullName,
		Description:  res.Description,
		Languages:    res.Languages,
		NumDocuments: res.NumDocuments,
		ResultType:   res.Type(),
		Error:        errToStr(res.Error),
	})
}

// ----

// AlignInfoItem reports the alignment confidence of one document.
type AlignInfoItem struct {
	Document string `json:"document"`

	// MeanCertainty is the mean of the known link certainties
	// (0 when the alignment table carries no certainty at all).
	MeanCertainty float64 `json:"meanCertainty"`

	NumLinks int `json:"numLinks"`
}

type AlignInfoResponse struct {
	CorpusID   string           `json:"corpusId"`
	LangFrom   string           `json:"langFrom"`
	LangTo     string           `json:"langTo"`
	Documents  []*AlignInfoItem `json:"documents"`
	ResultType rdb.ResultType   `json:"resultType"`
	Error      string           `json:"error,omitempty"`
} // @name AlignInfo

// AlignInfo lists documents of a corpus language pair ordered
// by mean alignment certainty (most confident first).
type AlignInfo struct {
	CorpusID  string
	LangFrom  string
	LangTo    string
	Documents []*AlignInfoItem
	Error     error
}

func (res AlignInfo) Err() error {
	return res.Error
}

func (res AlignInfo) Type() rdb.ResultType {
	return rdb.ResultTypeAlignInfo
}

func (res AlignInfo) MarshalJSON() ([]byte, error) {
	docs := res.Documents
	if docs == nil {
		docs = []*AlignInfoItem{}
	}
	return sonic.Marshal(AlignInfoResponse{
		CorpusID:   res.CorpusID,
		LangFrom:   res.LangFrom,
		LangTo:     res.LangTo,
		Documents:  docs,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}
