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

// ExtractionArgs requests verb construction extraction from one
// corpus, in a source language, resolved against target languages.
type ExtractionArgs struct {
	CorpusID string

	// DataDir is the resolved corpus data directory
	DataDir string

	LangFrom string
	LangsTo  []string

	// Detector selects the construction family
	// ("perfect", "recentPast", "pos")
	Detector string

	// Documents restricts processing to the named documents;
	// empty means all documents of the source language.
	Documents []string

	// MaxItems caps the number of result rows (0 = corpus default).
	MaxItems int
}

// CorpusInfoArgs requests basic information about a corpus.
type CorpusInfoArgs struct {
	CorpusID string
	DataDir  string
}

// AlignInfoArgs requests per-document alignment certainty info
// for a corpus and language pair.
type AlignInfoArgs struct {
	CorpusID string
	DataDir  string
	LangFrom string
	LangTo   string
}

// ----------------

// ErrorResult is a fallback result for failed or unknown jobs.
type ErrorResult struct {
	Error string
	Func  string
}

func (res ErrorResult) Err() error {
	if res.Error != "" {
		return DecodedError{res.Error}
	}
	return nil
}

func (res ErrorResult) Type() ResultType {
	return ResultTypeError
}

// DecodedError wraps an error which traveled between processes
// as a plain string.
type DecodedError struct {
	Msg string
}

func (err DecodedError) Error() string {
	return err.Msg
}
