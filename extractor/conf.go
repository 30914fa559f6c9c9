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

package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"

	"pextract/perror"
	"pextract/tei"
)

// RecentPastConf configures the recent past variant of the detector
// (e.g. French "venir de" + infinitive).
type RecentPastConf struct {

	// TriggerLemma is the auxiliary lemma initiating the form (e.g. "venir")
	TriggerLemma string `json:"triggerLemma"`

	// PrepLemma is the bound preposition between auxiliary
	// and infinitive (e.g. "de")
	PrepLemma string `json:"prepLemma"`

	// InfinitiveTag marks the completing infinitive (e.g. "VER:infi")
	InfinitiveTag string `json:"infinitiveTag"`
}

func (rpc *RecentPastConf) Validate(lang string) error {
	if rpc.TriggerLemma == "" || rpc.PrepLemma == "" || rpc.InfinitiveTag == "" {
		return perror.InputError{
			Msg: fmt.Sprintf(
				"language %s: recentPast requires triggerLemma, prepLemma and infinitiveTag", lang)}
	}
	return nil
}

// PoSConf configures part-of-speech based extraction: tokens carrying
// one of the tags match, optionally narrowed down to a lemmata list.
type PoSConf struct {
	Tags    []string `json:"tags"`
	Lemmata []string `json:"lemmata"`
}

func (pc *PoSConf) Validate(lang string) error {
	if len(pc.Tags) == 0 {
		return perror.InputError{
			Msg: fmt.Sprintf("language %s: pos requires a non-empty `tags` list", lang)}
	}
	return nil
}

// LangConf is the tag/lexicon grammar of one source language. All the
// actual linguistics lives here as data - the detectors only interpret it.
type LangConf struct {

	// TriggerTags are the tag values marking a token as a candidate
	// auxiliary, i.e. a detection trigger.
	TriggerTags []string `json:"triggerTags"`

	// ConstructionTag is the tag value which completes a construction
	// (typically the past participle tag).
	ConstructionTag string `json:"constructionTag"`

	// Continuous enables continuous-aspect extension.
	Continuous bool `json:"continuous"`

	// ContinuousLemma signals a continuous auxiliary (e.g. "be").
	ContinuousLemma string `json:"continuousLemma"`

	// StopTags terminate a sibling walk; matching is prefix-based.
	StopTags []string `json:"stopTags"`

	// LexicalBinding restricts which participle lemmas may follow
	// a given auxiliary lemma. Inline variant.
	LexicalBinding map[string][]string `json:"lexicalBinding"`

	// LexicalBindingFiles maps auxiliary lemmas to lexicon files
	// (whitespace separated participle lemmas), resolved relative
	// to the configuration directory.
	LexicalBindingFiles map[string]string `json:"lexicalBindingFiles"`

	// RecentPast, when present, enables the recent past detector
	// for this language.
	RecentPast *RecentPastConf `json:"recentPast,omitempty"`

	// PoS, when present, enables part-of-speech based extraction
	// for this language.
	PoS *PoSConf `json:"pos,omitempty"`

	// Parser overrides token attribute names for this language's documents.
	Parser tei.ParserConf `json:"parser"`

	binding map[string][]string
}

// ValidateAndLoad checks the configuration and loads the declared
// lexical binding lexicons. A lexicon which is declared but cannot
// be read is a configuration error - it must never be masked as
// a "construction not found" later during detection.
func (lc *LangConf) ValidateAndLoad(lang, confDir string) error {
	if len(lc.TriggerTags) == 0 {
		return perror.InputError{
			Msg: fmt.Sprintf("language %s: missing `triggerTags`", lang)}
	}
	if lc.ConstructionTag == "" {
		return perror.InputError{
			Msg: fmt.Sprintf("language %s: missing `constructionTag`", lang)}
	}
	if lc.Continuous && lc.ContinuousLemma == "" {
		return perror.InputError{
			Msg: fmt.Sprintf(
				"language %s: `continuous` is enabled but `continuousLemma` is empty", lang)}
	}
	if lc.RecentPast != nil {
		if err := lc.RecentPast.Validate(lang); err != nil {
			return err
		}
	}
	if lc.PoS != nil {
		if err := lc.PoS.Validate(lang); err != nil {
			return err
		}
	}
	lc.binding = make(map[string][]string)
	for aux, lemmas := range lc.LexicalBinding {
		lc.binding[aux] = lemmas
	}
	for aux, fileName := range lc.LexicalBindingFiles {
		path := fileName
		if !filepath.IsAbs(path) {
			path = filepath.Join(confDir, fileName)
		}
		rawData, err := os.ReadFile(path)
		if err != nil {
			return perror.InputError{
				Msg: fmt.Sprintf(
					"language %s: declared lexical binding lexicon %s cannot be read: %s",
					lang, fileName, err)}
		}
		lc.binding[aux] = append(lc.binding[aux], strings.Fields(string(rawData))...)
	}
	log.Debug().
		Str("language", lang).
		Int("numBoundAuxiliaries", len(lc.binding)).
		Msg("loaded language grammar configuration")
	return nil
}

// IsTrigger tells whether a token's tag marks it as a detection candidate.
func (lc *LangConf) IsTrigger(tag string) bool {
	return collections.SliceContains(lc.TriggerTags, tag)
}

// IsLexicallyBound checks whether a participle lemma may combine with
// an auxiliary lemma. Auxiliaries without a binding entry are unbound
// and combine freely.
func (lc *LangConf) IsLexicallyBound(auxLemma, participleLemma string) bool {
	bound, ok := lc.binding[auxLemma]
	if !ok {
		return true
	}
	return collections.SliceContains(bound, participleLemma)
}

func (lc *LangConf) hasStopTag(tag string) bool {
	for _, st := range lc.StopTags {
		if st != "" && strings.HasPrefix(tag, st) {
			return true
		}
	}
	return false
}
