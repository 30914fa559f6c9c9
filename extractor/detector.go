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
	"unicode"

	"github.com/czcorpus/cnc-gokit/collections"

	"pextract/perror"
	"pextract/tei"
)

// maxContinuousDepth bounds the continuous-aspect recursion.
// Corpora are finite but pathological tagging could otherwise
// chain continuous auxiliaries without end.
const maxContinuousDepth = 3

type DetectorType string

const (
	DetectorPerfect    DetectorType = "perfect"
	DetectorRecentPast DetectorType = "recentPast"
	DetectorPoS        DetectorType = "pos"
)

func (dt DetectorType) Validate() error {
	if dt == DetectorPerfect || dt == DetectorRecentPast || dt == DetectorPoS {
		return nil
	}
	return perror.InputError{Msg: fmt.Sprintf("unknown detector type: %s", dt)}
}

// Detector recognizes one family of constructions. IsTrigger filters
// candidate tokens by tag; Detect, given a trigger token and the
// ordered siblings following it within the sentence, either returns
// a fully built Construction or nil ("not found" - a normal outcome,
// not an error). Detectors are pure: they never mutate the source tree.
type Detector interface {
	IsTrigger(tag string) bool
	Detect(trigger *tei.Token, siblings []*tei.Token) *Construction
}

// NewDetector creates a detector of the requested family over
// a language grammar.
func NewDetector(conf *LangConf, dtype DetectorType) (Detector, error) {
	switch dtype {
	case DetectorPerfect:
		return &PerfectDetector{conf: conf}, nil
	case DetectorRecentPast:
		if conf.RecentPast == nil {
			return nil, perror.InputError{
				Msg: "recent past detection requested but `recentPast` is not configured"}
		}
		return &RecentPastDetector{conf: conf}, nil
	case DetectorPoS:
		if conf.PoS == nil {
			return nil, perror.InputError{
				Msg: "part-of-speech detection requested but `pos` is not configured"}
		}
		return &PoSDetector{conf: conf}, nil
	default:
		return nil, perror.InputError{Msg: fmt.Sprintf("unknown detector type: %s", dtype)}
	}
}

// PerfectDetector recognizes perfect constructions: an auxiliary
// followed - possibly across intervening non-verbs - by a participle
// carrying the construction tag, optionally extended into a perfect
// continuous by recursion on a continuous auxiliary.
type PerfectDetector struct {
	conf *LangConf
}

func (d *PerfectDetector) IsTrigger(tag string) bool {
	return d.conf.IsTrigger(tag)
}

func (d *PerfectDetector) Detect(trigger *tei.Token, siblings []*tei.Token) *Construction {
	return d.detect(trigger, siblings, 0)
}

func (d *PerfectDetector) detect(trigger *tei.Token, siblings []*tei.Token, depth int) *Construction {
	if depth > maxContinuousDepth {
		return nil
	}
	c := NewConstruction(trigger)
	for i, sib := range siblings {
		if sib.Tag == d.conf.ConstructionTag {
			// a participle which is not lexically bound to the auxiliary
			// invalidates the whole candidate
			if !d.conf.IsLexicallyBound(trigger.Lemma, sib.Lemma) {
				return nil
			}
			c.AddToken(sib, true)
			if d.conf.Continuous && sib.Lemma == d.conf.ContinuousLemma {
				// nested detection starts strictly after the continuous
				// auxiliary so already consumed siblings are not re-walked
				if nested := d.detect(sib, siblings[i+1:], depth+1); nested != nil {
					c.Extend(nested)
				}
			}
			return c
		}
		if isPunctuation(sib.Word) || d.conf.hasStopTag(sib.Tag) {
			return nil
		}
		c.AddToken(sib, false)
	}
	return nil
}

// RecentPastDetector recognizes recent past constructions: a trigger
// auxiliary (e.g. a present form of "venir"), the bound preposition,
// then an infinitive-tagged verb completing the form.
type RecentPastDetector struct {
	conf *LangConf
}

func (d *RecentPastDetector) IsTrigger(tag string) bool {
	return d.conf.IsTrigger(tag)
}

func (d *RecentPastDetector) Detect(trigger *tei.Token, siblings []*tei.Token) *Construction {
	rpConf := d.conf.RecentPast
	if rpConf == nil || trigger.Lemma != rpConf.TriggerLemma {
		return nil
	}
	c := NewConstruction(trigger)
	var seenPrep bool
	for _, sib := range siblings {
		if isPunctuation(sib.Word) || d.conf.hasStopTag(sib.Tag) {
			return nil
		}
		if !seenPrep {
			if sib.Lemma == rpConf.PrepLemma {
				c.AddToken(sib, true)
				seenPrep = true

			} else {
				c.AddToken(sib, false)
			}

		} else {
			if sib.Tag == rpConf.InfinitiveTag {
				c.AddToken(sib, true)
				return c
			}
			c.AddToken(sib, false)
		}
	}
	return nil
}

// PoSDetector recognizes single-token constructions by their
// part-of-speech tag, optionally restricted to a lemmata list
// (e.g. French articles: DET:ART/PRP:det limited to le/un/du).
type PoSDetector struct {
	conf *LangConf
}

func (d *PoSDetector) IsTrigger(tag string) bool {
	return collections.SliceContains(d.conf.PoS.Tags, tag)
}

func (d *PoSDetector) Detect(trigger *tei.Token, siblings []*tei.Token) *Construction {
	pConf := d.conf.PoS
	if !collections.SliceContains(pConf.Tags, trigger.Tag) {
		return nil
	}
	if len(pConf.Lemmata) > 0 && !collections.SliceContains(pConf.Lemmata, trigger.Lemma) {
		return nil
	}
	return NewConstruction(trigger)
}

// isPunctuation reports whether a token consists of punctuation
// or symbol characters only.
func isPunctuation(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
