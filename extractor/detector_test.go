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
	"testing"

	"github.com/stretchr/testify/assert"

	"pextract/tei"
)

func mkEnglishConf() *LangConf {
	return &LangConf{
		TriggerTags:     []string{"VHZ", "VHP"},
		ConstructionTag: "VVN",
		Continuous:      true,
		ContinuousLemma: "be",
		StopTags:        []string{"CC"},
		binding:         map[string][]string{},
	}
}

func tok(word, lemma, tag, id string) *tei.Token {
	return &tei.Token{Word: word, Lemma: lemma, Tag: tag, ID: id}
}

func TestPerfectDetectSimple(t *testing.T) {
	conf := mkEnglishConf()
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{
		tok("loved", "love", "VVN", "w3"),
		tok("him", "he", "PP", "w4"),
	}
	c := d.Detect(trigger, siblings)
	assert.NotNil(t, c)
	assert.Equal(t, "has loved", c.ConstructionToString())
	assert.Equal(t, 0, c.WordsBetween())
}

func TestPerfectDetectWithInterveningWords(t *testing.T) {
	conf := mkEnglishConf()
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{
		tok("always", "always", "RB", "w3"),
		tok("loved", "love", "VVN", "w4"),
	}
	c := d.Detect(trigger, siblings)
	assert.NotNil(t, c)
	assert.Equal(t, "has loved", c.ConstructionToString())
	assert.Equal(t, 1, c.WordsBetween())
}

func TestPerfectDetectStoppedByPunctuation(t *testing.T) {
	conf := mkEnglishConf()
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{
		tok(",", ",", "PUN", "w3"),
		tok("loved", "love", "VVN", "w4"),
	}
	assert.Nil(t, d.Detect(trigger, siblings))
}

func TestPerfectDetectStoppedByStopTag(t *testing.T) {
	conf := mkEnglishConf()
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{
		tok("and", "and", "CC", "w3"),
		tok("loved", "love", "VVN", "w4"),
	}
	assert.Nil(t, d.Detect(trigger, siblings))
}

func TestPerfectDetectStopTagMatchesByPrefix(t *testing.T) {
	conf := mkEnglishConf()
	conf.StopTags = []string{"V"}
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{
		tok("does", "do", "VDZ", "w3"),
		tok("loved", "love", "VVN", "w4"),
	}
	assert.Nil(t, d.Detect(trigger, siblings))
}

func TestPerfectDetectNoParticiple(t *testing.T) {
	conf := mkEnglishConf()
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{
		tok("a", "a", "DT", "w3"),
		tok("car", "car", "NN", "w4"),
	}
	assert.Nil(t, d.Detect(trigger, siblings))
}

func TestPerfectDetectEmptySiblings(t *testing.T) {
	conf := mkEnglishConf()
	d := &PerfectDetector{conf: conf}
	assert.Nil(t, d.Detect(tok("has", "have", "VHZ", "w2"), []*tei.Token{}))
}

func TestPerfectDetectLexicalBindingAccepts(t *testing.T) {
	conf := mkEnglishConf()
	conf.binding = map[string][]string{"have": {"love", "see"}}
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{tok("loved", "love", "VVN", "w3")}
	assert.NotNil(t, d.Detect(trigger, siblings))
}

func TestPerfectDetectLexicalBindingVetoes(t *testing.T) {
	conf := mkEnglishConf()
	conf.binding = map[string][]string{"have": {"see"}}
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{tok("loved", "love", "VVN", "w3")}
	assert.Nil(t, d.Detect(trigger, siblings))
}

func TestPerfectDetectUnboundAuxiliaryCombinesFreely(t *testing.T) {
	conf := mkEnglishConf()
	conf.binding = map[string][]string{"be": {"go"}}
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{tok("loved", "love", "VVN", "w3")}
	assert.NotNil(t, d.Detect(trigger, siblings))
}

func TestPerfectDetectContinuous(t *testing.T) {
	conf := mkEnglishConf()
	conf.ConstructionTag = "VBN"
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{
		tok("been", "be", "VBN", "w3"),
		tok("working", "work", "VBN", "w4"),
	}
	c := d.Detect(trigger, siblings)
	assert.NotNil(t, c)
	assert.Equal(t, "has been working", c.ConstructionToString())
}

func TestPerfectDetectContinuousDisabled(t *testing.T) {
	conf := mkEnglishConf()
	conf.ConstructionTag = "VBN"
	conf.Continuous = false
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w2")
	siblings := []*tei.Token{
		tok("been", "be", "VBN", "w3"),
		tok("working", "work", "VBN", "w4"),
	}
	c := d.Detect(trigger, siblings)
	assert.NotNil(t, c)
	assert.Equal(t, "has been", c.ConstructionToString())
}

func TestPerfectDetectContinuousDepthCapped(t *testing.T) {
	conf := mkEnglishConf()
	conf.ConstructionTag = "VBN"
	d := &PerfectDetector{conf: conf}
	trigger := tok("has", "have", "VHZ", "w1")
	// pathological tagging: an endless chain of continuous auxiliaries
	siblings := make([]*tei.Token, 0, 10)
	for i := 0; i < 10; i++ {
		siblings = append(siblings, tok("been", "be", "VBN", ""))
	}
	c := d.Detect(trigger, siblings)
	assert.NotNil(t, c)
	assert.LessOrEqual(t, len(c.Construction()), maxContinuousDepth+2)
}

func TestRecentPastDetect(t *testing.T) {
	conf := &LangConf{
		TriggerTags:     []string{"VER:pres"},
		ConstructionTag: "VER:pper",
		RecentPast: &RecentPastConf{
			TriggerLemma:  "venir",
			PrepLemma:     "de",
			InfinitiveTag: "VER:infi",
		},
	}
	d := &RecentPastDetector{conf: conf}
	trigger := tok("vient", "venir", "VER:pres", "w2")
	siblings := []*tei.Token{
		tok("de", "de", "PRP", "w3"),
		tok("partir", "partir", "VER:infi", "w4"),
	}
	c := d.Detect(trigger, siblings)
	assert.NotNil(t, c)
	assert.Equal(t, "vient de partir", c.ConstructionToString())
}

func TestRecentPastDetectWrongTriggerLemma(t *testing.T) {
	conf := &LangConf{
		TriggerTags: []string{"VER:pres"},
		RecentPast: &RecentPastConf{
			TriggerLemma:  "venir",
			PrepLemma:     "de",
			InfinitiveTag: "VER:infi",
		},
	}
	d := &RecentPastDetector{conf: conf}
	trigger := tok("va", "aller", "VER:pres", "w2")
	siblings := []*tei.Token{
		tok("de", "de", "PRP", "w3"),
		tok("partir", "partir", "VER:infi", "w4"),
	}
	assert.Nil(t, d.Detect(trigger, siblings))
}

func TestRecentPastDetectMissingPrep(t *testing.T) {
	conf := &LangConf{
		TriggerTags: []string{"VER:pres"},
		RecentPast: &RecentPastConf{
			TriggerLemma:  "venir",
			PrepLemma:     "de",
			InfinitiveTag: "VER:infi",
		},
	}
	d := &RecentPastDetector{conf: conf}
	trigger := tok("vient", "venir", "VER:pres", "w2")
	siblings := []*tei.Token{
		tok("partir", "partir", "VER:infi", "w3"),
	}
	assert.Nil(t, d.Detect(trigger, siblings))
}

func mkFrenchArticleConf() *LangConf {
	return &LangConf{
		TriggerTags:     []string{"VER:pres"},
		ConstructionTag: "VER:pper",
		PoS: &PoSConf{
			Tags:    []string{"DET:ART", "PRP:det"},
			Lemmata: []string{"le", "un", "du"},
		},
	}
}

func TestPoSDetect(t *testing.T) {
	d := &PoSDetector{conf: mkFrenchArticleConf()}
	c := d.Detect(tok("le", "le", "DET:ART", "w1"), []*tei.Token{
		tok("chien", "chien", "NOM", "w2"),
	})
	assert.NotNil(t, c)
	assert.Equal(t, "le", c.ConstructionToString())
	assert.Equal(t, []string{"w1"}, c.WordIDs())
}

func TestPoSDetectWrongTag(t *testing.T) {
	d := &PoSDetector{conf: mkFrenchArticleConf()}
	assert.Nil(t, d.Detect(tok("chien", "chien", "NOM", "w1"), []*tei.Token{}))
}

func TestPoSDetectLemmaVeto(t *testing.T) {
	d := &PoSDetector{conf: mkFrenchArticleConf()}
	assert.Nil(t, d.Detect(tok("cette", "ce", "DET:ART", "w1"), []*tei.Token{}))
}

func TestPoSDetectWithoutLemmataMatchesFreely(t *testing.T) {
	conf := mkFrenchArticleConf()
	conf.PoS.Lemmata = nil
	d := &PoSDetector{conf: conf}
	c := d.Detect(tok("cette", "ce", "DET:ART", "w1"), []*tei.Token{})
	assert.NotNil(t, c)
	assert.Equal(t, "cette", c.ConstructionToString())
}

func TestPoSDetectorIsTrigger(t *testing.T) {
	d := &PoSDetector{conf: mkFrenchArticleConf()}
	assert.True(t, d.IsTrigger("DET:ART"))
	assert.True(t, d.IsTrigger("PRP:det"))
	assert.False(t, d.IsTrigger("VER:pres"))
}

func TestNewDetectorUnknownType(t *testing.T) {
	_, err := NewDetector(mkEnglishConf(), DetectorType("imperfect"))
	assert.Error(t, err)
}

func TestNewDetectorRecentPastRequiresConf(t *testing.T) {
	_, err := NewDetector(mkEnglishConf(), DetectorRecentPast)
	assert.Error(t, err)
}

func TestNewDetectorPoSRequiresConf(t *testing.T) {
	_, err := NewDetector(mkEnglishConf(), DetectorPoS)
	assert.Error(t, err)
}

func TestIsPunctuation(t *testing.T) {
	assert.True(t, isPunctuation(","))
	assert.True(t, isPunctuation("..."))
	assert.True(t, isPunctuation("«"))
	assert.False(t, isPunctuation("word"))
	assert.False(t, isPunctuation("don't"))
	assert.False(t, isPunctuation(""))
}
