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

func mkGappedConstruction() *Construction {
	c := NewConstruction(&tei.Token{Word: "has", Lemma: "have", Tag: "VHZ", ID: "w3"})
	c.AddWord("always", "always", "RB", "w4", false)
	c.AddWord("loved", "love", "VVN", "w5", true)
	return c
}

func TestConstructionVerbalCore(t *testing.T) {
	c := mkGappedConstruction()
	assert.Equal(t, []string{"has", "loved"}, c.Construction())
	assert.Equal(t, "has loved", c.ConstructionToString())
}

func TestConstructionWordsBetween(t *testing.T) {
	c := mkGappedConstruction()
	assert.Equal(t, 1, c.WordsBetween())
}

func TestConstructionLastLemma(t *testing.T) {
	c := mkGappedConstruction()
	assert.Equal(t, "love", c.LastLemma())
}

func TestConstructionWordIDs(t *testing.T) {
	c := mkGappedConstruction()
	assert.Equal(t, []string{"w3", "w5"}, c.WordIDs())
}

func TestConstructionExtendSkipsSharedTrigger(t *testing.T) {
	c := NewConstruction(&tei.Token{Word: "has", Lemma: "have", Tag: "VHZ", ID: "w1"})
	c.AddWord("been", "be", "VBN", "w2", true)

	nested := NewConstruction(&tei.Token{Word: "been", Lemma: "be", Tag: "VBN", ID: "w2"})
	nested.AddWord("created", "create", "VVN", "w3", true)

	c.Extend(nested)
	assert.Equal(t, []string{"has", "been", "created"}, c.Construction())
	assert.Equal(t, 0, c.WordsBetween())
}

func TestMarkSentenceGapless(t *testing.T) {
	c := NewConstruction(&tei.Token{Word: "has", Lemma: "have", Tag: "VHZ", ID: "w2"})
	c.AddWord("loved", "love", "VVN", "w3", true)
	ans := c.MarkSentence("She has loved him .")
	assert.Equal(t, "She **has loved** him .", ans)
}

func TestMarkSentenceWithGap(t *testing.T) {
	c := mkGappedConstruction()
	ans := c.MarkSentence("She has always loved him .")
	assert.Equal(t, "She **has** always **loved** him .", ans)
}

func TestMarkSentenceNoMatchLeavesInput(t *testing.T) {
	c := mkGappedConstruction()
	ans := c.MarkSentence("A completely different sentence .")
	assert.Equal(t, "A completely different sentence .", ans)
}
