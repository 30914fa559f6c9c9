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
	"strings"

	"pextract/tei"
)

const markupTpl = "**%s**"

// Word is one element of a detected construction: the token fields
// plus a flag telling whether the word belongs to the verbal core
// of the construction (as opposed to an intervening non-verb).
type Word struct {
	Word           string `json:"word"`
	Lemma          string `json:"lemma"`
	Tag            string `json:"tag"`
	ID             string `json:"id"`
	InConstruction bool   `json:"inConstruction"`
}

// Construction is a detected multi-token verb construction
// (present perfect, perfect continuous, recent past). It is an
// ordered, non-empty word sequence; the first word is always the
// triggering auxiliary and always belongs to the construction.
// A Construction is read-only for callers of a detector.
type Construction struct {
	words []Word
}

// NewConstruction starts a construction with its trigger token.
func NewConstruction(trigger *tei.Token) *Construction {
	c := new(Construction)
	c.AddToken(trigger, true)
	return c
}

func (c *Construction) AddWord(word, lemma, tag, id string, inConstruction bool) {
	c.words = append(c.words, Word{
		Word:           word,
		Lemma:          lemma,
		Tag:            tag,
		ID:             id,
		InConstruction: inConstruction,
	})
}

func (c *Construction) AddToken(tok *tei.Token, inConstruction bool) {
	c.AddWord(tok.Word, tok.Lemma, tok.Tag, tok.ID, inConstruction)
}

// Extend appends all but the first word of another construction.
// This is how a perfect is turned into a perfect continuous: the
// shared auxiliary (the other construction's trigger) is dropped.
func (c *Construction) Extend(other *Construction) {
	for i, w := range other.words {
		if i == 0 {
			continue
		}
		c.words = append(c.words, w)
	}
}

// Words returns all elements of the construction in sentence order.
func (c *Construction) Words() []Word {
	return c.words
}

// Construction returns the surface forms of the verbal core.
func (c *Construction) Construction() []string {
	ans := make([]string, 0, len(c.words))
	for _, w := range c.words {
		if w.InConstruction {
			ans = append(ans, w.Word)
		}
	}
	return ans
}

func (c *Construction) ConstructionToString() string {
	return strings.Join(c.Construction(), " ")
}

// WordsBetween counts the intervening non-verb words.
func (c *Construction) WordsBetween() int {
	var ans int
	for _, w := range c.words {
		if !w.InConstruction {
			ans++
		}
	}
	return ans
}

// LastLemma returns the lemma of the last word, i.e. the lemma
// of the lexical verb the construction is built around.
func (c *Construction) LastLemma() string {
	if len(c.words) == 0 {
		return ""
	}
	return c.words[len(c.words)-1].Lemma
}

// WordIDs returns the position ids of the verbal core.
func (c *Construction) WordIDs() []string {
	ans := make([]string, 0, len(c.words))
	for _, w := range c.words {
		if w.InConstruction {
			ans = append(ans, w.ID)
		}
	}
	return ans
}

// MarkSentence highlights the construction inside the full sentence.
// A gapless construction is marked as a single span, otherwise each
// verb is marked separately so the intervening words stay unmarked.
func (c *Construction) MarkSentence(sentence string) string {
	parts := make([]string, len(c.words))
	for i, w := range c.words {
		parts[i] = w.Word
	}
	fullText := strings.Join(parts, " ")

	var marked string
	if c.WordsBetween() == 0 {
		marked = fmt.Sprintf(markupTpl, fullText)

	} else {
		markedParts := make([]string, len(c.words))
		for i, w := range c.words {
			if w.InConstruction {
				markedParts[i] = fmt.Sprintf(markupTpl, w.Word)

			} else {
				markedParts[i] = w.Word
			}
		}
		marked = strings.Join(markedParts, " ")
	}
	return strings.Replace(sentence, fullText, marked, 1)
}
