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

package tei

import (
	"strings"
)

// Token is a single morphosyntactically annotated word
// of a sentence. Tokens are owned by their sentence and
// are never mutated after parsing.
type Token struct {
	Word  string
	Lemma string
	Tag   string
	ID    string
}

// Sentence is an ordered sequence of tokens with a document-unique
// segment identifier.
type Sentence struct {
	ID    string
	Words []*Token
}

// Text reconstructs the plain sentence from its tokens.
func (s *Sentence) Text() string {
	var b strings.Builder
	for i, w := range s.Words {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(w.Word)
	}
	return b.String()
}

func (s *Sentence) tokenIdx(tok *Token) int {
	for i, w := range s.Words {
		if w == tok || (tok.ID != "" && w.ID == tok.ID) {
			return i
		}
	}
	return -1
}

// FollowingSiblings returns the tokens after `tok` in sentence order.
// The returned slice is bounded by the sentence - sibling walks never
// leak into a neighboring segment.
func (s *Sentence) FollowingSiblings(tok *Token) []*Token {
	idx := s.tokenIdx(tok)
	if idx == -1 || idx+1 >= len(s.Words) {
		return []*Token{}
	}
	return s.Words[idx+1:]
}

// PrecedingSiblings returns the tokens before `tok`, closest first.
func (s *Sentence) PrecedingSiblings(tok *Token) []*Token {
	idx := s.tokenIdx(tok)
	if idx <= 0 {
		return []*Token{}
	}
	ans := make([]*Token, idx)
	for i := 0; i < idx; i++ {
		ans[i] = s.Words[idx-1-i]
	}
	return ans
}

// Document is a parsed single-language corpus document.
type Document struct {
	ID        string
	Lang      string
	Sentences []*Sentence

	sentenceIdx map[string]*Sentence
}

// Sentence returns a sentence by its segment id, or nil.
func (d *Document) Sentence(id string) *Sentence {
	if d.sentenceIdx == nil {
		d.sentenceIdx = make(map[string]*Sentence, len(d.Sentences))
		for _, s := range d.Sentences {
			d.sentenceIdx[s.ID] = s
		}
	}
	return d.sentenceIdx[id]
}

// SentenceText returns the plain text of a segment,
// or "-" if the segment is not present (the corpus
// convention for a missing line).
func (d *Document) SentenceText(id string) string {
	s := d.Sentence(id)
	if s == nil {
		return "-"
	}
	return s.Text()
}
