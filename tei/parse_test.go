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
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDoc = `<?xml version="1.0" encoding="utf-8"?>
<text id="doc1" lang="en">
  <body>
    <s id="1">
      <w id="1.1" lemma="she" tag="PP">She</w>
      <w id="1.2" lemma="have" tag="VHZ">has</w>
      <w id="1.3" lemma="love" tag="VVN">loved</w>
      <w id="1.4" lemma="." tag="SENT">.</w>
    </s>
    <s id="2">
      <w id="2.1" lemma="yes" tag="UH">Yes</w>
    </s>
  </body>
</text>
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(testDoc), ParserConf{})
	assert.NoError(t, err)
	assert.Equal(t, "doc1", doc.ID)
	assert.Equal(t, "en", doc.Lang)
	assert.Len(t, doc.Sentences, 2)

	s := doc.Sentences[0]
	assert.Equal(t, "1", s.ID)
	assert.Len(t, s.Words, 4)
	assert.Equal(t, "has", s.Words[1].Word)
	assert.Equal(t, "have", s.Words[1].Lemma)
	assert.Equal(t, "VHZ", s.Words[1].Tag)
	assert.Equal(t, "1.2", s.Words[1].ID)
}

func TestParseDocumentCustomAttrs(t *testing.T) {
	src := `<text><s id="1"><w id="1.1" lem="go" ana="VRB">goes</w></s></text>`
	doc, err := ParseDocument(
		strings.NewReader(src), ParserConf{LemmaAttr: "lem", TagAttr: "ana"})
	assert.NoError(t, err)
	w := doc.Sentences[0].Words[0]
	assert.Equal(t, "go", w.Lemma)
	assert.Equal(t, "VRB", w.Tag)
}

func TestParseDocumentTokenOutsideSentence(t *testing.T) {
	src := `<text><w id="1" lemma="x" tag="X">x</w></text>`
	_, err := ParseDocument(strings.NewReader(src), ParserConf{})
	assert.Error(t, err)
}

func TestSentenceText(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(testDoc), ParserConf{})
	assert.NoError(t, err)
	assert.Equal(t, "She has loved .", doc.Sentences[0].Text())
}

func TestSentenceSiblings(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(testDoc), ParserConf{})
	assert.NoError(t, err)
	s := doc.Sentences[0]
	aux := s.Words[1]

	following := s.FollowingSiblings(aux)
	assert.Len(t, following, 2)
	assert.Equal(t, "loved", following[0].Word)

	preceding := s.PrecedingSiblings(aux)
	assert.Len(t, preceding, 1)
	assert.Equal(t, "She", preceding[0].Word)
}

func TestSentenceSiblingsAtBounds(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(testDoc), ParserConf{})
	assert.NoError(t, err)
	s := doc.Sentences[0]
	assert.Empty(t, s.FollowingSiblings(s.Words[len(s.Words)-1]))
	assert.Empty(t, s.PrecedingSiblings(s.Words[0]))
}

func TestDocumentSentenceLookup(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(testDoc), ParserConf{})
	assert.NoError(t, err)
	assert.Equal(t, "Yes", doc.SentenceText("2"))
	assert.Equal(t, "-", doc.SentenceText("99"))
	assert.Nil(t, doc.Sentence("99"))
}
