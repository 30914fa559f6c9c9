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
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	DfltLemmaAttr = "lemma"
	DfltTagAttr   = "tag"
	DfltIDAttr    = "id"
)

// ParserConf makes the names of token attributes configurable,
// as tagger output differs between corpora (e.g. `tag` vs. `ana`,
// `lemma` vs. `lem`).
type ParserConf struct {
	LemmaAttr string `json:"lemmaAttr"`
	TagAttr   string `json:"tagAttr"`
	IDAttr    string `json:"idAttr"`
}

func (pc ParserConf) WithDefaults() ParserConf {
	if pc.LemmaAttr == "" {
		pc.LemmaAttr = DfltLemmaAttr
	}
	if pc.TagAttr == "" {
		pc.TagAttr = DfltTagAttr
	}
	if pc.IDAttr == "" {
		pc.IDAttr = DfltIDAttr
	}
	return pc
}

func attrValue(elm xml.StartElement, name string) string {
	for _, a := range elm.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// ParseDocument reads a tagged corpus document from `src`.
// The expected markup is the TEI-style `<s id="..."><w id lemma tag>word</w></s>`;
// any wrapping elements (text, body, p) are skipped transparently.
func ParseDocument(src io.Reader, conf ParserConf) (*Document, error) {
	conf = conf.WithDefaults()
	doc := new(Document)
	dec := xml.NewDecoder(src)
	var currSent *Sentence
	var currTok *Token
	var text strings.Builder
	for {
		rawTok, err := dec.Token()
		if err == io.EOF {
			break

		} else if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		switch tok := rawTok.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "s":
				currSent = &Sentence{ID: attrValue(tok, conf.IDAttr)}
			case "w":
				if currSent == nil {
					return nil, fmt.Errorf("failed to parse document: `w` element outside a sentence")
				}
				currTok = &Token{
					Lemma: attrValue(tok, conf.LemmaAttr),
					Tag:   attrValue(tok, conf.TagAttr),
					ID:    attrValue(tok, conf.IDAttr),
				}
				text.Reset()
			case "text":
				if doc.ID == "" {
					doc.ID = attrValue(tok, conf.IDAttr)
				}
				if doc.Lang == "" {
					doc.Lang = attrValue(tok, "lang")
				}
			}
		case xml.CharData:
			if currTok != nil {
				text.Write(tok)
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "w":
				if currTok != nil {
					currTok.Word = strings.TrimSpace(text.String())
					currSent.Words = append(currSent.Words, currTok)
					currTok = nil
				}
			case "s":
				if currSent != nil {
					doc.Sentences = append(doc.Sentences, currSent)
					currSent = nil
				}
			}
		}
	}
	return doc, nil
}

// LoadDocument parses a document file. The document ID defaults
// to the file name (without extension) unless the markup provides one.
func LoadDocument(path string, conf ParserConf) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	defer f.Close()
	doc, err := ParseDocument(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %s: %w", path, err)
	}
	if doc.ID == "" {
		base := filepath.Base(path)
		doc.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc, nil
}
