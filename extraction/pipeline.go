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

package extraction

import (
	"fmt"
	"sort"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"

	"pextract/alignment"
	"pextract/corpus"
	"pextract/extractor"
	"pextract/perror"
	"pextract/results"
	"pextract/tei"
)

// Pipeline runs construction extraction over the documents of one
// corpus. It is cheap to create and carries no state between
// documents; per-document caches (alignment indices, translation
// trees) live only for the duration of one ProcessDocument call.
type Pipeline struct {
	corpConf *corpus.CorpusSetup
	dataDir  string
}

// NewPipeline creates a pipeline over an already resolved corpus
// data directory.
func NewPipeline(corpConf *corpus.CorpusSetup, dataDir string) *Pipeline {
	return &Pipeline{
		corpConf: corpConf,
		dataDir:  dataDir,
	}
}

func (p *Pipeline) langConf(lang string) (*extractor.LangConf, error) {
	lconf, ok := p.corpConf.Languages[lang]
	if !ok {
		return nil, perror.InputError{
			Msg: fmt.Sprintf("corpus %s has no language %s", p.corpConf.ID, lang)}
	}
	return lconf, nil
}

// ListDocuments lists the documents available in a source language.
func (p *Pipeline) ListDocuments(lang string) ([]string, error) {
	if _, err := p.langConf(lang); err != nil {
		return nil, err
	}
	return corpus.ListDocuments(p.dataDir, lang)
}

func (p *Pipeline) loadAlignmentIndex(
	docName, langFrom, langTo string,
) (*alignment.Index, error) {
	path := corpus.AlignmentFilePath(p.dataDir, langFrom, langTo)
	if !fs.PathExists(path) {
		log.Warn().
			Str("document", docName).
			Str("langFrom", langFrom).
			Str("langTo", langTo).
			Msg("no alignment table for language pair")
		return alignment.Build(nil, langFrom, langTo)
	}
	af, err := tei.LoadAlignmentFile(path)
	if err != nil {
		return nil, err
	}
	l1, l2 := langFrom, langTo
	if l2 < l1 {
		l1, l2 = l2, l1
	}
	grp := af.FindGroup(docName, l1 == langFrom)
	if grp == nil {
		log.Warn().
			Str("document", docName).
			Str("langFrom", langFrom).
			Str("langTo", langTo).
			Msg("no translation found for document")
		return alignment.Build(nil, langFrom, langTo)
	}
	return alignment.Build(grp.Links, langFrom, langTo)
}

func (p *Pipeline) constructionType(
	dtype extractor.DetectorType,
	cons *extractor.Construction,
) string {
	switch dtype {
	case extractor.DetectorRecentPast:
		return "recent past"
	case extractor.DetectorPerfect:
		if len(cons.Construction()) > 2 {
			return "perfect continuous"
		}
		return "perfect"
	case extractor.DetectorPoS:
		return cons.Words()[0].Tag
	}
	return string(dtype)
}

// ProcessDocument extracts constructions from one source document and
// resolves every hit against all requested target languages. Sentences
// without a detectable construction and segments without an alignment
// are ordinary outcomes, not errors.
func (p *Pipeline) ProcessDocument(
	docName string,
	langFrom string,
	langsTo []string,
	dtype extractor.DetectorType,
) ([]*results.ExtractedItem, error) {
	lconf, err := p.langConf(langFrom)
	if err != nil {
		return nil, err
	}
	det, err := extractor.NewDetector(lconf, dtype)
	if err != nil {
		return nil, err
	}
	doc, err := tei.LoadDocument(
		corpus.DocumentPath(p.dataDir, langFrom, docName), lconf.Parser)
	if err != nil {
		return nil, err
	}

	alignCache := alignment.NewCache()
	translations := make(map[string]*tei.Document)
	detectors := make(map[string]extractor.Detector)

	ans := make([]*results.ExtractedItem, 0, 50)
	for _, sent := range doc.Sentences {
		for _, tok := range sent.Words {
			if !det.IsTrigger(tok.Tag) {
				continue
			}
			cons := det.Detect(tok, sent.FollowingSiblings(tok))
			if cons == nil {
				continue
			}
			item := &results.ExtractedItem{
				Document:       docName,
				SegmentID:      sent.ID,
				CType:          p.constructionType(dtype, cons),
				Construction:   cons.ConstructionToString(),
				WordIDs:        cons.WordIDs(),
				WordsBetween:   cons.WordsBetween(),
				Sentence:       sent.Text(),
				MarkedSentence: cons.MarkSentence(sent.Text()),
			}
			for _, langTo := range langsTo {
				trItem, err := p.resolveTranslation(
					alignCache, translations, detectors,
					docName, sent.ID, langFrom, langTo, dtype)
				if err != nil {
					return nil, err
				}
				item.Translations = append(item.Translations, trItem)
			}
			ans = append(ans, item)
		}
	}
	return ans, nil
}

// targetDetector lazily builds the counterpart detector of a target
// language. A language whose grammar cannot serve the requested family
// (e.g. recent past without a `recentPast` section) gets a nil entry -
// its translations are then fetched without counterpart detection.
func (p *Pipeline) targetDetector(
	detectors map[string]extractor.Detector,
	lang string,
	dtype extractor.DetectorType,
) extractor.Detector {
	det, ok := detectors[lang]
	if ok {
		return det
	}
	lconf, err := p.langConf(lang)
	if err == nil {
		det, err = extractor.NewDetector(lconf, dtype)
	}
	if err != nil {
		log.Warn().
			Str("lang", lang).
			Str("detector", string(dtype)).
			Err(err).
			Msg("counterpart detection not available for target language")
		det = nil
	}
	detectors[lang] = det
	return det
}

func (p *Pipeline) resolveTranslation(
	alignCache *alignment.Cache,
	translations map[string]*tei.Document,
	detectors map[string]extractor.Detector,
	docName, segmentID, langFrom, langTo string,
	dtype extractor.DetectorType,
) (results.TranslatedSegment, error) {
	ans := results.TranslatedSegment{Lang: langTo}
	idx, err := alignCache.GetOrBuild(langTo, func() (*alignment.Index, error) {
		return p.loadAlignmentIndex(docName, langFrom, langTo)
	})
	if err != nil {
		return ans, err
	}
	_, toGroup, desc := idx.Resolve(langFrom, langTo, segmentID)
	if len(toGroup) == 0 {
		return ans, nil
	}
	ans.AlignmentType = desc
	ans.SegmentIDs = toGroup

	trDoc, ok := translations[langTo]
	if !ok {
		lconf, err := p.langConf(langTo)
		if err != nil {
			return ans, err
		}
		trDoc, err = tei.LoadDocument(
			corpus.DocumentPath(p.dataDir, langTo, docName), lconf.Parser)
		if err != nil {
			return ans, err
		}
		translations[langTo] = trDoc
	}
	det := p.targetDetector(detectors, langTo, dtype)
	for _, segID := range toGroup {
		sent := trDoc.Sentence(segID)
		if sent == nil {
			ans.Sentences = append(ans.Sentences, trDoc.SentenceText(segID))
			ans.MarkedSentences = append(ans.MarkedSentences, trDoc.SentenceText(segID))
			continue
		}
		text := sent.Text()
		ans.Sentences = append(ans.Sentences, text)
		marked := text
		if det != nil && ans.Construction == "" {
			for _, tok := range sent.Words {
				if !det.IsTrigger(tok.Tag) {
					continue
				}
				cons := det.Detect(tok, sent.FollowingSiblings(tok))
				if cons == nil {
					continue
				}
				ans.Construction = cons.ConstructionToString()
				marked = cons.MarkSentence(text)
				break
			}
		}
		ans.MarkedSentences = append(ans.MarkedSentences, marked)
	}
	return ans, nil
}

// AlignmentInfo computes per-document mean alignment certainty for
// a language pair and orders the documents most confident first.
func (p *Pipeline) AlignmentInfo(langFrom, langTo string) ([]*results.AlignInfoItem, error) {
	if _, err := p.langConf(langFrom); err != nil {
		return nil, err
	}
	if _, err := p.langConf(langTo); err != nil {
		return nil, err
	}
	docs, err := corpus.ListDocuments(p.dataDir, langFrom)
	if err != nil {
		return nil, err
	}
	ans := make([]*results.AlignInfoItem, 0, len(docs))
	for _, docName := range docs {
		idx, err := p.loadAlignmentIndex(docName, langFrom, langTo)
		if err != nil {
			return nil, err
		}
		if idx.NumLinks() == 0 {
			continue
		}
		ans = append(ans, &results.AlignInfoItem{
			Document:      docName,
			MeanCertainty: results.NormRound(idx.MeanCertainty()),
			NumLinks:      idx.NumLinks(),
		})
	}
	sort.SliceStable(ans, func(i, j int) bool {
		return ans[i].MeanCertainty > ans[j].MeanCertainty
	})
	return ans, nil
}
