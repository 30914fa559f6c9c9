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

package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"pextract/extractor"
)

// Single corpus configuration types
// ----------------------------------------

// CorpusSetup describes one parallel corpus: where its per-language
// document trees live and the extraction grammar of each language.
type CorpusSetup struct {
	ID          string            `json:"id"`
	FullName    map[string]string `json:"fullName"`
	Description map[string]string `json:"description"`

	// DataDir is the corpus data root; when relative, it is resolved
	// against the global corpora data directory.
	DataDir string `json:"dataDir"`

	// Languages maps a language code to its grammar configuration.
	Languages map[string]*extractor.LangConf `json:"languages"`

	// MaximumRecords limits the number of result rows per query.
	MaximumRecords int `json:"maximumRecords"`
}

func (cs *CorpusSetup) LocaleDescription(lang string) string {
	d := cs.Description[lang]
	if d != "" {
		return d
	}
	return cs.Description["en"]
}

func (cs *CorpusSetup) HasLanguage(lang string) bool {
	_, ok := cs.Languages[lang]
	return ok
}

func (cs *CorpusSetup) LanguageList() []string {
	ans := make([]string, 0, len(cs.Languages))
	for lang := range cs.Languages {
		ans = append(ans, lang)
	}
	return ans
}

func (cs *CorpusSetup) ValidateAndDefaults(confDir string) error {
	if cs.ID == "" {
		return fmt.Errorf("missing corpus `id`")
	}
	if cs.DataDir == "" {
		return fmt.Errorf("corpus %s: missing `dataDir`", cs.ID)
	}
	if len(cs.Languages) < 2 {
		return fmt.Errorf("corpus %s: a parallel corpus requires at least two languages", cs.ID)
	}
	for lang, lconf := range cs.Languages {
		if lconf == nil {
			return fmt.Errorf("corpus %s: empty configuration for language %s", cs.ID, lang)
		}
		if err := lconf.ValidateAndLoad(lang, confDir); err != nil {
			return fmt.Errorf("corpus %s: %w", cs.ID, err)
		}
	}
	if cs.MaximumRecords == 0 {
		cs.MaximumRecords = DfltMaximumRecords
		log.Warn().
			Str("corpus", cs.ID).
			Int("value", DfltMaximumRecords).
			Msg("`maximumRecords` not set, using default")
	}
	return nil
}

// ----

// Resources is a list of configured corpora.
type Resources []*CorpusSetup

func (rsc Resources) Get(name string) *CorpusSetup {
	for _, v := range rsc {
		if v.ID == name {
			return v
		}
	}
	return nil
}

func (rsc Resources) GetAllCorpora() []*CorpusSetup {
	return rsc
}

// Load reads all per-corpus JSON files from a directory.
func (rsc *Resources) Load(confDir string) error {
	files, err := os.ReadDir(confDir)
	if err != nil {
		return fmt.Errorf("failed to read corpora config directory: %w", err)
	}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		fullPath := filepath.Join(confDir, f.Name())
		rawData, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read corpus config %s: %w", f.Name(), err)
		}
		var conf CorpusSetup
		if err := sonic.Unmarshal(rawData, &conf); err != nil {
			return fmt.Errorf("failed to parse corpus config %s: %w", f.Name(), err)
		}
		*rsc = append(*rsc, &conf)
		log.Info().
			Str("corpus", conf.ID).
			Str("file", f.Name()).
			Msg("loaded corpus configuration")
	}
	return nil
}
