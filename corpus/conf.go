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

	"github.com/czcorpus/cnc-gokit/fs"
)

const (
	DfltMaximumRecords = 50
)

// CorporaSetup defines a root configuration of corpora
type CorporaSetup struct {

	// DataDir is the root directory all relative corpus data
	// directories are resolved against.
	DataDir string `json:"dataDir"`

	// ConfFilesDir contains per-corpus JSON configs and lexicon files.
	ConfFilesDir string `json:"confFilesDir"`

	Resources Resources `json:"resources"`
}

func (cs *CorporaSetup) GetCorpus(corpusID string) *CorpusSetup {
	return cs.Resources.Get(corpusID)
}

func (cs *CorporaSetup) ValidateAndDefaults(confContext string) error {
	if cs == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if cs.DataDir == "" {
		return fmt.Errorf("missing `%s.dataDir`", confContext)
	}
	isDir, err := fs.IsDir(cs.DataDir)
	if err != nil {
		return fmt.Errorf("failed to test `%s.dataDir`: %w", confContext, err)
	}
	if !isDir {
		return fmt.Errorf("`%s.dataDir` is not a directory", confContext)
	}
	if cs.ConfFilesDir != "" {
		isDir, err = fs.IsDir(cs.ConfFilesDir)
		if err != nil {
			return fmt.Errorf("failed to test `%s.confFilesDir`: %w", confContext, err)
		}
		if !isDir {
			return fmt.Errorf("`%s.confFilesDir` is not a directory", confContext)
		}
	}
	for _, v := range cs.Resources {
		if err := v.ValidateAndDefaults(cs.ConfFilesDir); err != nil {
			return err
		}
	}
	return nil
}
