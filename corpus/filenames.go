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
	"sort"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
)

// Corpus data layout:
//
//	<dataDir>/<corpus>/<lang>/<document>.xml   tagged documents
//	<dataDir>/<corpus>/<langA>-<langB>.xml     alignment tables
//
// Alignment file names always use the lexicographic language order,
// which also canonically disambiguates the left/right sides of each
// alignment link.

// ResolveDataDir returns the absolute data directory of a corpus.
func ResolveDataDir(rootDir string, cs *CorpusSetup) string {
	if filepath.IsAbs(cs.DataDir) {
		return cs.DataDir
	}
	return filepath.Join(rootDir, cs.DataDir)
}

// LangDir returns the document directory of one language.
func LangDir(dataDir, lang string) string {
	return filepath.Join(dataDir, lang)
}

// DocumentPath returns the path of a single tagged document.
func DocumentPath(dataDir, lang, docName string) string {
	return filepath.Join(dataDir, lang, docName+".xml")
}

// AlignmentFilePath returns the path of the alignment table for
// a language pair, normalizing the pair to its canonical order.
func AlignmentFilePath(dataDir, lang1, lang2 string) string {
	sl := []string{lang1, lang2}
	sort.Strings(sl)
	return filepath.Join(dataDir, strings.Join(sl, "-")+".xml")
}

// ListDocuments returns the names (without extension) of all
// documents available for a language, in lexical order.
func ListDocuments(dataDir, lang string) ([]string, error) {
	dirPath := LangDir(dataDir, lang)
	isDir, err := fs.IsDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if !isDir {
		return nil, fmt.Errorf("failed to list documents: %s is not a directory", dirPath)
	}
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	ans := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".xml") {
			continue
		}
		ans = append(ans, strings.TrimSuffix(f.Name(), ".xml"))
	}
	sort.Strings(ans)
	return ans, nil
}
