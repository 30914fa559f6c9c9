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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignmentFilePathNormalizesOrder(t *testing.T) {
	p1 := AlignmentFilePath("/data/dpc", "nl", "en")
	p2 := AlignmentFilePath("/data/dpc", "en", "nl")
	assert.Equal(t, p1, p2)
	assert.Equal(t, filepath.Join("/data/dpc", "en-nl.xml"), p1)
}

func TestDocumentPath(t *testing.T) {
	assert.Equal(
		t,
		filepath.Join("/data/dpc", "en", "doc1.xml"),
		DocumentPath("/data/dpc", "en", "doc1"),
	)
}

func TestResolveDataDir(t *testing.T) {
	cs := &CorpusSetup{ID: "dpc", DataDir: "dpc"}
	assert.Equal(t, filepath.Join("/data", "dpc"), ResolveDataDir("/data", cs))

	cs.DataDir = "/elsewhere/dpc"
	assert.Equal(t, "/elsewhere/dpc", ResolveDataDir("/data", cs))
}

func TestListDocuments(t *testing.T) {
	dataDir := t.TempDir()
	langDir := filepath.Join(dataDir, "en")
	assert.NoError(t, os.MkdirAll(langDir, 0755))
	for _, name := range []string{"b.xml", "a.xml", "notes.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(langDir, name), []byte("<text/>"), 0644))
	}
	docs, err := ListDocuments(dataDir, "en")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, docs)
}

func TestListDocumentsMissingDir(t *testing.T) {
	_, err := ListDocuments(t.TempDir(), "en")
	assert.Error(t, err)
}
