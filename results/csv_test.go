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

package results

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkTestExtraction() *Extraction {
	return &Extraction{
		CorpusID: "dpc",
		LangFrom: "en",
		LangsTo:  []string{"nl", "fr"},
		Detector: "perfect",
		Items: []*ExtractedItem{
			{
				Document:       "doc1",
				SegmentID:      "1",
				CType:          "perfect",
				Construction:   "has loved",
				WordIDs:        []string{"1.2", "1.3"},
				Sentence:       "She has loved him .",
				MarkedSentence: "She **has loved** him .",
				Translations: []TranslatedSegment{
					{
						Lang:            "nl",
						AlignmentType:   "1 => 1",
						SegmentIDs:      []string{"1"},
						Sentences:       []string{"Zij heeft hem liefgehad ."},
						Construction:    "heeft liefgehad",
						MarkedSentences: []string{"Zij **heeft** hem **liefgehad** ."},
					},
				},
			},
		},
	}
}

func TestExportCSVStartsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(&buf, mkTestExtraction())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "\uFEFF"))
}

func TestExportCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(&buf, mkTestExtraction())
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimPrefix(buf.String(), "\uFEFF"), "\n")
	assert.Equal(
		t,
		"document;segment;type;construction;ids;en;alignment;nl;alignment;fr",
		lines[0],
	)
}

func TestExportCSVRow(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(&buf, mkTestExtraction())
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(
		t,
		"doc1;1;perfect;has loved;1.2 1.3;She **has loved** him .;1 => 1;Zij **heeft** hem **liefgehad** .;;Not translated",
		lines[1],
	)
}

func TestNormRound(t *testing.T) {
	assert.Equal(t, 0.667, NormRound(2.0/3))
	assert.Equal(t, 0.0, NormRound(0))
	assert.Equal(t, 1.0, NormRound(0.9999))
}
