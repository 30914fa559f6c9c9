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
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const (
	// csvDelimiter matches the dialect the downstream spreadsheet
	// tooling expects
	csvDelimiter = ';'

	// utf8BOM hints Excel that the file is UTF-8 encoded
	utf8BOM = "\uFEFF"

	notTranslated = "Not translated"
)

// ExportCSV writes extraction results as a semicolon-delimited CSV
// with a UTF-8 BOM. Per target language two columns are produced:
// the alignment cardinality and the translated sentence(s), with the
// counterpart construction marked where one was detected.
func ExportCSV(w io.Writer, res *Extraction) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to export CSV: %w", err)
	}
	cw := csv.NewWriter(w)
	cw.Comma = csvDelimiter

	header := []string{"document", "segment", "type", "construction", "ids", res.LangFrom}
	for _, lang := range res.LangsTo {
		header = append(header, "alignment", lang)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to export CSV: %w", err)
	}

	for _, item := range res.Items {
		row := []string{
			item.Document,
			item.SegmentID,
			item.CType,
			item.Construction,
			strings.Join(item.WordIDs, " "),
			item.MarkedSentence,
		}
		byLang := make(map[string]TranslatedSegment, len(item.Translations))
		for _, tr := range item.Translations {
			byLang[tr.Lang] = tr
		}
		for _, lang := range res.LangsTo {
			tr, ok := byLang[lang]
			if !ok || len(tr.Sentences) == 0 {
				row = append(row, "", notTranslated)
				continue
			}
			sentences := tr.MarkedSentences
			if len(sentences) == 0 {
				sentences = tr.Sentences
			}
			row = append(row, tr.AlignmentType, strings.Join(sentences, "\n"))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
