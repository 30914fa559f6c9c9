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
	"strings"

	"pextract/alignment"
)

// LinkGroup carries all alignment links between one document pair.
// An alignment line looks like this:
//
//	<linkGrp targType="s" fromDoc="en/doc1.xml.gz" toDoc="nl/doc1.xml.gz">
//	    <link xtargets="1;1" certainty="0.8" />
//	    <link xtargets="2;2 3" />
//	</linkGrp>
//
// The part of `xtargets` before the semicolon refers to fromDoc segments,
// the part after it to toDoc segments.
type LinkGroup struct {
	FromDoc string
	ToDoc   string
	Links   []alignment.RawLink
}

// AlignmentFile is a parsed per-language-pair alignment table.
type AlignmentFile struct {
	Groups []LinkGroup
}

// FindGroup returns the link group for a document, matched against
// the `fromDoc` attribute when `asSource` is set, against `toDoc`
// otherwise. Document references in alignment tables may carry
// a directory prefix and a .gz suffix - matching ignores both.
func (af *AlignmentFile) FindGroup(docName string, asSource bool) *LinkGroup {
	for i, grp := range af.Groups {
		ref := grp.FromDoc
		if !asSource {
			ref = grp.ToDoc
		}
		base := strings.TrimSuffix(ref, ".gz")
		if idx := strings.LastIndex(base, "/"); idx > -1 {
			base = base[idx+1:]
		}
		if base == docName || strings.TrimSuffix(base, ".xml") == docName {
			return &af.Groups[i]
		}
	}
	return nil
}

// ParseAlignmentFile reads an alignment table from `src`.
// A `link` element without the two xtargets groups is passed through
// as-is; validation of the groups happens at index build time where
// it can be reported as a FormatError.
func ParseAlignmentFile(src io.Reader) (*AlignmentFile, error) {
	ans := new(AlignmentFile)
	dec := xml.NewDecoder(src)
	var currGrp *LinkGroup
	for {
		rawTok, err := dec.Token()
		if err == io.EOF {
			break

		} else if err != nil {
			return nil, fmt.Errorf("failed to parse alignment file: %w", err)
		}
		switch tok := rawTok.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "linkGrp":
				ans.Groups = append(ans.Groups, LinkGroup{
					FromDoc: attrValue(tok, "fromDoc"),
					ToDoc:   attrValue(tok, "toDoc"),
				})
				currGrp = &ans.Groups[len(ans.Groups)-1]
			case "link":
				if currGrp == nil {
					return nil, fmt.Errorf(
						"failed to parse alignment file: `link` element outside a linkGrp")
				}
				xtargets := attrValue(tok, "xtargets")
				var left, right string
				if idx := strings.Index(xtargets, ";"); idx > -1 {
					left, right = xtargets[:idx], xtargets[idx+1:]

				} else {
					left = xtargets
				}
				currGrp.Links = append(currGrp.Links, alignment.RawLink{
					Left:      left,
					Right:     right,
					Certainty: attrValue(tok, "certainty"),
				})
			}
		case xml.EndElement:
			if tok.Name.Local == "linkGrp" {
				currGrp = nil
			}
		}
	}
	return ans, nil
}

// LoadAlignmentFile parses an alignment table file.
func LoadAlignmentFile(path string) (*AlignmentFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load alignment file: %w", err)
	}
	defer f.Close()
	return ParseAlignmentFile(f)
}
