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

package alignment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"

	"pextract/perror"
)

// RawLink is one alignment record as read from an alignment table,
// before any interpretation: two space-delimited groups of segment
// ids (in the table's fixed left/right order) plus an optional
// certainty value.
type RawLink struct {
	Left      string
	Right     string
	Certainty string
}

// Link maps an ordered group of source segment ids to an ordered
// group of target segment ids. Immutable once built.
type Link struct {
	Sources      []string
	Targets      []string
	Certainty    float64
	HasCertainty bool
}

// Index holds all alignment links of one (document, language pair)
// combination. The two languages are stored in lexicographic order;
// lookups use this ordering to decide which side of each link is
// the "from" side. An index is never mutated after Build.
type Index struct {
	lang1 string
	lang2 string
	links []Link
}

func (idx *Index) Langs() (string, string) {
	return idx.lang1, idx.lang2
}

func (idx *Index) NumLinks() int {
	return len(idx.links)
}

// Build creates an alignment index for the language pair (langA, langB)
// out of raw alignment records. A record with an empty segment group is
// a FormatError. A certainty value which is present but not parseable
// as a number is recovered leniently - it degrades to "unknown".
func Build(rawLinks []RawLink, langA, langB string) (*Index, error) {
	l1, l2 := langA, langB
	if l2 < l1 {
		l1, l2 = l2, l1
	}
	links := make([]Link, 0, len(rawLinks))
	for i, rl := range rawLinks {
		sources := strings.Fields(rl.Left)
		targets := strings.Fields(rl.Right)
		if len(sources) == 0 || len(targets) == 0 {
			return nil, perror.FormatError{
				Msg: fmt.Sprintf("alignment link %d: empty segment group", i)}
		}
		lnk := Link{Sources: sources, Targets: targets}
		if c := strings.TrimSpace(rl.Certainty); c != "" {
			v, err := strconv.ParseFloat(c, 64)
			if err != nil {
				log.Warn().
					Str("value", rl.Certainty).
					Int("link", i).
					Msg("unparsable alignment certainty, treating as unknown")

			} else {
				lnk.Certainty = v
				lnk.HasCertainty = true
			}
		}
		links = append(links, lnk)
	}
	return &Index{lang1: l1, lang2: l2, links: links}, nil
}

// Descriptor encodes the cardinality class of an alignment
// (e.g. "1 => 2" for a 1-to-2 alignment).
func Descriptor(fromGroup, toGroup []string) string {
	if len(toGroup) == 0 {
		return ""
	}
	return fmt.Sprintf("%d => %d", len(fromGroup), len(toGroup))
}

// Resolve finds the segment group aligned with `segmentID` when going
// from language `langFrom` to `langTo`. The first link whose "from"
// group contains the segment wins; alignment tables are assumed to
// contain at most one match per segment. A miss is a normal outcome:
// both groups come back empty along with an empty descriptor.
func (idx *Index) Resolve(langFrom, langTo, segmentID string) ([]string, []string, string) {
	l1, l2 := langFrom, langTo
	if l2 < l1 {
		l1, l2 = l2, l1
	}
	if l1 != idx.lang1 || l2 != idx.lang2 {
		log.Warn().
			Str("langFrom", langFrom).
			Str("langTo", langTo).
			Str("indexLang1", idx.lang1).
			Str("indexLang2", idx.lang2).
			Msg("alignment index queried with a foreign language pair")
		return []string{}, []string{}, ""
	}
	fromIsLeft := l1 == langFrom
	for _, lnk := range idx.links {
		fromGroup, toGroup := lnk.Sources, lnk.Targets
		if !fromIsLeft {
			fromGroup, toGroup = lnk.Targets, lnk.Sources
		}
		if collections.SliceContains(fromGroup, segmentID) {
			return fromGroup, toGroup, Descriptor(fromGroup, toGroup)
		}
	}
	return []string{}, []string{}, ""
}

// Certainty returns the certainty of the first link whose "from" group
// contains the segment, or false when the link carries no certainty
// or no link matches.
func (idx *Index) Certainty(langFrom, langTo, segmentID string) (float64, bool) {
	l1, l2 := langFrom, langTo
	if l2 < l1 {
		l1, l2 = l2, l1
	}
	if l1 != idx.lang1 || l2 != idx.lang2 {
		return 0, false
	}
	fromIsLeft := l1 == langFrom
	for _, lnk := range idx.links {
		fromGroup := lnk.Sources
		if !fromIsLeft {
			fromGroup = lnk.Targets
		}
		if collections.SliceContains(fromGroup, segmentID) {
			return lnk.Certainty, lnk.HasCertainty
		}
	}
	return 0, false
}

// MeanCertainty computes the mean of the known certainty values.
// Links with unknown certainty are excluded from both the sum and
// the count; with no known certainty at all the mean is 0.
func (idx *Index) MeanCertainty() float64 {
	var sum float64
	var num int
	for _, lnk := range idx.links {
		if lnk.HasCertainty {
			sum += lnk.Certainty
			num++
		}
	}
	if num == 0 {
		return 0
	}
	return sum / float64(num)
}
