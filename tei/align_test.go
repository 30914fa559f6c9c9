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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testAlignFile = `<?xml version="1.0" encoding="utf-8"?>
<cesAlign>
  <linkGrp targType="s" fromDoc="en/doc1.xml.gz" toDoc="nl/doc1.xml.gz">
    <link xtargets="1;1" certainty="0.8" />
    <link xtargets="2;2 3" />
  </linkGrp>
  <linkGrp targType="s" fromDoc="en/doc2.xml" toDoc="nl/doc2.xml">
    <link xtargets="1;1" />
  </linkGrp>
</cesAlign>
`

func TestParseAlignmentFile(t *testing.T) {
	af, err := ParseAlignmentFile(strings.NewReader(testAlignFile))
	assert.NoError(t, err)
	assert.Len(t, af.Groups, 2)

	grp := af.Groups[0]
	assert.Equal(t, "en/doc1.xml.gz", grp.FromDoc)
	assert.Equal(t, "nl/doc1.xml.gz", grp.ToDoc)
	assert.Len(t, grp.Links, 2)
	assert.Equal(t, "1", grp.Links[0].Left)
	assert.Equal(t, "1", grp.Links[0].Right)
	assert.Equal(t, "0.8", grp.Links[0].Certainty)
	assert.Equal(t, "2", grp.Links[1].Left)
	assert.Equal(t, "2 3", grp.Links[1].Right)
	assert.Equal(t, "", grp.Links[1].Certainty)
}

func TestParseAlignmentFileLinkOutsideGroup(t *testing.T) {
	src := `<cesAlign><link xtargets="1;1" /></cesAlign>`
	_, err := ParseAlignmentFile(strings.NewReader(src))
	assert.Error(t, err)
}

func TestFindGroupIgnoresPrefixAndSuffix(t *testing.T) {
	af, err := ParseAlignmentFile(strings.NewReader(testAlignFile))
	assert.NoError(t, err)

	grp := af.FindGroup("doc1", true)
	assert.NotNil(t, grp)
	assert.Equal(t, "en/doc1.xml.gz", grp.FromDoc)

	grp = af.FindGroup("doc2", false)
	assert.NotNil(t, grp)
	assert.Equal(t, "nl/doc2.xml", grp.ToDoc)
}

func TestFindGroupMiss(t *testing.T) {
	af, err := ParseAlignmentFile(strings.NewReader(testAlignFile))
	assert.NoError(t, err)
	assert.Nil(t, af.FindGroup("doc3", true))
}
