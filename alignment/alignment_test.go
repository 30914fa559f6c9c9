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
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkTestIndex(t *testing.T) *Index {
	idx, err := Build([]RawLink{
		{Left: "1", Right: "2 3", Certainty: "0.9"},
		{Left: "2", Right: "4", Certainty: "0.5"},
		{Left: "3 4", Right: "5"},
	}, "en", "nl")
	assert.NoError(t, err)
	return idx
}

func TestBuildNormalizesLangOrder(t *testing.T) {
	idx, err := Build(nil, "nl", "en")
	assert.NoError(t, err)
	l1, l2 := idx.Langs()
	assert.Equal(t, "en", l1)
	assert.Equal(t, "nl", l2)
}

func TestResolveLeftToRight(t *testing.T) {
	idx := mkTestIndex(t)
	fromGroup, toGroup, desc := idx.Resolve("en", "nl", "1")
	assert.Equal(t, []string{"1"}, fromGroup)
	assert.Equal(t, []string{"2", "3"}, toGroup)
	assert.Equal(t, "1 => 2", desc)
}

func TestResolveRightToLeft(t *testing.T) {
	idx := mkTestIndex(t)
	fromGroup, toGroup, desc := idx.Resolve("nl", "en", "3")
	assert.Equal(t, []string{"2", "3"}, fromGroup)
	assert.Equal(t, []string{"1"}, toGroup)
	assert.Equal(t, "2 => 1", desc)
}

func TestResolveMissIsNotAnError(t *testing.T) {
	idx := mkTestIndex(t)
	fromGroup, toGroup, desc := idx.Resolve("en", "nl", "99")
	assert.Equal(t, []string{}, fromGroup)
	assert.Equal(t, []string{}, toGroup)
	assert.Equal(t, "", desc)
}

func TestResolveForeignLangPair(t *testing.T) {
	idx := mkTestIndex(t)
	fromGroup, toGroup, desc := idx.Resolve("en", "fr", "1")
	assert.Empty(t, fromGroup)
	assert.Empty(t, toGroup)
	assert.Equal(t, "", desc)
}

func TestResolveManyToOne(t *testing.T) {
	idx := mkTestIndex(t)
	fromGroup, toGroup, desc := idx.Resolve("en", "nl", "4")
	assert.Equal(t, []string{"3", "4"}, fromGroup)
	assert.Equal(t, []string{"5"}, toGroup)
	assert.Equal(t, "2 => 1", desc)
}

func TestCertainty(t *testing.T) {
	idx := mkTestIndex(t)
	v, ok := idx.Certainty("en", "nl", "1")
	assert.True(t, ok)
	assert.InDelta(t, 0.9, v, 0.0001)
}

func TestCertaintyUnknown(t *testing.T) {
	idx := mkTestIndex(t)
	_, ok := idx.Certainty("en", "nl", "3")
	assert.False(t, ok)
}

func TestMeanCertaintyExcludesUnknown(t *testing.T) {
	idx := mkTestIndex(t)
	assert.InDelta(t, 0.7, idx.MeanCertainty(), 0.0001)
}

func TestMeanCertaintyAllUnknown(t *testing.T) {
	idx, err := Build([]RawLink{
		{Left: "1", Right: "1"},
		{Left: "2", Right: "2"},
	}, "en", "nl")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, idx.MeanCertainty())
}

func TestBuildEmptySegmentGroupIsFormatError(t *testing.T) {
	_, err := Build([]RawLink{{Left: "1", Right: ""}}, "en", "nl")
	assert.Error(t, err)
}

func TestBuildUnparsableCertaintyDegradesToUnknown(t *testing.T) {
	idx, err := Build([]RawLink{
		{Left: "1", Right: "1", Certainty: "n/a"},
	}, "en", "nl")
	assert.NoError(t, err)
	_, ok := idx.Certainty("en", "nl", "1")
	assert.False(t, ok)
	assert.Equal(t, 0.0, idx.MeanCertainty())
}

func TestCacheBuildsOnce(t *testing.T) {
	c := NewCache()
	var numBuilds int
	build := func() (*Index, error) {
		numBuilds++
		return Build(nil, "en", "nl")
	}
	idx1, err := c.GetOrBuild("nl", build)
	assert.NoError(t, err)
	idx2, err := c.GetOrBuild("nl", build)
	assert.NoError(t, err)
	assert.Same(t, idx1, idx2)
	assert.Equal(t, 1, numBuilds)
}

func TestCacheFailedBuildNotCached(t *testing.T) {
	c := NewCache()
	_, err := c.GetOrBuild("nl", func() (*Index, error) {
		return Build([]RawLink{{Left: "", Right: "1"}}, "en", "nl")
	})
	assert.Error(t, err)
	_, ok := c.Get("nl")
	assert.False(t, ok)
}
