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

package extractor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAndLoadInlineBinding(t *testing.T) {
	lc := &LangConf{
		TriggerTags:     []string{"VHZ"},
		ConstructionTag: "VVN",
		LexicalBinding:  map[string][]string{"have": {"love"}},
	}
	err := lc.ValidateAndLoad("en", "")
	assert.NoError(t, err)
	assert.True(t, lc.IsLexicallyBound("have", "love"))
	assert.False(t, lc.IsLexicallyBound("have", "go"))
}

func TestValidateAndLoadLexiconFile(t *testing.T) {
	confDir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(confDir, "aux-be.txt"), []byte("gaan\nkomen lopen\n"), 0644)
	assert.NoError(t, err)

	lc := &LangConf{
		TriggerTags:         []string{"verbpressg"},
		ConstructionTag:     "verbpapa",
		LexicalBindingFiles: map[string]string{"zijn": "aux-be.txt"},
	}
	err = lc.ValidateAndLoad("nl", confDir)
	assert.NoError(t, err)
	assert.True(t, lc.IsLexicallyBound("zijn", "gaan"))
	assert.True(t, lc.IsLexicallyBound("zijn", "lopen"))
	assert.False(t, lc.IsLexicallyBound("zijn", "hebben"))
}

func TestValidateAndLoadMissingLexiconFails(t *testing.T) {
	lc := &LangConf{
		TriggerTags:         []string{"VHZ"},
		ConstructionTag:     "VVN",
		LexicalBindingFiles: map[string]string{"have": "no-such-file.txt"},
	}
	err := lc.ValidateAndLoad("en", t.TempDir())
	assert.Error(t, err)
}

func TestValidateAndLoadMissingTriggerTags(t *testing.T) {
	lc := &LangConf{ConstructionTag: "VVN"}
	assert.Error(t, lc.ValidateAndLoad("en", ""))
}

func TestValidateAndLoadContinuousRequiresLemma(t *testing.T) {
	lc := &LangConf{
		TriggerTags:     []string{"VHZ"},
		ConstructionTag: "VVN",
		Continuous:      true,
	}
	assert.Error(t, lc.ValidateAndLoad("en", ""))
}

func TestValidateAndLoadPoSRequiresTags(t *testing.T) {
	lc := &LangConf{
		TriggerTags:     []string{"VER:pres"},
		ConstructionTag: "VER:pper",
		PoS:             &PoSConf{Lemmata: []string{"le"}},
	}
	assert.Error(t, lc.ValidateAndLoad("fr", ""))
}

func TestValidateAndLoadPoSWithTags(t *testing.T) {
	lc := &LangConf{
		TriggerTags:     []string{"VER:pres"},
		ConstructionTag: "VER:pper",
		PoS:             &PoSConf{Tags: []string{"DET:ART"}},
	}
	assert.NoError(t, lc.ValidateAndLoad("fr", ""))
}

func TestIsTrigger(t *testing.T) {
	lc := &LangConf{TriggerTags: []string{"VHZ", "VHP"}}
	assert.True(t, lc.IsTrigger("VHZ"))
	assert.False(t, lc.IsTrigger("NN"))
}

func TestHasStopTagPrefixMatch(t *testing.T) {
	lc := &LangConf{StopTags: []string{"VER:", "PUN"}}
	assert.True(t, lc.hasStopTag("VER:infi"))
	assert.True(t, lc.hasStopTag("PUN"))
	assert.False(t, lc.hasStopTag("NOM"))
}
