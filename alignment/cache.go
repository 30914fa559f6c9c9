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

// Cache memoizes alignment indices of a single document, keyed by
// target language. Each index is built at most once and reused for
// every sentence of the document. The cache must not be shared
// between documents - indices are keyed by document-relative segment
// ids. Documents are processed sequentially, so no locking is needed.
type Cache struct {
	items map[string]*Index
}

func NewCache() *Cache {
	return &Cache{items: make(map[string]*Index)}
}

func (c *Cache) Get(langTo string) (*Index, bool) {
	idx, ok := c.items[langTo]
	return idx, ok
}

func (c *Cache) Set(langTo string, idx *Index) {
	c.items[langTo] = idx
}

// GetOrBuild returns the cached index for `langTo` or populates the
// cache using the provided builder. A failed build is not cached.
func (c *Cache) GetOrBuild(langTo string, build func() (*Index, error)) (*Index, error) {
	if idx, ok := c.items[langTo]; ok {
		return idx, nil
	}
	idx, err := build()
	if err != nil {
		return nil, err
	}
	c.items[langTo] = idx
	return idx, nil
}
