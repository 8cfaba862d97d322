/*
 * ecmalint - A linter for ECMAScript and TypeScript sources
 *
 * Copyright ecmalint authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/match"
)

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if match.Match(path, pattern) {
			return true
		}
	}
	return false
}

// Matches reports whether the given slash-separated path is selected.
// A `*` in a pattern matches any sequence of characters, including `/`.
// If there are no include patterns, all paths are included
func (p Patterns) Matches(path string) bool {
	if len(p.Include) > 0 && !matchesAny(p.Include, path) {
		return false
	}
	return !matchesAny(p.Exclude, path)
}

// CollectFiles returns the files to lint for the given paths.
// Files are always included, directories are walked
// and the files selected by the file patterns are included.
// The result is sorted and contains no duplicates
func (c *Config) CollectFiles(paths []string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string

	add := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			relativePath, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			relativePath = filepath.ToSlash(relativePath)

			if entry.IsDir() {
				if relativePath != "." && matchesAny(c.Files.Exclude, relativePath+"/") {
					return filepath.SkipDir
				}
				return nil
			}

			if c.Files.Matches(relativePath) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)

	return files, nil
}
