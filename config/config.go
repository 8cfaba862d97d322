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
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/ecmalint/ecmalint/errors"
	"github.com/ecmalint/ecmalint/lint"
	"github.com/ecmalint/ecmalint/pretty"
)

// DefaultFileName is the name of the configuration file looked up by Find
const DefaultFileName = ".ecmalint.yaml"

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://ecmalint.dev/schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var schemaDoc any
	if err := json.Unmarshal(schemaJSON, &schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	return compiler.Compile(schemaURL)
})

// Patterns selects items by inclusion and exclusion
type Patterns struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

type Config struct {
	Rules  Patterns `yaml:"rules"`
	Files  Patterns `yaml:"files"`
	Format string   `yaml:"format"`
}

// configFile is the configuration as given in a file.
// A section which is given replaces the default section
type configFile struct {
	Rules  *Patterns `yaml:"rules"`
	Files  *Patterns `yaml:"files"`
	Format *string   `yaml:"format"`
}

// Default returns the configuration used when no configuration file exists
func Default() *Config {
	return &Config{
		Files: Patterns{
			Include: []string{
				"*.ts",
				"*.tsx",
				"*.mts",
				"*.cts",
				"*.js",
				"*.jsx",
				"*.mjs",
				"*.cjs",
			},
			Exclude: []string{
				"node_modules/*",
				"*/node_modules/*",
			},
		},
		Format: string(pretty.FormatPretty),
	}
}

// Parse parses the given YAML configuration.
// Sections which are not given keep their default value
func Parse(data []byte) (*Config, error) {
	var document any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(document); err != nil {
		return nil, err
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config := Default()
	if file.Rules != nil {
		config.Rules = *file.Rules
	}
	if file.Files != nil {
		config.Files = *file.Files
	}
	if file.Format != nil {
		config.Format = *file.Format
	}

	// Reject unknown rule codes early
	if _, err := config.EnabledRules(); err != nil {
		return nil, err
	}

	return config, nil
}

func validate(document any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	// An empty document is an empty configuration
	if document == nil {
		document = map[string]any{}
	}

	// Round-trip through JSON to normalize the types of the decoded YAML
	documentJSON, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	var normalized any
	if err := json.Unmarshal(documentJSON, &normalized); err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return schema.Validate(normalized)
}

// Load loads the configuration file at the given path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config, err := Parse(data)
	if err != nil {
		return nil, errors.NewDefaultUserError("invalid configuration %s: %w", path, err)
	}

	return config, nil
}

// Find returns the path of the configuration file in the given directory
// or the closest parent directory.
// It returns an empty path if there is no configuration file
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, DefaultFileName)

		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// EnabledRules returns the rules selected by the configuration, sorted by code
func (c *Config) EnabledRules() ([]lint.Rule, error) {
	rules, err := lint.LookupAll(c.Rules.Include)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(c.Rules.Exclude))
	for _, code := range c.Rules.Exclude {
		if _, err := lint.Lookup(code); err != nil {
			return nil, err
		}
		excluded[code] = struct{}{}
	}

	enabled := make([]lint.Rule, 0, len(rules))
	for _, rule := range rules {
		if _, ok := excluded[rule.Code()]; ok {
			continue
		}
		enabled = append(enabled, rule)
	}

	return enabled, nil
}

func (c *Config) PrettyFormat() (pretty.Format, error) {
	return pretty.ParseFormat(c.Format)
}
