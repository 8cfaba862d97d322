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

package lint

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/ecmalint/ecmalint/errors"
)

var registeredRules = map[string]Rule{}

var ruleCodePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Register registers the given rule.
// It panics if the rule's code is invalid or already registered
func Register(rule Rule) {
	code := rule.Code()

	if _, ok := registeredRules[code]; ok {
		panic(errors.NewUnexpectedError("rule already exists: %s", code))
	}

	if !ruleCodePattern.MatchString(code) {
		panic(errors.NewUnexpectedError("invalid rule code: %s", code))
	}

	registeredRules[code] = rule
}

// Rules returns all registered rules, sorted by code
func Rules() []Rule {
	rules := make([]Rule, 0, len(registeredRules))
	for _, rule := range registeredRules { //nolint:maprange
		rules = append(rules, rule)
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Code() < rules[j].Code()
	})

	return rules
}

// Lookup returns the registered rule with the given code
func Lookup(code string) (Rule, error) {
	rule, ok := registeredRules[code]
	if !ok {
		return nil, &UnknownRuleError{
			Code:       code,
			Suggestion: closestRuleCode(code),
		}
	}
	return rule, nil
}

// LookupAll returns the registered rules with the given codes.
// If no codes are given, all registered rules are returned
func LookupAll(codes []string) ([]Rule, error) {
	if len(codes) == 0 {
		return Rules(), nil
	}

	rules := make([]Rule, 0, len(codes))
	seen := map[string]struct{}{}

	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		rule, err := Lookup(code)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// closestRuleCode finds the registered rule code with the smallest edit distance
// from the given code. In cases of typos, this should provide a helpful hint.
func closestRuleCode(code string) (closestCode string) {
	codeRunes := []rune(code)

	closestDistance := len(code)

	for _, rule := range Rules() {
		ruleCode := rule.Code()

		distance := levenshtein.DistanceForStrings(
			codeRunes,
			[]rune(ruleCode),
			levenshtein.DefaultOptions,
		)

		// Don't suggest a code which would require a complete replacement
		if distance < closestDistance && distance < len(ruleCode) {
			closestCode = ruleCode
			closestDistance = distance
		}
	}

	return
}

// UnknownRuleError

type UnknownRuleError struct {
	Code       string
	Suggestion string
}

var _ errors.UserError = &UnknownRuleError{}
var _ errors.SecondaryError = &UnknownRuleError{}

func (*UnknownRuleError) IsUserError() {}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule: `%s`", e.Code)
}

func (e *UnknownRuleError) SecondaryError() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("did you mean `%s`?", e.Suggestion)
	}

	var sb strings.Builder
	sb.WriteString("available rules: ")
	for i, rule := range Rules() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(rule.Code())
	}
	return sb.String()
}
