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

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecmalint/ecmalint/lint"
)

func newRulesCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules [code]",
		Short: "List the available rules, or describe a rule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colors := colorizer{enabled: root.useColor(out)}

			if len(args) == 0 {
				return printRules(out, colors, lint.Rules())
			}

			rule, err := lint.Lookup(args[0])
			if err != nil {
				return err
			}
			return printRule(out, colors, rule)
		},
	}
}

func printRules(w io.Writer, colors colorizer, rules []lint.Rule) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, rule := range rules {
		_, err := fmt.Fprintf(tw, "%s\t%s\n", colors.code(rule.Code()), rule.Docs().Summary)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printRule(w io.Writer, colors colorizer, rule lint.Rule) error {
	docs := rule.Docs()

	var sb strings.Builder
	sb.WriteString(colors.code(rule.Code()))
	sb.WriteString("\n\n")
	sb.WriteString(docs.Summary)
	sb.WriteString("\n")

	if docs.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(docs.Details)
		sb.WriteString("\n")
	}

	writeExample := func(title string, example string, colorize func(string) string) {
		if example == "" {
			return
		}
		sb.WriteString("\n")
		sb.WriteString(colors.heading(title))
		sb.WriteString("\n\n")
		for _, line := range strings.Split(example, "\n") {
			sb.WriteString("    ")
			sb.WriteString(colorize(line))
			sb.WriteString("\n")
		}
	}

	writeExample("Invalid:", docs.Before, colors.failure)
	writeExample("Valid:", docs.After, colors.success)

	_, err := io.WriteString(w, sb.String())
	return err
}
