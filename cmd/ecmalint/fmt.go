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
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/turbolent/prettier"
)

type fmtOptions struct {
	width  int
	indent int
}

func newFmtCommand(root *rootOptions) *cobra.Command {
	options := &fmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Print a file in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := parseFile(cmd, root, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var b strings.Builder
			prettier.Prettier(
				&b,
				program.Doc(),
				options.width,
				strings.Repeat(" ", options.indent),
			)
			b.WriteByte('\n')
			_, err = io.WriteString(out, b.String())
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&options.width, "width", 80, "maximum line width")
	flags.IntVar(&options.indent, "indent", 4, "number of spaces per indentation level")

	return cmd
}
