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
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ecmalint/ecmalint/config"
	"github.com/ecmalint/ecmalint/lint"
	"github.com/ecmalint/ecmalint/pretty"
)

type lintOptions struct {
	configPath string
	format     string
	rules      []string
	jobs       int
	quiet      bool
}

func newLintCommand(root *rootOptions) *cobra.Command {
	options := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint ECMAScript and TypeScript files",
		Long: "Lint the given files and directories. " +
			"Directories are searched for files matching the configured patterns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, root, options, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&options.configPath, "config", "c", "", "path of the configuration file (default: nearest "+config.DefaultFileName+")")
	flags.StringVarP(&options.format, "format", "f", "", "output format (pretty|json|compact)")
	flags.StringArrayVarP(&options.rules, "rule", "r", nil, "run only the given rule (repeatable)")
	flags.IntVarP(&options.jobs, "jobs", "j", 0, "number of files linted concurrently (default: number of CPUs)")
	flags.BoolVarP(&options.quiet, "quiet", "q", false, "do not show progress")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	path, err := config.Find(".")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

func runLint(cmd *cobra.Command, root *rootOptions, options *lintOptions, paths []string) error {
	conf, err := loadConfig(options.configPath)
	if err != nil {
		return err
	}

	if options.format != "" {
		conf.Format = options.format
	}
	format, err := conf.PrettyFormat()
	if err != nil {
		return err
	}

	var rules []lint.Rule
	if len(options.rules) > 0 {
		rules, err = lint.LookupAll(options.rules)
	} else {
		rules, err = conf.EnabledRules()
	}
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := conf.CollectFiles(paths)
	if err != nil {
		return err
	}

	root.logger.
		WithField("files", len(files)).
		WithField("rules", len(rules)).
		Info("linting")

	linter := &lint.Linter{
		Rules:  rules,
		Logger: root.logger,
		Jobs:   options.jobs,
	}

	var bar *progressbar.ProgressBar
	stderr := cmd.ErrOrStderr()
	if !options.quiet && len(files) > 1 && isTerminal(stderr) {
		bar = newProgressBar(stderr, len(files))
		var mu sync.Mutex
		linter.OnFileDone = func(_ string) {
			mu.Lock()
			defer mu.Unlock()
			_ = bar.Add(1)
		}
	}

	result, err := linter.LintFiles(cmd.Context(), files)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	printer, err := pretty.NewPrinter(format, stdout, root.useColor(stdout))
	if err != nil {
		return err
	}

	err = printer.PrintDiagnostics(result.PrettyDiagnostics(), result.Codes)
	if err != nil {
		return err
	}

	if result.HasProblems() {
		return errProblemsFound
	}

	return nil
}

func newProgressBar(w io.Writer, count int) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		count,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("linting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
