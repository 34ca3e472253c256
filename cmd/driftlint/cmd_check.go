// Copyright 2021-2025 The driftlint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driftlint/driftlint/lint"
	"github.com/driftlint/driftlint/report"
)

// defaultConfigPath is looked for in the working directory when --config is
// not given.
const defaultConfigPath = ".driftlint.yaml"

func newCheckCmd() *cobra.Command {
	var (
		configPath string
		format     string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Lint JavaScript files",
		Long: "Lints the given files, or every .js file under the given directories.\n" +
			"Exits nonzero if any error-level diagnostics were produced.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if strict {
				cfg.Strict = true
			}

			style, err := styleFor(format)
			if err != nil {
				return err
			}

			paths, err := collectPaths(args, cfg)
			if err != nil {
				return err
			}
			log.Infof("linting %d files", len(paths))

			files := make([]*report.File, len(paths))
			for i, path := range paths {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				files[i] = report.NewFile(path, string(data))
			}

			engine := lint.NewEngine(cfg, lint.All()...)
			reports, err := engine.LintAll(cmd.Context(), files)
			if err != nil {
				return err
			}

			var problems int
			for i, rep := range reports {
				problems += rep.Count(report.Error)
				fmt.Fprint(cmd.OutOrStdout(), rep.Render(style, files[i]))
			}
			if problems > 0 {
				return fmt.Errorf("found %d problems", problems)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default "+defaultConfigPath+" if present)")
	cmd.Flags().StringVar(&format, "format", "pretty", "diagnostic format: pretty or simple")
	cmd.Flags().BoolVar(&strict, "strict", false, "parse every file as strict-mode code")
	return cmd
}

func loadConfig(path string) (*lint.Config, error) {
	if path != "" {
		return lint.LoadConfig(path)
	}
	cfg, err := lint.LoadConfig(defaultConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("no config file, using defaults")
		return lint.DefaultConfig(), nil
	}
	return cfg, err
}

func styleFor(format string) (report.Style, error) {
	switch format {
	case "pretty":
		return report.Monochrome, nil
	case "simple":
		return report.Simple, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want pretty or simple)", format)
	}
}

// collectPaths expands the command-line arguments into the list of files to
// lint: directories are walked for .js files, and anything the config
// ignores is dropped.
func collectPaths(args []string, cfg *lint.Config) ([]string, error) {
	var paths []string
	add := func(path string) {
		if cfg.Ignored(path) {
			log.Debugf("ignoring %s", path)
			return
		}
		paths = append(paths, path)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".js") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}
