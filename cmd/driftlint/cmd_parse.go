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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driftlint/driftlint/cst"
	"github.com/driftlint/driftlint/lint"
	"github.com/driftlint/driftlint/parser"
	"github.com/driftlint/driftlint/report"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			file := report.NewFile(args[0], string(data))

			script, rep, err := parser.Parse(file)
			fmt.Fprint(cmd.ErrOrStderr(), rep.Render(report.Monochrome, file))
			if err != nil {
				return err
			}

			dumpTree(cmd.OutOrStdout(), file, script, 0)
			return nil
		},
	}
}

func dumpTree(w io.Writer, file *report.File, node cst.Syntax, depth int) {
	span := node.Span()
	loc := file.Location(span.Start)
	fmt.Fprintf(w, "%s%s @ %d:%d [%v]\n", strings.Repeat("  ", depth), node.Kind(), loc.Line, loc.Column, span)
	for _, child := range cst.Children(node) {
		dumpTree(w, file, child, depth+1)
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available lint rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range lint.All() {
				fmt.Fprintln(cmd.OutOrStdout(), r.Name())
			}
			return nil
		},
	}
}
