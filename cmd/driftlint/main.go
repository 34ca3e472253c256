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

// driftlint is a lossless JavaScript parser and linter.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("driftlint")

func main() {
	var verbosity int

	root := &cobra.Command{
		Use:          "driftlint",
		Short:        "A whitespace-preserving JavaScript linter",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newRulesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
