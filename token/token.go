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

// Package token defines the token model shared by the lexer and the parser.
package token

import (
	"fmt"

	"github.com/driftlint/driftlint/report"
)

// Token is a single lexeme: its kind and where it sits in the source.
type Token struct {
	Kind Kind
	Span report.Span
}

// Text returns the raw lexeme within the file that produced this token.
func (t Token) Text(file *report.File) string {
	return t.Span.Text(file.Text())
}

// IsZero reports whether this is the zero token. The zero token has kind EOF
// and an empty span at offset zero; lexers always produce EOF tokens with the
// span positioned at the end of input instead.
func (t Token) IsZero() bool {
	return t == Token{}
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s", t.Kind, t.Span)
}
