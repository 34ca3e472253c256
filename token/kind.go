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

package token

import "fmt"

// Kind identifies a token produced by the lexer.
//
// Trivia (whitespace, line terminators, comments) are real tokens: the parser
// needs to see them to track whitespace extents and to distinguish "any
// trivia" from "trivia containing a line terminator".
type Kind uint8

const (
	EOF Kind = iota

	// Trivia.
	Whitespace // A run of same-line whitespace.
	Linebreak  // A line terminator, possibly followed by more whitespace.
	LineComment
	BlockComment

	// Identifiers and literals.
	Ident
	Number
	String
	Regex

	// Keywords used by the grammar.
	KwDelete
	KwVoid
	KwTypeof
	KwIn
	KwInstanceof
	KwTrue
	KwFalse
	KwNull
	KwThis
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwWith

	// Punctuation.
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Colon
	Question

	// Operators.
	Increment // ++
	Decrement // --
	Add
	Sub
	Mul
	Div
	Mod
	LogicalNot // !
	BitwiseNot // ~
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	LogicalAnd
	LogicalOr
	Shl  // <<
	Shr  // >>
	UShr // >>>
	Less
	Greater
	LessEq
	GreaterEq
	Eq        // ==
	NotEq     // !=
	StrictEq  // ===
	StrictNeq // !==
	Assign    // =
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	ShlAssign
	ShrAssign
	UShrAssign
	AndAssign
	OrAssign
	XorAssign

	kindCount
)

var kindNames = [...]string{
	EOF:          "eof",
	Whitespace:   "whitespace",
	Linebreak:    "linebreak",
	LineComment:  "line comment",
	BlockComment: "block comment",
	Ident:        "identifier",
	Number:       "number",
	String:       "string",
	Regex:        "regex",
	KwDelete:     "`delete`",
	KwVoid:       "`void`",
	KwTypeof:     "`typeof`",
	KwIn:         "`in`",
	KwInstanceof: "`instanceof`",
	KwTrue:       "`true`",
	KwFalse:      "`false`",
	KwNull:       "`null`",
	KwThis:       "`this`",
	KwIf:         "`if`",
	KwElse:       "`else`",
	KwWhile:      "`while`",
	KwDo:         "`do`",
	KwFor:        "`for`",
	KwWith:       "`with`",
	LParen:       "`(`",
	RParen:       "`)`",
	LBrace:       "`{`",
	RBrace:       "`}`",
	LBracket:     "`[`",
	RBracket:     "`]`",
	Semicolon:    "`;`",
	Comma:        "`,`",
	Dot:          "`.`",
	Colon:        "`:`",
	Question:     "`?`",
	Increment:    "`++`",
	Decrement:    "`--`",
	Add:          "`+`",
	Sub:          "`-`",
	Mul:          "`*`",
	Div:          "`/`",
	Mod:          "`%`",
	LogicalNot:   "`!`",
	BitwiseNot:   "`~`",
	BitwiseAnd:   "`&`",
	BitwiseOr:    "`|`",
	BitwiseXor:   "`^`",
	LogicalAnd:   "`&&`",
	LogicalOr:    "`||`",
	Shl:          "`<<`",
	Shr:          "`>>`",
	UShr:         "`>>>`",
	Less:         "`<`",
	Greater:      "`>`",
	LessEq:       "`<=`",
	GreaterEq:    "`>=`",
	Eq:           "`==`",
	NotEq:        "`!=`",
	StrictEq:     "`===`",
	StrictNeq:    "`!==`",
	Assign:       "`=`",
	AddAssign:    "`+=`",
	SubAssign:    "`-=`",
	MulAssign:    "`*=`",
	DivAssign:    "`/=`",
	ModAssign:    "`%=`",
	ShlAssign:    "`<<=`",
	ShrAssign:    "`>>=`",
	UShrAssign:   "`>>>=`",
	AndAssign:    "`&=`",
	OrAssign:     "`|=`",
	XorAssign:    "`^=`",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Keywords maps keyword lexemes to their kinds.
var Keywords = map[string]Kind{
	"delete":     KwDelete,
	"void":       KwVoid,
	"typeof":     KwTypeof,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"this":       KwThis,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"do":         KwDo,
	"for":        KwFor,
	"with":       KwWith,
}

// IsTrivia returns whether this kind is whitespace, a line terminator, or a
// comment.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Linebreak, LineComment, BlockComment:
		return true
	default:
		return false
	}
}

// IsUpdateOp returns whether this kind is `++` or `--`.
func (k Kind) IsUpdateOp() bool {
	return k == Increment || k == Decrement
}

// IsUnaryOp returns whether this kind may begin a unary expression: `delete`,
// `void`, `typeof`, unary `+`/`-`, `~`, or `!`.
func (k Kind) IsUnaryOp() bool {
	switch k {
	case KwDelete, KwVoid, KwTypeof, Add, Sub, BitwiseNot, LogicalNot:
		return true
	default:
		return false
	}
}

// IsAssignOp returns whether this kind is `=` or a compound assignment
// operator.
func (k Kind) IsAssignOp() bool {
	return k >= Assign && k <= XorAssign
}
