// File: tokenize.go
// Title: Command Line Tokenizer
// Description: Splits a raw command line into the ordered token sequence
//              consumed by the parse engine. Handles double- and
//              single-quoted segments and backslash escapes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial tokenizer implementation

package tokenize

import (
	"strings"
	"unicode"

	vclerr "github.com/msto63/vcl/core/error"
)

// Split tokenizes a raw command line into its token sequence.
//
// Tokens are separated by runs of whitespace. A double-quoted segment
// keeps its whitespace and processes backslash escapes (\" \\ \n \t);
// a single-quoted segment keeps everything literally. Quotes may appear
// mid-token ("--msg="hello world"" is one token). An unterminated quote
// is an input error.
func Split(line string) ([]string, error) {
	tokens := make([]string, 0, 8)

	var buf strings.Builder
	inToken := false
	runes := []rune(line)

	flush := func() {
		if inToken {
			tokens = append(tokens, buf.String())
			buf.Reset()
			inToken = false
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			flush()

		case r == '"':
			inToken = true
			i++
			for {
				if i >= len(runes) {
					return nil, vclerr.New(vclerr.KindInput, vclerr.CodeUnterminatedQuote,
						"unterminated double quote")
				}
				if runes[i] == '"' {
					break
				}
				if runes[i] == '\\' && i+1 < len(runes) {
					i++
					buf.WriteRune(unescape(runes[i]))
				} else {
					buf.WriteRune(runes[i])
				}
				i++
			}

		case r == '\'':
			inToken = true
			i++
			for {
				if i >= len(runes) {
					return nil, vclerr.New(vclerr.KindInput, vclerr.CodeUnterminatedQuote,
						"unterminated single quote")
				}
				if runes[i] == '\'' {
					break
				}
				buf.WriteRune(runes[i])
				i++
			}

		case r == '\\' && i+1 < len(runes):
			inToken = true
			i++
			buf.WriteRune(runes[i])

		default:
			inToken = true
			buf.WriteRune(r)
		}
	}

	flush()
	return tokens, nil
}

// unescape maps an escape character inside a double-quoted segment
func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return r
	}
}
