package util

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// TokenKind is the coarse class of a lexed token
type TokenKind int

const (
	TokenCode TokenKind = iota
	TokenSpace
	TokenKeyword
	TokenName
	TokenNumber
	TokenString
	TokenComment
)

// Token is one lexeme and its byte offset in the lexed text
type Token struct {
	Kind   TokenKind
	Value  string
	Offset int
}

// lexerNames pins the lexer for the extensions the engine targets; other
// names go through chroma's filename registry
var lexerNames = map[string]string{
	".js":  "javascript",
	".mjs": "javascript",
	".cjs": "javascript",
	".jsx": "react",
	".ts":  "typescript",
	".tsx": "typescript",
	".go":  "go",
	".py":  "python",
}

// lexerFor picks a chroma lexer from the file name. Unknown names are lexed
// as JavaScript, whose comment and string syntax covers the C family.
func lexerFor(path string) chroma.Lexer {
	var lexer chroma.Lexer
	if name, ok := lexerNames[strings.ToLower(filepath.Ext(path))]; ok {
		lexer = lexers.Get(name)
	}
	if lexer == nil {
		lexer = lexers.Match(filepath.Base(path))
	}
	if lexer == nil {
		lexer = lexers.Get("javascript")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Lex splits text into tokens whose values concatenate back to text.
//
// A single or double quoted string that crosses a line break is not a real
// literal in any supported language; it is usually an apostrophe in JSX text
// or prose. Its opening quote is emitted as code and lexing resumes right
// after it.
func Lex(path, text string) []Token {
	lexer := lexerFor(path)
	var tokens []Token

	start := 0
	for start < len(text) {
		resume := -1
		offset := start

		it, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, text[start:])
		if err != nil {
			return append(tokens, Token{Kind: TokenCode, Value: text[start:], Offset: start})
		}

		for tok := it(); tok != chroma.EOF && offset < len(text); tok = it() {
			value := tok.Value
			if offset+len(value) > len(text) {
				// some lexers append a final newline
				value = text[offset:]
			}
			if !strings.HasPrefix(text[offset:], value) {
				return append(tokens, Token{Kind: TokenCode, Value: text[offset:], Offset: offset})
			}

			kind := classify(tok.Type, value)
			if kind == TokenString && strayQuote(value) {
				tokens = append(tokens, Token{Kind: TokenCode, Value: value[:1], Offset: offset})
				resume = offset + 1
				break
			}
			if value != "" {
				tokens = append(tokens, Token{Kind: kind, Value: value, Offset: offset})
			}
			offset += len(value)
		}

		if resume < 0 {
			break
		}
		start = resume
	}
	return tokens
}

func classify(t chroma.TokenType, value string) TokenKind {
	switch {
	case t.InCategory(chroma.Comment) && !t.InSubCategory(chroma.CommentPreproc):
		return TokenComment
	case t.InSubCategory(chroma.LiteralString):
		return TokenString
	case t.InSubCategory(chroma.LiteralNumber):
		return TokenNumber
	case t.InCategory(chroma.Keyword):
		return TokenKeyword
	case t.InCategory(chroma.Name):
		return TokenName
	case strings.TrimSpace(value) == "":
		return TokenSpace
	}
	return TokenCode
}

func strayQuote(value string) bool {
	if len(value) < 2 || (value[0] != '\'' && value[0] != '"') {
		return false
	}
	if strings.HasPrefix(value, `"""`) || strings.HasPrefix(value, "'''") {
		return false
	}
	return strings.Contains(value, "\n")
}

// MaskLiterals blanks the contents of string literals and whole comments with
// spaces. Quote characters and line breaks are kept so byte offsets and line
// numbers stay valid.
func MaskLiterals(path, text string) string {
	out := []byte(text)
	for _, tok := range Lex(path, text) {
		switch tok.Kind {
		case TokenComment:
			blank(out, tok.Offset, tok.Offset+len(tok.Value), false)
		case TokenString:
			blank(out, tok.Offset, tok.Offset+len(tok.Value), true)
		}
	}
	return string(out)
}

func blank(out []byte, start, end int, keepQuotes bool) {
	for i := start; i < end; i++ {
		c := out[i]
		if c == '\n' || c == '\r' {
			continue
		}
		if keepQuotes && (i == start || i == end-1) && (c == '"' || c == '\'' || c == '`') {
			continue
		}
		out[i] = ' '
	}
}
