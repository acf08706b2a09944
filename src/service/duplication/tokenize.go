package duplication

import (
	"regexp"
	"unicode"

	"quality-engine/src/util"
)

var importPattern = regexp.MustCompile(`^\s*(?:import|from|package|#include|using|require)\b`)

// names some lexers report as identifiers but that carry structure
var keywords = map[string]bool{
	"nil": true, "null": true, "undefined": true, "true": true, "false": true,
	"this": true, "self": true, "super": true,
}

// line is one significant source line
type line struct {
	number     int
	normalized string
	tokens     []string
}

// tokenizeFile keeps the lines that carry at least one identifier, keyword or
// literal. Comments, imports and lines of pure punctuation are dropped.
// Operators and punctuation become one token per character.
func tokenizeFile(src *util.Source) []line {
	byLine := make(map[int]*line)
	significant := make(map[int]bool)
	var order []int

	add := func(number int, tok, normalized string) {
		l, ok := byLine[number]
		if !ok {
			l = &line{number: number}
			byLine[number] = l
			order = append(order, number)
		}
		l.tokens = append(l.tokens, tok)
		if l.normalized != "" {
			l.normalized += " "
		}
		l.normalized += normalized
	}

	lastString := -1
	for _, tok := range util.Lex(src.Path, src.Text) {
		number, _ := src.Position(tok.Offset)
		if number > len(src.Lines) || importPattern.MatchString(src.Lines[number-1]) {
			continue
		}

		switch tok.Kind {
		case util.TokenSpace, util.TokenComment:
			continue
		case util.TokenString:
			// pieces of one literal (escapes, interpolation markers) count once
			if lastString == tok.Offset {
				lastString = tok.Offset + len(tok.Value)
				continue
			}
			add(number, tok.Value, "S")
			significant[number] = true
			lastString = tok.Offset + len(tok.Value)
			continue
		case util.TokenNumber:
			add(number, tok.Value, "N")
			significant[number] = true
		case util.TokenKeyword:
			add(number, tok.Value, tok.Value)
			significant[number] = true
		case util.TokenName:
			if keywords[tok.Value] {
				add(number, tok.Value, tok.Value)
			} else {
				add(number, tok.Value, "I")
			}
			significant[number] = true
		default:
			for _, r := range tok.Value {
				if !unicode.IsSpace(r) {
					add(number, string(r), string(r))
				}
			}
		}
	}

	out := make([]line, 0, len(order))
	for _, number := range order {
		if significant[number] {
			out = append(out, *byLine[number])
		}
	}
	return out
}
