package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"quality-engine/src/config"
)

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/vendor/**", "vendor/lib/a.go", true},
		{"**/vendor/**", "/abs/repo/vendor/a.go", true},
		{"**/vendor/**", "src/vendored.go", false},
		{"*.min.js", "app.min.js", true},
		{"*.min.js", "dist/app.min.js", false},
		{"src/**/*.ts", "src/a/b/c.ts", true},
		{"src/**/*.ts", "src/c.ts", true},
		{"src/?.ts", "src/ab.ts", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchGlob(tt.pattern, tt.path))
		})
	}
}

func TestExclusionMatcher(t *testing.T) {
	m := NewExclusionMatcher(config.ExclusionsConfig{
		FilePatterns: []string{"**/node_modules/**"},
		Files:        []string{"src/generated.ts"},
		Extensions:   []string{"ts", ".TSX"},
	})

	assert.True(t, m.Matches("web/node_modules/react/index.js"))
	assert.True(t, m.Matches("src/generated.ts"))
	assert.False(t, m.Matches("src/app.ts"))

	assert.True(t, m.AcceptsExtension("src/app.ts"))
	assert.True(t, m.AcceptsExtension("src/App.tsx"))
	assert.False(t, m.AcceptsExtension("README.md"))

	all := NewExclusionMatcher(config.ExclusionsConfig{})
	assert.True(t, all.AcceptsExtension("README.md"))
}

func TestSourcePosition(t *testing.T) {
	src := NewSource("a.ts", "one\r\ntwo\nthree")

	assert.Equal(t, 3, src.LineCount())
	assert.Equal(t, "one", src.Lines[0])

	line, col := src.Position(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = src.Position(6) // "w" in "two"
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)

	line, col = src.Position(9) // "t" in "three"
	assert.Equal(t, 3, line)
	assert.Equal(t, 1, col)

	empty := NewSource("e.ts", "")
	assert.Equal(t, 0, empty.LineCount())
}

func TestSourceTrailingNewline(t *testing.T) {
	src := NewSource("a.ts", "a\nb\n")
	assert.Equal(t, 2, src.LineCount())
	assert.Equal(t, []string{"a", "b"}, src.Lines)
}

func TestMaskLiterals(t *testing.T) {
	tests := []struct {
		name string
		path string
		in   string
		want string
	}{
		{"double quoted", "a.js", `x = "a.b"`, `x = "   "`},
		{"escaped quote", "a.js", `s = 'it\'s'`, `s = '     '`},
		{"line comment", "a.js", "a.b // see c.d\nnext", "a.b           \nnext"},
		{"block comment", "a.js", "a /* x.y */ b", "a           b"},
		{"template spans lines", "a.js", "`a\nb` + c", "` \n ` + c"},
		{"hash comment", "a.py", "x = 1  # note 'q'\ny = 2", "x = 1" + strings.Repeat(" ", 12) + "\ny = 2"},
		{"apostrophe in jsx text", "a.tsx", "<li>Don't {x}</li>;\nconst s = 'ok';", "<li>Don't {x}</li>;\nconst s = '  ';"},
		{"unknown extension lexed as javascript", "stdin", "a(\"{\") // }", "a(\" \")     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskLiterals(tt.path, tt.in)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.in))
		})
	}
}

func TestLexRoundTrips(t *testing.T) {
	text := "const a = 'x'; // c\n<p>It's {a}</p>\n"
	var sb strings.Builder
	for _, tok := range Lex("a.tsx", text) {
		assert.Equal(t, tok.Value, text[tok.Offset:tok.Offset+len(tok.Value)])
		sb.WriteString(tok.Value)
	}
	assert.Equal(t, text, sb.String())
}
