package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/buffer"
	"github.com/bethropolis/brackets/internal/lexer"
)

type mapLexer map[int][]bracket.Token

func (m mapLexer) Tokens(line int) ([]bracket.Token, bool) {
	toks, ok := m[line]
	return toks, ok
}

func scan(t *testing.T, src string, lex bracket.Lexer) []Problem {
	t.Helper()
	doc := buffer.NewFromBytes("", []byte(src))
	problems, err := Scan(bracket.NewMatcher(doc, lex))
	require.NoError(t, err)
	return problems
}

func render(t *testing.T, problems []Problem) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Write(&out, "t.go", problems))
	return out.String()
}

func TestScanCleanDocument(t *testing.T) {
	assert.Empty(t, scan(t, "func f(a []int) {\n\treturn\n}", nil))
	assert.Empty(t, scan(t, "", nil))
}

func TestScanUnmatched(t *testing.T) {
	problems := scan(t, "a)\n(()", nil)
	require.Len(t, problems, 2)
	assert.Equal(t, Unmatched, problems[0].Kind)
	assert.Equal(t, bracket.ParenClose, problems[0].Char)
	assert.Equal(t, 2, problems[0].Pos)
	assert.Equal(t, "t.go:1:2: unmatched ')'\nt.go:2:1: unmatched '('\n", render(t, problems))
}

func TestScanMismatchReportedOnce(t *testing.T) {
	problems := scan(t, "f(x)\n(]", nil)
	require.Len(t, problems, 1)
	p := problems[0]
	assert.Equal(t, Mismatched, p.Kind)
	assert.Equal(t, bracket.SquareClose, p.Char)
	assert.Equal(t, 7, p.Pos)
	assert.Equal(t, bracket.ParenOpen, p.Other)
	assert.Equal(t, 6, p.OtherPos)
	assert.Equal(t, "t.go:2:2: mismatched ']' (expected ')' for '(' at 2:1)\n", render(t, problems))
}

func TestScanNestedMismatch(t *testing.T) {
	problems := scan(t, "([)]", nil)
	require.Len(t, problems, 1)
	assert.Equal(t, "mismatched ')' (expected ']' for '[' at 1:2)", problems[0].Message())
}

func TestScanUsesTokens(t *testing.T) {
	src := `x(")")`
	lex := mapLexer{0: {{Kind: bracket.ParenOpen, End: 2}, {Kind: bracket.ParenClose, End: 6}}}
	assert.Empty(t, scan(t, src, lex))

	problems := scan(t, src, nil)
	require.Len(t, problems, 1)
	assert.Equal(t, "t.go:1:6: unmatched ')'\n", render(t, problems))
}

func TestScanJavaScriptTemplate(t *testing.T) {
	src := "const s = `${x}`;\nconst t = `}${[1][0]}`;\n"
	tk := lexer.NewTokenizer()
	defer tk.Close()
	toks, err := tk.ForFile(context.Background(), "a.js", []byte(src))
	require.NoError(t, err)
	require.NotNil(t, toks)

	assert.Empty(t, scan(t, src, toks))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unmatched", Unmatched.String())
	assert.Equal(t, "mismatched", Mismatched.String())
}
