package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/brackets/internal/types"
)

func TestNewFromBytesLineStarts(t *testing.T) {
	sb := NewFromBytes("x.go", []byte("f(é)\r\n\n{]"))

	require.Equal(t, 3, sb.LineCount())
	assert.Equal(t, "f(é)", string(sb.lines[0]))
	assert.Equal(t, "x.go", sb.FilePath())
	assert.Equal(t, 8, sb.Len())

	for i, want := range []int{0, 5, 6} {
		got, err := sb.LineStart(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "line %d", i)
	}
	_, err := sb.LineStart(3)
	assert.Error(t, err)
}

func TestOffsetPositionRoundTrip(t *testing.T) {
	sb := NewFromBytes("", []byte("ab\n\ncd"))

	cases := []struct {
		offset int
		pos    types.Position
	}{
		{0, types.Position{Line: 0, Col: 0}},
		{2, types.Position{Line: 0, Col: 2}},
		{3, types.Position{Line: 1, Col: 0}},
		{4, types.Position{Line: 2, Col: 0}},
		{6, types.Position{Line: 2, Col: 2}},
	}
	for _, tc := range cases {
		pos, err := sb.OffsetToPosition(tc.offset)
		require.NoError(t, err)
		assert.Equal(t, tc.pos, pos, "offset %d", tc.offset)

		off, err := sb.PositionToOffset(tc.pos)
		require.NoError(t, err)
		assert.Equal(t, tc.offset, off)
	}

	_, err := sb.OffsetToPosition(7)
	assert.Error(t, err)
	_, err = sb.OffsetToPosition(-1)
	assert.Error(t, err)
	_, err = sb.PositionToOffset(types.Position{Line: 0, Col: 3})
	assert.Error(t, err)
	_, err = sb.PositionToOffset(types.Position{Line: 3})
	assert.Error(t, err)
}

func TestSlice(t *testing.T) {
	sb := NewFromBytes("", []byte("if (ü) {\n\tx()\n}"))

	got, err := sb.Slice(7, 15)
	require.NoError(t, err)
	assert.Equal(t, "{\n\tx()\n}", string(got))

	got, err = sb.Slice(6, 3)
	require.NoError(t, err)
	assert.Equal(t, "(ü)", string(got))

	_, err = sb.Slice(0, 100)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0o644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))
	assert.Equal(t, 3, sb.LineCount())
	assert.Equal(t, path, sb.FilePath())
	assert.Equal(t, "package main\n\nfunc main() {}", string(sb.Bytes()))

	line, err := sb.Line(2)
	require.NoError(t, err)
	assert.Equal(t, "func main() {}", string(line))

	_, err = sb.Line(3)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	sb := NewSliceBuffer()
	err := sb.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, sb.LineCount())
}
