// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/bethropolis/brackets/internal/types"
	"github.com/bethropolis/brackets/internal/utils"
)

// maxLineBytes caps a single line read by Load.
const maxLineBytes = 4 * 1024 * 1024

// SliceBuffer keeps one byte slice per line plus the rune offset each line starts at.
type SliceBuffer struct {
	lines    [][]byte
	starts   []int
	length   int // total runes, separators included
	filePath string
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	sb := &SliceBuffer{}
	sb.setLines([][]byte{[]byte("")})
	return sb
}

// NewFromBytes builds a buffer from in-memory content. filePath is only
// recorded and may be empty.
func NewFromBytes(filePath string, data []byte) *SliceBuffer {
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte("\r"))
	}
	sb := &SliceBuffer{filePath: filePath}
	sb.setLines(lines)
	return sb
}

// Load reads a file into the buffer. Replaces existing content.
func (sb *SliceBuffer) Load(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	newLines := [][]byte{}
	for scanner.Scan() {
		line := scanner.Bytes()
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.setLines(newLines)
	sb.filePath = filePath
	return nil
}

func (sb *SliceBuffer) setLines(lines [][]byte) {
	sb.lines = lines
	sb.starts = make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		sb.starts[i] = offset
		offset += utf8.RuneCount(line) + 1
	}
	sb.length = offset - 1
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes joins the lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// Len returns the number of runes in the document, separators included.
func (sb *SliceBuffer) Len() int {
	return sb.length
}

// LineStart returns the offset of the first rune of line index.
func (sb *SliceBuffer) LineStart(index int) (int, error) {
	if index < 0 || index >= len(sb.starts) {
		return 0, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.starts)-1)
	}
	return sb.starts[index], nil
}

// OffsetToPosition converts an absolute offset to a line and column.
// The offset just past the last rune of a line belongs to that line.
func (sb *SliceBuffer) OffsetToPosition(offset int) (types.Position, error) {
	if offset < 0 || offset > sb.length {
		return types.Position{}, fmt.Errorf("offset %d out of bounds (0-%d)", offset, sb.length)
	}
	line := sort.Search(len(sb.starts), func(i int) bool { return sb.starts[i] > offset }) - 1
	return types.Position{Line: line, Col: offset - sb.starts[line]}, nil
}

// PositionToOffset converts a line and column to an absolute offset.
func (sb *SliceBuffer) PositionToOffset(pos types.Position) (int, error) {
	line, err := sb.Line(pos.Line)
	if err != nil {
		return 0, err
	}
	if n := utf8.RuneCount(line); pos.Col < 0 || pos.Col > n {
		return 0, fmt.Errorf("column %d out of bounds on line %d (0-%d)", pos.Col, pos.Line, n)
	}
	return sb.starts[pos.Line] + pos.Col, nil
}

// Slice returns a copy of the text between two offsets. The bounds may be
// given in either order.
func (sb *SliceBuffer) Slice(from, to int) ([]byte, error) {
	if from > to {
		from, to = to, from
	}
	start, err := sb.OffsetToPosition(from)
	if err != nil {
		return nil, fmt.Errorf("invalid slice start: %w", err)
	}
	end, err := sb.OffsetToPosition(to)
	if err != nil {
		return nil, fmt.Errorf("invalid slice end: %w", err)
	}

	var out bytes.Buffer
	for l := start.Line; l <= end.Line; l++ {
		line := sb.lines[l]
		lo, hi := 0, len(line)
		if l == start.Line {
			lo = utils.RuneIndexToByteOffset(line, start.Col)
		}
		if l == end.Line {
			hi = utils.RuneIndexToByteOffset(line, end.Col)
		}
		out.Write(line[lo:hi])
		if l < end.Line {
			out.WriteByte('\n')
		}
	}
	return out.Bytes(), nil
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
