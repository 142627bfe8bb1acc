// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/brackets/internal/types"

// Buffer is a read-only snapshot of a text file split into lines.
// A changed file is reloaded into a new snapshot.
type Buffer interface {
	Load(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Bytes() []byte
	FilePath() string

	// Offsets count runes, with the line separator as one rune.
	LineStart(index int) (int, error)
	OffsetToPosition(offset int) (types.Position, error)
	PositionToOffset(pos types.Position) (int, error)
	Slice(from, to int) ([]byte, error)
}
