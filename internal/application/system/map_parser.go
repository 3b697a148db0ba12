package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// Map symbols
const (
	SymbolEmpty   = '_'
	SymbolFloor   = '%'
	SymbolWall    = '|'
	SymbolSpawn   = '@'
	rowTerminator = "\n"
)

var (
	// ErrEmptyMap is returned for maps with no rows or no tiles in the first row.
	ErrEmptyMap = errors.New("map is empty")
	// ErrRaggedRow is wrapped by RaggedRowError.
	ErrRaggedRow = errors.New("map rows differ in length")
	// ErrNoSpawn is returned when the map has no spawn marker.
	ErrNoSpawn = errors.New("map has no spawn marker")
	// ErrDuplicateSpawn is wrapped by DuplicateSpawnError.
	ErrDuplicateSpawn = errors.New("map has more than one spawn marker")
)

// RaggedRowError reports a row whose tile count differs from the first row.
type RaggedRowError struct {
	Row  int
	Want int
	Got  int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("row %d has %d tiles, want %d", e.Row, e.Got, e.Want)
}

func (e *RaggedRowError) Unwrap() error {
	return ErrRaggedRow
}

// DuplicateSpawnError reports a second spawn marker.
type DuplicateSpawnError struct {
	First  entity.GridPos
	Second entity.GridPos
}

func (e *DuplicateSpawnError) Error() string {
	return fmt.Sprintf("spawn marker at %s, already placed at %s", e.Second, e.First)
}

func (e *DuplicateSpawnError) Unwrap() error {
	return ErrDuplicateSpawn
}

// MapResult is a parsed map: the tile grid and the player's spawn cell.
type MapResult struct {
	Playground *entity.Playground
	Spawn      entity.GridPos
}

// ParseMap converts map text into a Playground and a spawn position.
//
// The text is read row by row: height is the number of rows and width is
// the tile count of the first row. Every row must have the same tile count.
// Characters other than the map symbols contribute no tile.
func ParseMap(text string, palette entity.Palette) (*MapResult, error) {
	rows := strings.Split(text, rowTerminator)
	// A trailing terminator does not open another row
	if len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	var (
		tiles    []entity.Tile
		width    int
		spawn    entity.GridPos
		hasSpawn bool
	)

	for y, row := range rows {
		col := 0
		for _, ch := range row {
			tile, ok := symbolTile(ch, palette)
			if !ok {
				continue
			}

			if ch == SymbolSpawn {
				pos := entity.GridPos{Col: col, Row: y}
				if hasSpawn {
					return nil, &DuplicateSpawnError{First: spawn, Second: pos}
				}
				spawn = pos
				hasSpawn = true
			}

			tiles = append(tiles, tile)
			col++
		}

		if y == 0 {
			if col == 0 {
				return nil, fmt.Errorf("%w: first row has no tiles", ErrEmptyMap)
			}
			width = col
		} else if col != width {
			return nil, &RaggedRowError{Row: y, Want: width, Got: col}
		}
	}

	if !hasSpawn {
		return nil, ErrNoSpawn
	}

	pg, err := entity.NewPlayground(width, len(rows), tiles)
	if err != nil {
		return nil, fmt.Errorf("failed to build playground: %w", err)
	}

	return &MapResult{
		Playground: pg,
		Spawn:      spawn,
	}, nil
}

// symbolTile returns the tile a map symbol stands for
func symbolTile(ch rune, palette entity.Palette) (entity.Tile, bool) {
	switch ch {
	case SymbolEmpty:
		return entity.EmptyTile(), true
	case SymbolFloor, SymbolSpawn:
		return entity.FloorTile(palette.Floor), true
	case SymbolWall:
		return entity.WallTile(palette.Wall), true
	default:
		return entity.Tile{}, false
	}
}
