package system

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilegrid/internal/domain/entity"
)

func TestParseMap(t *testing.T) {
	palette := entity.DefaultPalette()

	t.Run("parses the reference map", func(t *testing.T) {
		res, err := ParseMap("||||\n|@_|\n||||\n", palette)
		require.NoError(t, err)

		pg := res.Playground
		assert.Equal(t, 4, pg.Width())
		assert.Equal(t, 3, pg.Height())
		assert.Equal(t, entity.GridPos{Col: 1, Row: 1}, res.Spawn)

		tile, err := pg.TileAt(0, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.WallTile(entity.ColorBlue), tile)

		tile, err = pg.TileAt(1, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.FloorTile(entity.ColorRed), tile)

		tile, err = pg.TileAt(2, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyTile(), tile)
	})

	t.Run("last row without terminator", func(t *testing.T) {
		res, err := ParseMap("%%\n@%", palette)
		require.NoError(t, err)

		assert.Equal(t, 2, res.Playground.Width())
		assert.Equal(t, 2, res.Playground.Height())
		assert.Equal(t, entity.GridPos{Col: 0, Row: 1}, res.Spawn)
	})

	t.Run("ignores unknown characters", func(t *testing.T) {
		res, err := ParseMap("|x|y|\r\n| @ |\r\n", palette)
		require.NoError(t, err)

		assert.Equal(t, 3, res.Playground.Width())
		assert.Equal(t, 2, res.Playground.Height())
		assert.Equal(t, entity.GridPos{Col: 1, Row: 1}, res.Spawn)
	})

	t.Run("uses palette colors", func(t *testing.T) {
		custom := entity.Palette{Floor: 0x111111, Wall: 0x222222}
		res, err := ParseMap("|@%\n", custom)
		require.NoError(t, err)

		wall, _ := res.Playground.TileAt(0, 0)
		spawn, _ := res.Playground.TileAt(1, 0)
		floor, _ := res.Playground.TileAt(2, 0)
		assert.Equal(t, entity.WallTile(0x222222), wall)
		assert.Equal(t, entity.FloorTile(0x111111), spawn)
		assert.Equal(t, entity.FloorTile(0x111111), floor)
	})

	t.Run("single row counts as a grid", func(t *testing.T) {
		res, err := ParseMap("@", palette)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Playground.Width())
		assert.Equal(t, 1, res.Playground.Height())
	})
}

func TestParseMap_Errors(t *testing.T) {
	palette := entity.DefaultPalette()

	t.Run("empty text", func(t *testing.T) {
		_, err := ParseMap("", palette)
		assert.ErrorIs(t, err, ErrEmptyMap)
	})

	t.Run("only a terminator", func(t *testing.T) {
		_, err := ParseMap("\n", palette)
		assert.ErrorIs(t, err, ErrEmptyMap)
	})

	t.Run("first row without symbols", func(t *testing.T) {
		_, err := ParseMap("abc\n|@|\n", palette)
		assert.ErrorIs(t, err, ErrEmptyMap)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := ParseMap("||||\n|@|\n||||\n", palette)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRaggedRow)

		var ragged *RaggedRowError
		require.True(t, errors.As(err, &ragged))
		assert.Equal(t, 1, ragged.Row)
		assert.Equal(t, 4, ragged.Want)
		assert.Equal(t, 3, ragged.Got)
	})

	t.Run("blank line inside the map", func(t *testing.T) {
		_, err := ParseMap("|@|\n\n|||\n", palette)
		assert.ErrorIs(t, err, ErrRaggedRow)
	})

	t.Run("missing spawn", func(t *testing.T) {
		_, err := ParseMap("|||\n|%|\n|||\n", palette)
		assert.ErrorIs(t, err, ErrNoSpawn)
	})

	t.Run("two spawns", func(t *testing.T) {
		_, err := ParseMap("|@|\n|@|\n", palette)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateSpawn)

		var dup *DuplicateSpawnError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, entity.GridPos{Col: 1, Row: 0}, dup.First)
		assert.Equal(t, entity.GridPos{Col: 1, Row: 1}, dup.Second)
	})
}

func TestParseMap_TilesMatchSource(t *testing.T) {
	rows := []string{
		"||||||||",
		"|%%__%%|",
		"|%@_|_%|",
		"||||||||",
	}
	res, err := ParseMap(strings.Join(rows, "\n")+"\n", entity.DefaultPalette())
	require.NoError(t, err)

	pg := res.Playground
	require.Equal(t, pg.Width()*pg.Height(), pg.Len())
	assert.True(t, res.Spawn.Col >= 0 && res.Spawn.Col < pg.Width())
	assert.True(t, res.Spawn.Row >= 0 && res.Spawn.Row < pg.Height())

	for y, row := range rows {
		for x, ch := range row {
			tile, err := pg.TileAt(x, y)
			require.NoError(t, err)

			switch ch {
			case SymbolEmpty:
				assert.Equal(t, entity.TileEmpty, tile.Kind, "(%d,%d)", x, y)
			case SymbolFloor, SymbolSpawn:
				assert.Equal(t, entity.TileFloor, tile.Kind, "(%d,%d)", x, y)
			case SymbolWall:
				assert.Equal(t, entity.TileWall, tile.Kind, "(%d,%d)", x, y)
			}
		}
	}

	_, err = pg.TileAt(pg.Width(), 0)
	assert.ErrorIs(t, err, entity.ErrOutOfRange)
}
