package ebitenio

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestSurface_Size(t *testing.T) {
	s := NewSurface(ebiten.NewImage(320, 240))

	w, h := s.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}
