package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func upPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW)
}

func downPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS)
}

func leftPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA)
}

func rightPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD)
}

func selectPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

var lastCursorX, lastCursorY int

// cursorMoved reports whether the mouse moved since the last call, so a
// resting cursor does not fight keyboard navigation.
func cursorMoved() bool {
	x, y := ebiten.CursorPosition()
	moved := x != lastCursorX || y != lastCursorY
	lastCursorX, lastCursorY = x, y
	return moved
}

// itemAt returns the index of the vertical list row under screen y, or -1.
func itemAt(y int, startY, itemHeight, gap float64, n int) int {
	fy := float64(y)
	if fy < startY {
		return -1
	}
	i := int((fy - startY) / (itemHeight + gap))
	if i >= n || fy-startY-float64(i)*(itemHeight+gap) > itemHeight {
		return -1
	}
	return i
}

// cardAt returns the index of the grid card under (x, y), or -1.
func cardAt(x, y int, left, top, size, gap float64, cols, n int) int {
	fx, fy := float64(x)-left, float64(y)-top
	if fx < 0 || fy < 0 {
		return -1
	}
	col := int(fx / (size + gap))
	row := int(fy / (size + gap))
	if col >= cols || fx-float64(col)*(size+gap) > size || fy-float64(row)*(size+gap) > size {
		return -1
	}
	i := row*cols + col
	if i >= n {
		return -1
	}
	return i
}
