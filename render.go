package xwfill

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const blockedRune = '█'

// LetterGrid places the assignment's letters onto a Height×Width rune grid.
// Cells not covered by any assigned variable hold zero.
func (c *Crossword) LetterGrid(assignment Assignment) [][]rune {
	letters := make([][]rune, c.Height)
	for i := range letters {
		letters[i] = make([]rune, c.Width)
	}
	for v, word := range assignment {
		for k, cell := range v.Cells() {
			letters[cell.Row][cell.Col] = rune(word[k])
		}
	}
	return letters
}

// Render returns a human-readable grid: one line per row, letters in filled
// cells, a solid block in blocked cells, and a space in unfilled open cells.
func (c *Crossword) Render(assignment Assignment) string {
	letters := c.LetterGrid(assignment)

	var b strings.Builder
	for i := range c.Height {
		for j := range c.Width {
			switch {
			case !c.Structure[i][j]:
				b.WriteRune(blockedRune)
			case letters[i][j] != 0:
				b.WriteRune(letters[i][j])
			default:
				b.WriteRune(' ')
			}
		}
		if i < c.Height-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

const (
	cellSize   = 48
	cellBorder = 2
)

// SaveImage exports the assignment as a PNG: white open cells on a black
// background, with each letter centered in its cell.
func (c *Crossword) SaveImage(assignment Assignment, filename string) error {
	letters := c.LetterGrid(assignment)

	img := image.NewRGBA(image.Rect(0, 0, c.Width*cellSize, c.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i := range c.Height {
		for j := range c.Width {
			if !c.Structure[i][j] {
				continue
			}

			cell := image.Rect(
				j*cellSize+cellBorder,
				i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder,
				(i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if letters[i][j] == 0 {
				continue
			}
			s := string(letters[i][j])
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
			}
			w := d.MeasureString(s)
			d.Dot = fixed.Point26_6{
				X: fixed.I(j*cellSize+cellSize/2) - w/2,
				Y: fixed.I(i*cellSize + cellSize/2 + face.Height/2),
			}
			d.DrawString(s)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return nil
}
