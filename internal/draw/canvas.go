// Package draw renders to a terminal: a half-block pixel canvas, a
// perspective projector and buffered ANSI output.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a palette index. ColorNone leaves a pixel empty.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta
	ColorBrightCyan
	ColorOrange
)

// ANSI SGR foreground codes per Color. Background codes are +10 for the
// 16-color range.
var fgCodes = [...]int{
	ColorNone:       39,
	ColorWhite:      97,
	ColorGray:       90,
	ColorRed:        91,
	ColorYellow:     93,
	ColorGreen:      92,
	ColorCyan:       36,
	ColorBlue:       94,
	ColorMagenta:    95,
	ColorBrightCyan: 96,
	ColorOrange:     33,
}

// ColorReset restores default terminal attributes.
const ColorReset = "\033[0m"

// Fg returns the escape sequence selecting c as the foreground color.
func (c Color) Fg() string {
	return "\033[" + strconv.Itoa(fgCodes[c]) + "m"
}

// Point represents a 2D coordinate in canvas pixels.
type Point struct {
	X, Y float64
}

// cell packs the top and bottom pixel colors of one terminal cell.
type cell uint16

const staleCell cell = 0xFFFF

func makeCell(top, bottom Color) cell {
	return cell(top)<<8 | cell(bottom)
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Only cells that changed since the previous Render are written.
type Canvas struct {
	termWidth  int     // Terminal columns
	termHeight int     // Terminal rows
	pixels     []Color // [y * termWidth + x], y in sub-pixel rows
	prev       []cell  // Cells as last rendered

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewCanvas creates a canvas for the given terminal dimensions.
func NewCanvas(termWidth, termHeight int) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize reallocates the buffers when the terminal dimensions change.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	if termWidth == c.termWidth && termHeight == c.termHeight && c.pixels != nil {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.pixels = make([]Color, termWidth*termHeight*2)
	c.prev = make([]cell, termWidth*termHeight)
	c.ForceRedraw()
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// PixelWidth returns the horizontal resolution in pixels.
func (c *Canvas) PixelWidth() int { return c.termWidth }

// PixelHeight returns the vertical resolution in pixels (two per row).
func (c *Canvas) PixelHeight() int { return c.termHeight * 2 }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render write every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = staleCell
	}
}

// MarkTextDirty flags n cells starting at the 1-based (col, row) as
// overwritten by text so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	y := row - 1
	if y < 0 || y >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.prev[y*c.termWidth+x] = staleCell
		}
	}
}

// Set colors the pixel at (x, y). Out-of-range pixels are ignored.
func (c *Canvas) Set(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.termHeight*2 {
		c.pixels[y*c.termWidth+x] = color
	}
}

// At returns the color of the pixel at (x, y).
func (c *Canvas) At(x, y int) Color {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.termHeight*2 {
		return c.pixels[y*c.termWidth+x]
	}
	return ColorNone
}

// SetPoint colors the pixel nearest to p.
func (c *Canvas) SetPoint(p Point, color Color) {
	c.Set(int(math.Round(p.X)), int(math.Round(p.Y)), color)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	x1 := int(math.Round(p1.X))
	y1 := int(math.Round(p1.Y))
	x2 := int(math.Round(p2.X))
	y2 := int(math.Round(p2.Y))

	// Lines far off-canvas come from points near the camera plane; skip them.
	limit := 4 * (c.termWidth + c.termHeight*2)
	if abs(x1) > limit || abs(x2) > limit || abs(y1) > limit || abs(y2) > limit {
		return
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.Set(x1, y1, color)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawDisc fills a circle of radius r pixels. Discs smaller than a pixel
// still light their center.
func (c *Canvas) DrawDisc(center Point, r float64, color Color) {
	if r < 0.5 {
		c.SetPoint(center, color)
		return
	}
	yStart := int(math.Floor(center.Y - r))
	yEnd := int(math.Ceil(center.Y + r))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd >= c.termHeight*2 {
		yEnd = c.termHeight*2 - 1
	}
	r2 := r * r
	for y := yStart; y <= yEnd; y++ {
		dy := float64(y) - center.Y
		span := r2 - dy*dy
		if span < 0 {
			continue
		}
		half := math.Sqrt(span)
		xStart := int(math.Ceil(center.X - half))
		xEnd := int(math.Floor(center.X + half))
		if xStart < 0 {
			xStart = 0
		}
		if xEnd >= c.termWidth {
			xEnd = c.termWidth - 1
		}
		for x := xStart; x <= xEnd; x++ {
			c.pixels[y*c.termWidth+x] = color
		}
	}
}

// DrawRing outlines a circle of radius r pixels.
func (c *Canvas) DrawRing(center Point, r float64, color Color) {
	if r < 1 {
		c.SetPoint(center, color)
		return
	}
	steps := int(2*math.Pi*r) + 8
	if steps > 720 {
		steps = 720
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.SetPoint(Point{center.X + math.Cos(a)*r, center.Y + math.Sin(a)*r}, color)
	}
}

// Render writes the cells that changed since the last Render.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			cur := makeCell(top, bottom)
			idx := row*c.termWidth + col
			if c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur

			c.moveTo(col+1+c.offsetCol, row+1+c.offsetRow)
			c.writeCell(top, bottom)
		}
	}
	if c.renderBuf.Len() == 0 {
		return
	}
	c.renderBuf.WriteString(ColorReset)
	io.WriteString(w, c.renderBuf.String())
}

func (c *Canvas) moveTo(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) writeCell(top, bottom Color) {
	b := &c.renderBuf
	switch {
	case top == ColorNone && bottom == ColorNone:
		b.WriteString(ColorReset)
		b.WriteByte(' ')
	case top == bottom:
		b.WriteString(ColorReset)
		b.WriteString(top.Fg())
		b.WriteRune(BlockFull)
	case bottom == ColorNone:
		b.WriteString(ColorReset)
		b.WriteString(top.Fg())
		b.WriteRune(BlockUpperHalf)
	case top == ColorNone:
		b.WriteString(ColorReset)
		b.WriteString(bottom.Fg())
		b.WriteRune(BlockLowerHalf)
	default:
		b.WriteString(top.Fg())
		b.WriteString("\033[")
		b.Write(strconv.AppendInt(c.numBuf[:0], int64(fgCodes[bottom]+10), 10))
		b.WriteByte('m')
		b.WriteRune(BlockUpperHalf)
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	bar := strings.Repeat("─", c.termWidth)

	c.renderBuf.Reset()
	if hasV {
		if hasH {
			c.moveTo(left, top)
			c.renderBuf.WriteString("┌" + bar + "┐")
			c.moveTo(left, bottom)
			c.renderBuf.WriteString("└" + bar + "┘")
		} else {
			c.moveTo(c.offsetCol+1, top)
			c.renderBuf.WriteString(bar)
			c.moveTo(c.offsetCol+1, bottom)
			c.renderBuf.WriteString(bar)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			c.moveTo(left, row)
			c.renderBuf.WriteString("│")
			c.moveTo(right, row)
			c.renderBuf.WriteString("│")
		}
	}
	io.WriteString(w, c.renderBuf.String())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
