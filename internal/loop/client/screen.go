package client

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexrosrgz/GalacticVoyager/internal/draw"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/config"
)

// Radar scope size in terminal cells. Odd so the ship sits on a cell.
const (
	radarWidth  = 23
	radarHeight = 11
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen transitions, do a full terminal clear so overlays from the
	// previous screen don't persist.
	gs := c.game.State()
	if gs != c.state.prevGameState || c.state.shuttingDown != c.state.prevShutdown ||
		c.state.isInactive != c.state.wasInactive {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = gs
		c.state.prevShutdown = c.state.shuttingDown
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	if !c.state.shuttingDown && !c.state.isInactive {
		c.drawScene()
	}
	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI()

	if c.audio.takeRing() {
		c.chunkWriter.Bell()
	}
	return c.chunkWriter.Flush()
}

// text writes s at a 1-based position and marks the cells for repaint.
func (c *Client) text(col, row int, s string) {
	if row < 1 || row > c.canvas.TerminalHeight() {
		return
	}
	n := utf8.RuneCountInString(s)
	if col < 1 || col+n-1 > c.canvas.TerminalWidth() {
		return
	}
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, n)
}

func (c *Client) textCentered(centerX, row int, s string) {
	c.text(centerX-utf8.RuneCountInString(s)/2, row, s)
}

// drawUI draws the overlay for the current screen.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.shuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}
	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.game.State() {
	case loop.GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight)
	case loop.GameStateMenu:
		c.drawStartScreen(centerX, centerY)
	case loop.GameStateGameOver:
		c.drawGameOverScreen(centerX, centerY)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.textCentered(centerX, centerY-2, "INACTIVITY WARNING")
	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.textCentered(centerX, centerY, msg)
	c.textCentered(centerX, centerY+2, "Press any key to continue")
}

var titleArt = []string{
	`  ___   _   _      _   ___ _____ ___ ___  `,
	` / __| /_\ | |    /_\ / __|_   _|_ _/ __| `,
	`| (_ |/ _ \| |__ / _ \ (__  | |  | | (__  `,
	` \___/_/ \_\____/_/ \_\___| |_| |___\___| `,
	`   V   O   Y   A   G   E   R              `,
}

// drawStartScreen draws the title screen over the orbiting backdrop.
func (c *Client) drawStartScreen(centerX, centerY int) {
	titleStartY := centerY - 9
	for i, line := range titleArt {
		c.textCentered(centerX, titleStartY+i, line)
	}

	controlsY := titleStartY + len(titleArt) + 2
	c.textCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"W / S  . . . . Thrust / Reverse",
		"Shift+W  . . . . . . . .  Boost",
		"A / D  . . . . . . . . . . Roll",
		"Arrows / IJKL  . . . .  Steer",
		"SPACE  . . . . . . . . . . Fire",
		"Q  . . . . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		c.textCentered(centerX, controlsY+1+i, line)
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		c.textCentered(centerX, controlsY+len(controlLines)+2, ">>  Press ENTER to Launch  <<")
	}

	c.drawLeaderboard(centerX, controlsY+len(controlLines)+4)
}

// drawGameOverScreen draws the final score and the restart prompt.
func (c *Client) drawGameOverScreen(centerX, centerY int) {
	art := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}
	titleStartY := centerY - 8
	for i, line := range art {
		c.textCentered(centerX, titleStartY+i, line)
	}

	row := titleStartY + len(art) + 1
	c.textCentered(centerX, row, fmt.Sprintf("Final score: %d", c.menu.score))

	if c.state.restartDelay <= 0 && time.Now().UnixMilli()/600%2 == 0 {
		c.textCentered(centerX, row+2, ">>  Press ENTER to Fly Again  <<")
	}

	c.drawLeaderboard(centerX, row+4)
}

// drawLeaderboard lists the lobby's best runs.
func (c *Client) drawLeaderboard(centerX, row int) {
	if len(c.state.TopScores) == 0 {
		return
	}
	c.textCentered(centerX, row, "Top Pilots")
	for i, e := range c.state.TopScores {
		name := e.Username
		if utf8.RuneCountInString(name) > config.MaxUsernameLength {
			name = string([]rune(name)[:config.MaxUsernameLength])
		}
		line := fmt.Sprintf("%2d. %-*s %8d", i+1, config.MaxUsernameLength, name, e.Score)
		c.textCentered(centerX, row+1+i, line)
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int) {
	if !c.hud.visible {
		return
	}
	g := c.glyphs.Get()

	c.text(2, 1, "HULL "+hullBar(c.hud.health, c.hud.maxHealth, 20, g)+fmt.Sprintf(" %3.0f", c.hud.health))
	c.text(2, 2, fmt.Sprintf("SCORE %-8d", c.hud.score))
	c.text(2, 3, fmt.Sprintf("SPEED %-6.0f", c.hud.speed))
	engine := "      "
	switch {
	case c.audio.boosting:
		engine = "BOOST "
	case c.audio.thrusting:
		engine = "THRUST"
	}
	c.text(2, 4, engine)

	system := fmt.Sprintf("%-20s", c.hud.system)
	c.textCentered(termWidth/2, 1, system)

	c.text(termWidth/2, termHeight/2, string(g.Crosshair))

	c.drawRadar(termWidth, termHeight, g)

	p := c.game.Player().Position
	c.text(2, termHeight, fmt.Sprintf("X:%-7.0f Y:%-7.0f Z:%-7.0f", p.X(), p.Y(), p.Z()))

	pilots := fmt.Sprintf("Pilots: %-4d", c.server.GetSnapshot().Players)
	c.text(termWidth-utf8.RuneCountInString(pilots), termHeight, pilots)
}

// hullBar renders health as a fixed-width bar.
func hullBar(health, maxHealth float64, width int, g GlyphSet) string {
	filled := 0
	if maxHealth > 0 {
		filled = int(math.Ceil(health / maxHealth * float64(width)))
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(string(g.HullFull), filled) + strings.Repeat(string(g.HullEmpty), width-filled)
}

// radarCell maps a blip to a scope cell, 0-based from the top-left.
func radarCell(b blip) (col, row int) {
	halfW := float64(radarWidth / 2)
	halfH := float64(radarHeight / 2)
	col = radarWidth/2 + int(math.Round(b.X*halfW))
	row = radarHeight/2 + int(math.Round(b.Y*halfH))
	return col, row
}

// drawRadar draws the scope in the top-right corner.
func (c *Client) drawRadar(termWidth, termHeight int, g GlyphSet) {
	startCol := termWidth - radarWidth - 2
	startRow := 2
	if startCol < 1 || startRow+radarHeight+1 > termHeight {
		return // Not enough space
	}

	var grid [radarHeight][radarWidth]blipKind
	for _, b := range c.radar.blips {
		col, row := radarCell(b)
		if col < 0 || col >= radarWidth || row < 0 || row >= radarHeight {
			continue
		}
		if b.Kind > grid[row][col] {
			grid[row][col] = b.Kind
		}
	}

	c.text(startCol, startRow, "┌"+strings.Repeat("─", radarWidth)+"┐")
	var line strings.Builder
	for row := 0; row < radarHeight; row++ {
		line.Reset()
		line.WriteString("│")
		for col := 0; col < radarWidth; col++ {
			if row == radarHeight/2 && col == radarWidth/2 {
				line.WriteString(draw.ColorBrightCyan.Fg())
				line.WriteRune(g.Self)
				line.WriteString(draw.ColorReset)
				continue
			}
			switch grid[row][col] {
			case blipEnemy:
				line.WriteString(draw.ColorRed.Fg())
				line.WriteRune(g.Enemy)
				line.WriteString(draw.ColorReset)
			case blipStar:
				line.WriteString(draw.ColorYellow.Fg())
				line.WriteRune(g.Star)
				line.WriteString(draw.ColorReset)
			case blipBody:
				line.WriteRune(g.Body)
			case blipMoon:
				line.WriteRune(g.Moon)
			default:
				line.WriteByte(' ')
			}
		}
		line.WriteString("│")
		c.chunkWriter.WriteAt(startCol, startRow+1+row, line.String())
		c.canvas.MarkTextDirty(startCol, startRow+1+row, radarWidth+2)
	}
	c.text(startCol, startRow+radarHeight+1, "└"+strings.Repeat("─", radarWidth)+"┘")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.textCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.textCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.textCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.textCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.textCentered(centerX, centerY+4, "Press Q to disconnect now")
}
