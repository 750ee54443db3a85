package client

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"
)

//go:embed glyphs.txt
var glyphData []byte

// GlyphSet holds the characters used by the text overlays.
type GlyphSet struct {
	Self      rune
	Enemy     rune
	Body      rune
	Star      rune
	Moon      rune
	Crosshair rune
	HullFull  rune
	HullEmpty rune
}

// asciiGlyphs is shown until the full set has loaded.
var asciiGlyphs = GlyphSet{
	Self:      '^',
	Enemy:     'x',
	Body:      'o',
	Star:      '*',
	Moon:      '.',
	Crosshair: '+',
	HullFull:  '#',
	HullEmpty: '-',
}

// parseGlyphs reads "name glyph" lines on top of the ASCII set. Blank lines
// and lines starting with # are skipped.
func parseGlyphs(data []byte) (GlyphSet, error) {
	set := asciiGlyphs
	slots := map[string]*rune{
		"self":      &set.Self,
		"enemy":     &set.Enemy,
		"body":      &set.Body,
		"star":      &set.Star,
		"moon":      &set.Moon,
		"crosshair": &set.Crosshair,
		"hullFull":  &set.HullFull,
		"hullEmpty": &set.HullEmpty,
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 || utf8.RuneCountInString(fields[1]) != 1 {
			return asciiGlyphs, fmt.Errorf("glyphs line %d: want \"name glyph\", got %q", line, text)
		}
		slot, ok := slots[fields[0]]
		if !ok {
			return asciiGlyphs, fmt.Errorf("glyphs line %d: unknown glyph %q", line, fields[0])
		}
		*slot, _ = utf8.DecodeRuneInString(fields[1])
	}
	if err := sc.Err(); err != nil {
		return asciiGlyphs, fmt.Errorf("read glyphs: %w", err)
	}
	return set, nil
}

// loadGlyphs is the default glyph loader.
func loadGlyphs(ctx context.Context) (GlyphSet, error) {
	if err := ctx.Err(); err != nil {
		return asciiGlyphs, err
	}
	return parseGlyphs(glyphData)
}
