package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is the color of a card or the color in effect. None only appears on
// wild cards.
type Color int

const (
	None Color = iota
	Red
	Green
	Blue
	Yellow
)

var All = []Color{Red, Green, Blue, Yellow}

var names = map[Color]string{
	None:   "Wild",
	Red:    "Red",
	Green:  "Green",
	Blue:   "Blue",
	Yellow: "Yellow",
}

var colorFunctions = map[Color]func(string, ...interface{}) string{
	None:   color.New(color.FgHiWhite).SprintfFunc(),
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// Valid reports whether c is one of the four concrete colors.
func (c Color) Valid() bool {
	return c >= Red && c <= Yellow
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) String() string {
	return c.Name()
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	colorFunction, ok := colorFunctions[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return colorFunction(format, args...)
}

// DisablePainting turns off terminal escape codes for every Paint call.
func DisablePainting() {
	color.NoColor = true
}

func ByName(name string) (Color, error) {
	name = strings.TrimSpace(name)
	for _, c := range All {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
