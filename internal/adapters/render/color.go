package render

import (
	gkcolor "github.com/gookit/color"
)

// SetColor turns ANSI colors on or off for everything this package renders
func SetColor(enabled bool) {
	gkcolor.Enable = enabled
}

func Gold(s string) string {
	return gkcolor.RGB(181, 181, 91).Sprint(s)
}

func Green(s string) string {
	return gkcolor.FgGreen.Sprint(s)
}

func Grey(s string) string {
	return gkcolor.RGB(138, 138, 138).Sprint(s)
}

func LightBlue(s string) string {
	return gkcolor.HiBlue.Sprint(s)
}

func Red(s string) string {
	return gkcolor.FgRed.Sprint(s)
}
