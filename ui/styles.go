package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	FaintColor  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8b8b8b"}
	FaintStyle  = lipgloss.NewStyle().Foreground(FaintColor)
	OkColor     = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	OkStyle     = lipgloss.NewStyle().Foreground(OkColor)
	ErrColor    = lipgloss.AdaptiveColor{Light: "#770000", Dark: "#AA0000"}
	ErrStyle    = lipgloss.NewStyle().Foreground(ErrColor)
	AccentColor = lipgloss.AdaptiveColor{Light: "#2B6CB0", Dark: "#63B3ED"}
	AccentStyle = lipgloss.NewStyle().Foreground(AccentColor)
)

var errLinePfx = lipgloss.NewStyle().Background(ErrColor).Bold(true).Render(" ERR ") + " "
var okLinePfx = lipgloss.NewStyle().Background(OkColor).Bold(true).Render(" OK ") + " "

func RenderErrorLine(err any) string {
	return errLinePfx + Display(err)
}
func ExitWithError(err any) {
	fmt.Println(RenderErrorLine(err) + "\n")
	os.Exit(1)
}

func RenderOkLine(res any) string {
	return okLinePfx + Display(res)
}
