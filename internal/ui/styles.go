// Package ui provides styling and the watch view for the wlcinput CLI
package ui

import (
	"fmt"
	"strings"

	"github.com/bnema/wlcinput/input"
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("39")  // Bright blue
	ColorSecondary = lipgloss.Color("205") // Pink/magenta
	ColorSuccess   = lipgloss.Color("82")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorInfo      = lipgloss.Color("86")  // Cyan

	ColorText   = lipgloss.Color("252")
	ColorSubtle = lipgloss.Color("241")
	ColorMuted  = lipgloss.Color("238")
)

var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorMuted).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(1, 2)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(10)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	KeyCapStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorSecondary).
			Padding(0, 1)

	ModifierKeyCapStyle = KeyCapStyle.
				Background(ColorInfo).
				Foreground(lipgloss.Color("16"))

	ControlKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// ColorHighlight is used for text on colored backgrounds
var ColorHighlight = lipgloss.Color("255")

var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconPointer = "➤"
	IconKey     = "⌨"
)

// FormatControl renders a key binding hint
func FormatControl(key, desc string) string {
	return ControlKeyStyle.Render(key) + " - " + TextStyle.Render(desc)
}

// FormatField renders an aligned "label value" line
func FormatField(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

// FormatPoint renders a pointer position
func FormatPoint(p input.Point) string {
	return fmt.Sprintf("%d, %d", p.X, p.Y)
}

// FormatKeysym renders a translated keysym with its code
func FormatKeysym(ks input.Keysym) string {
	if ks.IsNoSymbol() {
		return SubtleStyle.Render("NoSymbol")
	}
	return fmt.Sprintf("%s %s", ValueStyle.Render(ks.Name()), SubtleStyle.Render(fmt.Sprintf("(0x%04x)", ks.Code())))
}

// FormatKeyCap renders one held key, highlighting modifiers
func FormatKeyCap(key uint32, ks input.Keysym) string {
	label := ks.Name()
	if ks.IsNoSymbol() {
		label = fmt.Sprintf("#%d", key)
	}
	if ks.IsModifier() {
		return ModifierKeyCapStyle.Render(label)
	}
	return KeyCapStyle.Render(label)
}

// FormatResult renders a success or failure line
func FormatResult(success bool, message string) string {
	if success {
		return SuccessStyle.Render(IconSuccess) + " " + message
	}
	return ErrorStyle.Render(IconError) + " " + message
}

// CreateSeparator creates a horizontal line separator
func CreateSeparator(width int, char string) string {
	if width <= 0 {
		width = 50
	}
	if char == "" {
		char = "─"
	}

	return lipgloss.NewStyle().
		Foreground(ColorSubtle).
		Render(strings.Repeat(char, width))
}
