package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent     = lipgloss.Color("#FFD700") // Gold — input prompts
	colorDanger     = lipgloss.Color("#FF5252") // Red — errors
	colorMuted      = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite      = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorSurface    = lipgloss.Color("#1E1E2E") // Dark surface — title bar bg
	colorSurfaceDim = lipgloss.Color("#181825") // Darkest surface — footer bg
)

// Title bar style — visually dominant with solid background.
var styleTitleBar = lipgloss.NewStyle().
	Background(colorSurface).
	Foreground(colorWhite).
	Bold(true).
	Padding(0, 1)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Foreground(colorMutedLight).
			Padding(0, 1)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)

// Status and error lines.
var (
	styleStatus = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// Input overlay styles.
var (
	styleInputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 2)

	styleInputTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleInputLabel = lipgloss.NewStyle().
			Foreground(colorMuted)
)
