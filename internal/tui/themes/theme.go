package themes

import (
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Selected      lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	TopBar        lipgloss.Style
	NavBar        lipgloss.Style
	NavItem       lipgloss.Style
	NavActive     lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Card          lipgloss.Style
	FocusedField  lipgloss.Style
	Field         lipgloss.Style
	Button        lipgloss.Style
	Primary       lipgloss.Color
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

// Default is the orange storefront theme.
var Default = newTheme(palette{
	primary:    "#FF9800",
	accent:     "#E65100",
	background: "#FFF3E0",
	foreground: "#212121",
	border:     "#FFCC80",
	muted:      "#8D6E63",
	errColor:   "#D32F2F",
	success:    "#388E3C",
})

// Night keeps the orange accents on a dark terminal.
var Night = newTheme(palette{
	primary:    "#FF9800",
	accent:     "#FFB74D",
	background: "#1a1a1a",
	foreground: "#fafafa",
	border:     "#404040",
	muted:      "#737373",
	errColor:   "#ef4444",
	success:    "#10b981",
})

type palette struct {
	primary    string
	accent     string
	background string
	foreground string
	border     string
	muted      string
	errColor   string
	success    string
}

func newTheme(p palette) Theme {
	primary := lipgloss.Color(p.primary)
	fg := lipgloss.Color(p.foreground)

	return Theme{
		Primary:    primary,
		Background: lipgloss.Color(p.background),
		Foreground: fg,
		Border:     lipgloss.Color(p.border),
		Error:      lipgloss.Color(p.errColor),
		Success:    lipgloss.Color(p.success),

		// Bars
		TopBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(primary).
			Padding(0, 2),
		NavBar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color(p.border)),
		NavItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 2),
		NavActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),

		// Component styles
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		FocusedField: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(primary).
			Padding(0, 3),

		// Status styles
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errColor)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)),
	}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "night":
		return Night
	default:
		return Default
	}
}

// CategoryIcons maps shops to menu icons.
var CategoryIcons = map[model.Category]string{
	model.CategoryRestaurant:   "🍽",
	model.CategoryBakery:       "🥐",
	model.CategoryThrift:       "👕",
	model.CategoryJewelry:      "💍",
	model.CategoryHorticulture: "🌿",
	model.CategoryHair:         "💇",
	model.CategoryGrocery:      "🛒",
}

// GetCategoryIcon returns an icon for a shop.
func GetCategoryIcon(c model.Category) string {
	if icon, ok := CategoryIcons[c]; ok {
		return icon
	}
	return "🛍"
}
