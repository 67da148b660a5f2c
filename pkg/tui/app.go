package tui

import (
	"errors"
	"fmt"
	"os"

	"coursectl/pkg/catalog"
	"coursectl/pkg/config"
	"coursectl/pkg/loader"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// defaultAccent is the fallback theme color (purple)
const defaultAccent = "99"

var (
	// These act as fallbacks initially, GetTheme() swaps in the configured accent
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// accentColor picks the saved accent color, or the default one
func accentColor(cfg *config.AppConfig) string {
	if cfg != nil && cfg.AccentColor != "" {
		return cfg.AccentColor
	}
	return defaultAccent
}

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	if err != nil {
		cfg = nil
	}
	baseColor := accentColor(cfg)

	// Manual print statements use the same color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme built around the provided lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// Run launches the form-based course planner on the given tree.
// Leaving the menu with Exit or Ctrl+C ends the session without an error.
func Run(path string, tree *catalog.Tree) error {
	fmt.Println(accentStyle.Render("Welcome to the course planner!"))

	for {
		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("📂 Load Data", "load"),
						huh.NewOption("📚 Print Courses", "list"),
						huh.NewOption("🔎 Print Specific Course", "show"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("👋 Exit", "exit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var err error
		switch action {
		case "load":
			runLoad(path, tree)
		case "list":
			fmt.Println(accentStyle.Render("Here is a sample schedule"))
			err = tree.PrintAll(os.Stdout)
		case "show":
			err = runShowCourse(tree)
		case "config":
			err = RunConfigTUI()
		case "exit":
			fmt.Println(accentStyle.Render("Thank you for using the course planner!"))
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func runLoad(path string, tree *catalog.Tree) {
	var n int
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Loading courses from %s...", path)).
		Action(func() {
			n, err = loader.Load(path, tree)
		}).
		Run()

	if err != nil {
		fmt.Println(errorStyle.Render("Error in opening file"))
		return
	}
	fmt.Println(accentStyle.Render(fmt.Sprintf("Data Loaded (%d courses)", n)))
}

func runShowCourse(tree *catalog.Tree) error {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What course would you like to know about?").
				Placeholder("e.g. CSCI300").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	return tree.PrintOne(os.Stdout, catalog.NormalizeID(input))
}
