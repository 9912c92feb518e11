package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// Option is one choice of a Selector.
type Option struct {
	Label       string
	Description string
	Value       string
}

// Selector is a single-choice list. The cursor starts on the initial option.
type Selector struct {
	title     string
	options   []Option
	cursor    int
	selected  int
	keys      KeyMap
	cancelled bool
}

// NewSelector creates a selector with the cursor on the option whose value is
// initial, or on the first option.
func NewSelector(title string, options []Option, initial string) Selector {
	s := Selector{
		title:    title,
		options:  options,
		selected: -1,
		keys:     DefaultKeyMap(),
	}
	for i, o := range options {
		if o.Value == initial {
			s.cursor = i
			break
		}
	}
	return s
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(km, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(km, s.keys.Down):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case key.Matches(km, s.keys.Select):
		s.selected = s.cursor
		return s, tea.Quit
	case key.Matches(km, s.keys.Quit):
		s.cancelled = true
		return s, tea.Quit
	}
	return s, nil
}

// View implements tea.Model.
func (s Selector) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(s.title))
	b.WriteString("\n")

	for i, opt := range s.options {
		if i == s.cursor {
			b.WriteString(SelectedStyle.Render(SymbolSelected + " " + opt.Label))
		} else {
			b.WriteString(UnselectedStyle.Render(SymbolUnselected + " " + opt.Label))
		}
		b.WriteString("\n")
		if opt.Description != "" {
			b.WriteString(DescriptionStyle.Render(opt.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString(HelpStyle.Render(s.keys.HelpText()))
	b.WriteString("\n")
	return b.String()
}

// Cancelled returns true if the user quit without choosing.
func (s Selector) Cancelled() bool {
	return s.cancelled
}

// Value returns the chosen option's value, or "" before a choice.
func (s Selector) Value() string {
	if s.selected >= 0 && s.selected < len(s.options) {
		return s.options[s.selected].Value
	}
	return ""
}

// RouterOptions lists the router flavours for the selector.
func RouterOptions() []Option {
	return []Option{
		{
			Label:       "net/http",
			Description: "MapSitemap(mux *http.ServeMux, baseURL string) http.Handler",
			Value:       string(sitemapgen.RouterHTTP),
		},
		{
			Label:       "gin",
			Description: "MapSitemap(r gin.IRoutes, baseURL string) gin.IRoutes",
			Value:       string(sitemapgen.RouterGin),
		},
	}
}

// SelectRouter asks the user to pick a router flavour, starting at current.
// Outside an interactive terminal it returns current unchanged.
func SelectRouter(current sitemapgen.Router) (sitemapgen.Router, error) {
	if !IsInteractive() {
		return current, nil
	}

	model, err := tea.NewProgram(NewSelector("Which router serves the sitemap?", RouterOptions(), string(current))).Run()
	if err != nil {
		return current, fmt.Errorf("router selection failed: %w", err)
	}

	s := model.(Selector)
	if s.Cancelled() {
		return current, fmt.Errorf("router selection cancelled")
	}
	return sitemapgen.ParseRouter(s.Value())
}
