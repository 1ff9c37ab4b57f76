package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/padctl/internal/touchpad"
	"github.com/bnema/padctl/internal/ui"
)

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Adjust touchpad settings interactively",
	Long: `Open a live editor over every settable attribute. Changes are written
to the device immediately, so their effect can be felt while tuning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pad, conn, err := openTouchpad()
		if err != nil {
			return err
		}
		defer conn.Close()

		model, err := newTuneModel(pad)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(model).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuneCmd)
}

type tuneKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Toggle   key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

var tuneKeys = tuneKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Decrease: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
	Increase: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
	Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Adjustment step per attribute; attributes not listed step by 1 (int)
// or 0.1 (float).
var tuneSteps = map[string]float64{
	"acceleration_factor":           0.01,
	"locked_drags_timeout":          0.5,
	"coasting_speed":                5,
	"circular_scrolling_distance":   5,
	"vertical_scrolling_distance":   10,
	"horizontal_scrolling_distance": 10,
}

type tuneModel struct {
	pad    *touchpad.Touchpad
	attrs  []touchpad.Attribute
	values []string
	cursor int
	status string
}

func newTuneModel(pad *touchpad.Touchpad) (tuneModel, error) {
	var attrs []touchpad.Attribute
	for _, attr := range touchpad.Attributes() {
		if !attr.ReadOnly {
			attrs = append(attrs, attr)
		}
	}

	m := tuneModel{pad: pad, attrs: attrs, values: make([]string, len(attrs))}
	for i := range attrs {
		if err := m.refresh(i); err != nil {
			return tuneModel{}, err
		}
	}
	return m, nil
}

func (m *tuneModel) refresh(i int) error {
	value, err := m.attrs[i].Get(m.pad)
	if err != nil {
		return err
	}
	m.values[i] = formatValue(value)
	return nil
}

func (m *tuneModel) reloadAll() {
	for i := range m.attrs {
		if err := m.refresh(i); err != nil {
			m.status = err.Error()
			return
		}
	}
	m.status = "reloaded"
}

// adjust writes the attribute under the cursor, stepped in the given
// direction. Booleans toggle regardless of direction.
func (m *tuneModel) adjust(direction int) {
	attr := m.attrs[m.cursor]
	current, err := attr.Get(m.pad)
	if err != nil {
		m.status = err.Error()
		return
	}

	var next any
	switch v := current.(type) {
	case bool:
		next = !v
	case int:
		step := 1
		if s, ok := tuneSteps[attr.Name]; ok {
			step = int(s)
		}
		next = v + direction*step
	case float64:
		step := 0.1
		if s, ok := tuneSteps[attr.Name]; ok {
			step = s
		}
		next = v + float64(direction)*step
	default:
		return
	}

	if err := attr.Set(m.pad, next); err != nil {
		// Out-of-range values are reported, not fatal.
		m.status = err.Error()
		return
	}
	if err := m.refresh(m.cursor); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("%s = %s", attr.Name, m.values[m.cursor])
}

func (m tuneModel) Init() tea.Cmd {
	return nil
}

func (m tuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, tuneKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, tuneKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, tuneKeys.Down):
			if m.cursor < len(m.attrs)-1 {
				m.cursor++
			}
		case key.Matches(msg, tuneKeys.Decrease):
			m.adjust(-1)
		case key.Matches(msg, tuneKeys.Increase), key.Matches(msg, tuneKeys.Toggle):
			m.adjust(1)
		case key.Matches(msg, tuneKeys.Reload):
			m.reloadAll()
		}
	}
	return m, nil
}

func (m tuneModel) View() string {
	var b strings.Builder
	b.WriteString(ui.FormatHeader("TUNE", m.pad.Name()))
	b.WriteString("\n\n")

	for i, attr := range m.attrs {
		line := fmt.Sprintf("%-32s %s", attr.Name, m.values[i])
		if i == m.cursor {
			b.WriteString(ui.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(ui.TextStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(ui.WarningStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(ui.SubtleStyle.Render("↑/↓ select · ←/→ adjust · space toggle · r reload · q quit"))
	b.WriteString("\n")
	return b.String()
}
