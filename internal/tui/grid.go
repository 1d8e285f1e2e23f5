package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelvinreef/atmosim/internal/atmos"
	"github.com/kelvinreef/atmosim/internal/engine"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// GridView is a bubbletea.Model that steps an engine.Engine and renders
// its Z-level as a grid of lipgloss-colored cells, grounded on the
// teacher's tick-driven interactive model.
type GridView struct {
	eng      *engine.Engine
	tuning   *atmos.Tuning
	scenario string

	tickNum  int
	maxTicks int
	paused   bool
	err      error

	history *History
}

// NewGridView wraps an already-seeded engine for live display.
func NewGridView(eng *engine.Engine, tuning *atmos.Tuning, scenario string, maxTicks int) *GridView {
	return &GridView{
		eng:      eng,
		tuning:   tuning,
		scenario: scenario,
		maxTicks: maxTicks,
		history:  NewHistory(60),
	}
}

func (v *GridView) Init() tea.Cmd { return tickCmd() }

func (v *GridView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case " ":
			v.paused = !v.paused
		}
		return v, nil
	case tickMsg:
		if v.err != nil || (v.maxTicks > 0 && v.tickNum >= v.maxTicks) {
			return v, nil
		}
		if !v.paused {
			sample, err := v.eng.Tick(context.Background(), v.tickNum)
			if err != nil {
				v.err = err
				return v, nil
			}
			v.tickNum++
			v.history.Push(float64(sample.FuelBurnt))
		}
		return v, tickCmd()
	}
	return v, nil
}

func (v *GridView) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s — tick %d", v.scenario, v.tickNum)
	if v.maxTicks > 0 {
		title += fmt.Sprintf("/%d", v.maxTicks)
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	grid := v.eng.Grid()
	for y := int32(grid.MapSize - 1); y >= 0; y-- {
		for x := int32(0); x < int32(grid.MapSize); x++ {
			tile := grid.GetTile(grid.Index(x, y))
			b.WriteString(v.renderCell(tile))
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString(fmt.Sprintf("\nerror: %v\n", v.err))
	}

	b.WriteString("\n")
	b.WriteString(v.history.Render("fuel burnt"))
	b.WriteString("\n")
	hint := "space: pause/resume   q: quit"
	if v.paused {
		hint = "paused — " + hint
	}
	b.WriteString(keyHintStyle.Render(hint))

	return b.String()
}

func (v *GridView) renderCell(tile *atmos.Tile) string {
	if tile.Mode.Kind == atmos.ModeSpace {
		return cellSpace.Render("·")
	}
	temperature := tile.Temperature(v.tuning)
	style := cellStyleFor(temperature, v.tuning.T20C, v.tuning.PlasmaBurnMinTemp)
	glyph := "░"
	switch {
	case tile.HotspotVolume > 0:
		glyph = "▲"
	case tile.Gases.Moles() > v.tuning.MinimumNonzeroMoles:
		glyph = "▓"
	}
	return style.Render(glyph)
}
