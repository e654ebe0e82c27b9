package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/adapter"
)

// RegionsModel lists the marketed Italian regions.
type RegionsModel struct {
	ctx      context.Context
	portal   adapter.PortalAdapter
	language string

	regions []adapter.Region
	idx     int
	loading bool
	errMsg  string
}

func NewRegionsModel(ctx context.Context, portal adapter.PortalAdapter, language string) *RegionsModel {
	return &RegionsModel{ctx: ctx, portal: portal, language: language}
}

func (m *RegionsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *RegionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case regionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.regions = msg.regions
		if m.idx >= len(m.regions) {
			m.idx = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigateCmd("home")
		case "up", "k":
			if m.idx > 0 {
				m.idx--
			}
		case "down", "j":
			if m.idx < len(m.regions)-1 {
				m.idx++
			}
		case "enter":
			if m.idx < len(m.regions) {
				region := m.regions[m.idx]
				return m, func() tea.Msg {
					return NavigateTo{
						Page: "properties",
						Payload: loadPropertiesMsg{
							regionSlug: region.Slug,
							regionName: region.Name,
						},
					}
				}
			}
		}
	}

	return m, nil
}

func (m *RegionsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	language := m.language

	return func() tea.Msg {
		regions, err := portal.Regions(ctx, language)
		return regionsLoadedMsg{regions: regions, err: err}
	}
}

func (m *RegionsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Načítám regiony...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Chyba: " + m.errMsg))
	case len(m.regions) == 0:
		b.WriteString("Žádné regiony")
	default:
		for i, region := range m.regions {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-12s │ %s\n", cursor, region.Name, fitText(region.Summary, 48)))
		}
	}

	return renderPage("REGIONY", strings.TrimRight(b.String(), "\n"), "enter: nemovitosti │ esc: zpět")
}
