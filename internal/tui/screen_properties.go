package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/models"
)

// PropertiesModel lists the properties of one region.
type PropertiesModel struct {
	ctx    context.Context
	portal adapter.PortalAdapter

	regionSlug string
	regionName string
	properties []models.Property
	idx        int
	loading    bool
	errMsg     string
}

func NewPropertiesModel(ctx context.Context, portal adapter.PortalAdapter) *PropertiesModel {
	return &PropertiesModel{ctx: ctx, portal: portal}
}

func (m *PropertiesModel) Init() tea.Cmd {
	return nil
}

func (m *PropertiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPropertiesMsg:
		m.regionSlug = msg.regionSlug
		m.regionName = msg.regionName
		m.loading = true
		m.errMsg = ""
		m.idx = 0
		return m, m.cmdLoad()

	case propertiesLoadedMsg:
		if msg.regionSlug != m.regionSlug {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.properties = msg.properties
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigateCmd("regions")
		case "up", "k":
			if m.idx > 0 {
				m.idx--
			}
		case "down", "j":
			if m.idx < len(m.properties)-1 {
				m.idx++
			}
		case "enter":
			if m.idx < len(m.properties) {
				property := m.properties[m.idx]
				return m, func() tea.Msg {
					return NavigateTo{Page: "property", Payload: openPropertyMsg{property: property}}
				}
			}
		}
	}

	return m, nil
}

func (m *PropertiesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	regionSlug := m.regionSlug
	regionName := m.regionName

	return func() tea.Msg {
		properties, err := portal.Properties(ctx, regionSlug)
		return propertiesLoadedMsg{
			regionSlug: regionSlug,
			regionName: regionName,
			properties: properties,
			err:        err,
		}
	}
}

func (m *PropertiesModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Načítám nemovitosti...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Chyba: " + m.errMsg))
	case len(m.properties) == 0:
		b.WriteString("V tomto regionu zatím nic nenabízíme")
	default:
		for i, property := range m.properties {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-9s │ %9s │ %s\n",
				cursor, property.Reference, formatPrice(property.PriceEUR), fitText(property.Title, 40)))
		}
	}

	title := "NEMOVITOSTI"
	if m.regionName != "" {
		title += " – " + strings.ToUpper(m.regionName)
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: detail │ esc: regiony")
}
