package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/models"
)

// Dashboard tabs.
const (
	dashTabFavorites = iota
	dashTabInquiries
	dashTabSearches
	dashTabDocuments
	dashTabCount
)

var dashTabTitles = [dashTabCount]string{"Oblíbené", "Dotazy", "Hledání", "Dokumenty"}

// DashboardModel is the signed-in client zone.
type DashboardModel struct {
	ctx    context.Context
	portal adapter.PortalAdapter

	tab     int
	idx     int
	loading bool
	errMsg  string
	status  string

	favorites []models.Favorite
	inquiries []models.Inquiry
	searches  []models.SavedSearch
	documents []models.Document
}

func NewDashboardModel(ctx context.Context, portal adapter.PortalAdapter) *DashboardModel {
	return &DashboardModel{ctx: ctx, portal: portal}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.favorites = msg.favorites
		m.inquiries = msg.inquiries
		m.searches = msg.searches
		m.documents = msg.documents
		m.clampIdx()
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.status = msg.status
		// refresh after a mutation
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		return m, navigateCmd("home")
	case key.Matches(msg, keys.left):
		m.tab = (m.tab - 1 + dashTabCount) % dashTabCount
		m.idx = 0
	case key.Matches(msg, keys.right):
		m.tab = (m.tab + 1) % dashTabCount
		m.idx = 0
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < m.tabLen()-1 {
			m.idx++
		}
	case msg.String() == "x":
		return m, m.cmdDeleteSelected()
	}

	return m, nil
}

func (m *DashboardModel) tabLen() int {
	switch m.tab {
	case dashTabFavorites:
		return len(m.favorites)
	case dashTabInquiries:
		return len(m.inquiries)
	case dashTabSearches:
		return len(m.searches)
	default:
		return len(m.documents)
	}
}

func (m *DashboardModel) clampIdx() {
	if m.idx >= m.tabLen() {
		m.idx = 0
	}
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		favorites, err := portal.Favorites(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		inquiries, err := portal.Inquiries(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		searches, err := portal.SavedSearches(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		documents, err := portal.Documents(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{
			favorites: favorites,
			inquiries: inquiries,
			searches:  searches,
			documents: documents,
		}
	}
}

func (m *DashboardModel) cmdDeleteSelected() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	switch m.tab {
	case dashTabFavorites:
		if m.idx >= len(m.favorites) {
			return nil
		}
		propertyID := m.favorites[m.idx].PropertyID
		return func() tea.Msg {
			if err := portal.RemoveFavorite(ctx, propertyID); err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: "Odebráno z oblíbených"}
		}
	case dashTabSearches:
		if m.idx >= len(m.searches) {
			return nil
		}
		searchID := m.searches[m.idx].ID
		return func() tea.Msg {
			if err := portal.DeleteSavedSearch(ctx, searchID); err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: "Uložené hledání smazáno"}
		}
	}

	return nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	for i, title := range dashTabTitles {
		if i == m.tab {
			b.WriteString(titleStyle.Render("[ " + title + " ]"))
		} else {
			b.WriteString("  " + title + "  ")
		}
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Načítám...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Chyba: " + m.errMsg))
	default:
		m.renderTab(&b)
	}

	if m.status != "" {
		b.WriteString("\n\nOK: " + m.status)
	}

	hotKeys := "←/→: záložky │ ↑/↓: navigace │ esc: zpět"
	if m.tab == dashTabFavorites || m.tab == dashTabSearches {
		hotKeys = "x: smazat │ " + hotKeys
	}

	return renderPage("KLIENTSKÁ ZÓNA", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DashboardModel) renderTab(b *strings.Builder) {
	writeEmpty := func(text string) { b.WriteString(text) }

	switch m.tab {
	case dashTabFavorites:
		if len(m.favorites) == 0 {
			writeEmpty("Zatím žádné oblíbené nemovitosti")
			return
		}
		for i, favorite := range m.favorites {
			b.WriteString(fmt.Sprintf("%s %s\n", cursorFor(i == m.idx), favorite.PropertyID))
		}

	case dashTabInquiries:
		if len(m.inquiries) == 0 {
			writeEmpty("Zatím žádné dotazy")
			return
		}
		for i, inquiry := range m.inquiries {
			b.WriteString(fmt.Sprintf("%s %-10s │ %-8s │ %s\n",
				cursorFor(i == m.idx), inquiry.Reference, inquiry.Status, fitText(inquiry.Message, 36)))
		}

	case dashTabSearches:
		if len(m.searches) == 0 {
			writeEmpty("Zatím žádná uložená hledání")
			return
		}
		for i, search := range m.searches {
			b.WriteString(fmt.Sprintf("%s %s\n", cursorFor(i == m.idx), search.Name))
		}

	case dashTabDocuments:
		if len(m.documents) == 0 {
			writeEmpty("Zatím žádné dokumenty")
			return
		}
		for i, document := range m.documents {
			b.WriteString(fmt.Sprintf("%s %-28s │ %d B\n",
				cursorFor(i == m.idx), fitText(document.FileName, 28), document.SizeBytes))
		}
	}
}

func cursorFor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}
