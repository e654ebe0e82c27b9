package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/access"
	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/internal/session"
	"github.com/domy-v-italii/portal/internal/store"
	"github.com/domy-v-italii/portal/models"
)

type homeItem struct {
	label string
	page  string
}

// HomeModel is the landing page: tagline, navigation and the session
// status line.
type HomeModel struct {
	ctx    context.Context
	portal adapter.PortalAdapter
	recent store.LocalRecentRepository

	snapshot session.Snapshot
	profile  *models.Profile
	views    []models.RecentView

	idx    int
	status string
}

func NewHomeModel(ctx context.Context, portal adapter.PortalAdapter, recent store.LocalRecentRepository) *HomeModel {
	return &HomeModel{
		ctx:      ctx,
		portal:   portal,
		recent:   recent,
		snapshot: session.Snapshot{State: access.StateChecking},
	}
}

func (m *HomeModel) items() []homeItem {
	items := []homeItem{
		{label: "Katalog nemovitostí", page: "regions"},
		{label: "Klientská zóna", page: "dashboard"},
		{label: "Klub kupujících", page: "club"},
	}
	if m.profile != nil && m.profile.IsAdmin() {
		items = append(items, homeItem{label: "Administrace", page: "admin"})
	}
	return items
}

func (m *HomeModel) Init() tea.Cmd {
	ctx := m.ctx
	recent := m.recent
	return func() tea.Msg {
		// history is device-local and purely informational
		views, err := recent.RecentlyViewed(ctx, 0)
		if err != nil {
			return nil
		}
		return recentLoadedMsg{views: views}
	}
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionChanged:
		m.snapshot = msg.Snapshot
		if m.snapshot.State != access.StateAuthorized {
			m.profile = nil
		}
		return m, nil

	case profileLoadedMsg:
		if msg.err == nil {
			profile := msg.profile
			m.profile = &profile
		}
		return m, nil

	case recentLoadedMsg:
		m.views = msg.views
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			m.status = "Odhlášení se nezdařilo: " + humanizeAuthError(msg.err)
		} else {
			m.status = "Byli jste odhlášeni"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.items()
	if m.idx >= len(items) {
		m.idx = len(items) - 1
	}
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.idx < len(items) {
			page := items[m.idx].page
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	case key.Matches(keyMsg, keys.login):
		if m.snapshot.State != access.StateAuthorized {
			return m, func() tea.Msg { return OpenAuthModal{} }
		}
	case key.Matches(keyMsg, keys.logout):
		if m.snapshot.State == access.StateAuthorized {
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	return func() tea.Msg {
		return logoutDoneMsg{err: portal.Logout(ctx)}
	}
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString("Váš dům v Itálii. Česky a bez starostí.\n\n")

	switch m.snapshot.State {
	case access.StateChecking:
		b.WriteString("Ověřuji přihlášení...\n\n")
	case access.StateAuthorized:
		b.WriteString(fmt.Sprintf("Přihlášen: %s\n\n", m.snapshot.User.Email))
	default:
		b.WriteString("Nepřihlášen\n\n")
	}

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}

	items := m.items()
	for i, item := range items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d │ %s\n", cursor, i+1, item.label))
	}

	if len(m.views) > 0 {
		b.WriteString("\nNaposledy zobrazené: ")
		refs := make([]string, 0, len(m.views))
		for _, view := range m.views {
			refs = append(refs, view.PropertyID)
		}
		b.WriteString(strings.Join(refs, ", "))
		b.WriteString("\n")
	}

	hotKeys := "enter: vybrat │ ↑/↓: navigace │ v: verze"
	if m.snapshot.State == access.StateAuthorized {
		hotKeys += " │ o: odhlásit"
	} else {
		hotKeys += " │ p: přihlásit"
	}

	return renderPage("DOMY V ITÁLII", strings.TrimRight(b.String(), "\n"), hotKeys)
}
