package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/models"
)

// AdminModel is the brokerage-staff screen. The hosted portal keeps the
// actual back-office tooling on the web side, so this screen only
// confirms who is signed in and with which role.
type AdminModel struct {
	ctx    context.Context
	portal adapter.PortalAdapter

	profile *models.Profile
	errMsg  string
}

func NewAdminModel(ctx context.Context, portal adapter.PortalAdapter) *AdminModel {
	return &AdminModel{ctx: ctx, portal: portal}
}

func (m *AdminModel) Init() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		profile, err := portal.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		profile := msg.profile
		m.profile = &profile
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, navigateCmd("home")
		}
	}

	return m, nil
}

func (m *AdminModel) View() string {
	var data string

	switch {
	case m.errMsg != "":
		data = errorStyle.Render("Chyba: " + m.errMsg)
	case m.profile == nil:
		data = "Ověřuji oprávnění..."
	default:
		data = fmt.Sprintf(
			"Přihlášený správce: %s\nRole: %s\n\nSpráva nabídek a klientů probíhá ve webové administraci portálu.",
			m.profile.Name, m.profile.Role)
	}

	return renderPage("ADMINISTRACE", data, "esc: zpět")
}
