// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/models"
)

// ClubModel is the buyers' club screen: upcoming webinars with one-key
// registration plus the concierge ticket list and a small form for
// opening a new ticket.
type ClubModel struct {
	ctx    context.Context
	portal adapter.PortalAdapter

	loading bool
	errMsg  string
	status  string

	webinars []models.Webinar
	tickets  []models.ConciergeTicket
	idx      int

	composing bool
	subject   textinput.Model
	body      textinput.Model
	focusBody bool
}

func NewClubModel(ctx context.Context, portal adapter.PortalAdapter) *ClubModel {
	subject := textinput.New()
	subject.Placeholder = "Předmět"
	subject.CharLimit = 120
	subject.Width = 44

	body := textinput.New()
	body.Placeholder = "Popis požadavku"
	body.CharLimit = 500
	body.Width = 44

	return &ClubModel{ctx: ctx, portal: portal, subject: subject, body: body}
}

func (m *ClubModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *ClubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clubLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.webinars = msg.webinars
		m.tickets = msg.tickets
		if m.idx >= len(m.webinars) {
			m.idx = 0
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.status = msg.status
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.composing {
			return m.updateCompose(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ClubModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		return m, navigateCmd("home")
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.webinars)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		return m, m.cmdRegister()
	case key.Matches(msg, keys.newItem):
		m.composing = true
		m.focusBody = false
		m.subject.SetValue("")
		m.body.SetValue("")
		m.subject.Focus()
		m.body.Blur()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *ClubModel) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = false
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.focusBody = !m.focusBody
		if m.focusBody {
			m.subject.Blur()
			m.body.Focus()
		} else {
			m.body.Blur()
			m.subject.Focus()
		}
		return m, textinput.Blink
	case "enter":
		subject := strings.TrimSpace(m.subject.Value())
		body := strings.TrimSpace(m.body.Value())
		if subject == "" {
			m.errMsg = "Předmět je povinný"
			return m, nil
		}
		m.composing = false
		m.errMsg = ""
		return m, m.cmdCreateTicket(subject, body)
	}

	var cmd tea.Cmd
	if m.focusBody {
		m.body, cmd = m.body.Update(msg)
	} else {
		m.subject, cmd = m.subject.Update(msg)
	}
	return m, cmd
}

func (m *ClubModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		webinars, err := portal.Webinars(ctx)
		if err != nil {
			return clubLoadedMsg{err: err}
		}
		tickets, err := portal.ConciergeTickets(ctx)
		if err != nil {
			return clubLoadedMsg{err: err}
		}
		return clubLoadedMsg{webinars: webinars, tickets: tickets}
	}
}

func (m *ClubModel) cmdRegister() tea.Cmd {
	if m.idx >= len(m.webinars) {
		return nil
	}

	ctx := m.ctx
	portal := m.portal
	webinarID := m.webinars[m.idx].ID

	return func() tea.Msg {
		if err := portal.RegisterForWebinar(ctx, webinarID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Registrace na webinář odeslána"}
	}
}

func (m *ClubModel) cmdCreateTicket(subject, body string) tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		if err := portal.CreateConciergeTicket(ctx, subject, body); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Požadavek pro concierge založen"}
	}
}

func (m *ClubModel) View() string {
	if m.composing {
		data := fmt.Sprintf("Nový požadavek pro concierge\n\n%s\n%s",
			m.subject.View(), m.body.View())
		return renderPage("KLUB KUPUJÍCÍCH", data, "enter: odeslat │ tab: další pole │ esc: zrušit")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Nadcházející webináře"))
	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString("Načítám...")
	case len(m.webinars) == 0:
		b.WriteString("Žádné naplánované webináře")
	default:
		for i, webinar := range m.webinars {
			b.WriteString(fmt.Sprintf("%s %s │ %-4s │ %s\n",
				cursorFor(i == m.idx),
				webinar.StartsAt.Format("02.01.2006 15:04"),
				webinar.Language,
				fitText(webinar.Title, 34)))
		}
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Vaše požadavky"))
	b.WriteString("\n")
	if len(m.tickets) == 0 {
		b.WriteString("Zatím žádné požadavky")
	} else {
		for _, ticket := range m.tickets {
			b.WriteString(fmt.Sprintf("  %-8s │ %s\n", ticket.Status, fitText(ticket.Subject, 40)))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Chyba: "+m.errMsg))
	}
	if m.status != "" {
		b.WriteString("\n\nOK: " + m.status)
	}

	return renderPage("KLUB KUPUJÍCÍCH",
		strings.TrimRight(b.String(), "\n"),
		"enter: registrovat │ n: nový požadavek │ esc: zpět")
}
