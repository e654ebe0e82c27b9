// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/access"
	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/internal/session"
	"github.com/domy-v-italii/portal/internal/store"
	"github.com/domy-v-italii/portal/models"
)

const statusTTL = 3 * time.Second

// PropertyModel shows one listing. Opening a listing records it in the
// local recently-viewed history.
type PropertyModel struct {
	ctx    context.Context
	portal adapter.PortalAdapter
	recent store.LocalRecentRepository

	snapshot session.Snapshot
	property models.Property

	asking  bool
	message textinput.Model
	status  string
	errMsg  string
}

func NewPropertyModel(ctx context.Context, portal adapter.PortalAdapter, recent store.LocalRecentRepository) *PropertyModel {
	message := textinput.New()
	message.Placeholder = "Vaše otázka makléři"
	message.CharLimit = 500
	message.Width = 48

	return &PropertyModel{ctx: ctx, portal: portal, recent: recent, message: message}
}

func (m *PropertyModel) Init() tea.Cmd {
	return nil
}

func (m *PropertyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openPropertyMsg:
		m.property = msg.property
		m.status = ""
		m.errMsg = ""
		m.asking = false
		return m, m.cmdRecordView()

	case SessionChanged:
		m.snapshot = msg.Snapshot
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		return m, clearStatusAfter()

	case copiedMsg:
		m.status = "Referenční číslo zkopírováno do schránky"
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *PropertyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.asking {
		switch msg.String() {
		case "esc":
			m.asking = false
			m.message.Blur()
			return m, nil
		case "enter":
			text := strings.TrimSpace(m.message.Value())
			if text == "" {
				m.errMsg = "Napište prosím zprávu"
				return m, nil
			}
			m.asking = false
			m.message.Blur()
			m.message.SetValue("")
			m.errMsg = ""
			return m, m.cmdInquiry(text)
		}

		var cmd tea.Cmd
		m.message, cmd = m.message.Update(msg)
		return m, cmd
	}

	switch {
	case msg.String() == "esc":
		return m, navigateCmd("properties")
	case key.Matches(msg, keys.copy):
		reference := m.property.Reference
		return m, func() tea.Msg {
			if err := clipboard.WriteAll(reference); err != nil {
				return actionDoneMsg{err: fmt.Errorf("kopírování do schránky: %w", err)}
			}
			return copiedMsg{}
		}
	case key.Matches(msg, keys.fav):
		if m.snapshot.State != access.StateAuthorized {
			return m, func() tea.Msg { return OpenAuthModal{} }
		}
		return m, m.cmdAddFavorite()
	case key.Matches(msg, keys.inquiry):
		if m.snapshot.State != access.StateAuthorized {
			return m, func() tea.Msg { return OpenAuthModal{} }
		}
		m.asking = true
		m.errMsg = ""
		m.message.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *PropertyModel) cmdRecordView() tea.Cmd {
	ctx := m.ctx
	recent := m.recent
	propertyID := m.property.ID

	return func() tea.Msg {
		// history is best effort, a write failure never surfaces
		_ = recent.RecordView(ctx, propertyID)
		return nil
	}
}

func (m *PropertyModel) cmdAddFavorite() tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	propertyID := m.property.ID

	return func() tea.Msg {
		if err := portal.AddFavorite(ctx, propertyID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Uloženo do oblíbených"}
	}
}

func (m *PropertyModel) cmdInquiry(message string) tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	propertyID := m.property.ID

	return func() tea.Msg {
		inquiry, err := portal.CreateInquiry(ctx, propertyID, message)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Dotaz odeslán, číslo " + inquiry.Reference}
	}
}

func (m *PropertyModel) View() string {
	p := m.property

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("Reference │ %s\n", p.Reference))
	b.WriteString(fmt.Sprintf("Obec      │ %s\n", p.Town))
	b.WriteString(fmt.Sprintf("Cena      │ %s\n", formatPrice(p.PriceEUR)))
	b.WriteString(fmt.Sprintf("Ložnice   │ %d\n", p.Bedrooms))
	b.WriteString(fmt.Sprintf("Plocha    │ %d m²\n", p.AreaM2))
	if p.SeaView {
		b.WriteString("Výhled    │ na moře\n")
	}

	if m.asking {
		b.WriteString("\nDotaz │ [" + m.message.View() + "]\n")
		b.WriteString(helpStyle.Render("enter: odeslat │ esc: zrušit"))
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Chyba: "+m.errMsg) + "\n")
	}

	return renderPage("DETAIL NEMOVITOSTI", strings.TrimRight(b.String(), "\n"),
		"c: kopírovat referenci │ f: oblíbené │ i: dotaz │ esc: zpět")
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
