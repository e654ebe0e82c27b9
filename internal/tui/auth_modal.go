// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/adapter"
)

// Auth modal tabs.
const (
	tabLogin = iota
	tabSignup
)

// signup input indexes.
const (
	signupName = iota
	signupEmail
	signupPassword
	signupConfirm
)

// checkEmailDelay is how long the post-signup notice stays up before
// the modal flips back to the login tab.
const checkEmailDelay = 4 * time.Second

// authModal is the sign-in overlay. It owns two tabbed forms (login
// and signup), tracks an attempt counter so responses from an
// abandoned submission can never mutate a newer form state, and closes
// itself once a session exists.
type authModal struct {
	ctx    context.Context
	portal adapter.PortalAdapter

	tab    int
	login  []textinput.Model
	signup []textinput.Model
	focus  int

	submitting bool
	attempt    int
	errMsg     string
	notice     string
}

func newAuthModal(ctx context.Context, portal adapter.PortalAdapter) *authModal {
	emailInput := func() textinput.Model {
		in := textinput.New()
		in.Placeholder = "e-mail"
		in.CharLimit = 254
		in.Width = 36
		return in
	}
	passwordInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 256
		in.Width = 36
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		return in
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "jméno"
	nameInput.CharLimit = 100
	nameInput.Width = 36

	m := &authModal{
		ctx:    ctx,
		portal: portal,
		login:  []textinput.Model{emailInput(), passwordInput("heslo")},
		signup: []textinput.Model{nameInput, emailInput(), passwordInput("heslo"), passwordInput("heslo znovu")},
	}
	m.inputs()[0].Focus()
	return m
}

func (m *authModal) inputs() []textinput.Model {
	if m.tab == tabSignup {
		return m.signup
	}
	return m.login
}

// Update handles one message. closed reports that the modal is done:
// either cancelled or a session was established.
func (m *authModal) Update(msg tea.Msg) (closed bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.attempt != m.attempt {
			// answer to a submission the user already abandoned
			return false, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return false, nil
		}
		return true, nil

	case signupResultMsg:
		if msg.attempt != m.attempt {
			return false, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return false, nil
		}
		if msg.hasSession {
			return true, nil
		}
		// account exists but the session is withheld until the e-mail
		// address is confirmed
		m.notice = "Účet vytvořen. Zkontrolujte svou e-mailovou schránku a potvrďte registraci."
		attempt := m.attempt
		return false, tea.Tick(checkEmailDelay, func(time.Time) tea.Msg {
			return switchToLoginTabMsg{attempt: attempt}
		})

	case magicLinkResultMsg:
		if msg.attempt != m.attempt {
			return false, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
		}
		return false, nil

	case switchToLoginTabMsg:
		if msg.attempt != m.attempt || m.notice == "" {
			return false, nil
		}
		m.notice = ""
		m.switchTab(tabLogin)
		return false, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return false, m.updateFocused(msg)
}

func (m *authModal) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.invalidate()
		return true, nil

	case "ctrl+t":
		if m.tab == tabLogin {
			m.switchTab(tabSignup)
		} else {
			m.switchTab(tabLogin)
		}
		return false, nil

	case "tab":
		m.focusNext()
		return false, nil

	case "shift+tab":
		m.focusPrev()
		return false, nil

	case "ctrl+g":
		// magic link is advertised for old bookmarks; the portal
		// answers that only password login is available
		if m.submitting {
			return false, nil
		}
		m.invalidate()
		m.submitting = true
		return false, m.cmdMagicLink(strings.TrimSpace(m.inputs()[m.emailIndex()].Value()))

	case "enter":
		if m.submitting {
			return false, nil
		}
		if m.tab == tabSignup {
			return false, m.submitSignup()
		}
		return false, m.submitLogin()
	}

	return false, m.updateFocused(msg)
}

func (m *authModal) submitLogin() tea.Cmd {
	email := strings.TrimSpace(m.login[0].Value())
	password := m.login[1].Value()

	if email == "" || password == "" {
		m.errMsg = "E-mail a heslo jsou povinné"
		return nil
	}

	m.invalidate()
	m.submitting = true
	return m.cmdLogin(email, password)
}

func (m *authModal) submitSignup() tea.Cmd {
	name := strings.TrimSpace(m.signup[signupName].Value())
	email := strings.TrimSpace(m.signup[signupEmail].Value())
	password := m.signup[signupPassword].Value()
	confirm := m.signup[signupConfirm].Value()

	// validation order is fixed: completeness, match, length
	if name == "" || email == "" || password == "" || confirm == "" {
		m.errMsg = "Vyplňte prosím všechna pole"
		return nil
	}
	if password != confirm {
		m.errMsg = "Hesla se neshodují"
		return nil
	}
	if len(password) < 6 {
		m.errMsg = "Heslo musí mít alespoň 6 znaků"
		return nil
	}

	m.invalidate()
	m.submitting = true
	return m.cmdSignup(name, email, password)
}

func (m *authModal) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	attempt := m.attempt

	return func() tea.Msg {
		user, err := portal.Login(ctx, email, password)
		return loginResultMsg{attempt: attempt, user: user, err: err}
	}
}

func (m *authModal) cmdSignup(name, email, password string) tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	attempt := m.attempt

	return func() tea.Msg {
		user, hasSession, err := portal.Signup(ctx, name, email, password)
		return signupResultMsg{attempt: attempt, user: user, hasSession: hasSession, err: err}
	}
}

func (m *authModal) cmdMagicLink(email string) tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	attempt := m.attempt

	return func() tea.Msg {
		return magicLinkResultMsg{attempt: attempt, err: portal.MagicLink(ctx, email)}
	}
}

// invalidate bumps the attempt counter so in-flight responses are
// dropped on arrival.
func (m *authModal) invalidate() {
	m.attempt++
	m.errMsg = ""
	m.notice = ""
}

// switchTab moves focus to the other form. The attempt counter and any
// in-flight submission stay live, so a result that lands after a pair
// of tab switches is still applied.
func (m *authModal) switchTab(tab int) {
	m.inputs()[m.focus].Blur()
	m.tab = tab
	m.focus = 0
	m.inputs()[0].Focus()
}

func (m *authModal) emailIndex() int {
	if m.tab == tabSignup {
		return signupEmail
	}
	return 0
}

func (m *authModal) focusNext() {
	inputs := m.inputs()
	inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(inputs)
	inputs[m.focus].Focus()
}

func (m *authModal) focusPrev() {
	inputs := m.inputs()
	inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(inputs)) % len(inputs)
	inputs[m.focus].Focus()
}

func (m *authModal) updateFocused(msg tea.Msg) tea.Cmd {
	inputs := m.inputs()
	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return cmd
}

func (m *authModal) View() string {
	var b strings.Builder

	if m.tab == tabLogin {
		b.WriteString(titleStyle.Render("[ Přihlášení ]") + "  Registrace\n\n")
		b.WriteString("E-mail │ [" + m.login[0].View() + "]\n")
		b.WriteString("Heslo  │ [" + m.login[1].View() + "]\n")
	} else {
		b.WriteString("Přihlášení  " + titleStyle.Render("[ Registrace ]") + "\n\n")
		b.WriteString("Jméno        │ [" + m.signup[signupName].View() + "]\n")
		b.WriteString("E-mail       │ [" + m.signup[signupEmail].View() + "]\n")
		b.WriteString("Heslo        │ [" + m.signup[signupPassword].View() + "]\n")
		b.WriteString("Heslo znovu  │ [" + m.signup[signupConfirm].View() + "]\n")
	}

	if m.submitting {
		b.WriteString("\n[Odesílám...]\n")
	} else {
		b.WriteString("\n[Odeslat]\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Chyba: "+m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("esc: zavřít │ ctrl+t: přepnout záložku │ tab: další pole │ ctrl+g: magický odkaz"))

	return overlayBoxStyle.Render(b.String())
}
