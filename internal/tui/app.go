package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/access"
	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/internal/session"
	"github.com/domy-v-italii/portal/models"
)

// pageAreas maps protected page names to their gate configuration.
// Pages absent from the map are public.
var pageAreas = map[string]access.Area{
	"dashboard": access.Dashboard,
	"club":      access.Club,
	"admin":     access.Admin,
}

// RootModel is the TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) gates NavigateTo messages through the access rules
// 4) owns the sign-in modal overlay
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	portal adapter.PortalAdapter

	pages       map[string]tea.Model
	currentName string
	current     tea.Model

	snapshot session.Snapshot
	profile  *models.Profile

	modal       *authModal
	pendingPage string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, portal adapter.PortalAdapter, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:         ctx,
		portal:      portal,
		pages:       pages,
		currentName: startPage,
		current:     pages[startPage],
		snapshot:    session.Snapshot{State: access.StateChecking},
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.modal == nil && r.currentName == "home" {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case SessionChanged:
		return r.applySession(msg)

	case profileLoadedMsg:
		if msg.err == nil {
			profile := msg.profile
			r.profile = &profile
		}
		return r.delegate(msg)

	case NavigateTo:
		return r.navigate(msg)

	case OpenAuthModal:
		if r.modal == nil {
			r.modal = newAuthModal(r.ctx, r.portal)
		}
		return r, textinputBlink()
	}

	// The modal swallows everything else while it is open.
	if r.modal != nil {
		closed, cmd := r.modal.Update(msg)
		if closed {
			r.modal = nil
			r.pendingPage = ""
		}
		return r, cmd
	}

	return r.delegate(msg)
}

// applySession installs a new session snapshot, kicks off the profile
// fetch for fresh sign-ins and re-gates the current page.
func (r RootModel) applySession(msg SessionChanged) (tea.Model, tea.Cmd) {
	wasAuthorized := r.snapshot.State == access.StateAuthorized
	r.snapshot = msg.Snapshot

	var cmds []tea.Cmd

	switch r.snapshot.State {
	case access.StateAuthorized:
		if !wasAuthorized {
			cmds = append(cmds, r.cmdLoadProfile())
		}
		// a sign-in while the modal is up ends the prompt and resumes
		// the navigation that triggered it
		if r.modal != nil {
			target := r.pendingPage
			r.modal = nil
			r.pendingPage = ""
			if target != "" {
				cmds = append(cmds, navigateCmd(target))
			}
		}
	case access.StateAnonymous:
		r.profile = nil
		// signed out while on a protected page
		if decision := r.gate(r.currentName); decision.RedirectHome || decision.ShowPrompt {
			cmds = append(cmds, navigateCmd("home"))
		}
	}

	model, cmd := r.delegate(msg)
	root := model.(RootModel)
	cmds = append(cmds, cmd)
	return root, tea.Batch(cmds...)
}

// navigate gates and performs a page switch.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	decision := r.gate(nav.Page)
	switch {
	case decision.Waiting:
		// session still resolving; protected content stays shut
		return r, nil
	case decision.ShowPrompt:
		r.modal = newAuthModal(r.ctx, r.portal)
		r.pendingPage = nav.Page
		return r, textinputBlink()
	case decision.RedirectHome:
		if nav.Page == "home" {
			break
		}
		return r.navigate(NavigateTo{Page: "home"})
	}

	r.showBuildInfo = false
	r.currentName = nav.Page
	r.current = next

	cmds := []tea.Cmd{sessionCmd(r.snapshot)}
	if nav.Payload != nil {
		cmds = append(cmds, func() tea.Msg { return nav.Payload })
	} else {
		cmds = append(cmds, r.current.Init())
	}
	return r, tea.Batch(cmds...)
}

// gate evaluates the access rules for a page name. Public pages are
// always allowed.
func (r RootModel) gate(page string) access.Decision {
	area, protected := pageAreas[page]
	if !protected {
		return access.Decision{Allowed: true}
	}
	return area.Evaluate(r.snapshot.State, r.snapshot.User, r.profile)
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}
	next, cmd := r.current.Update(msg)
	r.current = next
	r.pages[r.currentName] = next
	return r, cmd
}

func (r RootModel) cmdLoadProfile() tea.Cmd {
	ctx := r.ctx
	portal := r.portal
	return func() tea.Msg {
		profile, err := portal.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

// OpenAuthModal raises the sign-in overlay without a pending target.
type OpenAuthModal struct{}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfo(r.buildInfo))
	}
	if r.modal != nil {
		return appStyle.Render(r.modal.View())
	}
	if r.current == nil {
		return ""
	}
	return appStyle.Render(r.current.View())
}

func textinputBlink() tea.Cmd {
	return textinput.Blink
}

func navigateCmd(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func sessionCmd(snapshot session.Snapshot) tea.Cmd {
	return func() tea.Msg { return SessionChanged{Snapshot: snapshot} }
}
