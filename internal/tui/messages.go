package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/internal/session"
	"github.com/domy-v-italii/portal/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered
// to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// SessionChanged carries a new session snapshot into the UI. The client
// application pumps these from the session observer via Program.Send.
type SessionChanged struct {
	Snapshot session.Snapshot
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type regionsLoadedMsg struct {
	regions []adapter.Region
	err     error
}

type loadPropertiesMsg struct {
	regionSlug string
	regionName string
}

type propertiesLoadedMsg struct {
	regionSlug string
	regionName string
	properties []models.Property
	err        error
}

type openPropertyMsg struct {
	property models.Property
}

type loginResultMsg struct {
	attempt int
	user    *models.AuthUser
	err     error
}

type signupResultMsg struct {
	attempt    int
	user       *models.AuthUser
	hasSession bool
	err        error
}

type magicLinkResultMsg struct {
	attempt int
	err     error
}

type switchToLoginTabMsg struct {
	attempt int
}

type logoutDoneMsg struct {
	err error
}

type dashboardLoadedMsg struct {
	favorites []models.Favorite
	inquiries []models.Inquiry
	searches  []models.SavedSearch
	documents []models.Document
	err       error
}

type clubLoadedMsg struct {
	webinars []models.Webinar
	tickets  []models.ConciergeTicket
	err      error
}

type actionDoneMsg struct {
	status string
	err    error
}

type recentLoadedMsg struct {
	views []models.RecentView
}

type copiedMsg struct{}

type clearStatusMsg struct{}
