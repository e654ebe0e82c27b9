package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/models"
)

// stubPortal overrides only the methods a test exercises; anything else
// panics through the nil embedded interface.
type stubPortal struct {
	adapter.PortalAdapter

	loginFn   func(ctx context.Context, email, password string) (*models.AuthUser, error)
	signupFn  func(ctx context.Context, name, email, password string) (*models.AuthUser, bool, error)
	magicFn   func(ctx context.Context, email string) error
	profileFn func(ctx context.Context) (models.Profile, error)
}

func (s *stubPortal) Login(ctx context.Context, email, password string) (*models.AuthUser, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubPortal) Signup(ctx context.Context, name, email, password string) (*models.AuthUser, bool, error) {
	return s.signupFn(ctx, name, email, password)
}

func (s *stubPortal) MagicLink(ctx context.Context, email string) error {
	return s.magicFn(ctx, email)
}

func (s *stubPortal) Profile(ctx context.Context) (models.Profile, error) {
	return s.profileFn(ctx)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestAuthModal_LoginValidation(t *testing.T) {
	m := newAuthModal(context.Background(), &stubPortal{})

	closed, cmd := m.Update(keyPress("enter"))

	assert.False(t, closed)
	assert.Nil(t, cmd)
	assert.Equal(t, "E-mail a heslo jsou povinné", m.errMsg)
	assert.False(t, m.submitting)
}

func TestAuthModal_SignupValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		fields   [4]string // jméno, e-mail, heslo, heslo znovu
		expected string
	}{
		{
			name:     "missing field wins over everything",
			fields:   [4]string{"Marta", "", "abc", "xyz"},
			expected: "Vyplňte prosím všechna pole",
		},
		{
			name:     "mismatch wins over short password",
			fields:   [4]string{"Marta", "marta@example.cz", "abc", "abd"},
			expected: "Hesla se neshodují",
		},
		{
			name:     "short password reported last",
			fields:   [4]string{"Marta", "marta@example.cz", "abc", "abc"},
			expected: "Heslo musí mít alespoň 6 znaků",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAuthModal(context.Background(), &stubPortal{})
			m.switchTab(tabSignup)
			for i, value := range tt.fields {
				m.signup[i].SetValue(value)
			}

			closed, cmd := m.Update(keyPress("enter"))

			assert.False(t, closed)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.expected, m.errMsg)
		})
	}
}

func TestAuthModal_LoginSuccessCloses(t *testing.T) {
	portal := &stubPortal{
		loginFn: func(context.Context, string, string) (*models.AuthUser, error) {
			return &models.AuthUser{ID: "u-1", Email: "marta@example.cz"}, nil
		},
	}
	m := newAuthModal(context.Background(), portal)
	m.login[0].SetValue("marta@example.cz")
	m.login[1].SetValue("tajneheslo")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	closed, _ := m.Update(cmd())
	assert.True(t, closed)
}

func TestAuthModal_RejectionShowsPortalReason(t *testing.T) {
	portal := &stubPortal{
		loginFn: func(context.Context, string, string) (*models.AuthUser, error) {
			return nil, fmt.Errorf("%w: Invalid login credentials", adapter.ErrBadRequest)
		},
	}
	m := newAuthModal(context.Background(), portal)
	m.login[0].SetValue("marta@example.cz")
	m.login[1].SetValue("spatne")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	closed, _ := m.Update(cmd())

	assert.False(t, closed)
	assert.False(t, m.submitting)
	assert.Equal(t, "Invalid login credentials", m.errMsg)
}

func TestAuthModal_StaleResponseIsDropped(t *testing.T) {
	portal := &stubPortal{
		loginFn: func(context.Context, string, string) (*models.AuthUser, error) {
			return &models.AuthUser{ID: "u-1"}, nil
		},
	}
	m := newAuthModal(context.Background(), portal)
	m.login[0].SetValue("marta@example.cz")
	m.login[1].SetValue("tajneheslo")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	stale := cmd()

	// resubmitting abandons the earlier in-flight attempt
	m.invalidate()
	m.submitting = false
	_, _ = m.Update(keyPress("enter"))

	closed, _ := m.Update(stale)

	assert.False(t, closed, "a stale success must not close the modal")
	assert.Empty(t, m.errMsg)
}

func TestAuthModal_TabSwitchKeepsInFlightResult(t *testing.T) {
	portal := &stubPortal{
		loginFn: func(context.Context, string, string) (*models.AuthUser, error) {
			return nil, fmt.Errorf("%w: Invalid login credentials", adapter.ErrBadRequest)
		},
	}
	m := newAuthModal(context.Background(), portal)
	m.login[0].SetValue("marta@example.cz")
	m.login[1].SetValue("spatne")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	result := cmd()

	// over to signup and back while the request is in flight
	_, _ = m.Update(keyPress("ctrl+t"))
	_, _ = m.Update(keyPress("ctrl+t"))

	closed, _ := m.Update(result)

	assert.False(t, closed)
	assert.False(t, m.submitting)
	assert.Equal(t, "Invalid login credentials", m.errMsg)
}

func TestAuthModal_SignupWithoutSession(t *testing.T) {
	portal := &stubPortal{
		signupFn: func(context.Context, string, string, string) (*models.AuthUser, bool, error) {
			return &models.AuthUser{ID: "u-2", Email: "novy@example.cz"}, false, nil
		},
	}
	m := newAuthModal(context.Background(), portal)
	m.switchTab(tabSignup)
	m.signup[signupName].SetValue("Nový Klient")
	m.signup[signupEmail].SetValue("novy@example.cz")
	m.signup[signupPassword].SetValue("tajneheslo")
	m.signup[signupConfirm].SetValue("tajneheslo")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	closed, tick := m.Update(cmd())

	assert.False(t, closed, "no session yet, the modal stays up")
	assert.Equal(t, "Účet vytvořen. Zkontrolujte svou e-mailovou schránku a potvrďte registraci.", m.notice)
	require.NotNil(t, tick, "the notice schedules the flip back to the login tab")

	// the scheduled flip lands while the notice is still showing
	closed, _ = m.Update(switchToLoginTabMsg{attempt: m.attempt})
	assert.False(t, closed)
	assert.Equal(t, tabLogin, m.tab)
	assert.Empty(t, m.notice)
}

func TestAuthModal_SignupWithSessionCloses(t *testing.T) {
	portal := &stubPortal{
		signupFn: func(context.Context, string, string, string) (*models.AuthUser, bool, error) {
			return &models.AuthUser{ID: "u-2"}, true, nil
		},
	}
	m := newAuthModal(context.Background(), portal)
	m.switchTab(tabSignup)
	m.signup[signupName].SetValue("Nový Klient")
	m.signup[signupEmail].SetValue("novy@example.cz")
	m.signup[signupPassword].SetValue("tajneheslo")
	m.signup[signupConfirm].SetValue("tajneheslo")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	closed, _ := m.Update(cmd())
	assert.True(t, closed)
}

func TestAuthModal_MagicLinkUnavailable(t *testing.T) {
	portal := &stubPortal{
		magicFn: func(context.Context, string) error {
			return fmt.Errorf("%w: Magic link sign-in is not available, use password login", adapter.ErrNotImplemented)
		},
	}
	m := newAuthModal(context.Background(), portal)
	m.login[0].SetValue("marta@example.cz")

	_, cmd := m.Update(keyPress("ctrl+g"))
	require.NotNil(t, cmd)

	closed, _ := m.Update(cmd())

	assert.False(t, closed)
	assert.Equal(t, "Magic link sign-in is not available, use password login", m.errMsg)
}

func TestAuthModal_EscCancels(t *testing.T) {
	m := newAuthModal(context.Background(), &stubPortal{})

	closed, _ := m.Update(keyPress("esc"))

	assert.True(t, closed)
}
