package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/domy-v-italii/portal/internal/adapter"
	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/session"
	"github.com/domy-v-italii/portal/internal/store"
	"github.com/domy-v-italii/portal/internal/tui"
	"github.com/domy-v-italii/portal/models"
)

type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	portal   adapter.PortalAdapter
	storages *store.ClientStorages
	observer *session.Observer
	ui       *tui.TUI
}

func NewApp(buildInfo models.AppBuildInfo) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("read client config: %w", err)
	}

	log := logger.NewFileLogger("portal-client", cfg.LogPath)

	storages, err := store.NewClientStorages(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	portal, err := adapter.NewPortalAdapter(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create portal adapter: %w", err)
	}

	// put the cookies persisted by the previous run back into the jar
	// so the observer's initial lookup can resolve a signed-in session
	stored, err := storages.SessionRepository.LoadCookies(context.Background())
	if err != nil {
		log.Err(err).Msg("loading persisted session failed, starting anonymous")
	} else if len(stored) > 0 {
		portal.RestoreCookies(toHTTPCookies(stored))
	}

	ctx := context.Background()
	pages := map[string]tea.Model{
		"home":       tui.NewHomeModel(ctx, portal, storages.RecentRepository),
		"regions":    tui.NewRegionsModel(ctx, portal, cfg.Language),
		"properties": tui.NewPropertiesModel(ctx, portal),
		"property":   tui.NewPropertyModel(ctx, portal, storages.RecentRepository),
		"dashboard":  tui.NewDashboardModel(ctx, portal),
		"club":       tui.NewClubModel(ctx, portal),
		"admin":      tui.NewAdminModel(ctx, portal),
	}
	root := tui.NewRootModel(ctx, portal, pages, "home", buildInfo)

	return &App{
		cfg:      cfg,
		logger:   log,
		portal:   portal,
		storages: storages,
		observer: session.NewObserver(portal, log),
		ui:       tui.New(root),
	}, nil
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// keep the local cookie store in step with the jar
	unsubscribePersist := a.portal.OnAuthChange(func(user *models.User) {
		a.persistSession(ctx, user)
	})
	defer unsubscribePersist()

	a.observer.Start(ctx)
	defer a.observer.Stop()

	// Send blocks until the UI loop is up, so the pump needs its own
	// goroutine; the immediate Subscribe callback would deadlock the
	// startup otherwise.
	go a.observer.Subscribe(func(snapshot session.Snapshot) {
		a.ui.Send(tui.SessionChanged{Snapshot: snapshot})
	})

	if err := a.ui.Run(); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("client closed by user")
			return nil
		}
		return err
	}

	return nil
}

// persistSession writes the jar to the local database on sign-in and
// wipes it on sign-out. Failures only cost the user a re-login after
// restart, so they are logged and swallowed.
func (a *App) persistSession(ctx context.Context, user *models.User) {
	if user == nil {
		if err := a.storages.SessionRepository.ClearCookies(ctx); err != nil {
			a.logger.Err(err).Msg("clearing persisted session failed")
		}
		return
	}

	if err := a.storages.SessionRepository.SaveCookies(ctx, toStoredCookies(a.portal.Cookies())); err != nil {
		a.logger.Err(err).Msg("persisting session failed")
	}
}

func toStoredCookies(cookies []*http.Cookie) []models.StoredCookie {
	stored := make([]models.StoredCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, models.StoredCookie{Name: c.Name, Value: c.Value, Expires: c.Expires})
	}
	return stored
}

func toHTTPCookies(stored []models.StoredCookie) []*http.Cookie {
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		cookies = append(cookies, &http.Cookie{Name: s.Name, Value: s.Value, Expires: s.Expires})
	}
	return cookies
}
