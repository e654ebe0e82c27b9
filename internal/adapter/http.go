package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

type portalAdapter struct {
	client  *resty.Client
	jar     http.CookieJar
	baseURL *url.URL

	mu        sync.Mutex
	listeners map[int]func(*models.User)
	nextSubID int

	logger *logger.Logger
}

// NewPortalAdapter constructs the HTTP implementation of
// [PortalAdapter]. It normalises and validates the base URL from
// cfg.PortalURL and gives the underlying client its own cookie jar so
// session cookies survive across calls.
//
// Returns an error if cfg.PortalURL is empty or cannot be parsed as a
// valid URL.
func NewPortalAdapter(cfg *config.ClientConfig, logger *logger.Logger) (PortalAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.PortalURL)
	if err != nil {
		return nil, fmt.Errorf("invalid portal address: %w", err)
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid portal address: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(jar)

	return &portalAdapter{
		client:    client,
		jar:       jar,
		baseURL:   parsed,
		listeners: make(map[int]func(*models.User)),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ─────────────────────────────────────────────
// Auth
// ─────────────────────────────────────────────

func (p *portalAdapter) Login(ctx context.Context, email, password string) (*models.AuthUser, error) {
	var result models.LoginResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// a grant confirmed without a user body sets the session cookie but
	// gives the listeners nothing to announce; announcing nil here would
	// read as a sign-out
	if result.User != nil {
		p.announce(&models.User{ID: result.User.ID, Email: result.User.Email})
	}
	return result.User, nil
}

func (p *portalAdapter) Signup(ctx context.Context, name, email, password string) (*models.AuthUser, bool, error) {
	var result models.SignupResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SignupRequest{Name: name, Email: email, Password: password}).
		SetResult(&result).
		Post("/api/auth/signup")
	if err != nil {
		return nil, false, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, false, err
	}

	if result.HasSession && result.User != nil {
		p.announce(&models.User{ID: result.User.ID, Email: result.User.Email})
	}
	return result.User, result.HasSession, nil
}

func (p *portalAdapter) Logout(ctx context.Context) error {
	resp, err := p.client.R().
		SetContext(ctx).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	p.announce(nil)
	return nil
}

func (p *portalAdapter) MagicLink(ctx context.Context, email string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/api/auth/magic-link")
	if err != nil {
		return fmt.Errorf("magic link request: %w", err)
	}
	return mapHTTPError(resp)
}

func (p *portalAdapter) Session(ctx context.Context) (*models.User, error) {
	var result models.SessionResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/auth/session")
	if err != nil {
		return nil, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.User, nil
}

func (p *portalAdapter) OnAuthChange(fn func(user *models.User)) func() {
	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.listeners[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

func (p *portalAdapter) announce(user *models.User) {
	p.mu.Lock()
	listeners := make([]func(*models.User), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(user)
	}
}

// ─────────────────────────────────────────────
// Cookie persistence
// ─────────────────────────────────────────────

func (p *portalAdapter) Cookies() []*http.Cookie {
	return p.jar.Cookies(p.baseURL)
}

func (p *portalAdapter) RestoreCookies(cookies []*http.Cookie) {
	p.jar.SetCookies(p.baseURL, cookies)
}

// ─────────────────────────────────────────────
// Profile and catalog
// ─────────────────────────────────────────────

func (p *portalAdapter) Profile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	err := p.get(ctx, "/api/profile", nil, &profile)
	return profile, err
}

func (p *portalAdapter) Regions(ctx context.Context, language string) ([]Region, error) {
	var regions []Region
	query := url.Values{}
	if language != "" {
		query.Set("lang", language)
	}
	err := p.get(ctx, "/api/catalog/regions", query, &regions)
	return regions, err
}

func (p *portalAdapter) Properties(ctx context.Context, regionSlug string) ([]models.Property, error) {
	var properties []models.Property
	query := url.Values{}
	if regionSlug != "" {
		query.Set("region", regionSlug)
	}
	err := p.get(ctx, "/api/catalog/properties", query, &properties)
	return properties, err
}

func (p *portalAdapter) Property(ctx context.Context, propertyID string) (models.Property, error) {
	var property models.Property
	err := p.get(ctx, "/api/catalog/properties/"+url.PathEscape(propertyID), nil, &property)
	return property, err
}

// ─────────────────────────────────────────────
// Dashboard
// ─────────────────────────────────────────────

func (p *portalAdapter) Favorites(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := p.get(ctx, "/api/dashboard/favorites", nil, &favorites)
	return favorites, err
}

func (p *portalAdapter) AddFavorite(ctx context.Context, propertyID string) error {
	return p.post(ctx, "/api/dashboard/favorites", map[string]string{"property_id": propertyID}, nil)
}

func (p *portalAdapter) RemoveFavorite(ctx context.Context, propertyID string) error {
	return p.delete(ctx, "/api/dashboard/favorites/"+url.PathEscape(propertyID))
}

func (p *portalAdapter) Inquiries(ctx context.Context) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := p.get(ctx, "/api/dashboard/inquiries", nil, &inquiries)
	return inquiries, err
}

func (p *portalAdapter) CreateInquiry(ctx context.Context, propertyID, message string) (models.Inquiry, error) {
	var inquiry models.Inquiry
	err := p.post(ctx, "/api/dashboard/inquiries",
		map[string]string{"property_id": propertyID, "message": message}, &inquiry)
	return inquiry, err
}

func (p *portalAdapter) SavedSearches(ctx context.Context) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	err := p.get(ctx, "/api/dashboard/searches", nil, &searches)
	return searches, err
}

func (p *portalAdapter) CreateSavedSearch(ctx context.Context, name string, criteria json.RawMessage) error {
	body := map[string]any{"name": name}
	if criteria != nil {
		body["criteria"] = criteria
	}
	return p.post(ctx, "/api/dashboard/searches", body, nil)
}

func (p *portalAdapter) DeleteSavedSearch(ctx context.Context, searchID string) error {
	return p.delete(ctx, "/api/dashboard/searches/"+url.PathEscape(searchID))
}

// ─────────────────────────────────────────────
// Club
// ─────────────────────────────────────────────

func (p *portalAdapter) Webinars(ctx context.Context) ([]models.Webinar, error) {
	var webinars []models.Webinar
	err := p.get(ctx, "/api/club/webinars", nil, &webinars)
	return webinars, err
}

func (p *portalAdapter) RegisterForWebinar(ctx context.Context, webinarID string) error {
	return p.post(ctx, "/api/club/webinars/"+url.PathEscape(webinarID)+"/register", nil, nil)
}

func (p *portalAdapter) ConciergeTickets(ctx context.Context) ([]models.ConciergeTicket, error) {
	var tickets []models.ConciergeTicket
	err := p.get(ctx, "/api/club/concierge", nil, &tickets)
	return tickets, err
}

func (p *portalAdapter) CreateConciergeTicket(ctx context.Context, subject, body string) error {
	return p.post(ctx, "/api/club/concierge",
		map[string]string{"subject": subject, "body": body}, nil)
}

// ─────────────────────────────────────────────
// Documents
// ─────────────────────────────────────────────

func (p *portalAdapter) Documents(ctx context.Context) ([]models.Document, error) {
	var documents []models.Document
	err := p.get(ctx, "/api/dashboard/documents", nil, &documents)
	return documents, err
}

func (p *portalAdapter) UploadDocument(ctx context.Context, fileName, contentType string, data []byte) (models.Document, error) {
	var document models.Document

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("X-File-Name", fileName).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		SetResult(&document).
		Post("/api/dashboard/documents")
	if err != nil {
		return models.Document{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return document, nil
}

func (p *portalAdapter) DownloadDocument(ctx context.Context, documentID string) ([]byte, string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get("/api/dashboard/documents/" + url.PathEscape(documentID))
	if err != nil {
		return nil, "", fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

// ─────────────────────────────────────────────
// Request helpers
// ─────────────────────────────────────────────

func (p *portalAdapter) get(ctx context.Context, path string, query url.Values, result any) error {
	req := p.client.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (p *portalAdapter) post(ctx context.Context, path string, body, result any) error {
	req := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (p *portalAdapter) delete(ctx context.Context, path string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return mapHTTPError(resp)
}
