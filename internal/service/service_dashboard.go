package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/blob"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

type dashboardService struct {
	client *backend.Client
	logger *logger.Logger
}

// NewDashboardService constructs a DashboardService over the backend
// row and storage APIs.
func NewDashboardService(client *backend.Client, logger *logger.Logger) DashboardService {
	return &dashboardService{
		client: client,
		logger: logger,
	}
}

// ─────────────────────────────────────────────
// Favorites
// ─────────────────────────────────────────────

func (d *dashboardService) Favorites(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite

	err := d.client.From(models.Favorite{}.TableName()).
		WithJar(jar).
		Eq("user_id", userID).
		OrderBy("created_at", true).
		All(ctx, &favorites)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return favorites, nil
}

// AddFavorite bookmarks a property. Re-adding an existing bookmark is
// a no-op.
func (d *dashboardService) AddFavorite(ctx context.Context, jar *backend.CookieJar, userID, propertyID string) error {
	err := d.client.From(models.Favorite{}.TableName()).
		WithJar(jar).
		InsertIgnoreDuplicates(ctx, map[string]any{
			"user_id":     userID,
			"property_id": propertyID,
		})
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

func (d *dashboardService) RemoveFavorite(ctx context.Context, jar *backend.CookieJar, userID, propertyID string) error {
	err := d.client.From(models.Favorite{}.TableName()).
		WithJar(jar).
		Eq("user_id", userID).
		Eq("property_id", propertyID).
		Delete(ctx)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	return nil
}

// ─────────────────────────────────────────────
// Inquiries
// ─────────────────────────────────────────────

func (d *dashboardService) Inquiries(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry

	err := d.client.From(models.Inquiry{}.TableName()).
		WithJar(jar).
		Eq("user_id", userID).
		OrderBy("created_at", true).
		All(ctx, &inquiries)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	return inquiries, nil
}

// CreateInquiry files a property question under a fresh reference code
// agents can quote back on the phone.
func (d *dashboardService) CreateInquiry(ctx context.Context, jar *backend.CookieJar, userID, propertyID, message string) (models.Inquiry, error) {
	log := logger.FromContext(ctx)

	inquiry := models.Inquiry{
		UserID:     userID,
		PropertyID: propertyID,
		Message:    message,
		Reference:  newInquiryReference(),
		Status:     models.InquiryStatusOpen,
	}

	err := d.client.From(inquiry.TableName()).
		WithJar(jar).
		Insert(ctx, map[string]any{
			"user_id":     inquiry.UserID,
			"property_id": inquiry.PropertyID,
			"message":     inquiry.Message,
			"reference":   inquiry.Reference,
			"status":      inquiry.Status,
		})
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("create inquiry: %w", err)
	}

	log.Info().Str("reference", inquiry.Reference).Str("property_id", propertyID).Msg("inquiry filed")
	return inquiry, nil
}

// ─────────────────────────────────────────────
// Saved searches
// ─────────────────────────────────────────────

func (d *dashboardService) SavedSearches(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch

	err := d.client.From(models.SavedSearch{}.TableName()).
		WithJar(jar).
		Eq("user_id", userID).
		OrderBy("created_at", true).
		All(ctx, &searches)
	if err != nil {
		return nil, fmt.Errorf("list saved searches: %w", err)
	}

	return searches, nil
}

func (d *dashboardService) CreateSavedSearch(ctx context.Context, jar *backend.CookieJar, userID, name string, criteria json.RawMessage) error {
	if len(criteria) == 0 {
		criteria = json.RawMessage(`{}`)
	}

	err := d.client.From(models.SavedSearch{}.TableName()).
		WithJar(jar).
		Insert(ctx, map[string]any{
			"user_id":  userID,
			"name":     name,
			"criteria": criteria,
		})
	if err != nil {
		return fmt.Errorf("create saved search: %w", err)
	}

	return nil
}

func (d *dashboardService) DeleteSavedSearch(ctx context.Context, jar *backend.CookieJar, userID, searchID string) error {
	err := d.client.From(models.SavedSearch{}.TableName()).
		WithJar(jar).
		Eq("user_id", userID).
		Eq("id", searchID).
		Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete saved search: %w", err)
	}

	return nil
}

// ─────────────────────────────────────────────
// Webinars
// ─────────────────────────────────────────────

func (d *dashboardService) Webinars(ctx context.Context, jar *backend.CookieJar) ([]models.Webinar, error) {
	var webinars []models.Webinar

	err := d.client.From(models.Webinar{}.TableName()).
		WithJar(jar).
		OrderBy("starts_at", false).
		All(ctx, &webinars)
	if err != nil {
		return nil, fmt.Errorf("list webinars: %w", err)
	}

	return webinars, nil
}

// RegisterForWebinar signs the user up. Double registration is a no-op.
func (d *dashboardService) RegisterForWebinar(ctx context.Context, jar *backend.CookieJar, userID, webinarID string) error {
	err := d.client.From(models.WebinarRegistration{}.TableName()).
		WithJar(jar).
		InsertIgnoreDuplicates(ctx, map[string]any{
			"user_id":    userID,
			"webinar_id": webinarID,
		})
	if err != nil {
		return fmt.Errorf("register for webinar: %w", err)
	}

	return nil
}

// ─────────────────────────────────────────────
// Concierge tickets
// ─────────────────────────────────────────────

func (d *dashboardService) ConciergeTickets(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.ConciergeTicket, error) {
	var tickets []models.ConciergeTicket

	err := d.client.From(models.ConciergeTicket{}.TableName()).
		WithJar(jar).
		Eq("user_id", userID).
		OrderBy("created_at", true).
		All(ctx, &tickets)
	if err != nil {
		return nil, fmt.Errorf("list concierge tickets: %w", err)
	}

	return tickets, nil
}

func (d *dashboardService) CreateConciergeTicket(ctx context.Context, jar *backend.CookieJar, userID, subject, body string) error {
	err := d.client.From(models.ConciergeTicket{}.TableName()).
		WithJar(jar).
		Insert(ctx, map[string]any{
			"user_id": userID,
			"subject": subject,
			"body":    body,
			"status":  models.TicketStatusOpen,
		})
	if err != nil {
		return fmt.Errorf("create concierge ticket: %w", err)
	}

	return nil
}

// CloseConciergeTicket marks the ticket as closed. The user-id filter
// keeps the update scoped to the caller's own rows.
func (d *dashboardService) CloseConciergeTicket(ctx context.Context, jar *backend.CookieJar, userID, ticketID string) error {
	err := d.client.From(models.ConciergeTicket{}.TableName()).
		WithJar(jar).
		Eq("user_id", userID).
		Eq("id", ticketID).
		Update(ctx, map[string]any{"status": models.TicketStatusClosed})
	if err != nil {
		return fmt.Errorf("close concierge ticket: %w", err)
	}

	return nil
}

// ─────────────────────────────────────────────
// Documents
// ─────────────────────────────────────────────

func (d *dashboardService) Documents(ctx context.Context, jar *backend.CookieJar, userID string) ([]models.Document, error) {
	var documents []models.Document

	err := d.client.From(models.Document{}.TableName()).
		WithJar(jar).
		Eq("user_id", userID).
		OrderBy("created_at", true).
		All(ctx, &documents)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return documents, nil
}

// UploadDocument stores the blob first, then the metadata row; a
// metadata failure leaves an orphan blob rather than a dangling row.
func (d *dashboardService) UploadDocument(ctx context.Context, jar *backend.CookieJar, userID, fileName, contentType string, data []byte) (models.Document, error) {
	log := logger.FromContext(ctx)

	document := models.Document{
		UserID:      userID,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		StorageKey:  blob.NewStorageKey(userID),
	}

	if err := d.client.UploadObject(ctx, jar, document.StorageKey, contentType, data); err != nil {
		return models.Document{}, fmt.Errorf("upload document blob: %w", err)
	}

	err := d.client.From(document.TableName()).
		WithJar(jar).
		Insert(ctx, map[string]any{
			"user_id":      document.UserID,
			"file_name":    document.FileName,
			"content_type": document.ContentType,
			"size_bytes":   document.SizeBytes,
			"storage_key":  document.StorageKey,
		})
	if err != nil {
		return models.Document{}, fmt.Errorf("record document metadata: %w", err)
	}

	log.Info().Str("file_name", fileName).Str("storage_key", document.StorageKey).Msg("document uploaded")
	return document, nil
}

// DownloadDocument fetches the metadata row, verifies ownership and
// streams the blob back.
func (d *dashboardService) DownloadDocument(ctx context.Context, jar *backend.CookieJar, userID, documentID string) ([]byte, string, error) {
	var document models.Document

	err := d.client.From(document.TableName()).
		WithJar(jar).
		Eq("id", documentID).
		Single(ctx, &document)
	if err != nil {
		return nil, "", fmt.Errorf("find document: %w", err)
	}

	if document.UserID != userID {
		return nil, "", ErrNotOwned
	}

	data, contentType, err := d.client.DownloadObject(ctx, jar, document.StorageKey)
	if err != nil {
		return nil, "", fmt.Errorf("download document blob: %w", err)
	}
	if contentType == "" {
		contentType = document.ContentType
	}

	return data, contentType, nil
}

// newInquiryReference returns a short code like "INQ-48C2PT".
func newInquiryReference() string {
	const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	code := make([]byte, 6)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			// crypto/rand failing means the platform is broken; fall
			// back to a fixed symbol rather than panic.
			code[i] = 'X'
			continue
		}
		code[i] = alphabet[n.Int64()]
	}

	return "INQ-" + string(code)
}
