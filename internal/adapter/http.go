package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/studypartner/go-study-partner/internal/config"
	"github.com/studypartner/go-study-partner/internal/logger"
	"github.com/studypartner/go-study-partner/internal/utils"
	"github.com/studypartner/go-study-partner/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Every outbound request carries a fresh X-Request-Id so server logs
// can be correlated with client activity.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	requestIDs := utils.NewUUIDGenerator()

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-Id", requestIDs.Generate())
			return nil
		})

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
// Safe for concurrent use: UI commands run in separate goroutines.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.SetToken("")
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/auth/register. On success the bearer token from the response body
// is stored via SetToken. Returns an error if the request fails or the server
// returns a non-2xx status.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token from the response body is
// stored via SetToken and the authenticated user's profile is returned
// alongside it.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// CurrentUser implements [ServerAdapter]. It GETs /api/auth/me and returns the
// profile of the token's owner. Requires a valid bearer token.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode current user response: %w", err)
	}

	return user, nil
}

// ListNotes implements [ServerAdapter]. It GETs /api/notes and decodes the
// response into a slice of [models.Note]. Requires a valid bearer token.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return notes, nil
}

// GetNote implements [ServerAdapter]. It GETs /api/notes/{id}. Returns
// [ErrNotFound] (wrapped) if the note does not exist or belongs to another
// user. Requires a valid bearer token.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/notes/%d", noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode note response: %w", err)
	}

	return note, nil
}

// UploadNote implements [ServerAdapter]. It POSTs the base64-encoded document
// to POST /api/notes/upload and returns the note created from it, including
// the text the backend extracted. Requires a valid bearer token.
func (h *httpServerAdapter) UploadNote(ctx context.Context, req models.UploadRequest) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&note).
		Post("/api/notes/upload")
	if err != nil {
		return models.Note{}, fmt.Errorf("upload note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote implements [ServerAdapter]. It sends DELETE /api/notes/{id}.
// Requires a valid bearer token.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/notes/%d", noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// SearchNotes implements [ServerAdapter]. It POSTs the query to
// POST /api/notes/search and decodes the ranked results. Requires a valid
// bearer token.
func (h *httpServerAdapter) SearchNotes(ctx context.Context, req models.SearchRequest) ([]models.SearchResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/notes/search")
	if err != nil {
		return nil, fmt.Errorf("search notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var results []models.SearchResult
	if err = json.Unmarshal(resp.Body(), &results); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return results, nil
}

// GetSummary implements [ServerAdapter].
func (h *httpServerAdapter) GetSummary(ctx context.Context, noteID int64) (models.Summary, error) {
	var summary models.Summary
	if err := h.getStudyContent(ctx, noteID, "summary", &summary); err != nil {
		return models.Summary{}, err
	}
	return summary, nil
}

// GenerateSummary implements [ServerAdapter]. The call blocks until the
// backend finishes generating, which can take a while for large notes, so the
// context deadline is the only cancellation point.
func (h *httpServerAdapter) GenerateSummary(ctx context.Context, noteID int64) (models.Summary, error) {
	var summary models.Summary
	if err := h.generateStudyContent(ctx, noteID, "summary", &summary); err != nil {
		return models.Summary{}, err
	}
	return summary, nil
}

// GetFlashcards implements [ServerAdapter].
func (h *httpServerAdapter) GetFlashcards(ctx context.Context, noteID int64) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	if err := h.getStudyContent(ctx, noteID, "flashcards", &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GenerateFlashcards implements [ServerAdapter].
func (h *httpServerAdapter) GenerateFlashcards(ctx context.Context, noteID int64) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	if err := h.generateStudyContent(ctx, noteID, "flashcards", &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetQuiz implements [ServerAdapter].
func (h *httpServerAdapter) GetQuiz(ctx context.Context, noteID int64) ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	if err := h.getStudyContent(ctx, noteID, "quiz", &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// GenerateQuiz implements [ServerAdapter].
func (h *httpServerAdapter) GenerateQuiz(ctx context.Context, noteID int64) ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	if err := h.generateStudyContent(ctx, noteID, "quiz", &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// CreateStudySession implements [ServerAdapter]. It POSTs the session start to
// POST /api/study/sessions. Requires a valid bearer token.
func (h *httpServerAdapter) CreateStudySession(ctx context.Context, req models.CreateStudySessionRequest) (models.StudySession, error) {
	var session models.StudySession

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&session).
		Post("/api/study/sessions")
	if err != nil {
		return models.StudySession{}, fmt.Errorf("create study session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StudySession{}, err
	}

	return session, nil
}

// UpdateStudySession implements [ServerAdapter]. It PUTs the completion state
// to PUT /api/study/sessions/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateStudySession(ctx context.Context, sessionID int64, req models.UpdateStudySessionRequest) (models.StudySession, error) {
	var session models.StudySession

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&session).
		Put(fmt.Sprintf("/api/study/sessions/%d", sessionID))
	if err != nil {
		return models.StudySession{}, fmt.Errorf("update study session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StudySession{}, err
	}

	return session, nil
}

// getStudyContent GETs /api/study/notes/{id}/{kind} and decodes the body into
// out. All three study-content kinds share the same URL shape and error
// mapping, only the payload type differs.
func (h *httpServerAdapter) getStudyContent(ctx context.Context, noteID int64, kind string, out any) error {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/study/notes/%d/%s", noteID, kind))
	if err != nil {
		return fmt.Errorf("get %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", kind, err)
	}

	return nil
}

func (h *httpServerAdapter) generateStudyContent(ctx context.Context, noteID int64, kind string, out any) error {
	resp, err := h.authedRequest(ctx).Post(fmt.Sprintf("/api/study/notes/%d/%s", noteID, kind))
	if err != nil {
		return fmt.Errorf("generate %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode generated %s response: %w", kind, err)
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
