package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mvolkhin/notelock/internal/config"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

// httpRemoteStore is the HTTP/REST implementation of [RemoteStore] built on
// resty. The bearer token and the user id derived from it are guarded by a
// mutex; the sync job touches the adapter from its own goroutine.
type httpRemoteStore struct {
	client *resty.Client
	logger *logger.Logger

	mu     sync.RWMutex
	token  string
	userID string
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(cfg config.ClientAdapter, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpRemoteStore{client: cli, logger: log}, nil
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

// SetToken implements [RemoteStore]. It stores token (whitespace-trimmed)
// and re-derives the user id from its subject claim.
func (h *httpRemoteStore) SetToken(token string) {
	token = strings.TrimSpace(token)
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		userID = ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.userID = userID
}

// Token implements [RemoteStore].
func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// UserID implements [RemoteStore].
func (h *httpRemoteStore) UserID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.userID
}

// Register implements [RemoteStore]. It POSTs the credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpRemoteStore) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, transportError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Email: user.Email}, nil
}

// Login implements [RemoteStore]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpRemoteStore) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, transportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

// GetVaultSalt implements [RemoteStore] via GET /api/vault/salt.
func (h *httpRemoteStore) GetVaultSalt(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault/salt")
	if err != nil {
		return "", transportError("get vault salt request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body struct {
		Salt string `json:"salt"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode vault salt response: %w", err)
	}

	return body.Salt, nil
}

// PutVaultSalt implements [RemoteStore] via PUT /api/vault/salt. The server
// overwrites any already-published salt (last writer wins), which is what
// lets a device promote its legacy salt to canonical; the returned value is
// authoritative.
func (h *httpRemoteStore) PutVaultSalt(ctx context.Context, salt string) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"salt": salt}).
		Put("/api/vault/salt")
	if err != nil {
		return "", transportError("put vault salt request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body struct {
		Salt string `json:"salt"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode vault salt response: %w", err)
	}

	return body.Salt, nil
}

// ListNotes implements [RemoteStore] via GET /api/notes.
func (h *httpRemoteStore) ListNotes(ctx context.Context) ([]models.RemoteNoteRow, error) {
	return h.getNoteRows(ctx, "/api/notes", "list notes request")
}

// ListRecentNotes implements [RemoteStore] via GET /api/notes/recent.
func (h *httpRemoteStore) ListRecentNotes(ctx context.Context, limit int) ([]models.RemoteNoteRow, error) {
	path := "/api/notes/recent?limit=" + strconv.Itoa(limit)
	return h.getNoteRows(ctx, path, "list recent notes request")
}

func (h *httpRemoteStore) getNoteRows(ctx context.Context, path, op string) ([]models.RemoteNoteRow, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.RemoteNoteRow
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return rows, nil
}

// GetNotesByIDs implements [RemoteStore] via POST /api/notes/batch.
func (h *httpRemoteStore) GetNotesByIDs(ctx context.Context, ids []string) ([]models.RemoteNoteRow, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]string{"ids": ids}).
		Post("/api/notes/batch")
	if err != nil {
		return nil, transportError("get notes by ids request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.RemoteNoteRow
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return rows, nil
}

// UpsertNote implements [RemoteStore] via PUT /api/notes/{id}.
func (h *httpRemoteStore) UpsertNote(ctx context.Context, row models.RemoteNoteRow) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(row).
		Put("/api/notes/" + url.PathEscape(row.ID))
	if err != nil {
		return transportError("upsert note request", err)
	}

	return mapHTTPError(resp)
}

// DeleteNote implements [RemoteStore] via DELETE /api/notes/{id}.
func (h *httpRemoteStore) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return transportError("delete note request", err)
	}

	return mapHTTPError(resp)
}

// GetProfile implements [RemoteStore] via GET /api/profiles/me.
func (h *httpRemoteStore) GetProfile(ctx context.Context) (models.ProfileRow, error) {
	resp, err := h.authedRequest(ctx).Get("/api/profiles/me")
	if err != nil {
		return models.ProfileRow{}, transportError("get profile request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileRow{}, err
	}

	var profile models.ProfileRow
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.ProfileRow{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

// PutProfile implements [RemoteStore] via PUT /api/profiles/me.
func (h *httpRemoteStore) PutProfile(ctx context.Context, profile models.ProfileRow) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Put("/api/profiles/me")
	if err != nil {
		return transportError("put profile request", err)
	}

	return mapHTTPError(resp)
}

// LookupProfileByEmail implements [RemoteStore] via POST /api/profiles/lookup.
func (h *httpRemoteStore) LookupProfileByEmail(ctx context.Context, email string) (models.ProfileRow, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/api/profiles/lookup")
	if err != nil {
		return models.ProfileRow{}, transportError("lookup profile request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileRow{}, err
	}

	var profile models.ProfileRow
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.ProfileRow{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

// CreateGroup implements [RemoteStore] via POST /api/groups.
func (h *httpRemoteStore) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": name}).
		Post("/api/groups")
	if err != nil {
		return models.Group{}, transportError("create group request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Group{}, err
	}

	var group models.Group
	if err = json.Unmarshal(resp.Body(), &group); err != nil {
		return models.Group{}, fmt.Errorf("decode group response: %w", err)
	}

	return group, nil
}

// AddGroupMember implements [RemoteStore] via POST /api/groups/{id}/members.
func (h *httpRemoteStore) AddGroupMember(ctx context.Context, groupID, userID, role string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"user_id": userID, "role": role}).
		Post("/api/groups/" + url.PathEscape(groupID) + "/members")
	if err != nil {
		return transportError("add group member request", err)
	}

	return mapHTTPError(resp)
}

// RemoveGroupMember implements [RemoteStore] via
// DELETE /api/groups/{id}/members/{userID}.
func (h *httpRemoteStore) RemoveGroupMember(ctx context.Context, groupID, userID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/groups/" + url.PathEscape(groupID) + "/members/" + url.PathEscape(userID))
	if err != nil {
		return transportError("remove group member request", err)
	}

	return mapHTTPError(resp)
}

// ListGroupMemberKeys implements [RemoteStore] via
// GET /api/groups/{id}/member-keys.
func (h *httpRemoteStore) ListGroupMemberKeys(ctx context.Context, groupID string) ([]models.GroupMemberKey, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/groups/" + url.PathEscape(groupID) + "/member-keys")
	if err != nil {
		return nil, transportError("list group member keys request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var keys []models.GroupMemberKey
	if err = json.Unmarshal(resp.Body(), &keys); err != nil {
		return nil, fmt.Errorf("decode member keys response: %w", err)
	}

	return keys, nil
}

// ListGroupShares implements [RemoteStore] via GET /api/groups/{id}/shares.
func (h *httpRemoteStore) ListGroupShares(ctx context.Context, groupID string) ([]models.NoteShareRow, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/groups/" + url.PathEscape(groupID) + "/shares")
	if err != nil {
		return nil, transportError("list group shares request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var shares []models.NoteShareRow
	if err = json.Unmarshal(resp.Body(), &shares); err != nil {
		return nil, fmt.Errorf("decode group shares response: %w", err)
	}

	return shares, nil
}

// ListGroupKeys implements [RemoteStore] via GET /api/group-keys.
func (h *httpRemoteStore) ListGroupKeys(ctx context.Context) ([]models.GroupKeyRow, error) {
	resp, err := h.authedRequest(ctx).Get("/api/group-keys")
	if err != nil {
		return nil, transportError("list group keys request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.GroupKeyRow
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode group keys response: %w", err)
	}

	return rows, nil
}

// UpsertGroupKeys implements [RemoteStore] via POST /api/group-keys.
func (h *httpRemoteStore) UpsertGroupKeys(ctx context.Context, rows []models.GroupKeyRow) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rows).
		Post("/api/group-keys")
	if err != nil {
		return transportError("upsert group keys request", err)
	}

	return mapHTTPError(resp)
}

// ListShares implements [RemoteStore] via GET /api/shares.
func (h *httpRemoteStore) ListShares(ctx context.Context) ([]models.NoteShareRow, error) {
	resp, err := h.authedRequest(ctx).Get("/api/shares")
	if err != nil {
		return nil, transportError("list shares request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var shares []models.NoteShareRow
	if err = json.Unmarshal(resp.Body(), &shares); err != nil {
		return nil, fmt.Errorf("decode shares response: %w", err)
	}

	return shares, nil
}

// UpsertShare implements [RemoteStore] via PUT /api/shares.
func (h *httpRemoteStore) UpsertShare(ctx context.Context, share models.NoteShareRow) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(share).
		Put("/api/shares")
	if err != nil {
		return transportError("upsert share request", err)
	}

	return mapHTTPError(resp)
}

// DeleteShare implements [RemoteStore] via DELETE /api/shares.
func (h *httpRemoteStore) DeleteShare(ctx context.Context, noteID, sharedWithType, sharedWithID string) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"note_id":          noteID,
			"shared_with_type": sharedWithType,
			"shared_with_id":   sharedWithID,
		}).
		Delete("/api/shares")
	if err != nil {
		return transportError("delete share request", err)
	}

	return mapHTTPError(resp)
}

// RotateGroupKeys implements [RemoteStore] via
// POST /api/groups/{id}/rotate.
func (h *httpRemoteStore) RotateGroupKeys(ctx context.Context, req models.RotateGroupKeysRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/groups/" + url.PathEscape(req.GroupID) + "/rotate")
	if err != nil {
		return transportError("rotate group keys request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject claim")
	}

	return sub, nil
}
