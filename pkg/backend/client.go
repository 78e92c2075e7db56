// Package backend implements types.Backend over the manager backend
// service's local HTTP API. The backend owns every filesystem concern:
// scanning the Custom Scenery folder, parsing and writing
// scenery_packs.ini, and computing the raw overlap graphs. This client
// only moves JSON.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skysort/sceneryctl/pkg/config"
	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/logging"
	"github.com/skysort/sceneryctl/pkg/types"
)

// Client talks to the manager backend service.
type Client struct {
	base   string
	http   *http.Client
	logger zerolog.Logger
}

// NewClient creates a backend client from configuration.
func NewClient(cfg config.Backend) *Client {
	return &Client{
		base: strings.TrimRight(cfg.Address, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
		logger: logging.GetLogger("backend"),
	}
}

// wireEntry is the JSON shape of an entry in the index payload.
type wireEntry struct {
	FolderName       string   `json:"folderName"`
	Category         string   `json:"category"`
	Enabled          bool     `json:"enabled"`
	SortOrder        int      `json:"sortOrder"`
	Continent        string   `json:"continent,omitempty"`
	MissingLibraries []string `json:"missingLibraries,omitempty"`
}

type wireIndex struct {
	Entries         []wireEntry         `json:"entries"`
	TileOverlaps    map[string][]string `json:"tileOverlaps"`
	AirportOverlaps map[string][]string `json:"airportOverlaps"`
	NeedsSync       bool                `json:"needsSync"`
}

// wireError is the structured error payload the backend returns with
// non-2xx responses. Code is machine-readable and is preserved so the
// caller can localize instead of showing a raw string.
type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LoadIndex implements types.Backend.
func (c *Client) LoadIndex(ctx context.Context) (*types.Index, error) {
	var payload wireIndex
	if err := c.do(ctx, http.MethodGet, "/api/scenery/index", nil, &payload); err != nil {
		return nil, err
	}

	idx := &types.Index{
		TileOverlaps:    payload.TileOverlaps,
		AirportOverlaps: payload.AirportOverlaps,
		NeedsSync:       payload.NeedsSync,
	}
	for _, w := range payload.Entries {
		e, err := types.NewEntry(w.FolderName, types.ParseCategory(w.Category), w.Enabled, w.SortOrder)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIndexLoad, "backend sent malformed entry %q", w.FolderName)
		}
		e.Continent = w.Continent
		e.MissingLibraries = w.MissingLibraries
		idx.Entries = append(idx.Entries, e)
	}

	c.logger.Debug().Int("entries", len(idx.Entries)).Bool("needsSync", idx.NeedsSync).Msg("Index fetched")
	return idx, nil
}

// ApplyOrder implements types.Backend.
func (c *Client) ApplyOrder(ctx context.Context, updates []types.Update) error {
	body := struct {
		Updates []types.Update `json:"updates"`
	}{Updates: updates}
	return c.do(ctx, http.MethodPost, "/api/scenery/order", body, nil)
}

// UpdateCategory implements types.Backend.
func (c *Client) UpdateCategory(ctx context.Context, folderName string, category types.Category) error {
	body := struct {
		FolderName string `json:"folderName"`
		Category   string `json:"category"`
	}{FolderName: folderName, Category: string(category)}
	return c.do(ctx, http.MethodPost, "/api/scenery/category", body, nil)
}

// DeleteEntry implements types.Backend.
func (c *Client) DeleteEntry(ctx context.Context, folderName string) error {
	path := "/api/scenery/packs/" + url.PathEscape(folderName)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, errors.ErrBackendUnavailable, "backend not reachable at %s", c.base)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, errors.ErrBackendFailure, "failed to decode %s response", path)
		}
	}
	return nil
}

// decodeError maps a non-2xx response to a SceneryError. Structured
// payloads keep their backend code; anything else becomes an opaque
// BACKEND_FAILURE.
func (c *Client) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var we wireError
	if err := json.Unmarshal(raw, &we); err == nil && we.Code != "" {
		return errors.New(errors.ErrorCode(we.Code), we.Message)
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = resp.Status
	}
	return errors.Newf(errors.ErrBackendFailure, "backend returned %s: %s", resp.Status, msg).
		WithDetail("status", resp.StatusCode)
}

// Ping checks whether the backend is reachable. Used by commands to
// fail fast with a friendly message before starting a session.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/health", nil)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to build request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, errors.ErrBackendUnavailable, "backend not reachable at %s", c.base)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrBackendUnavailable, "backend health check returned %s", resp.Status)
	}
	return nil
}

var _ types.Backend = (*Client)(nil)
