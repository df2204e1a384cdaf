package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rick2303/Olanchito/internal/config"
)

// ObjectPrefix is the folder inside the bucket where every business image
// lives. Stored paths may or may not carry it already.
const ObjectPrefix = "business/"

// StorageClient talks to the hosted object-storage REST API (upload) and
// builds public URLs for stored objects (pure string work, no network).
type StorageClient struct {
	baseURL     string
	key         string
	bucket      string
	fallbackURL string
	httpClient  *http.Client
}

func NewStorageClient(cfg *config.Config) *StorageClient {
	return &StorageClient{
		baseURL:     strings.TrimRight(cfg.StorageURL, "/"),
		key:         cfg.StorageKey,
		bucket:      cfg.StorageBucket,
		fallbackURL: cfg.FallbackImageURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ObjectPath normalizes a stored path or bare filename so it carries the
// ObjectPrefix exactly once. Idempotent.
func ObjectPath(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, ObjectPrefix) {
		return p
	}
	return ObjectPrefix + p
}

// ResolveImage turns a possibly-absent stored image path into a publicly
// dereferenceable URL. Missing paths resolve to the configured fallback
// image; a path pointing at a deleted object is the CDN's problem.
func (c *StorageClient) ResolveImage(path *string) string {
	if path == nil || strings.TrimSpace(*path) == "" {
		return c.fallbackURL
	}
	return c.PublicURL(ObjectPath(*path))
}

// PublicURL builds the public object URL for an already-normalized path.
func (c *StorageClient) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, objectPath)
}

// Upload stores an object under objectPath with no-overwrite semantics:
// the path is already randomized upstream, so a collision means something
// is wrong and must fail loudly rather than replace existing content.
func (c *StorageClient) Upload(ctx context.Context, objectPath, contentType string, body io.Reader) error {
	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("storage: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage: unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage: upload %s: status %d: %s", objectPath, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
