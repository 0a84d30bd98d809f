package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/vidscope/vidscope/pkg/domain"
)

// provider status codes signaling throttling or anti-bot interception.
// These are routine under heavy polling and not worth surfacing as errors.
const (
	codeThrottled   = -352
	codeRiskControl = -412
)

// entryTypeVideo marks feed entries the pipeline cares about
const entryTypeVideo = "video"

// Adapter turns one creator's upstream feed into normalized remote items.
// All failure modes resolve to a degraded Result, never an error: a single
// bad creator must not stop the batch.
type Adapter struct {
	client            Getter
	baseURL           string
	userAgent         string
	referer           string
	origin            string
	defaultCredential string
}

// Getter abstracts the resilient fetch client
type Getter interface {
	Get(ctx context.Context, reqURL, label string, header http.Header) (*Response, error)
}

// AdapterConfig holds provider-specific settings for the feed adapter
type AdapterConfig struct {
	BaseURL           string
	UserAgent         string
	Referer           string
	Origin            string
	DefaultCredential string
}

// Result is the outcome of fetching one source's feed. Degraded carries
// the reason when the provider response was unusable; Items is empty then.
// An empty Items with an empty Degraded means the creator has nothing new.
type Result struct {
	Items    []domain.RemoteItem
	Degraded string
}

// IsDegraded reports whether the fetch resolved to a degraded outcome
func (r Result) IsDegraded() bool { return r.Degraded != "" }

// envelope is the provider's response wrapper
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Entries []feedEntry `json:"entries"`
	} `json:"data"`
}

// feedEntry is one entry of the provider feed, video payload nested
type feedEntry struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Video struct {
		Key         string `json:"key"`
		Title       string `json:"title"`
		Cover       string `json:"cover"`
		Description string `json:"description"`
		Duration    string `json:"duration"`
		PublishTS   int64  `json:"publish_ts"`
	} `json:"video"`
}

// NewAdapter creates a feed adapter on top of the resilient fetch client
func NewAdapter(client Getter, cfg AdapterConfig) *Adapter {
	return &Adapter{
		client:            client,
		baseURL:           cfg.BaseURL,
		userAgent:         cfg.UserAgent,
		referer:           cfg.Referer,
		origin:            cfg.Origin,
		defaultCredential: cfg.DefaultCredential,
	}
}

// SourceItems fetches and normalizes the feed of a single creator.
// The credential falls back to the adapter's default when empty.
func (a *Adapter) SourceItems(ctx context.Context, src domain.Source, credential string) Result {
	reqURL, err := a.sourceURL(src)
	if err != nil {
		lgr.Printf("[WARN] bad feed URL for source %s: %v", src.Name, err)
		return Result{Degraded: fmt.Sprintf("bad feed url: %v", err)}
	}

	resp, err := a.client.Get(ctx, reqURL, "feed "+src.Name, a.headers(credential))
	if err != nil {
		lgr.Printf("[WARN] feed fetch failed for source %s: %v", src.Name, err)
		return Result{Degraded: fmt.Sprintf("fetch failed: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		lgr.Printf("[WARN] unexpected status %d for source %s", resp.StatusCode, src.Name)
		return Result{Degraded: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		lgr.Printf("[WARN] malformed feed response for source %s: %v", src.Name, err)
		return Result{Degraded: fmt.Sprintf("malformed response: %v", err)}
	}

	switch {
	case env.Code == codeThrottled || env.Code == codeRiskControl:
		lgr.Printf("[INFO] source %s throttled by provider (code %d)", src.Name, env.Code)
		return Result{Degraded: fmt.Sprintf("throttled (code %d)", env.Code)}
	case env.Code != 0:
		lgr.Printf("[WARN] provider error for source %s: code %d, %s", src.Name, env.Code, env.Message)
		return Result{Degraded: fmt.Sprintf("provider code %d: %s", env.Code, env.Message)}
	}

	items := make([]domain.RemoteItem, 0, len(env.Data.Entries))
	for _, e := range env.Data.Entries {
		if e.Type != entryTypeVideo {
			continue
		}

		item := domain.RemoteItem{
			ID:          e.ID,
			Key:         e.Video.Key,
			Title:       e.Video.Title,
			Cover:       absoluteCover(e.Video.Cover),
			Description: e.Video.Description,
			Duration:    ParseDuration(e.Video.Duration),
			SourceID:    src.ID,
		}
		if e.Video.PublishTS > 0 {
			item.Published = time.Unix(e.Video.PublishTS, 0)
		} else {
			item.Published = time.Now()
		}

		items = append(items, item)
	}

	return Result{Items: items}
}

// sourceURL builds the per-creator feed endpoint URL
func (a *Adapter) sourceURL(src domain.Source) (string, error) {
	u, err := url.Parse(a.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("uid", strconv.FormatInt(src.UpstreamID, 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// headers builds the provider-required request headers
func (a *Adapter) headers(credential string) http.Header {
	h := http.Header{}
	h.Set("User-Agent", a.userAgent)
	if a.referer != "" {
		h.Set("Referer", a.referer)
	}
	if a.origin != "" {
		h.Set("Origin", a.origin)
	}
	if credential == "" {
		credential = a.defaultCredential
	}
	if credential != "" {
		h.Set("Cookie", credential)
	}
	addBrowserHeaders(h)
	return h
}

// ParseDuration converts a human duration string ("MM:SS" or "H:MM:SS")
// into seconds. Bare numbers pass through unchanged, anything missing or
// unparseable resolves to 0.
func ParseDuration(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// absoluteCover resolves protocol-relative cover URLs to https
func absoluteCover(cover string) string {
	if strings.HasPrefix(cover, "//") {
		return "https:" + cover
	}
	return cover
}
