package links

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tilkit/til/internal/storage"
)

// cacheFile stores fetched page metadata under the journal root so
// repeated `til link` calls for the same URL stay offline.
const cacheFile = ".til_link_cache.json"

const (
	cacheTTL     = 24 * time.Hour
	fetchTimeout = 3 * time.Second
	maxBodyBytes = 512 << 10
	userAgent    = "til-link-preview/1.0"
)

var (
	ogTitleRe = regexp.MustCompile(`(?is)<meta[^>]+(?:property|name)=["']og:title["'][^>]+content=["']([^"']+)["']`)
	ogDescRe  = regexp.MustCompile(`(?is)<meta[^>]+(?:property|name)=["']og:description["'][^>]+content=["']([^"']+)["']`)
	descRe    = regexp.MustCompile(`(?is)<meta[^>]+name=["']description["'][^>]+content=["']([^"']+)["']`)
	titleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
)

// Meta is the page metadata used to enrich a link line.
type Meta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type cacheRecord struct {
	Meta
	FetchedAt time.Time `json:"fetched_at"`
}

// Fetcher resolves page titles and descriptions, best effort, with an
// on-disk cache. Every failure path degrades to an empty Meta so the
// link is still recorded with its bare URL.
type Fetcher struct {
	store  storage.Provider
	client *http.Client
}

// NewFetcher returns a fetcher caching through the given provider.
// client may be nil for a default with a short timeout.
func NewFetcher(store storage.Provider, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Fetcher{store: store, client: client}
}

// Fetch returns metadata for url, consulting the cache first.
func (f *Fetcher) Fetch(ctx context.Context, url string) Meta {
	cache := f.loadCache()
	if rec, ok := cache[url]; ok && time.Since(rec.FetchedAt) < cacheTTL {
		return rec.Meta
	}

	meta, err := f.scrape(ctx, url)
	if err != nil {
		return Meta{}
	}

	cache[url] = cacheRecord{Meta: meta, FetchedAt: time.Now()}
	f.saveCache(cache)
	return meta
}

func (f *Fetcher) scrape(ctx context.Context, url string) (Meta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Meta{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return Meta{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Meta{}, fmt.Errorf("links: fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Meta{}, err
	}
	return extractMeta(string(body)), nil
}

// extractMeta pulls og:title/og:description with <title> and plain
// description as fallbacks.
func extractMeta(html string) Meta {
	var m Meta
	if match := ogTitleRe.FindStringSubmatch(html); match != nil {
		m.Title = clean(match[1])
	} else if match := titleRe.FindStringSubmatch(html); match != nil {
		m.Title = clean(match[1])
	}
	if match := ogDescRe.FindStringSubmatch(html); match != nil {
		m.Description = clean(match[1])
	} else if match := descRe.FindStringSubmatch(html); match != nil {
		m.Description = clean(match[1])
	}
	return m
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (f *Fetcher) loadCache() map[string]cacheRecord {
	out := make(map[string]cacheRecord)
	data, err := f.store.Read(cacheFile)
	if err != nil {
		return out
	}
	// A corrupt cache is discarded, not an error.
	_ = json.Unmarshal(data, &out)
	return out
}

func (f *Fetcher) saveCache(cache map[string]cacheRecord) {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return
	}
	_ = f.store.Write(cacheFile, data)
}
