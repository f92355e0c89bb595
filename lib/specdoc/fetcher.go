package specdoc

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/standards-watch/activities/lib"
	"github.com/standards-watch/activities/lib/cache"
	"github.com/standards-watch/activities/lib/cache/remote"
	"golang.org/x/net/html"
)

// defaultMaxRedirects bounds the refetch loop when parsers keep pointing at
// more canonical locations.
const defaultMaxRedirects = 5

// Fetcher retrieves specification pages and resolves them to Data. The page
// store is optional; when present, fetched bodies are kept there keyed by
// canonical URL.
type Fetcher struct {
	httpClient   lib.HttpClient
	store        remote.Client
	maxRedirects int
}

// NewFetcher builds a Fetcher. maxRedirects caps the better-URL loop; values
// below 1 fall back to the default of 5.
func NewFetcher(httpClient lib.HttpClient, store remote.Client, maxRedirects int) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if maxRedirects < 1 {
		maxRedirects = defaultMaxRedirects
	}
	return &Fetcher{httpClient: httpClient, store: store, maxRedirects: maxRedirects}
}

// Resolve fetches rawURL, parses it with the parser for its organisation and
// follows any better URLs the parser reports.
func (f *Fetcher) Resolve(ctx context.Context, rawURL string) (Data, error) {
	parser, err := ParserFor(rawURL)
	if err != nil {
		return Data{}, err
	}

	current := rawURL
	for hop := 0; hop <= f.maxRedirects; hop++ {
		body, err := f.fetch(ctx, current)
		if err != nil {
			return Data{}, err
		}

		root, err := html.Parse(strings.NewReader(body))
		if err != nil {
			return Data{}, err
		}

		data, err := parser.Parse(root, current)
		if next, ok := BetterURL(err); ok {
			log.Debug().Str("url", next).Msg("trying better URL")
			current = next
			continue
		}
		if err != nil {
			return Data{}, err
		}
		return data, nil
	}
	return Data{}, fmt.Errorf("too many better URLs starting from %s", rawURL)
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (string, error) {
	key := CleanURL(rawURL)
	if f.store != nil {
		page, err := f.store.Get(key)
		if err != nil {
			// A broken cache shouldn't stop the fetch.
			log.Warn().Err(err).Str("url", rawURL).Msg("page cache get failed")
		} else if page != nil {
			return page.Body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching spec resulted in HTTP status %d", resp.StatusCode)
	}

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if f.store != nil {
		page := &cache.Page{URL: rawURL, Body: string(b), RetrievedAt: time.Now()}
		if err := f.store.Set(key, page); err != nil {
			log.Warn().Err(err).Str("url", rawURL).Msg("page cache set failed")
		}
	}
	return string(b), nil
}
