// Package podplay implements a client for the Podplay podcast directory API.
package podplay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the production Podplay API endpoint
	DefaultBaseURL = "https://api.podplay.com/v1"

	// DefaultUserAgent identifies this library to the API
	DefaultUserAgent = "podplay-go/1.0 (+https://github.com/killallgit/podplay-go)"

	// DefaultTimeout bounds a single request when the client owns the transport
	DefaultTimeout = 10 * time.Second

	defaultPageSize = 50
	maxEpisodePages = 99
)

// Config holds configuration for the Podplay client
type Config struct {
	BaseURL      string
	ImageBaseURL string
	Language     Language
	UserAgent    string
	Timeout      time.Duration

	// HTTPClient optionally supplies a caller-owned transport. The client
	// reuses it as-is and Close will not touch it. When nil, the client
	// constructs its own and releases it on Close.
	HTTPClient *http.Client

	// Transport sets the RoundTripper of a client-owned transport.
	// Ignored when HTTPClient is supplied.
	Transport http.RoundTripper
}

// Client handles communication with the Podplay API
type Client struct {
	httpClient   *http.Client
	ownsClient   bool
	baseURL      string
	imageBaseURL string
	language     Language
	userAgent    string

	// Category list is fetched once per client and reused.
	mu             sync.Mutex
	categories     []*Category
	flatCategories []*Category
}

// NewClient creates a new Podplay API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = LanguageEnglish
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	ownsClient := false
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		}
		ownsClient = true
	}

	return &Client{
		httpClient:   httpClient,
		ownsClient:   ownsClient,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		language:     cfg.Language,
		userAgent:    cfg.UserAgent,
	}
}

// Close releases the underlying transport if the client owns it. A transport
// supplied through Config.HTTPClient is left untouched.
func (c *Client) Close() {
	if c.ownsClient {
		c.httpClient.CloseIdleConnections()
	}
}

// endpointURL builds the full request URL for an API path
func (c *Client) endpointURL(uri string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.language, uri)
}

// get performs a GET request against an API path and decodes the JSON body
// into result
func (c *Client) get(ctx context.Context, uri string, params url.Values, result interface{}) error {
	fullURL := c.endpointURL(uri)
	if len(params) > 0 {
		fullURL = fullURL + "?" + params.Encode()
	}

	log.Printf("[DEBUG] podplay: GET %s", fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{URL: fullURL, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return &DecodeError{
			URL:    fullURL,
			Reason: fmt.Sprintf("unexpected content type %q", contentType),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: fullURL, Err: err}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &DecodeError{URL: fullURL, Reason: "invalid JSON body", Err: err}
	}

	return nil
}

// GetCategories fetches all podcast categories, nested into a tree by parent
// ID. The list is fetched once and reused for the lifetime of the client.
func (c *Client) GetCategories(ctx context.Context) ([]*Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.categories != nil {
		return c.categories, nil
	}

	var result categoryResults
	if err := c.get(ctx, "category", nil, &result); err != nil {
		return nil, err
	}
	if result.Results == nil {
		return nil, &DecodeError{URL: c.endpointURL("category"), Reason: `missing "results" list`}
	}

	c.flatCategories = result.Results
	c.categories = nestCategories(result.Results)
	return c.categories, nil
}

// ResolveCategoryIDs returns the categories matching the given ids
func (c *Client) ResolveCategoryIDs(ctx context.Context, ids []int) ([]*Category, error) {
	if _, err := c.GetCategories(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	flat := c.flatCategories
	c.mu.Unlock()

	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var matched []*Category
	for _, category := range flat {
		if want[category.ID] {
			matched = append(matched, category)
		}
	}
	return matched, nil
}

// GetPodcastsByCategory fetches the ranked top podcasts for a category.
// When originals is true only Podplay original shows are returned.
func (c *Client) GetPodcastsByCategory(ctx context.Context, categoryID int, originals bool) ([]*Podcast, error) {
	params := url.Values{}
	params.Set("category_id", strconv.Itoa(categoryID))
	params.Set("original", strconv.FormatBool(originals))

	var result podcastResults
	if err := c.get(ctx, "toplist", params, &result); err != nil {
		return nil, err
	}
	if result.Results == nil {
		return nil, &DecodeError{URL: c.endpointURL("toplist"), Reason: `missing "results" list`}
	}

	podcasts := result.Results
	for _, podcast := range podcasts {
		if err := c.processPodcast(ctx, podcast); err != nil {
			return nil, err
		}
	}
	return podcasts, nil
}

// GetPodcast fetches metadata for a single podcast
func (c *Client) GetPodcast(ctx context.Context, podcastID int) (*Podcast, error) {
	uri := fmt.Sprintf("podcast/%d", podcastID)

	var result podcastResponse
	if err := c.get(ctx, uri, nil, &result); err != nil {
		return nil, err
	}
	if result.Podcast == nil {
		return nil, &DecodeError{URL: c.endpointURL(uri), Reason: `missing "podcast" object`}
	}

	if err := c.processPodcast(ctx, result.Podcast); err != nil {
		return nil, err
	}
	return result.Podcast, nil
}

// GetPodcasts fetches metadata for several podcasts in one request
func (c *Client) GetPodcasts(ctx context.Context, podcastIDs []int) ([]*Podcast, error) {
	params := url.Values{}
	for _, id := range podcastIDs {
		params.Add("id", strconv.Itoa(id))
	}

	var result podcastResults
	if err := c.get(ctx, "podcast-by-id", params, &result); err != nil {
		return nil, err
	}
	if result.Results == nil {
		return nil, &DecodeError{URL: c.endpointURL("podcast-by-id"), Reason: `missing "results" list`}
	}

	podcasts := result.Results
	for _, podcast := range podcasts {
		if err := c.processPodcast(ctx, podcast); err != nil {
			return nil, err
		}
	}
	return podcasts, nil
}

// GetEpisode fetches a single episode by id
func (c *Client) GetEpisode(ctx context.Context, episodeID int) (*Episode, error) {
	uri := fmt.Sprintf("episode/%d", episodeID)

	var result episodeResponse
	if err := c.get(ctx, uri, nil, &result); err != nil {
		return nil, err
	}
	if result.Episode == nil {
		return nil, &DecodeError{URL: c.endpointURL(uri), Reason: `missing "episode" object`}
	}
	return result.Episode, nil
}

// GetEpisodes fetches several episodes in one request
func (c *Client) GetEpisodes(ctx context.Context, episodeIDs []int) ([]*Episode, error) {
	params := url.Values{}
	for _, id := range episodeIDs {
		params.Add("id", strconv.Itoa(id))
	}

	var result episodeResults
	if err := c.get(ctx, "episode-by-id", params, &result); err != nil {
		return nil, err
	}
	if result.Results == nil {
		return nil, &DecodeError{URL: c.endpointURL("episode-by-id"), Reason: `missing "results" list`}
	}
	return result.Results, nil
}

// EpisodePageOptions control pagination of GetPodcastEpisodes. The zero
// value fetches every page, 50 episodes at a time, newest first.
type EpisodePageOptions struct {
	Pages    int
	PageSize int
	Order    PagingOrder
}

// GetPodcastEpisodes fetches the episode list for a podcast, following the
// API's limit/offset pagination until the reported total is reached. A page
// failure after the first page returns the episodes gathered so far;
// pagination against the upstream API is best effort.
func (c *Client) GetPodcastEpisodes(ctx context.Context, podcastID int, opts *EpisodePageOptions) ([]*Episode, error) {
	var o EpisodePageOptions
	if opts != nil {
		o = *opts
	}
	if o.Pages <= 0 {
		o.Pages = maxEpisodePages
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.Order == "" {
		o.Order = OrderDescending
	}

	uri := fmt.Sprintf("podcast/%d/episode", podcastID)
	episodes := []*Episode{}
	offset := 0

	for page := 0; page < o.Pages; page++ {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(o.PageSize))
		params.Set("offset", strconv.Itoa(offset))
		params.Set("order", string(o.Order))

		var result episodeResults
		if err := c.get(ctx, uri, params, &result); err != nil {
			if offset == 0 {
				return nil, err
			}
			log.Printf("[WARN] podplay: fetching page at offset %d of %s failed: %v", offset, uri, err)
			break
		}

		if len(result.Results) == 0 {
			break
		}
		episodes = append(episodes, result.Results...)
		offset += len(result.Results)

		if offset >= result.Total {
			break
		}
	}

	return episodes, nil
}

// GetEpisodeIDs fetches the ids of every episode of a podcast
func (c *Client) GetEpisodeIDs(ctx context.Context, podcastID int) ([]int, error) {
	episodes, err := c.GetPodcastEpisodes(ctx, podcastID, nil)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(episodes))
	for _, episode := range episodes {
		ids = append(ids, episode.ID)
	}
	return ids, nil
}

// SearchPodcasts performs a free-text podcast search. A query with no
// matches returns an empty slice, not an error.
func (c *Client) SearchPodcasts(ctx context.Context, query string) ([]*Podcast, error) {
	params := url.Values{}
	params.Set("q", query)

	var result podcastResults
	if err := c.get(ctx, "search", params, &result); err != nil {
		return nil, err
	}
	if result.Results == nil {
		return nil, &DecodeError{URL: c.endpointURL("search"), Reason: `missing "results" list`}
	}

	podcasts := result.Results
	for _, podcast := range podcasts {
		if err := c.processPodcast(ctx, podcast); err != nil {
			return nil, err
		}
	}
	return podcasts, nil
}

// processPodcast fills in the derived fields of a freshly decoded podcast
func (c *Client) processPodcast(ctx context.Context, podcast *Podcast) error {
	podcast.Images = imageVariants(c.imageBaseURL, podcast.Image)

	if len(podcast.CategoryIDs) == 0 {
		return nil
	}
	categories, err := c.ResolveCategoryIDs(ctx, podcast.CategoryIDs)
	if err != nil {
		return err
	}
	podcast.Categories = categories
	return nil
}

// nestCategories attaches each category with a parent to its parent's
// Children list and returns the roots
func nestCategories(categories []*Category) []*Category {
	byID := make(map[int]*Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	var roots []*Category
	for _, category := range categories {
		if category.ParentID == nil {
			roots = append(roots, category)
			continue
		}
		parent, ok := byID[*category.ParentID]
		if !ok {
			// Orphaned entries still surface as roots rather than vanish.
			roots = append(roots, category)
			continue
		}
		parent.Children = append(parent.Children, category)
	}
	return roots
}
