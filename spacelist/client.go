package spacelist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/spacelist/go-spacelist/collection"
)

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "https://api.spacelist.dev/v1"

	// SiteURL is the public website root, used for page links.
	SiteURL = "https://spacelist.dev"

	defaultUserAgent = "go-spacelist"
	defaultTimeout   = 30 * time.Second

	// pageFetchConcurrency caps how many listing pages are fetched at once.
	pageFetchConcurrency = 4
)

// Config holds the credentials the client is constructed with. BotID and
// BotToken are required; UserToken is only needed for user-scoped calls.
type Config struct {
	BotID     string
	BotToken  string
	UserToken string
}

// Client talks to the list API on behalf of one bot. Its configuration is
// fixed at construction; concurrent calls are safe since nothing is
// mutated after NewClient returns.
type Client struct {
	baseURL    string
	botID      string
	botToken   string
	userToken  string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new list API client. Configuration is validated
// eagerly; no request is issued until the first operation.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg.BotID == "" {
		return nil, fmt.Errorf("%w: bot ID is required", ErrInvalidConfig)
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("%w: bot token is required", ErrInvalidConfig)
	}

	client := &Client{
		baseURL:    DefaultBaseURL,
		botID:      cfg.BotID,
		botToken:   cfg.BotToken,
		userToken:  cfg.UserToken,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	// Apply the timeout last so WithTimeout and WithHTTPClient compose in
	// any order, on a copy so an injected client is left untouched.
	if client.timeout > 0 {
		httpClient := *client.httpClient
		httpClient.Timeout = client.timeout
		client.httpClient = &httpClient
	}

	return client, nil
}

// BotID returns the bot ID the client was configured with.
func (c *Client) BotID() string {
	return c.botID
}

// doRequest performs one HTTP round trip and returns the response body.
// Non-2xx responses are mapped to *APIError.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, body any, authed bool) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", c.botToken)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making list API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, raw),
			Body:       string(raw),
		}
	}

	return raw, nil
}

// errorMessage pulls the API's message field out of an error body, falling
// back to the standard status text.
func errorMessage(statusCode int, raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(statusCode)
}

// GetStatistics retrieves the site-wide counters.
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	raw, err := c.doRequest(ctx, http.MethodGet, "/statistics", nil, nil, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	var stats Statistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("failed to parse statistics: %w", err)
	}
	return &stats, nil
}

// GetBots retrieves one page of the public bot listing. Pages are 1-based.
func (c *Client) GetBots(ctx context.Context, page int) (*collection.Page[string, Bot], error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	return c.getBotsPage(ctx, "/bots", page)
}

// GetAllBots walks every page of the public bot listing and merges the
// pages into one ordered map keyed by bot ID.
func (c *Client) GetAllBots(ctx context.Context) (*collection.Ordered[string, Bot], error) {
	all, pages, err := fetchAllPages(ctx, c.GetBots)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("pages", pages).
		Int("bots", all.Len()).
		Msg("Retrieved all bots")

	return all, nil
}

// GetBot retrieves a single bot by ID.
func (c *Client) GetBot(ctx context.Context, id string) (*Bot, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: bot ID", ErrInvalidID)
	}

	raw, err := c.doRequest(ctx, http.MethodGet, "/bots/"+url.PathEscape(id), nil, nil, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get bot %s: %w", id, err)
	}

	var bot Bot
	if err := json.Unmarshal(raw, &bot); err != nil {
		return nil, fmt.Errorf("failed to parse bot: %w", err)
	}
	return &bot, nil
}

// GetSelfBot retrieves the listing of the bot the client is configured for.
func (c *Client) GetSelfBot(ctx context.Context) (*Bot, error) {
	return c.GetBot(ctx, c.botID)
}

// GetUpvotes retrieves one page of the configured bot's upvotes, keyed by
// the voting user's ID. Requires the bot token.
func (c *Client) GetUpvotes(ctx context.Context, page int) (*collection.Page[string, Upvote], error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	raw, err := c.doRequest(ctx, http.MethodGet, "/bots/"+url.PathEscape(c.botID)+"/upvotes", params, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get upvotes: %w", err)
	}

	var response upvotesResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("failed to parse upvotes: %w", err)
	}

	result := collection.NewPage[string, Upvote](response.info())
	for _, vote := range response.Results {
		result.Set(vote.User.ID, vote)
	}
	return result, nil
}

// GetAllUpvotes walks every page of the configured bot's upvotes and merges
// them into one ordered map keyed by user ID. Page 1 is fetched first to
// learn the page count; the remaining pages are fetched concurrently and
// merged back in page order.
func (c *Client) GetAllUpvotes(ctx context.Context) (*collection.Ordered[string, Upvote], error) {
	all, pages, err := fetchAllPages(ctx, c.GetUpvotes)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("pages", pages).
		Int("upvotes", all.Len()).
		Msg("Retrieved all upvotes")

	return all, nil
}

// fetchAllPages walks a paginated listing endpoint and merges every page
// into one ordered map. Page 1 is always kept, even when the envelope
// reports no page count (empty listings or missing metadata).
func fetchAllPages[V any](ctx context.Context, fetch func(context.Context, int) (*collection.Page[string, V], error)) (*collection.Ordered[string, V], int, error) {
	first, err := fetch(ctx, 1)
	if err != nil {
		return nil, 0, err
	}

	pageCount := first.PageCount()
	if pageCount < 1 {
		pageCount = 1
	}

	pages := make([]*collection.Page[string, V], pageCount+1)
	pages[1] = first

	if pageCount > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(pageFetchConcurrency)

		for page := 2; page <= pageCount; page++ {
			g.Go(func() error {
				result, err := fetch(gctx, page)
				if err != nil {
					return err
				}
				pages[page] = result
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, 0, err
		}
	}

	all := collection.NewOrdered[string, V]()
	for page := 1; page <= pageCount; page++ {
		if pages[page] == nil {
			continue
		}
		for _, entry := range pages[page].Entries() {
			all.Set(entry.Key, entry.Value)
		}
	}

	return all, pageCount, nil
}

// HasUpvoted reports whether the given user appears in the configured
// bot's upvote listing. The API has no dedicated endpoint for this, so the
// full listing is fetched and checked.
func (c *Client) HasUpvoted(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("%w: user ID", ErrInvalidID)
	}

	upvotes, err := c.GetAllUpvotes(ctx)
	if err != nil {
		return false, err
	}
	return upvotes.Has(userID), nil
}

// PostServerCount reports the bot's total server count to the list.
func (c *Client) PostServerCount(ctx context.Context, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: server count %d", ErrInvalidCount, count)
	}
	return c.postCounts(ctx, serverCountBody{ServerCount: count})
}

// PostShardCounts reports per-shard server counts to the list. The slice
// must be non-empty and every shard count non-negative.
func (c *Client) PostShardCounts(ctx context.Context, shards []int) error {
	if len(shards) == 0 {
		return fmt.Errorf("%w: at least one shard count is required", ErrInvalidCount)
	}
	for i, count := range shards {
		if count < 0 {
			return fmt.Errorf("%w: shard %d count %d", ErrInvalidCount, i, count)
		}
	}
	return c.postCounts(ctx, shardsBody{Shards: shards})
}

func (c *Client) postCounts(ctx context.Context, body any) error {
	if _, err := c.doRequest(ctx, http.MethodPost, "/bots/"+url.PathEscape(c.botID), nil, body, true); err != nil {
		return fmt.Errorf("failed to post counts: %w", err)
	}
	return nil
}

// GetUser retrieves a single user by ID.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user ID", ErrInvalidID)
	}

	raw, err := c.doRequest(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &user, nil
}

// GetUserBots retrieves one page of the bots owned by a user.
func (c *Client) GetUserBots(ctx context.Context, id string, page int) (*collection.Page[string, Bot], error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user ID", ErrInvalidID)
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	return c.getBotsPage(ctx, "/users/"+url.PathEscape(id)+"/bots", page)
}

// getBotsPage fetches one page of a bot listing endpoint and wraps it.
func (c *Client) getBotsPage(ctx context.Context, endpoint string, page int) (*collection.Page[string, Bot], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	raw, err := c.doRequest(ctx, http.MethodGet, endpoint, params, nil, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get bots: %w", err)
	}

	var response botsResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("failed to parse bot listing: %w", err)
	}

	result := collection.NewPage[string, Bot](response.info())
	for _, bot := range response.Results {
		result.Set(bot.ID, bot)
	}
	return result, nil
}
