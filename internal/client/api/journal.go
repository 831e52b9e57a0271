package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) Entries(ctx context.Context) ([]JournalEntry, error) {
	return Fetch[[]JournalEntry](ctx, c, Request{Path: c.journal()})
}

func (c *Client) Entry(ctx context.Context, id string) (JournalEntry, error) {
	return Fetch[JournalEntry](ctx, c, Request{Path: c.journal(url.PathEscape(id))})
}

func (c *Client) CreateEntry(ctx context.Context, req CreateEntryRequest) (JournalEntry, error) {
	if err := check(req); err != nil {
		return JournalEntry{}, err
	}
	return Fetch[JournalEntry](ctx, c, Request{Method: http.MethodPost, Path: c.journal(), JSON: req})
}

func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	_, err := c.Do(ctx, Request{Method: http.MethodDelete, Path: c.journal(url.PathEscape(id))})
	return err
}

func (c *Client) Insights(ctx context.Context, q InsightsQuery) (Insights, error) {
	if err := check(q); err != nil {
		return Insights{}, err
	}
	query := url.Values{}
	query.Set("days_mood", strconv.Itoa(q.DaysMood))
	query.Set("days_themes", strconv.Itoa(q.DaysThemes))
	return Fetch[Insights](ctx, c, Request{Path: c.journal("insights", ""), Query: query})
}

// Prompt returns today's writing prompt. The endpoint answers plain text.
func (c *Client) Prompt(ctx context.Context) (string, error) {
	return FetchText(ctx, c, Request{Path: c.journal("prompt", "")})
}

func (c *Client) Articles(ctx context.Context) ([]Article, error) {
	return Fetch[[]Article](ctx, c, Request{Path: c.journal("articles", "")})
}
