// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stackapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/so4t-csv-connector/pkg/types"
)

// wrapper is the common envelope around every API response.
type wrapper[T any] struct {
	Items          []T  `json:"items"`
	HasMore        bool `json:"has_more"`
	Backoff        int  `json:"backoff"`
	QuotaMax       int  `json:"quota_max"`
	QuotaRemaining int  `json:"quota_remaining"`
}

// getItems requests endpoint until the API reports has_more=false and
// returns every item collected. When params carries a page number the
// page is advanced after each response; a server backoff hint pauses
// the loop before the next page is requested.
func getItems[T any](ctx context.Context, c *Client, endpoint string, params url.Values) ([]T, error) {
	endpointURL := c.apiBase + endpoint
	page, _ := strconv.Atoi(params.Get("page"))
	paged := page > 0

	items := make([]T, 0)
	for {
		if paged {
			fmt.Fprintf(c.w, "Getting page %d from %s\n", page, endpointURL)
		} else {
			fmt.Fprintf(c.w, "Getting API data from %s\n", endpointURL)
		}

		w, err := getPage[T](ctx, c, endpoint, params)
		if err != nil {
			return nil, err
		}
		items = append(items, w.Items...)

		if !w.HasMore || !paged {
			break
		}

		// Ignoring a backoff request gets the next call rejected with
		// throttle_violation.
		if w.Backoff > 0 {
			fmt.Fprintf(c.w, "API backoff request received. Waiting %d seconds...\n", w.Backoff+1)
			if err := c.wait(ctx, w.Backoff); err != nil {
				return nil, err
			}
		}

		page++
		params.Set("page", strconv.Itoa(page))
	}

	return items, nil
}

// getPage performs a single request and decodes its envelope.
func getPage[T any](ctx context.Context, c *Client, endpoint string, params url.Values) (*wrapper[T], error) {
	req, err := c.newRequest(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s API request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(req, resp)
	}

	var w wrapper[T]
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", endpoint, err)
	}
	return &w, nil
}

// pageParams returns the params for the first page of a paginated
// endpoint.
func pageParams(filter string) url.Values {
	params := url.Values{
		"page":     {"1"},
		"pagesize": {strconv.Itoa(PageSize)},
	}
	if filter != "" {
		params.Set("filter", filter)
	}
	return params
}

// GetAllQuestions returns every question on the instance. Pass a filter
// from CreateFilter to include bodies and answers.
func (c *Client) GetAllQuestions(ctx context.Context, filter string) ([]types.Question, error) {
	questions, err := getItems[types.Question](ctx, c, "/questions", pageParams(filter))
	if err != nil {
		return nil, fmt.Errorf("fetching questions: %w", err)
	}
	return questions, nil
}

// GetAllArticles returns every article on the instance.
func (c *Client) GetAllArticles(ctx context.Context, filter string) ([]types.Article, error) {
	articles, err := getItems[types.Article](ctx, c, "/articles", pageParams(filter))
	if err != nil {
		return nil, fmt.Errorf("fetching articles: %w", err)
	}
	return articles, nil
}
