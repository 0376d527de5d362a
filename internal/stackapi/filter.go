// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stackapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Filter bases accepted by /filters/create.
const (
	BaseDefault  = "default"
	BaseWithBody = "withbody"
	BaseNone     = "none"
	BaseTotal    = "total"
)

// Fields added to the default filter for an export.
var (
	QuestionFilterFields = []string{
		"answer.body",
		"answer.link",
		"question.answers",
		"question.body",
	}
	ArticleFilterFields = []string{
		"article.body",
	}
)

type filterItem struct {
	Filter     string `json:"filter"`
	FilterType string `json:"filter_type"`
}

// CreateFilter asks the API for a filter that adds include to base and
// returns its identifier for use as the filter parameter.
func (c *Client) CreateFilter(ctx context.Context, include []string, base string) (string, error) {
	switch base {
	case "":
		base = BaseDefault
	case BaseDefault, BaseWithBody, BaseNone, BaseTotal:
	default:
		return "", fmt.Errorf("unknown filter base %q: use default, withbody, none, or total", base)
	}

	params := url.Values{
		"base":   {base},
		"unsafe": {"false"},
	}
	if len(include) > 0 {
		params.Set("include", strings.Join(include, ";"))
	}

	items, err := getItems[filterItem](ctx, c, "/filters/create", params)
	if err != nil {
		return "", fmt.Errorf("creating filter: %w", err)
	}
	if len(items) == 0 || items[0].Filter == "" {
		return "", fmt.Errorf("creating filter: API returned no filter")
	}

	fmt.Fprintf(c.w, "Filter created: %s\n", items[0].Filter)
	return items[0].Filter, nil
}
