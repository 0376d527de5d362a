// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flatten turns API questions, answers and articles into uniform
// CSV rows: one row per post, HTML stripped from bodies, entities decoded
// in titles and author names, timestamps rendered as dates.
package flatten

import (
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pdiddy/so4t-csv-connector/pkg/types"
)

const (
	// AnonymousAuthor is used when a post's owner account was deleted.
	AnonymousAuthor = "Anonymous"

	questionPrefix = "[Question] "
	answerPrefix   = "[Answer] "
	articlePrefix  = "[Article] "

	dateFmt  = "2006-01-02"
	tagDelim = "; "
)

// strict removes every element and attribute, leaving text only.
var strict = bluemonday.StrictPolicy()

// Flatten converts questions (with nested answers) and articles into rows.
// Answer rows come first, in question order, followed by one row per
// question and then one row per article. Answers take their title, tags
// and view count from the parent question.
func Flatten(questions []types.Question, articles []types.Article) []types.Row {
	var answerCount int
	for _, q := range questions {
		answerCount += len(q.Answers)
	}
	rows := make([]types.Row, 0, answerCount+len(questions)+len(articles))

	for _, q := range questions {
		for _, a := range q.Answers {
			rows = append(rows, answerRow(q, a))
		}
	}
	for _, q := range questions {
		rows = append(rows, questionRow(q))
	}
	for _, a := range articles {
		rows = append(rows, articleRow(a))
	}
	return rows
}

func questionRow(q types.Question) types.Row {
	return types.Row{
		Type:         types.ContentQuestion,
		Title:        html.UnescapeString(questionPrefix + q.Title),
		Body:         StripHTML(q.Body),
		Tags:         JoinTags(q.Tags),
		CreationDate: FormatDate(q.CreationDate),
		LastEditDate: formatOptionalDate(q.LastEditDate),
		Author:       AuthorName(q.Owner),
		ViewCount:    formatOptionalInt(q.ViewCount),
		Score:        formatOptionalInt(q.Score),
		Link:         q.Link,
	}
}

func answerRow(q types.Question, a types.Answer) types.Row {
	return types.Row{
		Type:         types.ContentAnswer,
		Title:        html.UnescapeString(answerPrefix + q.Title),
		Body:         StripHTML(a.Body),
		Tags:         JoinTags(q.Tags),
		CreationDate: FormatDate(a.CreationDate),
		LastEditDate: formatOptionalDate(a.LastEditDate),
		Author:       AuthorName(a.Owner),
		ViewCount:    formatOptionalInt(q.ViewCount),
		Score:        formatOptionalInt(a.Score),
		Link:         a.Link,
	}
}

func articleRow(a types.Article) types.Row {
	return types.Row{
		Type:         types.ContentArticle,
		Title:        html.UnescapeString(articlePrefix + a.Title),
		Body:         StripHTML(a.Body),
		Tags:         JoinTags(a.Tags),
		CreationDate: FormatDate(a.CreationDate),
		LastEditDate: formatOptionalDate(a.LastEditDate),
		Author:       AuthorName(a.Owner),
		ViewCount:    formatOptionalInt(a.ViewCount),
		Score:        formatOptionalInt(a.Score),
		Link:         a.Link,
	}
}

// StripHTML removes all markup from body and decodes HTML entities in the
// remaining text, so "<p>Hi &amp; bye</p>" becomes "Hi & bye".
func StripHTML(body string) string {
	if body == "" {
		return ""
	}
	// The strict policy re-escapes text it keeps; unescape once more to
	// get plain text.
	return html.UnescapeString(strict.Sanitize(body))
}

// FormatDate renders an epoch timestamp in seconds as a UTC calendar
// date (YYYY-MM-DD).
func FormatDate(epoch int64) string {
	return time.Unix(epoch, 0).UTC().Format(dateFmt)
}

// JoinTags joins tags with "; ".
func JoinTags(tags []string) string {
	return strings.Join(tags, tagDelim)
}

// AuthorName returns the owner's display name with entities decoded, or
// AnonymousAuthor when the owner is missing.
func AuthorName(owner *types.Owner) string {
	if owner == nil || owner.DisplayName == "" {
		return AnonymousAuthor
	}
	return html.UnescapeString(owner.DisplayName)
}

func formatOptionalDate(epoch *int64) string {
	if epoch == nil {
		return ""
	}
	return FormatDate(*epoch)
}

func formatOptionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
