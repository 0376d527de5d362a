// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the so4t-csv-connector
// export: the API content records returned by Stack Overflow for Teams,
// the flattened CSV row, and configuration.
package types

// Owner is the shallow user attached to a post. The API omits it entirely
// when the account was deleted.
type Owner struct {
	UserID      int    `json:"user_id" yaml:"user_id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Question is a question record from the /questions endpoint. Body and
// Answers are only present when the request filter includes them.
type Question struct {
	ID           int      `json:"question_id" yaml:"question_id"`
	Title        string   `json:"title" yaml:"title"`
	Body         string   `json:"body" yaml:"body"`
	Tags         []string `json:"tags" yaml:"tags"`
	ViewCount    *int     `json:"view_count,omitempty" yaml:"view_count,omitempty"`
	Score        *int     `json:"score,omitempty" yaml:"score,omitempty"`
	CreationDate int64    `json:"creation_date" yaml:"creation_date"`
	LastEditDate *int64   `json:"last_edit_date,omitempty" yaml:"last_edit_date,omitempty"`
	Owner        *Owner   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Link         string   `json:"link" yaml:"link"`
	Answers      []Answer `json:"answers,omitempty" yaml:"answers,omitempty"`
}

// Answer is an answer nested under its Question. It has no title, tags
// or view count of its own.
type Answer struct {
	ID           int    `json:"answer_id" yaml:"answer_id"`
	Body         string `json:"body" yaml:"body"`
	Score        *int   `json:"score,omitempty" yaml:"score,omitempty"`
	CreationDate int64  `json:"creation_date" yaml:"creation_date"`
	LastEditDate *int64 `json:"last_edit_date,omitempty" yaml:"last_edit_date,omitempty"`
	Owner        *Owner `json:"owner,omitempty" yaml:"owner,omitempty"`
	Link         string `json:"link" yaml:"link"`
}

// Article is a knowledge article from the /articles endpoint.
type Article struct {
	ID           int      `json:"article_id" yaml:"article_id"`
	Title        string   `json:"title" yaml:"title"`
	Body         string   `json:"body" yaml:"body"`
	Tags         []string `json:"tags" yaml:"tags"`
	ViewCount    *int     `json:"view_count,omitempty" yaml:"view_count,omitempty"`
	Score        *int     `json:"score,omitempty" yaml:"score,omitempty"`
	CreationDate int64    `json:"creation_date" yaml:"creation_date"`
	LastEditDate *int64   `json:"last_edit_date,omitempty" yaml:"last_edit_date,omitempty"`
	Owner        *Owner   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Link         string   `json:"link" yaml:"link"`
}
