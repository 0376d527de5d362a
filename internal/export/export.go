// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export runs one end-to-end export: connect, create filters,
// fetch questions and articles, flatten, and write the CSV (plus an
// optional manifest).
package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/so4t-csv-connector/internal/csvout"
	"github.com/pdiddy/so4t-csv-connector/internal/flatten"
	"github.com/pdiddy/so4t-csv-connector/internal/manifest"
	"github.com/pdiddy/so4t-csv-connector/internal/stackapi"
	"github.com/pdiddy/so4t-csv-connector/pkg/types"
)

// Result summarises a finished export.
type Result struct {
	OutputPath string
	Counts     manifest.Counts
}

// Run performs the export described by cfg, writing progress lines to w.
// Any failure aborts the run; no partial CSV is written.
func Run(ctx context.Context, httpClient *http.Client, cfg types.ExportConfig, w io.Writer) (Result, error) {
	if w == nil {
		w = io.Discard
	}
	outPath := cfg.OutputPath
	if outPath == "" {
		outPath = csvout.DefaultFileName
	}

	client, err := stackapi.Connect(ctx, httpClient, cfg.Client, w)
	if err != nil {
		return Result{}, err
	}

	questionFilter, err := client.CreateFilter(ctx, stackapi.QuestionFilterFields, stackapi.BaseDefault)
	if err != nil {
		return Result{}, err
	}
	questions, err := client.GetAllQuestions(ctx, questionFilter)
	if err != nil {
		return Result{}, err
	}

	articleFilter, err := client.CreateFilter(ctx, stackapi.ArticleFilterFields, stackapi.BaseDefault)
	if err != nil {
		return Result{}, err
	}
	articles, err := client.GetAllArticles(ctx, articleFilter)
	if err != nil {
		return Result{}, err
	}

	rows := flatten.Flatten(questions, articles)
	if err := csvout.WriteFile(outPath, rows); err != nil {
		return Result{}, fmt.Errorf("writing CSV: %w", err)
	}
	fmt.Fprintf(w, "CSV file written to %s\n", outPath)

	res := Result{OutputPath: outPath}
	res.Counts.CountRows(rows)

	if cfg.ManifestPath != "" {
		m := manifest.Manifest{
			Instance: manifest.InstanceInfo{
				URL:     cfg.Client.URL,
				Type:    string(client.Instance()),
				APIBase: client.APIBase(),
			},
			Filters: manifest.Filters{
				Questions: questionFilter,
				Articles:  articleFilter,
			},
			Counts:      res.Counts,
			Output:      outPath,
			Insecure:    client.Insecure(),
			GeneratedAt: time.Now().UTC(),
		}
		if err := manifest.Write(cfg.ManifestPath, m); err != nil {
			return res, err
		}
		fmt.Fprintf(w, "Manifest written to %s\n", cfg.ManifestPath)
	}

	return res, nil
}
