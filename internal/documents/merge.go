// Package documents calls the report service that renders and merges the
// dissolution letters for a batch of furnishings into one PDF.
package documents

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/corpreg/furnishings-engine/internal/domain"
	"github.com/go-resty/resty/v2"
)

// Merging letters for a big batch can take the report service a while.
const defaultTimeout = 5 * time.Minute

// Merger produces one mailable PDF covering every furnishing in a category
// partition. One call per partition, no partial results.
type Merger interface {
	Merge(ctx context.Context, category domain.EntityCategory, furnishingIDs []int64) ([]byte, error)
}

type mergeRequest struct {
	Category      string  `json:"category"`
	FurnishingIDs []int64 `json:"furnishingIds"`
}

// ReportClient implements Merger against the report service.
type ReportClient struct {
	http    *resty.Client
	baseURL string
}

func NewReportClient(baseURL string) (*ReportClient, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("report service url is required")
	}

	client := resty.New()
	client.SetTimeout(defaultTimeout)
	client.SetRetryCount(0)

	return NewReportClientWithResty(trimmed, client)
}

func NewReportClientWithResty(baseURL string, httpClient *resty.Client) (*ReportClient, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("resty client is required")
	}
	if httpClient.GetClient().Timeout == 0 {
		httpClient.SetTimeout(defaultTimeout)
	}

	return &ReportClient{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (c *ReportClient) Merge(ctx context.Context, category domain.EntityCategory, furnishingIDs []int64) ([]byte, error) {
	if len(furnishingIDs) == 0 {
		return nil, fmt.Errorf("at least one furnishing id is required")
	}

	response, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/pdf").
		SetBody(mergeRequest{
			Category:      category.String(),
			FurnishingIDs: furnishingIDs,
		}).
		Post(c.baseURL + "/furnishings/merge")
	if err != nil {
		return nil, fmt.Errorf("merge request failed: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("merge returned status %d", response.StatusCode())
	}

	body := response.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("merge returned empty document")
	}

	return body, nil
}
