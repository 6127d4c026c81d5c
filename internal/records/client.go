package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"doc-insights-go/internal/logger"
	"doc-insights-go/internal/types"
	"github.com/cenkalti/backoff/v4"
)

var httpClient = &http.Client{Timeout: 12 * time.Second}

// Client fetches extracted records for a document from the analysis
// backend. The engine itself never does I/O; this is the collaborator
// that feeds it.
type Client struct {
	BaseURL string
	Token   string
}

type listResponse struct {
	Data []types.ExtractedRecord `json:"data"`
}

// NewClientFromEnv builds a client from BACKEND_URL / BACKEND_TOKEN.
func NewClientFromEnv() (*Client, error) {
	base := os.Getenv("BACKEND_URL")
	if base == "" {
		return nil, errors.New("BACKEND_URL not set")
	}
	return &Client{BaseURL: base, Token: os.Getenv("BACKEND_TOKEN")}, nil
}

// FetchDocumentRecords returns the full extraction collection for one
// document. Transient failures (network, 5xx) retry with exponential
// backoff; client errors are permanent.
func (c *Client) FetchDocumentRecords(documentID string) ([]types.ExtractedRecord, error) {
	log := logger.New().WithComponent("records.client").WithField("document_id", documentID)
	endpoint := fmt.Sprintf("%s/documents/%s/extractions", trimSlash(c.BaseURL), url.PathEscape(documentID))

	var resp listResponse
	if err := c.getJSON(endpoint, &resp); err != nil {
		log.WithError(err).Error("fetch failed")
		return nil, fmt.Errorf("fetch extractions: %w", err)
	}
	log.WithField("records", len(resp.Data)).Info("extractions fetched")
	return resp.Data, nil
}

func (c *Client) getJSON(endpoint string, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second
	var lastErr error
	op := func() error {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if c.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.Token)
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: status=%d body=%s", resp.StatusCode, string(body))
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("request rejected: status=%d body=%s", resp.StatusCode, string(body))
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v", err)
			return lastErr
		}
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		if lastErr != nil {
			return lastErr
		}
		return err
	}
	return nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
