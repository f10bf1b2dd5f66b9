package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paletogarage/auth-gateway/internal/config"
	"github.com/paletogarage/auth-gateway/internal/utils"
)

const fetchTimeout = 10 * time.Second

// Source supplies the roster as a grid of text cells.
type Source interface {
	Values(ctx context.Context) ([][]string, error)
}

// SheetsSource reads a whole named sheet through the Google Sheets values API.
// Read-only; the gateway never writes back to the roster.
type SheetsSource struct {
	baseURL   string
	sheetID   string
	sheetName string
	apiKey    string
	client    *http.Client
}

var _ Source = (*SheetsSource)(nil)

func NewSheetsSource(cfg config.SheetsConfig) *SheetsSource {
	return &SheetsSource{
		baseURL:   strings.TrimSuffix(cfg.GetSheetsBaseURL(), "/"),
		sheetID:   cfg.GetSheetID(),
		sheetName: cfg.GetSheetName(),
		apiKey:    cfg.GetSheetsAPIKey(),
		client:    &http.Client{Timeout: fetchTimeout},
	}
}

func (s *SheetsSource) Values(ctx context.Context) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		s.baseURL, url.PathEscape(s.sheetID), url.PathEscape(s.sheetName), url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sheet: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Values [][]any `json:"values"`
	}
	// UseNumber keeps numeric cells as their literal digits; long ids would
	// otherwise decode as float64 and render in scientific notation.
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode sheet values: %w", err)
	}

	rows := make([][]string, 0, len(payload.Values))
	for _, row := range payload.Values {
		rows = append(rows, utils.ToStringRow(row))
	}
	return rows, nil
}
