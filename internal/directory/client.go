package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/yuvasree15/healthpuls/pkg/config"
	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Client serves the doctor directory. The remote endpoint is fetched at most
// once; any failure degrades silently to the generated fallback dataset with
// no retry.
type Client struct {
	endpoint string
	client   *http.Client
	logger   *logger.Logger
	metrics  *monitoring.MetricsCollector

	mu       sync.Mutex
	listings []*types.DoctorListing
}

// NewClient creates the directory client.
func NewClient(cfg config.DirectoryConfig, log *logger.Logger, metrics *monitoring.MetricsCollector) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		client: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeout) * time.Second,
		},
		logger:  log,
		metrics: metrics,
	}
}

// Load returns the directory, fetching it on first use and caching the
// result for the life of the process.
func (c *Client) Load(ctx context.Context) ([]*types.DoctorListing, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listings == nil {
		listings, err := c.fetch(ctx)
		if err != nil {
			c.logger.WithError(err).Warn("Directory fetch failed, using fallback dataset")
			c.metrics.RecordDirectoryFetch("fallback")
			listings = generateFallback()
		} else {
			c.metrics.RecordDirectoryFetch("remote")
		}
		c.listings = listings
	}

	out := make([]*types.DoctorListing, len(c.listings))
	copy(out, c.listings)
	return out, nil
}

// Search filters the directory by free-text query and specialty.
func (c *Client) Search(ctx context.Context, query, category string) ([]*types.DoctorListing, error) {
	listings, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.ToLower(strings.TrimSpace(category))

	var out []*types.DoctorListing
	for _, d := range listings {
		if category != "" && strings.ToLower(d.Specialty) != category {
			continue
		}
		if query != "" && !matchesQuery(d, query) {
			continue
		}
		out = append(out, d)
	}

	return out, nil
}

func matchesQuery(d *types.DoctorListing, query string) bool {
	if strings.Contains(strings.ToLower(d.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Specialty), query) {
		return true
	}
	for _, kw := range d.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}

func (c *Client) fetch(ctx context.Context) ([]*types.DoctorListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("directory endpoint returned status %d", resp.StatusCode)
	}

	var listings []*types.DoctorListing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("failed to decode directory payload: %w", err)
	}

	return listings, nil
}

var _ interfaces.DirectoryService = (*Client)(nil)
