package search

import (
	"context"
	"fmt"
	"time"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain"
	"github.com/stellenwerk/jobsuche-mcp/pkg/jobsuche"
	"github.com/stellenwerk/jobsuche-mcp/pkg/logging"
)

const (
	serverName    = "Jobsuche MCP Server"
	serverVersion = "0.1.0"

	// The five exposed tools: search_jobs, get_job_details,
	// search_jobs_with_details, batch_search_jobs, get_server_status.
	toolsCount = 5

	maxBatchSearches      = 10
	maxDetails            = 20
	defaultDetails        = 5
	maxDetailsPerSearch   = 10
	defaultDetailsPerItem = 3
)

// Client is the upstream API surface the orchestrator depends on. Any
// binding that can search and fetch one detail by id satisfies it.
type Client interface {
	Search(ctx context.Context, opts jobsuche.SearchOptions) (*jobsuche.SearchResponse, error)
	JobDetails(ctx context.Context, refnr string) (*jobsuche.JobDetails, error)
}

// DetailCache stores projected details keyed by reference number.
// Implementations must treat their own failures as misses.
type DetailCache interface {
	Get(ctx context.Context, refnr string) (domain.JobDetail, bool)
	Set(ctx context.Context, refnr string, detail domain.JobDetail)
}

type Service interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error)
	GetDetail(ctx context.Context, refnr string) (domain.JobDetail, error)
	SearchWithDetails(ctx context.Context, req domain.SearchRequest, maxDetails *int, filter domain.FieldFilter) (domain.SearchWithDetailsResult, error)
	BatchSearch(ctx context.Context, items []domain.BatchSearchItem, maxDetailsPerItem *int, filter domain.FieldFilter) domain.BatchSearchResult
	Status(ctx context.Context) domain.ServerStatus
}

// Option configures Service
type Option func(*config)

type config struct {
	client          Client
	cache           DetailCache
	logger          *logging.Logger
	defaultPageSize int
	maxPageSize     int
	apiURL          string
	clock           func() time.Time
}

// WithClient sets the upstream API client
func WithClient(client Client) Option {
	return func(c *config) {
		c.client = client
	}
}

// WithCache sets an optional detail cache
func WithCache(cache DetailCache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPageSizes sets the default and maximum page sizes
func WithPageSizes(defaultSize, maxSize int) Option {
	return func(c *config) {
		c.defaultPageSize = defaultSize
		c.maxPageSize = maxSize
	}
}

// WithAPIURL sets the upstream URL reported by the status tool
func WithAPIURL(url string) Option {
	return func(c *config) {
		c.apiURL = url
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		logger:          logging.NewNop(),
		defaultPageSize: 25,
		maxPageSize:     100,
		clock:           time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.client == nil {
		return nil, fmt.Errorf("search.Service: client is required")
	}

	return &service{
		client:          cfg.client,
		cache:           cfg.cache,
		logger:          cfg.logger,
		defaultPageSize: cfg.defaultPageSize,
		maxPageSize:     cfg.maxPageSize,
		apiURL:          cfg.apiURL,
		clock:           cfg.clock,
		startTime:       cfg.clock(),
	}, nil
}

type service struct {
	client          Client
	cache           DetailCache
	logger          *logging.Logger
	defaultPageSize int
	maxPageSize     int
	apiURL          string
	clock           func() time.Time
	startTime       time.Time
}

// Search runs a single search end-to-end: build the upstream query,
// call the API once, project each record in upstream order. The
// duration covers the upstream call only.
func (s *service) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	opts := BuildQuery(req, s.defaultPageSize, s.maxPageSize)

	start := s.clock()
	resp, err := s.client.Search(ctx, opts)
	if err != nil {
		return domain.SearchResult{}, err
	}
	duration := s.clock().Sub(start)

	jobs := make([]domain.JobSummary, 0, len(resp.Stellenangebote))
	for _, a := range resp.Stellenangebote {
		jobs = append(jobs, SummaryFromAngebot(a))
	}

	s.logger.Info("search completed", "jobs", len(jobs), "duration", duration)

	return domain.SearchResult{
		TotalResults:     resp.MaxErgebnisse,
		CurrentPage:      resp.Page,
		PageSize:         resp.Size,
		JobsCount:        len(jobs),
		Jobs:             jobs,
		SearchDurationMs: duration.Milliseconds(),
	}, nil
}

// GetDetail fetches one posting, consulting the cache first when one
// is configured. Decode failures propagate; they are never retried.
func (s *service) GetDetail(ctx context.Context, refnr string) (domain.JobDetail, error) {
	if s.cache != nil {
		if detail, ok := s.cache.Get(ctx, refnr); ok {
			s.logger.Debug("detail cache hit", "refnr", refnr)
			return detail, nil
		}
	}

	resp, err := s.client.JobDetails(ctx, refnr)
	if err != nil {
		return domain.JobDetail{}, err
	}

	detail := DetailFromResponse(refnr, resp)

	if s.cache != nil {
		s.cache.Set(ctx, refnr, detail)
	}

	return detail, nil
}

// SearchWithDetails runs Search and then expands the top results with
// full detail lookups, reporting the two phases' durations separately.
func (s *service) SearchWithDetails(ctx context.Context, req domain.SearchRequest, maxDetailsRequested *int, filter domain.FieldFilter) (domain.SearchWithDetailsResult, error) {
	limit := defaultDetails
	if maxDetailsRequested != nil {
		limit = *maxDetailsRequested
	}
	if limit > maxDetails {
		limit = maxDetails
	}
	if limit < 0 {
		limit = 0
	}

	result, err := s.Search(ctx, req)
	if err != nil {
		return domain.SearchWithDetailsResult{}, err
	}

	detailsStart := s.clock()
	details := s.fetchDetails(ctx, referenceNumbers(result.Jobs), limit)
	detailsDuration := s.clock().Sub(detailsStart)

	applyFilter(details, filter)

	s.logger.Info("search with details completed",
		"jobs", result.JobsCount, "details", len(details), "duration", detailsDuration)

	return domain.SearchWithDetailsResult{
		TotalResults:      result.TotalResults,
		CurrentPage:       result.CurrentPage,
		PageSize:          result.PageSize,
		JobsCount:         len(details),
		Jobs:              details,
		SearchDurationMs:  result.SearchDurationMs,
		DetailsDurationMs: detailsDuration.Milliseconds(),
	}, nil
}

// BatchSearch runs up to ten named searches sequentially. One item's
// failure lands in that item's result slot; siblings always run. The
// result order matches the input order, failed items in place.
func (s *service) BatchSearch(ctx context.Context, items []domain.BatchSearchItem, maxDetailsPerItem *int, filter domain.FieldFilter) domain.BatchSearchResult {
	start := s.clock()

	count := len(items)
	if count > maxBatchSearches {
		count = maxBatchSearches
	}

	limit := defaultDetailsPerItem
	if maxDetailsPerItem != nil {
		limit = *maxDetailsPerItem
	}
	if limit > maxDetailsPerSearch {
		limit = maxDetailsPerSearch
	}
	if limit < 0 {
		limit = 0
	}

	results := make([]domain.BatchSearchItemResult, 0, count)
	for _, item := range items[:count] {
		s.logger.Info("processing batch search", "name", item.Name)

		req := requestFromBatchItem(item, limit)

		searchResult, err := s.Search(ctx, req)
		if err != nil {
			msg := fmt.Sprintf("search failed: %v", err)
			results = append(results, domain.BatchSearchItemResult{
				SearchName: item.Name,
				Jobs:       []domain.JobDetail{},
				Error:      &msg,
			})
			continue
		}

		details := []domain.JobDetail{}
		if limit > 0 {
			details = s.fetchDetails(ctx, referenceNumbers(searchResult.Jobs), limit)
			applyFilter(details, filter)
		}

		results = append(results, domain.BatchSearchItemResult{
			SearchName:   item.Name,
			TotalResults: searchResult.TotalResults,
			JobsCount:    len(details),
			Jobs:         details,
		})
	}

	duration := s.clock().Sub(start)
	s.logger.Info("batch search completed", "searches", len(results), "duration", duration)

	return domain.BatchSearchResult{
		SearchesCount:   len(results),
		Results:         results,
		TotalDurationMs: duration.Milliseconds(),
	}
}

// Status probes upstream connectivity with a minimal one-result search
func (s *service) Status(ctx context.Context) domain.ServerStatus {
	connection := "Connected"
	if _, err := s.client.Search(ctx, jobsuche.SearchOptions{Size: 1}); err != nil {
		connection = fmt.Sprintf("Connection Error: %v", err)
	}

	return domain.ServerStatus{
		ServerName:          serverName,
		Version:             serverVersion,
		UptimeSeconds:       int64(s.clock().Sub(s.startTime).Seconds()),
		APIURL:              s.apiURL,
		APIConnectionStatus: connection,
		ToolsCount:          toolsCount,
	}
}

func applyFilter(details []domain.JobDetail, filter domain.FieldFilter) {
	if filter.IsZero() {
		return
	}
	for i := range details {
		details[i] = ApplyFieldFilter(details[i], filter)
	}
}

// requestFromBatchItem widens a batch item into a full request. The
// search page size equals the per-item detail budget: fetching more
// summaries than can be expanded would be wasted work.
func requestFromBatchItem(item domain.BatchSearchItem, detailLimit int) domain.SearchRequest {
	req := domain.SearchRequest{
		JobTitle:           item.JobTitle,
		Location:           item.Location,
		RadiusKm:           item.RadiusKm,
		EmploymentType:     item.EmploymentType,
		ContractType:       item.ContractType,
		PublishedSinceDays: item.PublishedSinceDays,
		Employer:           item.Employer,
		Branch:             item.Branch,
	}
	if detailLimit > 0 {
		req.PageSize = &detailLimit
	}
	return req
}
