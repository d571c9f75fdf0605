package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain/search"
	"github.com/stellenwerk/jobsuche-mcp/pkg/logging"
)

// SearchJobsWithDetailsParams defines the arguments for the
// search_jobs_with_details tool. Search parameters match search_jobs.
type SearchJobsWithDetailsParams struct {
	JobTitle           *string  `json:"job_title,omitempty" jsonschema:"Job title or keywords, e.g. Software Engineer"`
	Location           *string  `json:"location,omitempty" jsonschema:"Location name, e.g. Berlin or Deutschland"`
	RadiusKm           *int     `json:"radius_km,omitempty" jsonschema:"Search radius in kilometers around the location"`
	EmploymentType     []string `json:"employment_type,omitempty" jsonschema:"Employment type tags: fulltime, parttime, mini_job, home_office, shift"`
	ContractType       []string `json:"contract_type,omitempty" jsonschema:"Contract type tags: permanent, temporary"`
	PublishedSinceDays *int     `json:"published_since_days,omitempty" jsonschema:"Only jobs published within the last N days"`
	PageSize           *int     `json:"page_size,omitempty" jsonschema:"Results per page, capped by server configuration"`
	Page               *int     `json:"page,omitempty" jsonschema:"Page number starting at 1"`
	Employer           *string  `json:"employer,omitempty" jsonschema:"Employer name, combined with the job title in the query"`
	Branch             *string  `json:"branch,omitempty" jsonschema:"Branch or industry, combined with the job title in the query"`

	MaxDetails *int               `json:"max_details,omitempty" jsonschema:"Fetch full details for the top N results (default 5, max 20)"`
	Fields     *FieldFilterParams `json:"fields,omitempty" jsonschema:"Optional field filtering to reduce response size"`
}

// WithSearchJobsWithDetails registers the search_jobs_with_details tool
func WithSearchJobsWithDetails(svc search.Service, logger *logging.Logger) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_jobs_with_details",
			Description: "Search jobs and automatically fetch full details for the top results in one call",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchJobsWithDetailsParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			reqID := uuid.NewString()
			logger.Info("search_jobs_with_details called", "req_id", reqID)

			searchReq := (&SearchJobsParams{
				JobTitle:           params.JobTitle,
				Location:           params.Location,
				RadiusKm:           params.RadiusKm,
				EmploymentType:     params.EmploymentType,
				ContractType:       params.ContractType,
				PublishedSinceDays: params.PublishedSinceDays,
				PageSize:           params.PageSize,
				Page:               params.Page,
				Employer:           params.Employer,
				Branch:             params.Branch,
			}).toRequest()

			result, err := svc.SearchWithDetails(ctx, searchReq, params.MaxDetails, params.Fields.toDomain())
			if err != nil {
				logger.Error("search_jobs_with_details failed", "req_id", reqID, "err", err)
				return nil, nil, err
			}

			msg := fmt.Sprintf("Fetched details for %d jobs (search %dms, details %dms)",
				result.JobsCount, result.SearchDurationMs, result.DetailsDurationMs)
			return textResult(msg), result, nil
		})
	}
}
