package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain"
	"github.com/stellenwerk/jobsuche-mcp/internal/domain/search"
	"github.com/stellenwerk/jobsuche-mcp/pkg/logging"
)

// SearchJobsParams defines the arguments for the search_jobs tool
type SearchJobsParams struct {
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
}

func (p *SearchJobsParams) toRequest() domain.SearchRequest {
	return domain.SearchRequest{
		JobTitle:           p.JobTitle,
		Location:           p.Location,
		RadiusKm:           p.RadiusKm,
		EmploymentType:     p.EmploymentType,
		ContractType:       p.ContractType,
		PublishedSinceDays: p.PublishedSinceDays,
		PageSize:           p.PageSize,
		Page:               p.Page,
		Employer:           p.Employer,
		Branch:             p.Branch,
	}
}

// WithSearchJobs registers the search_jobs tool
func WithSearchJobs(svc search.Service, logger *logging.Logger) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_jobs",
			Description: "Search German job listings via the Federal Employment Agency with semantic filters",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchJobsParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			reqID := uuid.NewString()
			logger.Info("search_jobs called", "req_id", reqID)

			result, err := svc.Search(ctx, params.toRequest())
			if err != nil {
				logger.Error("search_jobs failed", "req_id", reqID, "err", err)
				return nil, nil, err
			}

			msg := fmt.Sprintf("Found %d jobs in %dms", result.JobsCount, result.SearchDurationMs)
			return textResult(msg), result, nil
		})
	}
}
