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

// BatchSearchItemParams is one named search inside batch_search_jobs
type BatchSearchItemParams struct {
	Name               string   `json:"name" jsonschema:"Name identifying this search in the results"`
	JobTitle           *string  `json:"job_title,omitempty" jsonschema:"Job title or keywords"`
	Location           *string  `json:"location,omitempty" jsonschema:"Location name"`
	RadiusKm           *int     `json:"radius_km,omitempty" jsonschema:"Search radius in kilometers"`
	EmploymentType     []string `json:"employment_type,omitempty" jsonschema:"Employment type tags"`
	ContractType       []string `json:"contract_type,omitempty" jsonschema:"Contract type tags"`
	PublishedSinceDays *int     `json:"published_since_days,omitempty" jsonschema:"Only jobs published within the last N days"`
	Employer           *string  `json:"employer,omitempty" jsonschema:"Employer name"`
	Branch             *string  `json:"branch,omitempty" jsonschema:"Branch or industry"`
}

// BatchSearchJobsParams defines the arguments for the batch_search_jobs tool
type BatchSearchJobsParams struct {
	Searches            []BatchSearchItemParams `json:"searches" jsonschema:"List of searches to perform (max 10)"`
	MaxDetailsPerSearch *int                    `json:"max_details_per_search,omitempty" jsonschema:"Fetch details for the top N results per search (default 3, max 10)"`
	Fields              *FieldFilterParams      `json:"fields,omitempty" jsonschema:"Optional field filtering to reduce response size"`
}

// WithBatchSearchJobs registers the batch_search_jobs tool
func WithBatchSearchJobs(svc search.Service, logger *logging.Logger) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "batch_search_jobs",
			Description: "Run multiple independent job searches in one call; failures are isolated per search",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *BatchSearchJobsParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			reqID := uuid.NewString()
			logger.Info("batch_search_jobs called", "req_id", reqID, "searches", len(params.Searches))

			items := make([]domain.BatchSearchItem, 0, len(params.Searches))
			for _, s := range params.Searches {
				items = append(items, domain.BatchSearchItem{
					Name:               s.Name,
					JobTitle:           s.JobTitle,
					Location:           s.Location,
					RadiusKm:           s.RadiusKm,
					EmploymentType:     s.EmploymentType,
					ContractType:       s.ContractType,
					PublishedSinceDays: s.PublishedSinceDays,
					Employer:           s.Employer,
					Branch:             s.Branch,
				})
			}

			result := svc.BatchSearch(ctx, items, params.MaxDetailsPerSearch, params.Fields.toDomain())

			msg := fmt.Sprintf("Completed %d searches in %dms", result.SearchesCount, result.TotalDurationMs)
			return textResult(msg), result, nil
		})
	}
}
