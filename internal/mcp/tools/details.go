package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain/search"
	"github.com/stellenwerk/jobsuche-mcp/pkg/logging"
)

// GetJobDetailsParams defines the arguments for the get_job_details tool
type GetJobDetailsParams struct {
	ReferenceNumber string `json:"reference_number" jsonschema:"Job reference number (refnr) from search results"`
}

// WithJobDetails registers the get_job_details tool
func WithJobDetails(svc search.Service, logger *logging.Logger) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get_job_details",
			Description: "Get the full posting for one job, including description, salary, and contract flags",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetJobDetailsParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			reqID := uuid.NewString()
			logger.Info("get_job_details called", "req_id", reqID, "refnr", params.ReferenceNumber)

			detail, err := svc.GetDetail(ctx, params.ReferenceNumber)
			if err != nil {
				logger.Error("get_job_details failed", "req_id", reqID, "refnr", params.ReferenceNumber, "err", err)
				return nil, nil, err
			}

			msg := fmt.Sprintf("Retrieved details for %s", params.ReferenceNumber)
			return textResult(msg), detail, nil
		})
	}
}
