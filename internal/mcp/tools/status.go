package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain/search"
	"github.com/stellenwerk/jobsuche-mcp/pkg/logging"
)

// GetServerStatusParams defines the arguments for the get_server_status
// tool. The tool takes no parameters.
type GetServerStatusParams struct{}

// WithServerStatus registers the get_server_status tool
func WithServerStatus(svc search.Service, logger *logging.Logger) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get_server_status",
			Description: "Report server uptime, tool count, and upstream API connectivity",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetServerStatusParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			_ = params
			logger.Info("get_server_status called")

			status := svc.Status(ctx)

			msg := fmt.Sprintf("%s: up %ds", status.APIConnectionStatus, status.UptimeSeconds)
			return textResult(msg), status, nil
		})
	}
}
