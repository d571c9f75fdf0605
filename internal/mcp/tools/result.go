package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// FieldFilterParams selects which detail attributes are returned
type FieldFilterParams struct {
	IncludeFields []string `json:"include_fields,omitempty" jsonschema:"If set, only these fields are returned"`
	ExcludeFields []string `json:"exclude_fields,omitempty" jsonschema:"These fields are omitted from the response"`
}

func (f *FieldFilterParams) toDomain() domain.FieldFilter {
	if f == nil {
		return domain.FieldFilter{}
	}
	return domain.FieldFilter{
		IncludeFields: f.IncludeFields,
		ExcludeFields: f.ExcludeFields,
	}
}
