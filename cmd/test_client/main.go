package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobsuche-mcp-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testServerStatus(ctx, session)
	testSearchJobs(ctx, session)
	testBatchSearch(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: tools/list")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("ListTools failed: %v", err)
		return
	}

	for _, tool := range res.Tools {
		fmt.Printf("  %s — %s\n", tool.Name, tool.Description)
	}
}

func testServerStatus(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: get_server_status")
	callTool(ctx, session, "get_server_status", map[string]any{})
}

func testSearchJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: search_jobs")
	callTool(ctx, session, "search_jobs", map[string]any{
		"job_title":       "Software Engineer",
		"location":        "Berlin",
		"employment_type": []string{"fulltime"},
		"page_size":       5,
	})
}

func testBatchSearch(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: batch_search_jobs")
	callTool(ctx, session, "batch_search_jobs", map[string]any{
		"searches": []map[string]any{
			{"name": "berlin-it", "job_title": "Entwickler", "location": "Berlin"},
			{"name": "hamburg-care", "job_title": "Pflege", "location": "Hamburg"},
		},
		"max_details_per_search": 2,
	})
}

func callTool(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}

	for _, content := range res.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Printf("  %s\n", text.Text)
		}
	}

	if res.StructuredContent != nil {
		pretty, _ := json.MarshalIndent(res.StructuredContent, "  ", "  ")
		fmt.Printf("  %s\n", pretty)
	}
}
