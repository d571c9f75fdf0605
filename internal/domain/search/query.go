package search

import (
	"strings"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain"
	"github.com/stellenwerk/jobsuche-mcp/pkg/jobsuche"
)

// BuildQuery translates loosely-specified semantic parameters into the
// upstream query grammar. The transformation is total: invalid or
// unmapped inputs degrade to omitted clauses instead of erroring.
func BuildQuery(req domain.SearchRequest, defaultPageSize, maxPageSize int) jobsuche.SearchOptions {
	opts := jobsuche.SearchOptions{}

	// Free-text terms are combined in a fixed order: title, employer, branch.
	terms := make([]string, 0, 3)
	for _, t := range []*string{req.JobTitle, req.Employer, req.Branch} {
		if t != nil && *t != "" {
			terms = append(terms, *t)
		}
	}
	opts.Was = strings.Join(terms, " ")

	if req.Location != nil {
		opts.Wo = *req.Location
	}

	opts.Umkreis = req.RadiusKm
	opts.Arbeitszeit = normalizeEmploymentTypes(req.EmploymentType)
	opts.Befristung = normalizeContractTypes(req.ContractType)
	opts.VeroeffentlichtSeit = req.PublishedSinceDays

	// Page size is the only field that is always sent.
	opts.Size = ResolvePageSize(req.PageSize, defaultPageSize, maxPageSize)
	opts.Page = req.Page

	return opts
}

// ResolvePageSize clamps the requested page size into [1, max]. The
// configured maximum is a hard ceiling regardless of what was asked.
func ResolvePageSize(requested *int, defaultSize, maxSize int) int {
	size := defaultSize
	if requested != nil {
		size = *requested
	}

	if size > maxSize {
		size = maxSize
	}
	if size < 1 {
		size = 1
	}

	return size
}
