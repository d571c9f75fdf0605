package search

import (
	"context"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain"
)

// fetchDetails follows up at most limit references with full detail
// lookups. References are taken in upstream result order, so
// earlier-ranked results win the detail budget. A failed lookup is
// logged and skipped; the survivors keep their relative order, and
// returning fewer than limit details is never an error.
func (s *service) fetchDetails(ctx context.Context, refs []string, limit int) []domain.JobDetail {
	if limit > len(refs) {
		limit = len(refs)
	}
	if limit < 0 {
		limit = 0
	}

	details := make([]domain.JobDetail, 0, limit)
	for _, ref := range refs[:limit] {
		detail, err := s.GetDetail(ctx, ref)
		if err != nil {
			s.logger.Warn("detail lookup failed, skipping", "refnr", ref, "err", err)
			continue
		}
		details = append(details, detail)
	}

	return details
}

func referenceNumbers(jobs []domain.JobSummary) []string {
	refs := make([]string, 0, len(jobs))
	for _, j := range jobs {
		refs = append(refs, j.ReferenceNumber)
	}
	return refs
}
