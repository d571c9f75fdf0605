package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain"
)

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func TestResolvePageSize(t *testing.T) {
	// requested wins when within bounds
	assert.Equal(t, 10, ResolvePageSize(intptr(10), 25, 100))

	// default applies when nothing was requested
	assert.Equal(t, 25, ResolvePageSize(nil, 25, 100))

	// the configured maximum is a hard ceiling
	assert.Equal(t, 100, ResolvePageSize(intptr(500), 25, 100))
	assert.Equal(t, 50, ResolvePageSize(intptr(51), 25, 50))

	// degenerate requests are clamped to the floor
	assert.Equal(t, 1, ResolvePageSize(intptr(0), 25, 100))
	assert.Equal(t, 1, ResolvePageSize(intptr(-3), 25, 100))
}

func TestBuildQuery_EndToEnd(t *testing.T) {
	req := domain.SearchRequest{
		JobTitle:       strptr("Software Engineer"),
		Location:       strptr("Berlin"),
		EmploymentType: []string{"fulltime"},
	}

	opts := BuildQuery(req, 25, 100)

	assert.Equal(t, "Software Engineer", opts.Was)
	assert.Equal(t, "Berlin", opts.Wo)
	assert.Equal(t, []string{"vz"}, opts.Arbeitszeit)
	assert.Equal(t, 25, opts.Size)
	assert.Nil(t, opts.Umkreis)
	assert.Nil(t, opts.VeroeffentlichtSeit)
	assert.Nil(t, opts.Page)
}

func TestBuildQuery_CombinesTermsInFixedOrder(t *testing.T) {
	req := domain.SearchRequest{
		JobTitle: strptr("Kundenberaterin"),
		Employer: strptr("BARMER"),
		Branch:   strptr("Gesundheitswesen"),
	}

	opts := BuildQuery(req, 25, 100)
	assert.Equal(t, "Kundenberaterin BARMER Gesundheitswesen", opts.Was)
}

func TestBuildQuery_OmitsEmptyFreeText(t *testing.T) {
	opts := BuildQuery(domain.SearchRequest{Location: strptr("München")}, 25, 100)
	assert.Empty(t, opts.Was)
	assert.Equal(t, "München", opts.Wo)
}

func TestBuildQuery_SkipsBlankTerms(t *testing.T) {
	req := domain.SearchRequest{
		JobTitle: strptr(""),
		Employer: strptr("Siemens"),
	}

	opts := BuildQuery(req, 25, 100)
	assert.Equal(t, "Siemens", opts.Was)
}

func TestBuildQuery_DropsUnknownTags(t *testing.T) {
	req := domain.SearchRequest{
		EmploymentType: []string{"gig", "freelance"},
		ContractType:   []string{"zero-hours"},
	}

	opts := BuildQuery(req, 25, 100)
	assert.Nil(t, opts.Arbeitszeit)
	assert.Nil(t, opts.Befristung)
}

func TestBuildQuery_ContractTypes(t *testing.T) {
	req := domain.SearchRequest{
		ContractType: []string{"permanent", "temporary"},
	}

	opts := BuildQuery(req, 25, 100)
	assert.Equal(t, []string{"2", "1"}, opts.Befristung)
}

func TestBuildQuery_PassesPaginationAndRadius(t *testing.T) {
	req := domain.SearchRequest{
		RadiusKm:           intptr(50),
		PublishedSinceDays: intptr(7),
		PageSize:           intptr(10),
		Page:               intptr(2),
	}

	opts := BuildQuery(req, 25, 100)
	assert.Equal(t, 50, *opts.Umkreis)
	assert.Equal(t, 7, *opts.VeroeffentlichtSeit)
	assert.Equal(t, 10, opts.Size)
	assert.Equal(t, 2, *opts.Page)
}
