package domain

import "encoding/json"

// SearchRequest holds the semantic search parameters accepted by the
// search tools. Every field is optional; the upstream API enforces
// field semantics.
type SearchRequest struct {
	JobTitle           *string  `json:"job_title,omitempty"`
	Location           *string  `json:"location,omitempty"`
	RadiusKm           *int     `json:"radius_km,omitempty"`
	EmploymentType     []string `json:"employment_type,omitempty"`
	ContractType       []string `json:"contract_type,omitempty"`
	PublishedSinceDays *int     `json:"published_since_days,omitempty"`
	PageSize           *int     `json:"page_size,omitempty"`
	Page               *int     `json:"page,omitempty"`
	Employer           *string  `json:"employer,omitempty"`
	Branch             *string  `json:"branch,omitempty"`
}

// JobSummary is one search result row. Immutable once produced.
type JobSummary struct {
	ReferenceNumber string  `json:"reference_number"`
	Title           string  `json:"title"`
	Employer        string  `json:"employer"`
	Location        string  `json:"location"`
	PublishedDate   *string `json:"published_date,omitempty"`
	ExternalURL     *string `json:"external_url,omitempty"`
}

// SearchResult wraps one search call's output
type SearchResult struct {
	TotalResults     *int64       `json:"total_results,omitempty"`
	CurrentPage      *int         `json:"current_page,omitempty"`
	PageSize         *int         `json:"page_size,omitempty"`
	JobsCount        int          `json:"jobs_count"`
	Jobs             []JobSummary `json:"jobs"`
	SearchDurationMs int64        `json:"search_duration_ms"`
}

// JobDetail is the full posting view. The upstream API guarantees none
// of these attributes, so absence is an expected state for every field.
type JobDetail struct {
	ReferenceNumber       string  `json:"reference_number"`
	Title                 *string `json:"title,omitempty"`
	Description           *string `json:"description,omitempty"`
	Employer              *string `json:"employer,omitempty"`
	Location              *string `json:"location,omitempty"`
	EmploymentType        *string `json:"employment_type,omitempty"`
	ContractType          *string `json:"contract_type,omitempty"`
	StartDate             *string `json:"start_date,omitempty"`
	ApplicationDeadline   *string `json:"application_deadline,omitempty"`
	ContactInfo           *string `json:"contact_info,omitempty"`
	ExternalURL           *string `json:"external_url,omitempty"`
	EmployerProfileURL    *string `json:"employer_profile_url,omitempty"`
	PartnerURL            *string `json:"partner_url,omitempty"`
	Salary                *string `json:"salary,omitempty"`
	ContractDuration      *string `json:"contract_duration,omitempty"`
	TakeoverOpportunity   *bool   `json:"takeover_opportunity,omitempty"`
	JobType               *string `json:"job_type,omitempty"`
	OpenPositions         *int    `json:"open_positions,omitempty"`
	CompanySize           *string `json:"company_size,omitempty"`
	EmployerDescription   *string `json:"employer_description,omitempty"`
	Branch                *string `json:"branch,omitempty"`
	PublishedDate         *string `json:"published_date,omitempty"`
	FirstPublished        *string `json:"first_published,omitempty"`
	OnlyForDisabled       *bool   `json:"only_for_disabled,omitempty"`
	Fulltime              *bool   `json:"fulltime,omitempty"`
	EntryPeriod           *string `json:"entry_period,omitempty"`
	PublicationPeriod     *string `json:"publication_period,omitempty"`
	IsMinorEmployment     *bool   `json:"is_minor_employment,omitempty"`
	IsTempAgency          *bool   `json:"is_temp_agency,omitempty"`
	IsPrivateAgency       *bool   `json:"is_private_agency,omitempty"`
	CareerChangerSuitable *bool   `json:"career_changer_suitable,omitempty"`
	CipherNumber          *string `json:"cipher_number,omitempty"`

	// RawData passes the upstream payload through unmodified so callers
	// can reach fields this struct does not model.
	RawData json.RawMessage `json:"raw_data,omitempty"`
}

// FieldFilter selects which JobDetail attributes survive projection.
// Include is applied first, then Exclude over its result. Unknown
// names are ignored.
type FieldFilter struct {
	IncludeFields []string `json:"include_fields,omitempty"`
	ExcludeFields []string `json:"exclude_fields,omitempty"`
}

// IsZero reports whether the filter would pass every field through
func (f FieldFilter) IsZero() bool {
	return len(f.IncludeFields) == 0 && len(f.ExcludeFields) == 0
}

// SearchWithDetailsResult combines a search with detail expansion.
// The two durations let callers tell the network cost sources apart.
type SearchWithDetailsResult struct {
	TotalResults      *int64      `json:"total_results,omitempty"`
	CurrentPage       *int        `json:"current_page,omitempty"`
	PageSize          *int        `json:"page_size,omitempty"`
	JobsCount         int         `json:"jobs_count"`
	Jobs              []JobDetail `json:"jobs"`
	SearchDurationMs  int64       `json:"search_duration_ms"`
	DetailsDurationMs int64       `json:"details_duration_ms"`
}

// BatchSearchItem is one named search inside a batch call
type BatchSearchItem struct {
	Name               string   `json:"name"`
	JobTitle           *string  `json:"job_title,omitempty"`
	Location           *string  `json:"location,omitempty"`
	RadiusKm           *int     `json:"radius_km,omitempty"`
	EmploymentType     []string `json:"employment_type,omitempty"`
	ContractType       []string `json:"contract_type,omitempty"`
	PublishedSinceDays *int     `json:"published_since_days,omitempty"`
	Employer           *string  `json:"employer,omitempty"`
	Branch             *string  `json:"branch,omitempty"`
}

// BatchSearchItemResult is one item's slot in the batch response. A
// failed search populates Error and leaves the rest empty; siblings
// are unaffected.
type BatchSearchItemResult struct {
	SearchName   string      `json:"search_name"`
	TotalResults *int64      `json:"total_results,omitempty"`
	JobsCount    int         `json:"jobs_count"`
	Jobs         []JobDetail `json:"jobs"`
	Error        *string     `json:"error,omitempty"`
}

// BatchSearchResult aggregates all batch items, in input order
type BatchSearchResult struct {
	SearchesCount   int                     `json:"searches_count"`
	Results         []BatchSearchItemResult `json:"results"`
	TotalDurationMs int64                   `json:"total_duration_ms"`
}

// ServerStatus reports uptime and upstream connectivity
type ServerStatus struct {
	ServerName          string `json:"server_name"`
	Version             string `json:"version"`
	UptimeSeconds       int64  `json:"uptime_seconds"`
	APIURL              string `json:"api_url"`
	APIConnectionStatus string `json:"api_connection_status"`
	ToolsCount          int    `json:"tools_count"`
}
