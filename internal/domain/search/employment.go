package search

import "strings"

// EmploymentType is the upstream working-time code
type EmploymentType string

const (
	FullTime   EmploymentType = "vz"
	PartTime   EmploymentType = "tz"
	MiniJob    EmploymentType = "mj"
	HomeOffice EmploymentType = "ho"
	ShiftWork  EmploymentType = "snw"
)

// ContractType is the upstream befristung code
type ContractType string

const (
	Temporary ContractType = "1"
	Permanent ContractType = "2"
)

// ParseEmploymentType maps a semantic tag onto the upstream code.
// Matching is case-insensitive; unknown tags report false.
func ParseEmploymentType(tag string) (EmploymentType, bool) {
	switch strings.ToLower(tag) {
	case "fulltime", "full", "vollzeit", "vz":
		return FullTime, true
	case "parttime", "part", "teilzeit", "tz":
		return PartTime, true
	case "mini", "minijob", "mini_job":
		return MiniJob, true
	case "home", "homeoffice", "home_office", "ho":
		return HomeOffice, true
	case "shift", "schicht", "snw":
		return ShiftWork, true
	default:
		return "", false
	}
}

// ParseContractType maps a semantic tag onto the upstream code
func ParseContractType(tag string) (ContractType, bool) {
	switch strings.ToLower(tag) {
	case "permanent", "unbefristet", "unlimited":
		return Permanent, true
	case "temporary", "temp", "befristet":
		return Temporary, true
	default:
		return "", false
	}
}

// normalizeEmploymentTypes converts semantic tags to upstream codes,
// silently dropping anything unmapped. Nil when nothing survives so
// the clause is omitted from the query.
func normalizeEmploymentTypes(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if code, ok := ParseEmploymentType(tag); ok {
			out = append(out, string(code))
		}
	}
	return out
}

func normalizeContractTypes(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if code, ok := ParseContractType(tag); ok {
			out = append(out, string(code))
		}
	}
	return out
}
