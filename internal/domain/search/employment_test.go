package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmploymentType(t *testing.T) {
	cases := []struct {
		tag  string
		want EmploymentType
	}{
		{"fulltime", FullTime},
		{"full", FullTime},
		{"vollzeit", FullTime},
		{"VOLLZEIT", FullTime},
		{"vz", FullTime},
		{"parttime", PartTime},
		{"part", PartTime},
		{"teilzeit", PartTime},
		{"tz", PartTime},
		{"mini", MiniJob},
		{"minijob", MiniJob},
		{"mini_job", MiniJob},
		{"MINI_JOB", MiniJob},
		{"home", HomeOffice},
		{"homeoffice", HomeOffice},
		{"home_office", HomeOffice},
		{"ho", HomeOffice},
		{"shift", ShiftWork},
		{"schicht", ShiftWork},
		{"snw", ShiftWork},
		{"Shift", ShiftWork},
	}

	for _, tc := range cases {
		got, ok := ParseEmploymentType(tc.tag)
		assert.True(t, ok, "tag %q should map", tc.tag)
		assert.Equal(t, tc.want, got, "tag %q", tc.tag)
	}
}

func TestParseEmploymentType_Unknown(t *testing.T) {
	for _, tag := range []string{"invalid", "", "fulltime ", "night"} {
		_, ok := ParseEmploymentType(tag)
		assert.False(t, ok, "tag %q should not map", tag)
	}
}

func TestParseContractType(t *testing.T) {
	cases := []struct {
		tag  string
		want ContractType
	}{
		{"permanent", Permanent},
		{"unbefristet", Permanent},
		{"UNBEFRISTET", Permanent},
		{"temporary", Temporary},
		{"temp", Temporary},
		{"befristet", Temporary},
	}

	for _, tc := range cases {
		got, ok := ParseContractType(tc.tag)
		assert.True(t, ok, "tag %q should map", tc.tag)
		assert.Equal(t, tc.want, got, "tag %q", tc.tag)
	}

	_, ok := ParseContractType("freelance")
	assert.False(t, ok)
}

func TestNormalizeEmploymentTypes(t *testing.T) {
	got := normalizeEmploymentTypes([]string{"fulltime", "nonsense", "TZ"})
	assert.Equal(t, []string{"vz", "tz"}, got)

	assert.Nil(t, normalizeEmploymentTypes([]string{"nonsense"}))
	assert.Nil(t, normalizeEmploymentTypes(nil))
}
