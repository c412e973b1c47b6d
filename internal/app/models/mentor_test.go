package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func centsPtr(v int64) *int64 { return &v }

func TestFormatHourlyRate(t *testing.T) {
	assert.Equal(t, "Contact for pricing", FormatHourlyRate(nil))
	assert.Equal(t, "$45", FormatHourlyRate(centsPtr(4500)))
	assert.Equal(t, "$49.50", FormatHourlyRate(centsPtr(4950)))
	assert.Equal(t, "$0", FormatHourlyRate(centsPtr(0)))
	assert.Equal(t, "$1,200", FormatHourlyRate(centsPtr(120000)))
}

func TestMentorInitials(t *testing.T) {
	assert.Equal(t, "JD", MentorInitials(strPtr("Jane Doe")))
	assert.Equal(t, "M", MentorInitials(strPtr("Madonna")))
	assert.Equal(t, "?", MentorInitials(nil))
	assert.Equal(t, "?", MentorInitials(strPtr("   ")))
	assert.Equal(t, "MA", MentorInitials(strPtr("mary ann smith")))
	assert.Equal(t, "ÉZ", MentorInitials(strPtr("élodie zola")))
}

func TestMentor_IsListed(t *testing.T) {
	assert.True(t, (&Mentor{IsActive: true, Status: MentorStatusActive}).IsListed())
	assert.False(t, (&Mentor{IsActive: false, Status: MentorStatusActive}).IsListed())
	assert.False(t, (&Mentor{IsActive: true, Status: "paused"}).IsListed())
}

func TestApplicationStatus_IsOutstanding(t *testing.T) {
	assert.True(t, ApplicationPending.IsOutstanding())
	assert.True(t, ApplicationApproved.IsOutstanding())
	assert.False(t, ApplicationRejected.IsOutstanding())
}
