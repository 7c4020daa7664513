package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuideRecordType(t *testing.T) {
	// Verify GuideRecord struct can be instantiated
	rec := GuideRecord{
		Plan:     "diet",
		UserName: "Jordan",
		Pages:    12,
	}

	assert.Equal(t, "diet", rec.Plan)
	assert.Equal(t, "Jordan", rec.UserName)
	assert.Equal(t, 12, rec.Pages)
	assert.True(t, rec.CreatedAt.IsZero())
}

func TestChecksumPDF(t *testing.T) {
	a := ChecksumPDF([]byte("%PDF-1.3 fake"))
	b := ChecksumPDF([]byte("%PDF-1.3 fake"))
	c := ChecksumPDF([]byte("%PDF-1.3 other"))

	assert.Equal(t, a, b, "checksum should be deterministic")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64, "hex SHA-256 is 64 characters")
}
