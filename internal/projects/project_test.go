package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, st)

	_, err = ParseStatus("archived")
	assert.Error(t, err)
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{
		"name":     FieldName,
		"Project":  FieldName,
		"STATUS":   FieldStatus,
		"progress": FieldProgress,
		"owner":    FieldOwner,
	} {
		got, err := ParseField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseField("id")
	assert.Error(t, err)
}

func TestProject_Validate(t *testing.T) {
	ok := Project{ID: 1, Name: "A", Status: StatusActive, Progress: 0, Owner: "x"}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Progress = 101
	assert.ErrorContains(t, bad.Validate(), "outside 0-100")

	bad = ok
	bad.Status = "Archived"
	assert.ErrorContains(t, bad.Validate(), "unknown status")

	bad = ok
	bad.Name = "  "
	assert.ErrorContains(t, bad.Validate(), "empty name")
}

func TestValidateAll_DuplicateIDs(t *testing.T) {
	rows := sampleRows()
	rows[1].ID = rows[0].ID
	assert.ErrorContains(t, ValidateAll(rows), "duplicate project id 1")
	assert.NoError(t, ValidateAll(sampleRows()))
}
