package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRecords_TrimsAndDropsBrokenRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.json")
	data := `[
		{"source": "cipc", "source_id": "100", "name": "  Acme Compliance  "},
		{"source": "cipc", "source_id": "101", "name": ""},
		{"source": "", "source_id": "102", "name": "No Source"},
		{"source": "yellosa", "source_id": " 103 ", "name": "Trimmed IDs"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	records, err := loadRecords(path)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Acme Compliance", records[0].Name)
	assert.Equal(t, "103", records[1].SourceID)
}

func TestLoadRecords_MergedProvenanceKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged_companies.json")
	data := `[
		{"_source": "yep", "_source_id": "12345", "name": "Acme Compliance", "city": "Cape Town", "latitude": -33.92},
		{"_source": "cylex", "_source_id": "67890", "name": "Beta Audit", "categories": ["audit", "tax"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	records, err := loadRecords(path)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "yep", records[0].Source)
	assert.Equal(t, "12345", records[0].SourceID)
	require.NotNil(t, records[0].City)
	assert.Equal(t, "Cape Town", *records[0].City)
	require.NotNil(t, records[0].Latitude)
	assert.InDelta(t, -33.92, *records[0].Latitude, 0.001)
	assert.Equal(t, []string{"audit", "tax"}, records[1].Categories)
}

func TestLoadRecords_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not an array"), 0o644))

	_, err := loadRecords(path)
	assert.Error(t, err)
}

func TestProgressFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".import_progress")

	// No file yet = start from the beginning
	assert.Equal(t, 0, readProgress(path))

	require.NoError(t, writeProgress(path, 7))
	assert.Equal(t, 7, readProgress(path))

	// Garbage content resets to zero instead of crashing the import
	require.NoError(t, os.WriteFile(path, []byte("not-a-number"), 0o644))
	assert.Equal(t, 0, readProgress(path))
}
