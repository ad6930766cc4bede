package ioworkload_test

import (
	"testing"

	"github.com/ixsel/ixsel/internal/ioworkload"
	"github.com/ixsel/ixsel/pkg/optimizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReport_WireKeys(t *testing.T) {
	covered := "idx-new"
	rep := &optimizer.Report{
		Goals: []optimizer.GoalReport{
			{Name: "Minimize Total Cost", Value: 141.2},
		},
		Scans: []optimizer.ScanReport{
			{ScanID: "scan-a", Cost: 42.2, BestCoveredBy: &covered},
			{ScanID: "scan-b", Cost: 99},
		},
		Indexes: optimizer.IndexesReport{
			Possible: []optimizer.IndexReport{
				{IndexOID: "idx-new", Selected: true},
			},
		},
	}

	data, err := ioworkload.FormatReport(rep)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"Scan ID"`)
	assert.Contains(t, out, `"Best Covered By"`)
	assert.Contains(t, out, `"Index OID"`)
	assert.Contains(t, out, `"Possible Indexes"`)
	assert.Contains(t, out, `"Statistics"`)
	assert.NotContains(t, out, `"BestCoveredBy"`,
		"Go field names must not leak into the wire format")
}

func TestFormatReport_OmitsUncoveredIndex(t *testing.T) {
	rep := &optimizer.Report{
		Scans: []optimizer.ScanReport{{ScanID: "scan-b", Cost: 99}},
	}

	data, err := ioworkload.FormatReport(rep)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Best Covered By",
		"uncovered scans should omit the key entirely")
}
