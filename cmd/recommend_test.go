package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRecommendCmd_Exists verifies getRecommendCmd
// returns a valid command.
func TestGetRecommendCmd_Exists(t *testing.T) {
	cmd := getRecommendCmd()
	require.NotNil(t, cmd,
		"Recommend command should exist")
	assert.Equal(t, "recommend", cmd.Use,
		"Command name should be recommend")
}

// TestGetRecommendCmd_Flags verifies the input and output flags.
func TestGetRecommendCmd_Flags(t *testing.T) {
	cmd := getRecommendCmd()

	data := cmd.Flags().Lookup("data")
	require.NotNil(t, data, "data flag should exist")
	assert.Equal(t, "d", data.Shorthand)

	settings := cmd.Flags().Lookup("settings")
	require.NotNil(t, settings, "settings flag should exist")
	assert.Equal(t, "s", settings.Shorthand)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output, "output flag should exist")
	assert.Equal(t, "o", output.Shorthand)
}

// TestGetRecommendCmd_HasRunE verifies run function is set.
func TestGetRecommendCmd_HasRunE(t *testing.T) {
	cmd := getRecommendCmd()

	assert.NotNil(t, cmd.RunE,
		"RunE should be set")
}

// TestGetRecommendCmd_LongDescription verifies long description.
func TestGetRecommendCmd_LongDescription(t *testing.T) {
	cmd := getRecommendCmd()

	assert.NotEmpty(t, cmd.Long,
		"Long description should not be empty")
	assert.Contains(t, cmd.Long, "goals",
		"Long description should mention goals")
	assert.Contains(t, cmd.Long, "tolerance",
		"Long description should mention tolerances")
}
