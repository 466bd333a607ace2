package raiffeisen_test

import (
	"testing"

	"fjacquet/raiffeisen-csv/cmd/raiffeisen"
	"fjacquet/raiffeisen-csv/cmd/root"
	"fjacquet/raiffeisen-csv/internal/config"
	"fjacquet/raiffeisen-csv/internal/container"
	"fjacquet/raiffeisen-csv/internal/logging"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaiffeisenCommand_Metadata(t *testing.T) {
	assert.Equal(t, "raiffeisen", raiffeisen.Cmd.Use)
	assert.Contains(t, raiffeisen.Cmd.Short, "Raiffeisen CSV")
	assert.Contains(t, raiffeisen.Cmd.Long, "Mein ELBA")
	assert.NotNil(t, raiffeisen.Cmd.RunE)
}

// withState swaps the root globals for the duration of a test.
func withState(t *testing.T, input string, c *container.Container, log logging.Logger) {
	t.Helper()
	originalInput := root.SharedFlags.Input
	originalContainer := root.AppContainer
	originalLog := root.Log
	t.Cleanup(func() {
		root.SharedFlags.Input = originalInput
		root.AppContainer = originalContainer
		root.Log = originalLog
	})

	root.SharedFlags.Input = input
	root.AppContainer = c
	root.Log = log
}

func TestRaiffeisenCommand_NilContainer(t *testing.T) {
	withState(t, "statement.csv", nil, logging.NewMockLogger())

	err := raiffeisen.Cmd.RunE(&cobra.Command{}, nil)
	assert.ErrorContains(t, err, "container is not initialized")
}

func TestRaiffeisenCommand_ParsesSample(t *testing.T) {
	logger := logging.NewMockLogger()
	cfg := config.Default()
	c, err := container.NewContainer(cfg, container.WithLogger(logger))
	require.NoError(t, err)
	withState(t, "../../internal/raiffeisenparser/testdata/raiffeisen-meinelba.csv", c, logger)

	require.NoError(t, raiffeisen.Cmd.RunE(&cobra.Command{}, nil))
	assert.True(t, logger.HasEntry("INFO", "Statement parsed"))

	transactions := 0
	for _, e := range logger.EntriesByLevel("DEBUG") {
		if e.Message == "Transaction" {
			transactions++
		}
	}
	assert.Equal(t, 4, transactions)
}

func TestRaiffeisenCommand_MissingInput(t *testing.T) {
	logger := logging.NewMockLogger()
	c, err := container.NewContainer(config.Default(), container.WithLogger(logger))
	require.NoError(t, err)
	withState(t, "", c, logger)

	err = raiffeisen.Cmd.RunE(&cobra.Command{}, nil)
	assert.Error(t, err)
	assert.True(t, logger.HasEntry("ERROR", "Error processing Raiffeisen CSV file"))
}
