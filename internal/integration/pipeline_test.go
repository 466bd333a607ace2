package integration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/raiffeisen-csv/internal/config"
	"fjacquet/raiffeisen-csv/internal/container"
	"fjacquet/raiffeisen-csv/internal/logging"
	"fjacquet/raiffeisen-csv/internal/models"
	"fjacquet/raiffeisen-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const testdata = "../raiffeisenparser/testdata"

func newContainer(t *testing.T, mutate func(*config.Config)) (*container.Container, *logging.MockLogger) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	logger := logging.NewMockLogger()
	c, err := container.NewContainer(cfg, container.WithLogger(logger))
	require.NoError(t, err)
	return c, logger
}

// TestPipeline_BothExports runs config, container and plugin over the two
// export flavours and checks the statement aggregates.
func TestPipeline_BothExports(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		charset    string
		lines      int
		endBalance string
	}{
		{"classic ELBA", "raiffeisen.csv", "cp1252", 7, "-157.89"},
		{"Mein ELBA", "raiffeisen-meinelba.csv", "utf-8-sig", 4, "-414.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContainer(t, func(cfg *config.Config) { cfg.Plugin.Charset = tt.charset })
			p, err := c.GetParser("raiffeisen")
			require.NoError(t, err)

			path := filepath.Join(testdata, tt.file)
			valid, err := p.ValidateFormat(path)
			require.NoError(t, err)
			assert.True(t, valid)

			st, err := p.ParseFile(path)
			require.NoError(t, err)
			assert.Len(t, st.Lines, tt.lines)
			assert.True(t, decimal.RequireFromString(tt.endBalance).Equal(st.EndBalance.Decimal))
			assert.True(t, st.EndBalance.Decimal.Equal(st.StartBalance.Decimal.Add(st.Total())))
			assert.False(t, st.EndDate.Before(st.StartDate))

			for _, l := range st.Lines {
				assert.Equal(t, models.KindForAmount(l.Amount), l.TrnType)
				assert.NotEmpty(t, l.ID)
				assert.False(t, l.Date.Before(st.StartDate))
				assert.False(t, l.Date.After(st.EndDate))
			}
		})
	}
}

func TestPipeline_LayoutFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(layoutPath, []byte(`name: elba-with-header
skip_rows: 1
columns:
  date: 0
  memo: 1
  amount: 2
  currency: 3
`), 0600))

	csv, err := charmap.Windows1252.NewEncoder().String(
		"Buchungsdatum;Buchungstext;Betrag;Währung\n" +
			"02.01.2024;Auftraggeber: Österreichische Post AG Verwendungszweck: Gutschrift;15,00;EUR\n" +
			"03.01.2024;Empfänger: Wiener Linien IBAN Empfänger: AT611904300234573201 Verwendungszweck: Jahreskarte;-365,00;EUR\n")
	require.NoError(t, err)
	csvPath := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0600))

	c, _ := newContainer(t, func(cfg *config.Config) {
		cfg.Plugin.Charset = "windows-1252"
		cfg.Plugin.LayoutFile = layoutPath
		cfg.Plugin.IDScheme = models.IDSchemeUUID
	})
	p, err := c.GetParser("raiffeisen")
	require.NoError(t, err)

	st, err := p.ParseFile(csvPath)
	require.NoError(t, err)
	require.Len(t, st.Lines, 2)

	assert.Equal(t, "Österreichische Post AG", st.Lines[0].Payee)
	assert.Equal(t, "Gutschrift", st.Lines[0].Memo)
	assert.Equal(t, "Wiener Linien", st.Lines[1].Payee)
	require.NotNil(t, st.Lines[1].BankAccountTo)
	assert.Equal(t, "AT611904300234573201", st.Lines[1].BankAccountTo.AccountID)
	assert.Len(t, st.Lines[1].ID, 36)
	assert.Equal(t, "-350.00", st.EndBalance.Decimal.StringFixed(2))
}

func TestPipeline_FailFastLeavesNoStatement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("01.02.2024;a;;1,00;EUR\n02.02.2024;b\n"), 0600))

	c, logger := newContainer(t, nil)
	p, err := c.GetParser("raiffeisen")
	require.NoError(t, err)

	st, err := p.ParseFile(path)
	assert.Nil(t, st)

	var shortErr *parsererror.ShortRowError
	require.True(t, errors.As(err, &shortErr), "got %T: %v", err, err)
	assert.Equal(t, 2, shortErr.Line)
	assert.NotEmpty(t, logger.EntriesByLevel("ERROR"))
}
