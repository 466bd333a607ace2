// Package raiffeisen handles Raiffeisen CSV statement commands
package raiffeisen

import (
	"fmt"

	"fjacquet/raiffeisen-csv/cmd/common"
	"fjacquet/raiffeisen-csv/cmd/root"
	"fjacquet/raiffeisen-csv/internal/raiffeisenparser"

	"github.com/spf13/cobra"
)

// Cmd represents the raiffeisen command
var Cmd = &cobra.Command{
	Use:   "raiffeisen",
	Short: "Parse a Raiffeisen CSV statement",
	Long: `Parse a Raiffeisen (ELBA / Mein ELBA) semicolon separated CSV export and
log a statement summary. Use --log-level debug to see every transaction.`,
	RunE: raiffeisenFunc,
}

func raiffeisenFunc(cmd *cobra.Command, args []string) error {
	log := root.GetLogger()
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application container is not initialized")
	}

	p, err := c.GetParser(raiffeisenparser.PluginName)
	if err != nil {
		return err
	}

	st, err := common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Validate, log)
	if err != nil {
		log.WithError(err).Error("Error processing Raiffeisen CSV file")
		return err
	}
	common.LogSummary(st, log)
	return nil
}
