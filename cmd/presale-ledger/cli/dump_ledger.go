package cli

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tokenforge-io/presale-ledger/internal/config"
	"github.com/tokenforge-io/presale-ledger/internal/db"
)

// DumpLedgerCmd prints every persisted ledger row and the sale state.
// Debug tool; reads the database directly without going through the
// service.
func DumpLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-ledger",
		Short: "Dumps all deposit rows and the sale state to stdout",
		Args:  cobra.ExactArgs(0),
		RunE:  dumpLedger,
	}

	return cmd
}

func dumpLedger(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return err
	}

	deposits, err := dbClient.GetAllDeposits(ctx)
	if err != nil {
		return err
	}
	spew.Dump(deposits)

	state, err := dbClient.GetSaleState(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			log.Info().Msg("no sale state persisted yet")
			return nil
		}
		return err
	}
	spew.Dump(state)

	return nil
}
