package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tokenforge-io/presale-ledger/internal/api"
	"github.com/tokenforge-io/presale-ledger/internal/clients/custodyclient"
	"github.com/tokenforge-io/presale-ledger/internal/clients/oracleclient"
	"github.com/tokenforge-io/presale-ledger/internal/clients/strategyclient"
	"github.com/tokenforge-io/presale-ledger/internal/config"
	"github.com/tokenforge-io/presale-ledger/internal/db"
	dbmodel "github.com/tokenforge-io/presale-ledger/internal/db/model"
	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
	"github.com/tokenforge-io/presale-ledger/internal/observability/tracing"
	"github.com/tokenforge-io/presale-ledger/internal/queue"
	"github.com/tokenforge-io/presale-ledger/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the presale ledger server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	// Create a basic zap logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating zap logger")
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	queueManager, err := queue.NewQueueManager(&cfg.Queue, zapLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue manager")
	}
	defer queueManager.Shutdown()

	var oracleClient oracleclient.OracleInterface = oracleclient.NewClient(&cfg.Oracle)
	oracleClient = oracleclient.NewClientWithMetrics(oracleClient)

	var custodyClient custodyclient.CustodyInterface = custodyclient.NewClient(&cfg.Custody)
	custodyClient = custodyclient.NewClientWithMetrics(custodyClient)

	var strategyClient strategyclient.StrategyInterface = strategyclient.NewClient(&cfg.Strategy)
	strategyClient = strategyclient.NewClientWithMetrics(strategyClient)

	service := services.NewService(cfg, dbClient, oracleClient, custodyClient, strategyClient, queueManager)

	if err := service.LoadState(ctx); err != nil {
		log.Fatal().Err(err).Msg("error while restoring ledger state")
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartStatusPoller(ctx)
	service.StartPriceWarmPoller(ctx)

	return api.New(cfg, service).Start(ctx)
}
