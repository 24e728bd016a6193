package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "stoploss_quoting/docs"
	"stoploss_quoting/internal/adapter/http/routes"
	"stoploss_quoting/internal/config"
	"stoploss_quoting/internal/infrastructure/database"
	"stoploss_quoting/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// @title           Stop-Loss Quoting API
// @version         1.0
// @description     Stop-loss quoting, underwriting and policy binding backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey TenantID
// @in header
// @name X-Tenant-ID
// @description Tenant identifier. Defaults to DEFAULT_TENANT when omitted.

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stoploss",
		Short:        "Stop-loss quoting and underwriting service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(serveCmd())
	root.AddCommand(tablesCmd())
	root.AddCommand(scoreCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func tablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "DynamoDB table management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create the DynamoDB tables and indexes if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			ddb, err := database.ConnectDynamoDB(ctx, dynamoSettings(cfg))
			if err != nil {
				return err
			}
			if err := database.EnsureTables(ctx, ddb, tableNames(cfg)); err != nil {
				return err
			}
			logger.Info().Msg("tables ready")
			return nil
		},
	})
	return cmd
}

func scoreCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a group offline and print its risk assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open %s: %w", file, err)
				}
				defer f.Close()
				in = f
			}
			return runScore(in, cmd.OutOrStdout(), nil)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with {\"group\": {...}, \"members\": [...]} (default stdin)")
	return cmd
}

func runServe(ctx context.Context) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting stoploss api")
	return routes.Run(ctx, cfg, logger)
}

func bootstrap() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}
	logger := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return cfg, logger, nil
}

func dynamoSettings(cfg *config.Config) database.Settings {
	return database.Settings{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	}
}

func tableNames(cfg *config.Config) database.TableNames {
	return database.TableNames{
		Groups:   cfg.GroupsTable,
		Members:  cfg.MembersTable,
		Quotes:   cfg.QuotesTable,
		Reviews:  cfg.ReviewsTable,
		Policies: cfg.PoliciesTable,
	}
}
