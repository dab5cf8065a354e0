package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rl1809/storefront/internal/adapter/handler"
	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/config"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/logger"
)

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "store",
		Short:         "In-memory catalog and ordering simulator",
		Long:          "store seeds an in-memory catalog and one account, then serves a numbered text menu for searching products and placing orders.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runMenu(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Currency, "currency", cfg.Currency, "currency label printed after prices")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "YAML catalog seed (built-in catalog when empty)")
	flags.StringVar(&cfg.Username, "user", cfg.Username, "username of the shopping account")
	flags.StringVar(&cfg.Credential, "credential", cfg.Credential, "credential stored on the shopping account")

	root.AddCommand(&cobra.Command{
		Use:   "catalog",
		Short: "Print the seeded catalog and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
			store, _, err := bootstrap(cfg, log)
			if err != nil {
				return err
			}
			for _, a := range store.Accounts() {
				log.Debug("account", "account_id", a.ID, "username", a.Username)
			}
			for i, p := range store.Products() {
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", i, handler.FormatProduct(p, cfg.Currency))
			}
			return nil
		},
	})

	return root
}

func runMenu(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	log := logger.New(errOut, cfg.LogLevel)

	store, account, err := bootstrap(cfg, log)
	if err != nil {
		return err
	}
	log.Info("store ready",
		"products", len(store.Products()),
		"accounts", len(store.Accounts()),
		"account", account.Username,
	)

	ui := handler.NewConsoleHandler(store, account, in, out, cfg.Currency)
	err = ui.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		log.Info("interrupted, exiting")
		return nil
	case err != nil:
		return fmt.Errorf("menu: %w", err)
	}
	return nil
}

// bootstrap seeds the catalog, registers the configured account and returns it
// as the current account.
func bootstrap(cfg config.Config, log *slog.Logger) (*service.Store, *domain.Account, error) {
	products := storage.DefaultProducts()
	if cfg.CatalogFile != "" {
		loaded, err := storage.LoadSeedFile(cfg.CatalogFile)
		if err != nil {
			return nil, nil, err
		}
		products = loaded
	}

	store := service.NewStore(storage.NewMemoryCatalog(), storage.NewMemoryAccounts(), log)
	for _, p := range products {
		store.AddProduct(p)
	}
	store.AddAccount(domain.NewAccount(cfg.Username, cfg.Credential))

	account, err := store.FindAccount(cfg.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("current account %q: %w", cfg.Username, err)
	}
	return store, account, nil
}
