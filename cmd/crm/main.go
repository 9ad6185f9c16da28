// Command crm is the Epic Events CRM command-line client. Each invocation
// loads the stored session, verifies it, runs one gated operation against
// the local database, and exits.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/epicevents/crm-system/internal/cli"
	"github.com/epicevents/crm-system/internal/core/service"
	"github.com/epicevents/crm-system/internal/infrastructure/db/sqlite"
	"github.com/epicevents/crm-system/internal/infrastructure/session"
	"github.com/epicevents/crm-system/internal/pkg/config"
	"github.com/epicevents/crm-system/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "crm:", cli.MessageFor(err))
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := sqlite.Migrate(ctx, db); err != nil {
		return err
	}

	users := sqlite.NewUserRepository(db)
	clients := sqlite.NewClientRepository(db)
	contracts := sqlite.NewContractRepository(db)
	events := sqlite.NewEventRepository(db)

	sessions := session.NewFileStore(cfg.SessionFile)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := service.NewHasher()
	guard := service.NewGuard(sessions, tokens, log)

	app := &cli.App{
		Auth:      service.NewAuthService(users, hasher, tokens, sessions, guard, log),
		Users:     service.NewUserService(users, hasher, guard, log),
		Clients:   service.NewClientService(clients, guard, log),
		Contracts: service.NewContractService(contracts, guard, log),
		Events:    service.NewEventService(events, users, guard, log),
		Log:       log,
	}

	return cli.NewRoot(app).ExecuteContext(ctx)
}
