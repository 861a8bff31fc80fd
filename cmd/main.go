package main

import (
	"Food-Wastage-Management/cmd/config"
	migration "Food-Wastage-Management/cmd/database/migrate"
	"Food-Wastage-Management/cmd/database/seed"
	"Food-Wastage-Management/internal/store"
	"Food-Wastage-Management/internal/utils"
	"Food-Wastage-Management/pkg/crud"
	"Food-Wastage-Management/pkg/jwt"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	var (
		configPath  = flag.String("config", "config.yaml", "path to the YAML config file")
		migrate     = flag.Bool("migrate", false, "create the dashboard tables and exit")
		seedDir     = flag.String("seed", "", "load the CSV exports in this directory and exit")
		issueToken  = flag.String("issue-token", "", "print an operator token for this subject and exit")
		tokenExpiry = flag.Duration("token-ttl", 12*time.Hour, "lifetime of tokens printed by -issue-token")
	)
	flag.Parse()

	utils.LoadConfigFrom(*configPath)
	log := utils.InitLogger()

	if *issueToken != "" {
		token, err := jwt.NewJWTService(utils.GetConfig("JWT_SECRET")).GenerateOperatorToken(*issueToken, *tokenExpiry)
		if err != nil {
			log.Fatal().Err(err).Msg("could not issue operator token")
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ready, err := config.ConnectDB(ctx, log)
	if err != nil {
		// nothing is served until the store is reachable
		os.Exit(1)
	}

	if *migrate || *seedDir != "" {
		if err := runMaintenance(ctx, ready, *migrate, *seedDir, log); err != nil {
			log.Fatal().Err(err).Msg("maintenance failed")
		}
		return
	}

	app, err := config.NewApp(ready, log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build app")
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := ":" + utils.GetConfig("APP_PORT")
	log.Info().Str("addr", addr).Msg("starting server")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func runMaintenance(ctx context.Context, ready store.Ready, migrate bool, seedDir string, log zerolog.Logger) error {
	executor := store.NewExecutor(ready, log)
	if migrate {
		if err := executor.WithConnection(ctx, "migrate", migration.Migrate); err != nil {
			return err
		}
	}
	if seedDir != "" {
		policy := crud.DropEmptyAndZero
		if utils.GetBool("CRUD_KEEP_EXPLICIT_ZERO") {
			policy = crud.DropUnsetOnly
		}
		crudService := crud.NewCrudService(crud.NewCrudRepository(executor), policy, log)
		if _, err := seed.Seed(ctx, seedDir, crudService, log); err != nil {
			return err
		}
	}
	return nil
}
