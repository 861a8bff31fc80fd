package config

import (
	"Food-Wastage-Management/internal/store"
	"Food-Wastage-Management/internal/utils"
	"context"

	"github.com/rs/zerolog"
)

func StoreSettings() (store.Settings, error) {
	driver, err := store.ParseDriver(utils.GetConfig("DB_DRIVER"))
	if err != nil {
		return store.Settings{}, err
	}
	return store.Settings{
		Driver:           driver,
		Host:             utils.GetConfig("DB_HOST"),
		Port:             utils.GetConfig("DB_PORT"),
		User:             utils.GetConfig("DB_USER"),
		Password:         utils.GetConfig("DB_PASSWORD"),
		Database:         utils.GetConfig("DB_NAME"),
		SSLMode:          utils.GetConfig("DB_SSLMODE"),
		StatementTimeout: utils.GetDuration("STATEMENT_TIMEOUT"),
	}, nil
}

// ConnectDB runs the startup connection check against the configured store.
func ConnectDB(ctx context.Context, log zerolog.Logger) (store.Ready, error) {
	settings, err := StoreSettings()
	if err != nil {
		return store.Ready{}, err
	}

	provider := store.NewConnectionProvider(settings, log)
	ready, err := store.Gate(ctx, provider)
	if err != nil {
		log.Error().
			Err(err).
			Str("driver", string(settings.Driver)).
			Str("host", settings.Host).
			Str("port", settings.Port).
			Str("database", settings.Database).
			Msg("database connection failed: check DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME in config.yaml or the environment")
		return store.Ready{}, err
	}
	log.Info().Str("driver", string(settings.Driver)).Str("database", settings.Database).Msg("database connection verified")
	return ready, nil
}
