package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/CocktailGargoyle/pkg/catalog"
	"droscher.com/CocktailGargoyle/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".Cocktail.toml" help:"Path to config file" short:"c"`
	SkipSeed   bool   `help:"Only create the tables"`
}

func (m *MigrateCmd) Run(cmdCtx *Context) error {
	logger := newLogger(false, cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := loadConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	ctx := context.Background()

	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	if m.SkipSeed {
		return nil
	}

	return repo.SeedCatalog(ctx, catalog.Default())
}
