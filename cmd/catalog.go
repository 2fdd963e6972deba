package cmd

import (
	"context"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"droscher.com/CocktailGargoyle/configs"
	"droscher.com/CocktailGargoyle/pkg/catalog"
	"droscher.com/CocktailGargoyle/pkg/repository"
)

func newLogger(production, debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if production {
		logConfig = zap.NewProductionConfig()
	}

	if debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

func loadConfig(configFile string, logger *zap.Logger) (*configs.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	return configs.GetConfig(configFile, logger)
}

// loadCatalog returns the reference catalog from the configured source.
func loadCatalog(ctx context.Context, conf *configs.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	if conf.Catalog.Source != configs.SourceDatabase {
		logger.Info("using builtin catalog")

		return catalog.Default(), nil
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, err
	}
	defer repo.Close()

	reference, err := repo.LoadCatalog(ctx)
	if err != nil {
		logger.Error("error loading catalog from database", zap.Error(err))

		return nil, err
	}

	logger.Info("loaded catalog from database", zap.Int("cocktails", len(reference.Cocktails())))

	return reference, nil
}
