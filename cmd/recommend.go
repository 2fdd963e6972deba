package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"droscher.com/CocktailGargoyle/pkg/recommend"
)

type RecommendCmd struct {
	ConfigFile string `default:".Cocktail.toml" help:"Path to config file" short:"c"`
	Base       string `help:"Base spirit id"           required:""`
	Glass      string `help:"Glass id"                 required:""`
	AbvLevel   string `help:"Strength level, 0 to 4"   name:"abv-level" required:""`
}

func (r *RecommendCmd) Run(cmdCtx *Context) error {
	logger := newLogger(false, cmdCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := loadConfig(r.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	reference, err := loadCatalog(context.Background(), conf, logger)
	if err != nil {
		return err
	}

	service := recommend.NewService(recommend.NewEngine(reference.JoinedView()))

	response, err := service.HandleRequest(map[string]string{
		recommend.ParamChosenBase:     r.Base,
		recommend.ParamChosenGlass:    r.Glass,
		recommend.ParamChosenAbvLevel: r.AbvLevel,
	})
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(response); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}

	logger.Debug("printed recommendations", zap.Int("count", len(response.Results)))

	return nil
}
