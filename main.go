package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/CocktailGargoyle/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Cocktail Gargoyle"), kong.Description("CocktailGargoyle recommends cocktails by base spirit, glass and strength."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
