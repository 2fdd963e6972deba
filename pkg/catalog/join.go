package catalog

import (
	"slices"

	"droscher.com/CocktailGargoyle/pkg/model"
)

// BuildJoinedView left joins every cocktail with its base and glass. A
// cocktail whose base or glass is missing keeps zero values for that side and
// is never dropped. Output order follows the input cocktails.
func BuildJoinedView(cocktails []model.Cocktail, bases []model.Base, glasses []model.Glass) []model.JoinedCocktail {
	basesByID := make(map[int]model.Base, len(bases))
	for _, base := range bases {
		basesByID[base.ID] = base
	}

	glassesByID := make(map[int]model.Glass, len(glasses))
	for _, glass := range glasses {
		glassesByID[glass.ID] = glass
	}

	joined := make([]model.JoinedCocktail, 0, len(cocktails))

	for _, cocktail := range cocktails {
		row := model.JoinedCocktail{Cocktail: cocktail}
		row.IngredientIDs = slices.Clone(cocktail.IngredientIDs)

		if base, found := basesByID[cocktail.BaseID]; found {
			row.BaseNameEnglish = base.NameEnglish
			row.BaseNameLocal = base.NameLocal
		}

		if glass, found := glassesByID[cocktail.GlassID]; found {
			row.GlassNameEnglish = glass.NameEnglish
			row.GlassNameLocal = glass.NameLocal
			row.GlassSizeOz = glass.SizeOz
		}

		joined = append(joined, row)
	}

	return joined
}
