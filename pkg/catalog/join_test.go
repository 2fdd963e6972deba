package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/CocktailGargoyle/pkg/catalog"
	"droscher.com/CocktailGargoyle/pkg/model"
)

func TestBuildJoinedView_CopiesBaseAndGlass(t *testing.T) {
	reference := catalog.Default()

	cocktail, found := reference.Cocktail(0)
	require.True(t, found)

	assert.Equal(t, "gin tonic", cocktail.NameEnglish)
	assert.Equal(t, "gin", cocktail.BaseNameEnglish)
	assert.Equal(t, "진", cocktail.BaseNameLocal)
	assert.Equal(t, "Old Fashioned Glass", cocktail.GlassNameEnglish)
	assert.Equal(t, "올드 패션드 글래스", cocktail.GlassNameLocal)
	assert.InDelta(t, 8.0, cocktail.GlassSizeOz, 0.001)
}

func TestBuildJoinedView_KeepsRowsWithMissingReferences(t *testing.T) {
	joined := catalog.BuildJoinedView(
		[]model.Cocktail{
			{ID: 0, NameLocal: "a", BaseID: 1, GlassID: 99, IngredientIDs: []int{1}, ABV: 5},
			{ID: 1, NameLocal: "b", BaseID: 42, GlassID: 0, IngredientIDs: []int{1}, ABV: 5},
		},
		[]model.Base{{ID: 1, NameEnglish: "vodka", NameLocal: "보드카"}},
		[]model.Glass{{ID: 0, NameEnglish: "Cocktail Glass", SizeOz: 4.5}},
	)

	require.Len(t, joined, 2)

	assert.Equal(t, "vodka", joined[0].BaseNameEnglish)
	assert.Empty(t, joined[0].GlassNameEnglish)
	assert.Empty(t, joined[0].GlassNameLocal)
	assert.Zero(t, joined[0].GlassSizeOz)
	assert.Equal(t, 99, joined[0].GlassID)

	assert.Empty(t, joined[1].BaseNameEnglish)
	assert.Equal(t, "Cocktail Glass", joined[1].GlassNameEnglish)
}

func TestBuildJoinedView_DoesNotShareRecipeSlices(t *testing.T) {
	cocktails := []model.Cocktail{{ID: 0, IngredientIDs: []int{1, 2}}}

	joined := catalog.BuildJoinedView(cocktails, nil, nil)
	cocktails[0].IngredientIDs[0] = 7

	assert.Equal(t, []int{1, 2}, joined[0].IngredientIDs)
}
