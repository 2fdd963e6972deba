package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/CocktailGargoyle/pkg/catalog"
	"droscher.com/CocktailGargoyle/pkg/model"
	"droscher.com/CocktailGargoyle/pkg/recommend"
)

func defaultEngine() *recommend.Engine {
	return recommend.NewEngine(catalog.Default().JoinedView())
}

func TestRecommend_GinOldFashionedMild(t *testing.T) {
	recommendations, err := defaultEngine().Recommend(2, 8, recommend.AbvLevelMild)

	require.NoError(t, err)
	assert.Equal(t, []recommend.Recommendation{{CocktailID: 0, NameLocal: "진 토닉"}}, recommendations)
}

func TestRecommend_LiqueurOldFashionedLight(t *testing.T) {
	recommendations, err := defaultEngine().Recommend(5, 8, recommend.AbvLevelLight)

	require.NoError(t, err)
	assert.Equal(t, []recommend.Recommendation{
		{CocktailID: 6, NameLocal: "깔루아 밀크"},
		{CocktailID: 7, NameLocal: "베일리스 밀크"},
		{CocktailID: 14, NameLocal: "아몬드 밀크"},
		{CocktailID: 20, NameLocal: "미도리 사워"},
	}, recommendations)
}

func TestRecommend_IsDeterministic(t *testing.T) {
	engine := defaultEngine()

	first, err := engine.Recommend(1, 8, recommend.AbvLevelStrong)
	require.NoError(t, err)

	for range 20 {
		again, err := engine.Recommend(1, 8, recommend.AbvLevelStrong)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	assert.Equal(t, []recommend.Recommendation{
		{CocktailID: 16, NameLocal: "블랙 러시안"},
		{CocktailID: 19, NameLocal: "갓 마더"},
	}, first)
}

func TestRecommend_EveryCocktailFindsItself(t *testing.T) {
	engine := defaultEngine()

	for _, cocktail := range catalog.Default().Cocktails() {
		level, err := recommend.LevelOf(cocktail.ABV)
		require.NoError(t, err)

		recommendations, err := engine.Recommend(cocktail.BaseID, cocktail.GlassID, level)
		require.NoError(t, err)

		ids := make([]int, 0, len(recommendations))
		for _, recommendation := range recommendations {
			ids = append(ids, recommendation.CocktailID)
		}

		assert.Contains(t, ids, cocktail.ID, cocktail.NameEnglish)
		assert.IsIncreasing(t, ids)
	}
}

func TestRecommend_AbsentCombinationIsEmpty(t *testing.T) {
	engine := defaultEngine()

	for level := recommend.AbvLevelLight; level <= recommend.AbvLevelVeryStrong; level++ {
		recommendations, err := engine.Recommend(6, 3, level)
		require.NoError(t, err)
		assert.Empty(t, recommendations)
		assert.NotNil(t, recommendations)
	}

	recommendations, err := engine.Recommend(404, 404, recommend.AbvLevelMild)
	require.NoError(t, err)
	assert.Empty(t, recommendations)
}

func TestRecommend_RejectsInvalidLevel(t *testing.T) {
	for _, level := range []recommend.AbvLevel{5, -1} {
		recommendations, err := defaultEngine().Recommend(2, 8, level)
		require.ErrorIs(t, err, recommend.ErrInvalidAbvLevel)
		assert.Nil(t, recommendations)
	}
}

func TestRecommend_IntersectsAllCriteria(t *testing.T) {
	view := catalog.BuildJoinedView(
		[]model.Cocktail{
			{ID: 1, NameLocal: "wrong glass", BaseID: 0, GlassID: 1, ABV: 15, IngredientIDs: []int{0}},
			{ID: 2, NameLocal: "match", BaseID: 0, GlassID: 0, ABV: 15, IngredientIDs: []int{0}},
			{ID: 3, NameLocal: "too strong", BaseID: 0, GlassID: 0, ABV: 35, IngredientIDs: []int{0}},
		},
		[]model.Base{{ID: 0}},
		[]model.Glass{{ID: 0}, {ID: 1}},
	)

	recommendations, err := recommend.NewEngine(view).Recommend(0, 0, recommend.AbvLevelMild)

	require.NoError(t, err)
	assert.Equal(t, []recommend.Recommendation{{CocktailID: 2, NameLocal: "match"}}, recommendations)
}

func TestRecommend_CocktailWithUnknownGlass(t *testing.T) {
	view := catalog.BuildJoinedView(
		[]model.Cocktail{
			{ID: 0, NameLocal: "orphan", BaseID: 0, GlassID: 99, ABV: 5, IngredientIDs: []int{0}},
			{ID: 1, NameLocal: "regular", BaseID: 0, GlassID: 0, ABV: 5, IngredientIDs: []int{0}},
		},
		[]model.Base{{ID: 0, NameEnglish: "whiskey"}},
		[]model.Glass{{ID: 0, NameEnglish: "Cocktail Glass"}},
	)
	require.Len(t, view, 2)
	assert.Empty(t, view[0].GlassNameEnglish)

	engine := recommend.NewEngine(view)

	recommendations, err := engine.Recommend(0, 0, recommend.AbvLevelLight)
	require.NoError(t, err)
	assert.Equal(t, []recommend.Recommendation{{CocktailID: 1, NameLocal: "regular"}}, recommendations)

	recommendations, err = engine.Recommend(0, 99, recommend.AbvLevelLight)
	require.NoError(t, err)
	assert.Equal(t, []recommend.Recommendation{{CocktailID: 0, NameLocal: "orphan"}}, recommendations)
}
