// Package recommend implements content based cocktail filtering over a
// catalog's joined view.
package recommend

import (
	"slices"

	"droscher.com/CocktailGargoyle/pkg/model"
)

type Recommendation struct {
	CocktailID int
	NameLocal  string
}

// Engine answers recommendation queries. It holds no mutable state, so a
// single Engine serves concurrent callers.
type Engine struct {
	view []model.JoinedCocktail
	byID map[int]model.JoinedCocktail
}

type criterion func(model.JoinedCocktail) bool

type idSet map[int]struct{}

func NewEngine(view []model.JoinedCocktail) *Engine {
	engine := &Engine{
		view: slices.Clone(view),
		byID: make(map[int]model.JoinedCocktail, len(view)),
	}

	for _, cocktail := range engine.view {
		engine.byID[cocktail.ID] = cocktail
	}

	return engine
}

// Recommend returns the cocktails matching the base, the glass and the abv
// level, ordered by cocktail id. No match is an empty result, not an error.
func (e *Engine) Recommend(chosenBase, chosenGlass int, chosenAbvLevel AbvLevel) ([]Recommendation, error) {
	abvRange, err := RangeFor(chosenAbvLevel)
	if err != nil {
		return nil, err
	}

	ids := intersect(
		e.candidates(func(c model.JoinedCocktail) bool { return c.BaseID == chosenBase }),
		e.candidates(func(c model.JoinedCocktail) bool { return c.GlassID == chosenGlass }),
		e.candidates(func(c model.JoinedCocktail) bool { return abvRange.Contains(c.ABV) }),
	)

	recommendations := make([]Recommendation, 0, len(ids))
	for _, id := range ids {
		recommendations = append(recommendations, Recommendation{CocktailID: id, NameLocal: e.byID[id].NameLocal})
	}

	return recommendations, nil
}

func (e *Engine) candidates(matches criterion) idSet {
	ids := idSet{}

	for _, cocktail := range e.view {
		if matches(cocktail) {
			ids[cocktail.ID] = struct{}{}
		}
	}

	return ids
}

// intersect walks the smallest set and returns the ids present in all sets,
// sorted ascending.
func intersect(sets ...idSet) []int {
	if len(sets) == 0 {
		return nil
	}

	smallest := slices.MinFunc(sets, func(a, b idSet) int { return len(a) - len(b) })
	ids := make([]int, 0, len(smallest))

	for id := range smallest {
		if inAll(id, sets) {
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	return ids
}

func inAll(id int, sets []idSet) bool {
	for _, set := range sets {
		if _, found := set[id]; !found {
			return false
		}
	}

	return true
}
