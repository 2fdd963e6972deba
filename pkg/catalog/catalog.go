// Package catalog holds the cocktail reference tables and the joined view
// built from them. A Catalog is immutable once constructed and may be shared
// between goroutines without locking.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"droscher.com/CocktailGargoyle/pkg/model"
)

var ErrIntegrity = errors.New("catalog integrity violation")

const maxABV = 100

type Catalog struct {
	bases       []model.Base
	ingredients []model.Ingredient
	glasses     []model.Glass
	cocktails   []model.Cocktail

	joined     []model.JoinedCocktail
	cocktailAt map[int]int
	ingredient map[int]model.Ingredient
}

// New validates the tables and builds the joined view. The tables are copied
// and sorted by id; the caller keeps ownership of the arguments.
func New(bases []model.Base, ingredients []model.Ingredient, glasses []model.Glass, cocktails []model.Cocktail) (*Catalog, error) {
	catalog := &Catalog{
		bases:       sortedByID(bases, func(b model.Base) int { return b.ID }),
		ingredients: sortedByID(ingredients, func(i model.Ingredient) int { return i.ID }),
		glasses:     sortedByID(glasses, func(g model.Glass) int { return g.ID }),
		cocktails:   sortedByID(cloneCocktails(cocktails), func(c model.Cocktail) int { return c.ID }),
	}

	if err := catalog.validate(); err != nil {
		return nil, err
	}

	catalog.joined = BuildJoinedView(catalog.cocktails, catalog.bases, catalog.glasses)

	catalog.cocktailAt = make(map[int]int, len(catalog.joined))
	for index, cocktail := range catalog.joined {
		catalog.cocktailAt[cocktail.ID] = index
	}

	catalog.ingredient = make(map[int]model.Ingredient, len(catalog.ingredients))
	for _, ingredient := range catalog.ingredients {
		catalog.ingredient[ingredient.ID] = ingredient
	}

	return catalog, nil
}

// Default returns the compiled-in reference catalog.
func Default() *Catalog {
	catalog, err := New(builtinBases, builtinIngredients, builtinGlasses, builtinCocktails)
	if err != nil {
		panic(err)
	}

	return catalog
}

func (c *Catalog) Bases() []model.Base {
	return slices.Clone(c.bases)
}

func (c *Catalog) Ingredients() []model.Ingredient {
	return slices.Clone(c.ingredients)
}

func (c *Catalog) Glasses() []model.Glass {
	return slices.Clone(c.glasses)
}

func (c *Catalog) Cocktails() []model.Cocktail {
	return cloneCocktails(c.cocktails)
}

// JoinedView returns the cocktails enriched with base and glass attributes,
// ordered by cocktail id.
func (c *Catalog) JoinedView() []model.JoinedCocktail {
	joined := make([]model.JoinedCocktail, len(c.joined))
	for index, cocktail := range c.joined {
		cocktail.IngredientIDs = slices.Clone(cocktail.IngredientIDs)
		joined[index] = cocktail
	}

	return joined
}

func (c *Catalog) Cocktail(id int) (model.JoinedCocktail, bool) {
	index, found := c.cocktailAt[id]
	if !found {
		return model.JoinedCocktail{}, false
	}

	cocktail := c.joined[index]
	cocktail.IngredientIDs = slices.Clone(cocktail.IngredientIDs)

	return cocktail, true
}

// IngredientsOf resolves the ingredients of a cocktail in recipe order.
func (c *Catalog) IngredientsOf(cocktailID int) ([]model.Ingredient, bool) {
	index, found := c.cocktailAt[cocktailID]
	if !found {
		return nil, false
	}

	ids := c.joined[index].IngredientIDs
	ingredients := make([]model.Ingredient, 0, len(ids))

	for _, id := range ids {
		ingredients = append(ingredients, c.ingredient[id])
	}

	return ingredients, true
}

func (c *Catalog) validate() error {
	var err error

	baseIDs := make(map[int]struct{}, len(c.bases))
	for _, base := range c.bases {
		if _, duplicate := baseIDs[base.ID]; duplicate {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate base id %d", ErrIntegrity, base.ID))
		}

		baseIDs[base.ID] = struct{}{}
	}

	glassIDs := make(map[int]struct{}, len(c.glasses))
	for _, glass := range c.glasses {
		if _, duplicate := glassIDs[glass.ID]; duplicate {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate glass id %d", ErrIntegrity, glass.ID))
		}

		glassIDs[glass.ID] = struct{}{}
	}

	ingredientIDs := make(map[int]struct{}, len(c.ingredients))
	for _, ingredient := range c.ingredients {
		if _, duplicate := ingredientIDs[ingredient.ID]; duplicate {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate ingredient id %d", ErrIntegrity, ingredient.ID))
		}

		if _, found := baseIDs[ingredient.BaseID]; !found {
			err = multierr.Append(err, fmt.Errorf("%w: ingredient %d references unknown base %d", ErrIntegrity, ingredient.ID, ingredient.BaseID))
		}

		ingredientIDs[ingredient.ID] = struct{}{}
	}

	cocktailIDs := make(map[int]struct{}, len(c.cocktails))
	for _, cocktail := range c.cocktails {
		err = multierr.Append(err, validateCocktail(cocktail, baseIDs, glassIDs, ingredientIDs))

		if _, duplicate := cocktailIDs[cocktail.ID]; duplicate {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate cocktail id %d", ErrIntegrity, cocktail.ID))
		}

		cocktailIDs[cocktail.ID] = struct{}{}
	}

	return err
}

func validateCocktail(cocktail model.Cocktail, baseIDs, glassIDs, ingredientIDs map[int]struct{}) error {
	var err error

	if _, found := baseIDs[cocktail.BaseID]; !found {
		err = multierr.Append(err, fmt.Errorf("%w: cocktail %d references unknown base %d", ErrIntegrity, cocktail.ID, cocktail.BaseID))
	}

	if _, found := glassIDs[cocktail.GlassID]; !found {
		err = multierr.Append(err, fmt.Errorf("%w: cocktail %d references unknown glass %d", ErrIntegrity, cocktail.ID, cocktail.GlassID))
	}

	if cocktail.ABV < 0 || cocktail.ABV > maxABV {
		err = multierr.Append(err, fmt.Errorf("%w: cocktail %d has abv %d outside 0-%d", ErrIntegrity, cocktail.ID, cocktail.ABV, maxABV))
	}

	if len(cocktail.IngredientIDs) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: cocktail %d has no ingredients", ErrIntegrity, cocktail.ID))
	}

	seen := make(map[int]struct{}, len(cocktail.IngredientIDs))
	for _, id := range cocktail.IngredientIDs {
		if _, duplicate := seen[id]; duplicate {
			err = multierr.Append(err, fmt.Errorf("%w: cocktail %d lists ingredient %d twice", ErrIntegrity, cocktail.ID, id))
		}

		if _, found := ingredientIDs[id]; !found {
			err = multierr.Append(err, fmt.Errorf("%w: cocktail %d references unknown ingredient %d", ErrIntegrity, cocktail.ID, id))
		}

		seen[id] = struct{}{}
	}

	return err
}

func sortedByID[T any](rows []T, id func(T) int) []T {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int { return cmp.Compare(id(a), id(b)) })

	return sorted
}

func cloneCocktails(cocktails []model.Cocktail) []model.Cocktail {
	cloned := make([]model.Cocktail, len(cocktails))
	for index, cocktail := range cocktails {
		cocktail.IngredientIDs = slices.Clone(cocktail.IngredientIDs)
		cloned[index] = cocktail
	}

	return cloned
}
