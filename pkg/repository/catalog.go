package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/CocktailGargoyle/pkg/catalog"
	"droscher.com/CocktailGargoyle/pkg/model"
)

var ErrEmptyCatalog = errors.New("no cocktails stored")

type CatalogRepository interface {
	Migrate(ctx context.Context) error
	SeedCatalog(ctx context.Context, reference *catalog.Catalog) error
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)
}

func (r *Repository) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(
		&model.Base{}, &model.Ingredient{}, &model.Glass{},
		&model.Cocktail{}, &model.CocktailIngredient{})
}

// SeedCatalog makes the stored tables equal to reference in one transaction:
// reference rows are upserted, recipes are rewritten and rows missing from
// reference are deleted.
func (r *Repository) SeedCatalog(ctx context.Context, reference *catalog.Catalog) error {
	bases := reference.Bases()
	ingredients := reference.Ingredients()
	glasses := reference.Glasses()
	cocktails := reference.Cocktails()

	links := make([]model.CocktailIngredient, 0, len(cocktails))

	for _, cocktail := range cocktails {
		for position, ingredientID := range cocktail.IngredientIDs {
			links = append(links, model.CocktailIngredient{CocktailID: cocktail.ID, Position: position, IngredientID: ingredientID})
		}
	}

	var prunedCocktails int64

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createRows(upsert(tx), bases); err != nil {
			return err
		}

		if err := createRows(upsert(tx), ingredients); err != nil {
			return err
		}

		if err := createRows(upsert(tx), glasses); err != nil {
			return err
		}

		if err := createRows(upsert(tx), cocktails); err != nil {
			return err
		}

		if result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.CocktailIngredient{}); result.Error != nil {
			return result.Error
		}

		result := pruneRows(tx, &model.Cocktail{}, idsOf(cocktails, func(c model.Cocktail) int { return c.ID }))
		if result.Error != nil {
			return result.Error
		}

		prunedCocktails = result.RowsAffected

		if err := pruneRows(tx, &model.Ingredient{}, idsOf(ingredients, func(i model.Ingredient) int { return i.ID })).Error; err != nil {
			return err
		}

		if err := pruneRows(tx, &model.Glass{}, idsOf(glasses, func(g model.Glass) int { return g.ID })).Error; err != nil {
			return err
		}

		if err := pruneRows(tx, &model.Base{}, idsOf(bases, func(b model.Base) int { return b.ID })).Error; err != nil {
			return err
		}

		return createRows(tx, links)
	})
	if err != nil {
		r.Logger.Error("error seeding catalog", zap.Error(err))

		return err
	}

	r.Logger.Info("seeded catalog",
		zap.Int("cocktails", len(cocktails)),
		zap.Int("recipe_rows", len(links)),
		zap.Int64("pruned_cocktails", prunedCocktails))

	return nil
}

// pruneRows deletes the rows of table whose id is not in keep. An empty keep
// clears the table.
func pruneRows(tx *gorm.DB, table any, keep []int) *gorm.DB {
	if len(keep) == 0 {
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table)
	}

	return tx.Where("id NOT IN ?", keep).Delete(table)
}

func idsOf[T any](rows []T, id func(T) int) []int {
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, id(row))
	}

	return ids
}

func upsert(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.OnConflict{UpdateAll: true})
}

func createRows[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	return tx.Create(&rows).Error
}

// LoadCatalog reads the reference tables back and validates them as a Catalog.
func (r *Repository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var (
		bases       []model.Base
		ingredients []model.Ingredient
		glasses     []model.Glass
		cocktails   []model.Cocktail
		links       []model.CocktailIngredient
	)

	db := r.DB.WithContext(ctx)

	queries := []func() *gorm.DB{
		func() *gorm.DB { return db.Order("id").Find(&bases) },
		func() *gorm.DB { return db.Order("id").Find(&ingredients) },
		func() *gorm.DB { return db.Order("id").Find(&glasses) },
		func() *gorm.DB { return db.Order("id").Find(&cocktails) },
		func() *gorm.DB { return db.Order("cocktail_id, position").Find(&links) },
	}

	for _, query := range queries {
		if result := query(); result.Error != nil {
			r.Logger.Error("error loading catalog", zap.Error(result.Error))

			return nil, result.Error
		}
	}

	if len(cocktails) == 0 {
		return nil, ErrEmptyCatalog
	}

	recipes := make(map[int][]int, len(cocktails))
	for _, link := range links {
		recipes[link.CocktailID] = append(recipes[link.CocktailID], link.IngredientID)
	}

	for index := range cocktails {
		cocktails[index].IngredientIDs = recipes[cocktails[index].ID]
	}

	return catalog.New(bases, ingredients, glasses, cocktails)
}
