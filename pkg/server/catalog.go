package server

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"droscher.com/CocktailGargoyle/pkg/catalog"
	"droscher.com/CocktailGargoyle/pkg/model"
)

// CocktailDetail is one cocktail of the joined view with its recipe resolved.
type CocktailDetail struct {
	model.JoinedCocktail

	Ingredients []model.Ingredient `json:"ingredients"`
}

// CatalogServer exposes the reference tables the recommendation criteria are
// chosen from.
type CatalogServer struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewCatalogServer(reference *catalog.Catalog, logger *zap.Logger) *CatalogServer {
	return &CatalogServer{catalog: reference, logger: logger}
}

func (c *CatalogServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /bases", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, c.catalog.Bases())
	})
	mux.HandleFunc("GET /glasses", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, c.catalog.Glasses())
	})
	mux.HandleFunc("GET /ingredients", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, c.catalog.Ingredients())
	})
	mux.HandleFunc("GET /cocktails", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, c.catalog.JoinedView())
	})
	mux.HandleFunc("GET /cocktails/{id}", c.getCocktail)
}

func (c *CatalogServer) getCocktail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cocktail id must be an integer"})

		return
	}

	cocktail, found := c.catalog.Cocktail(id)
	if !found {
		c.logger.Debug("cocktail not found", zap.Int("cocktail_id", id))
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "cocktail not found"})

		return
	}

	ingredients, _ := c.catalog.IngredientsOf(id)

	writeJSON(w, http.StatusOK, CocktailDetail{JoinedCocktail: cocktail, Ingredients: ingredients})
}
