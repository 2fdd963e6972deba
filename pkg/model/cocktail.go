package model

// Base is a spirit family that cocktails and ingredients are grouped under.
type Base struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"idx"`
	NameEnglish string `json:"nameEng"`
	NameLocal   string `json:"nameKor"`
}

type Ingredient struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"idx"`
	BaseID      int    `gorm:"index"                          json:"baseIdx"`
	NameEnglish string `json:"nameEng"`
	NameLocal   string `json:"nameKor"`
}

type Glass struct {
	ID          int     `gorm:"primaryKey;autoIncrement:false" json:"idx"`
	NameEnglish string  `json:"nameEng"`
	NameLocal   string  `json:"nameKor"`
	SizeOz      float64 `json:"size"`
}

// Cocktail is one recipe of the reference catalog. IngredientIDs keeps recipe
// order and is persisted through CocktailIngredient rows.
type Cocktail struct {
	ID            int    `gorm:"primaryKey;autoIncrement:false" json:"idx"`
	NameEnglish   string `json:"nameEng"`
	NameLocal     string `json:"nameKor"`
	BaseID        int    `gorm:"index"                          json:"baseIdx"`
	IngredientIDs []int  `gorm:"-"                              json:"ingredientIdx"`
	GlassID       int    `gorm:"index"                          json:"glassIdx"`
	ABV           int    `json:"abv"`
}

type CocktailIngredient struct {
	CocktailID   int `gorm:"primaryKey;autoIncrement:false"`
	Position     int `gorm:"primaryKey;autoIncrement:false"`
	IngredientID int
}

// JoinedCocktail is a cocktail denormalized with its base and glass attributes.
// Base or glass fields are zero when the referenced row does not exist.
type JoinedCocktail struct {
	Cocktail

	BaseNameEnglish  string  `json:"baseNameEng"`
	BaseNameLocal    string  `json:"baseNameKor"`
	GlassNameEnglish string  `json:"glassNameEng"`
	GlassNameLocal   string  `json:"glassNameKor"`
	GlassSizeOz      float64 `json:"glassSize"`
}
