package catalog

import "droscher.com/CocktailGargoyle/pkg/model"

var builtinBases = []model.Base{
	{ID: 0, NameEnglish: "whiskey", NameLocal: "위스키"},
	{ID: 1, NameEnglish: "vodka", NameLocal: "보드카"},
	{ID: 2, NameEnglish: "gin", NameLocal: "진"},
	{ID: 3, NameEnglish: "rum", NameLocal: "럼"},
	{ID: 4, NameEnglish: "tequila", NameLocal: "데낄라"},
	{ID: 5, NameEnglish: "liqueur", NameLocal: "리큐르"},
	{ID: 6, NameEnglish: "non alcohol", NameLocal: "논 알콜"},
}

var builtinIngredients = []model.Ingredient{
	{ID: 0, BaseID: 0, NameEnglish: "bourbon whiskey", NameLocal: "버번 위스키"},
	{ID: 1, BaseID: 0, NameEnglish: "scotch whiskey", NameLocal: "스카치 위스키"},
	{ID: 2, BaseID: 1, NameEnglish: "vodka", NameLocal: "보드카"},
	{ID: 3, BaseID: 1, NameEnglish: "vodka peach", NameLocal: "보드카 피치"},
	{ID: 4, BaseID: 2, NameEnglish: "dry gin", NameLocal: "드라이 진"},
	{ID: 5, BaseID: 3, NameEnglish: "white rum", NameLocal: "화이트 럼"},
	{ID: 6, BaseID: 3, NameEnglish: "gold rum", NameLocal: "골드 럼"},
	{ID: 7, BaseID: 3, NameEnglish: "dark rum", NameLocal: "다크 럼"},
	{ID: 8, BaseID: 4, NameEnglish: "tequila", NameLocal: "데낄라"},
	{ID: 9, BaseID: 5, NameEnglish: "coffee liqueur", NameLocal: "커피 리큐르"},
	{ID: 10, BaseID: 6, NameEnglish: "milk", NameLocal: "우유"},
	{ID: 11, BaseID: 6, NameEnglish: "tonic water", NameLocal: "토닉 워터"},
	{ID: 12, BaseID: 6, NameEnglish: "orange juice", NameLocal: "오렌지 쥬스"},
	{ID: 13, BaseID: 5, NameEnglish: "dry vermouth", NameLocal: "드라이 베르무트"},
	{ID: 14, BaseID: 5, NameEnglish: "peach schnapps", NameLocal: "피치 시냅스"},
	{ID: 15, BaseID: 6, NameEnglish: "lime juice", NameLocal: "라임 쥬스"},
	{ID: 16, BaseID: 6, NameEnglish: "lemon juice", NameLocal: "레몬 쥬스"},
	{ID: 17, BaseID: 5, NameEnglish: "irish cream", NameLocal: "아이리쉬 크림"},
	{ID: 18, BaseID: 5, NameEnglish: "triple sec", NameLocal: "트리플 섹"},
	{ID: 19, BaseID: 6, NameEnglish: "coke", NameLocal: "콜라"},
	{ID: 20, BaseID: 6, NameEnglish: "sweet sour mix", NameLocal: "스윗 사워 믹스"},
	{ID: 21, BaseID: 6, NameEnglish: "cranberry juice", NameLocal: "크랜베리 쥬스"},
	{ID: 22, BaseID: 5, NameEnglish: "amaretto", NameLocal: "아마레또"},
	{ID: 23, BaseID: 6, NameEnglish: "grenadine syrup", NameLocal: "그레나딘 시럽"},
	{ID: 24, BaseID: 5, NameEnglish: "melon liqueur", NameLocal: "멜론 리큐르"},
}

var builtinGlasses = []model.Glass{
	{ID: 0, NameEnglish: "Cocktail Glass", NameLocal: "칵테일 글래스", SizeOz: 4.5},
	{ID: 1, NameEnglish: "Highball Glass", NameLocal: "하이볼 글래스", SizeOz: 8},
	{ID: 2, NameEnglish: "Collins Glass", NameLocal: "칼린스 글래스", SizeOz: 12.5},
	{ID: 3, NameEnglish: "Pilsner Glass", NameLocal: "필스너 글래스", SizeOz: 10},
	{ID: 4, NameEnglish: "Sour Glass", NameLocal: "사워 글래스", SizeOz: 5},
	{ID: 5, NameEnglish: "Champagne Glass", NameLocal: "샴페인 글래스", SizeOz: 4},
	{ID: 6, NameEnglish: "Shot Glass", NameLocal: "샷 글래스", SizeOz: 1},
	{ID: 7, NameEnglish: "Double Shot Glass", NameLocal: "더블 샷 글래스", SizeOz: 2},
	{ID: 8, NameEnglish: "Old Fashioned Glass", NameLocal: "올드 패션드 글래스", SizeOz: 8},
}

// Long Island iced tea is left out: it has several bases and the catalog
// allows exactly one per cocktail.
var builtinCocktails = []model.Cocktail{
	{ID: 0, NameEnglish: "gin tonic", NameLocal: "진 토닉", BaseID: 2, IngredientIDs: []int{4, 11}, GlassID: 8, ABV: 14},
	{ID: 1, NameEnglish: "jack coke", NameLocal: "잭 콕", BaseID: 0, IngredientIDs: []int{0, 19}, GlassID: 8, ABV: 14},
	{ID: 2, NameEnglish: "skrewdriver", NameLocal: "스크류드라이버", BaseID: 1, IngredientIDs: []int{2, 12}, GlassID: 1, ABV: 25},
	{ID: 3, NameEnglish: "rum coke", NameLocal: "럼 콕", BaseID: 3, IngredientIDs: []int{5, 19}, GlassID: 2, ABV: 14},
	{ID: 4, NameEnglish: "cuba libre", NameLocal: "쿠바 리브레", BaseID: 3, IngredientIDs: []int{5, 15, 19}, GlassID: 2, ABV: 14},
	{ID: 5, NameEnglish: "tequila sunrise", NameLocal: "데낄라 선라이즈", BaseID: 4, IngredientIDs: []int{8, 12, 23}, GlassID: 2, ABV: 12},
	{ID: 6, NameEnglish: "kahlua milk", NameLocal: "깔루아 밀크", BaseID: 5, IngredientIDs: []int{9, 10}, GlassID: 8, ABV: 5},
	{ID: 7, NameEnglish: "baileys milk", NameLocal: "베일리스 밀크", BaseID: 5, IngredientIDs: []int{10, 17}, GlassID: 8, ABV: 5},
	{ID: 8, NameEnglish: "martini", NameLocal: "마티니", BaseID: 2, IngredientIDs: []int{4, 13}, GlassID: 0, ABV: 34},
	{ID: 9, NameEnglish: "orange blossom", NameLocal: "오렌지 블라썸", BaseID: 2, IngredientIDs: []int{4, 12}, GlassID: 0, ABV: 20},
	{ID: 10, NameEnglish: "peach crush", NameLocal: "피치 크러쉬", BaseID: 5, IngredientIDs: []int{14, 20, 21}, GlassID: 1, ABV: 4},
	{ID: 11, NameEnglish: "kamikaze", NameLocal: "카미카제", BaseID: 1, IngredientIDs: []int{2, 15, 18}, GlassID: 0, ABV: 27},
	{ID: 12, NameEnglish: "sex on the beach", NameLocal: "섹스 온 더 비치", BaseID: 1, IngredientIDs: []int{2, 14, 12, 21}, GlassID: 1, ABV: 7},
	{ID: 13, NameEnglish: "cosmopolitan", NameLocal: "코스모폴리탄", BaseID: 1, IngredientIDs: []int{2, 15, 18, 21}, GlassID: 0, ABV: 24},
	{ID: 14, NameEnglish: "almond milk", NameLocal: "아몬드 밀크", BaseID: 5, IngredientIDs: []int{22, 10}, GlassID: 8, ABV: 5},
	{ID: 15, NameEnglish: "orgasm", NameLocal: "오르가즘", BaseID: 5, IngredientIDs: []int{9, 17, 22}, GlassID: 0, ABV: 20},
	{ID: 16, NameEnglish: "black russian", NameLocal: "블랙 러시안", BaseID: 1, IngredientIDs: []int{2, 9}, GlassID: 8, ABV: 37},
	{ID: 17, NameEnglish: "white russian", NameLocal: "화이트 러시안", BaseID: 1, IngredientIDs: []int{2, 9, 10}, GlassID: 8, ABV: 22},
	{ID: 18, NameEnglish: "god father", NameLocal: "갓 파더", BaseID: 0, IngredientIDs: []int{1, 22}, GlassID: 8, ABV: 34},
	{ID: 19, NameEnglish: "god mother", NameLocal: "갓 마더", BaseID: 1, IngredientIDs: []int{2, 22}, GlassID: 8, ABV: 34},
	{ID: 20, NameEnglish: "midori sour", NameLocal: "미도리 사워", BaseID: 5, IngredientIDs: []int{24, 20, 16, 11}, GlassID: 8, ABV: 10},
}
