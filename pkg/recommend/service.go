package recommend

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidParameter = errors.New("invalid parameter")

const (
	ParamChosenBase     = "chosenBase"
	ParamChosenGlass    = "chosenGlass"
	ParamChosenAbvLevel = "chosenAbvLevel"
)

type Query struct {
	Base     int
	Glass    int
	AbvLevel AbvLevel
}

type Result struct {
	CocktailIdx     int    `json:"cocktail_idx"`
	CocktailNameKor string `json:"cocktail_nameKor"`
}

type Response struct {
	Results []Result `json:"results"`
}

// Service adapts raw request parameters to the Engine and shapes its output
// for callers.
type Service struct {
	engine *Engine
}

func NewService(engine *Engine) *Service {
	return &Service{engine: engine}
}

// HandleRequest parses chosenBase, chosenGlass and chosenAbvLevel from raw
// string parameters and runs the recommendation.
func (s *Service) HandleRequest(rawParams map[string]string) (*Response, error) {
	query, err := ParseQuery(rawParams)
	if err != nil {
		return nil, err
	}

	return s.Handle(query)
}

func (s *Service) Handle(query Query) (*Response, error) {
	recommendations, err := s.engine.Recommend(query.Base, query.Glass, query.AbvLevel)
	if err != nil {
		return nil, err
	}

	response := &Response{Results: make([]Result, 0, len(recommendations))}
	for _, recommendation := range recommendations {
		response.Results = append(response.Results, Result{
			CocktailIdx:     recommendation.CocktailID,
			CocktailNameKor: recommendation.NameLocal,
		})
	}

	return response, nil
}

func ParseQuery(rawParams map[string]string) (Query, error) {
	base, err := intParam(rawParams, ParamChosenBase)
	if err != nil {
		return Query{}, err
	}

	glass, err := intParam(rawParams, ParamChosenGlass)
	if err != nil {
		return Query{}, err
	}

	level, err := intParam(rawParams, ParamChosenAbvLevel)
	if err != nil {
		return Query{}, err
	}

	return Query{Base: base, Glass: glass, AbvLevel: AbvLevel(level)}, nil
}

func intParam(rawParams map[string]string, name string) (int, error) {
	raw, found := rawParams[name]
	if !found || strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidParameter, name)
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidParameter, name, raw)
	}

	return value, nil
}
