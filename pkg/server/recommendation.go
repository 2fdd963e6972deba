package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/CocktailGargoyle/pkg/recommend"
)

const (
	RecommendationServiceName = "cocktail.v1.RecommendationService"
	RecommendProcedure        = "/" + RecommendationServiceName + "/Recommend"
	RecommendationPath        = "/recommendation"
)

type Recommender interface {
	HandleRequest(rawParams map[string]string) (*recommend.Response, error)
}

// RecommendRequest is the RPC form of a recommendation query. Unset fields
// are rejected the same way as missing query parameters.
type RecommendRequest struct {
	ChosenBase     *int `json:"chosenBase,omitempty"`
	ChosenGlass    *int `json:"chosenGlass,omitempty"`
	ChosenAbvLevel *int `json:"chosenAbvLevel,omitempty"`
}

type RecommendationServer struct {
	recommender Recommender
	logger      *zap.Logger
}

func NewRecommendationServer(recommender Recommender, logger *zap.Logger) *RecommendationServer {
	return &RecommendationServer{recommender: recommender, logger: logger}
}

// Register mounts the query-string endpoint and the connect RPC on mux.
func (s *RecommendationServer) Register(mux *http.ServeMux, options ...connect.HandlerOption) {
	mux.HandleFunc("GET "+RecommendationPath, s.ServeRecommendation)

	options = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, options...)
	mux.Handle(RecommendProcedure, connect.NewUnaryHandler(RecommendProcedure, s.Recommend, options...))
}

func (s *RecommendationServer) ServeRecommendation(w http.ResponseWriter, r *http.Request) {
	rawParams := make(map[string]string)

	for _, name := range []string{recommend.ParamChosenBase, recommend.ParamChosenGlass, recommend.ParamChosenAbvLevel} {
		if r.URL.Query().Has(name) {
			rawParams[name] = r.URL.Query().Get(name)
		}
	}

	response, err := s.recommend(rawParams)

	switch {
	case isInvalidInput(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "recommendation failed"})
	default:
		writeJSON(w, http.StatusOK, response)
	}
}

func (s *RecommendationServer) Recommend(_ context.Context, request *connect.Request[RecommendRequest]) (*connect.Response[recommend.Response], error) {
	rawParams := make(map[string]string)
	setParam(rawParams, recommend.ParamChosenBase, request.Msg.ChosenBase)
	setParam(rawParams, recommend.ParamChosenGlass, request.Msg.ChosenGlass)
	setParam(rawParams, recommend.ParamChosenAbvLevel, request.Msg.ChosenAbvLevel)

	response, err := s.recommend(rawParams)
	if err != nil {
		if isInvalidInput(err) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}

		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(response), nil
}

func (s *RecommendationServer) recommend(rawParams map[string]string) (*recommend.Response, error) {
	logger := s.logger.With(zap.String("request_id", uuid.NewString()))

	response, err := s.recommender.HandleRequest(rawParams)
	outcome := observeRecommendation(response, err)

	switch outcome {
	case outcomeInvalid:
		logger.Warn("rejected recommendation request", zap.Any("params", rawParams), zap.Error(err))
	case outcomeError:
		logger.Error("recommendation failed", zap.Any("params", rawParams), zap.Error(err))
	default:
		logger.Info("recommendation served", zap.Any("params", rawParams), zap.Int("results", len(response.Results)))
	}

	return response, err
}

func setParam(rawParams map[string]string, name string, value *int) {
	if value != nil {
		rawParams[name] = strconv.Itoa(*value)
	}
}
