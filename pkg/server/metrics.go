package server

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"droscher.com/CocktailGargoyle/pkg/recommend"
)

const (
	outcomeOK      = "ok"
	outcomeEmpty   = "empty"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

var (
	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cocktail_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	recommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cocktail_recommendation_results",
			Help:    "Number of cocktails returned per successful recommendation",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)
)

// RegisterMetrics exposes the default Prometheus registry on /metrics.
func RegisterMetrics(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}

func observeRecommendation(response *recommend.Response, err error) string {
	outcome := outcomeOf(response, err)
	recommendationsTotal.WithLabelValues(outcome).Inc()

	if err == nil {
		recommendationResults.Observe(float64(len(response.Results)))
	}

	return outcome
}

func outcomeOf(response *recommend.Response, err error) string {
	switch {
	case isInvalidInput(err):
		return outcomeInvalid
	case err != nil:
		return outcomeError
	case len(response.Results) == 0:
		return outcomeEmpty
	default:
		return outcomeOK
	}
}

func isInvalidInput(err error) bool {
	return errors.Is(err, recommend.ErrInvalidParameter) || errors.Is(err, recommend.ErrInvalidAbvLevel)
}
