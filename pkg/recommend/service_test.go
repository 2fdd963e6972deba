package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"droscher.com/CocktailGargoyle/pkg/recommend"
)

type ServiceTestSuite struct {
	suite.Suite
	service *recommend.Service
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.service = recommend.NewService(defaultEngine())
}

func (suite *ServiceTestSuite) TestHandleRequest_ShapesResults() {
	response, err := suite.service.HandleRequest(map[string]string{
		"chosenBase":     "3",
		"chosenGlass":    "2",
		"chosenAbvLevel": "1",
	})

	suite.Require().NoError(err)
	suite.Equal(&recommend.Response{Results: []recommend.Result{
		{CocktailIdx: 3, CocktailNameKor: "럼 콕"},
		{CocktailIdx: 4, CocktailNameKor: "쿠바 리브레"},
	}}, response)
}

func (suite *ServiceTestSuite) TestHandleRequest_TrimsWhitespace() {
	response, err := suite.service.HandleRequest(map[string]string{
		"chosenBase":     " 2",
		"chosenGlass":    "8 ",
		"chosenAbvLevel": "1",
	})

	suite.Require().NoError(err)
	suite.Len(response.Results, 1)
}

func (suite *ServiceTestSuite) TestHandleRequest_EmptyResult() {
	response, err := suite.service.HandleRequest(map[string]string{
		"chosenBase":     "4",
		"chosenGlass":    "8",
		"chosenAbvLevel": "4",
	})

	suite.Require().NoError(err)
	suite.NotNil(response.Results)
	suite.Empty(response.Results)
}

func (suite *ServiceTestSuite) TestHandleRequest_MissingParameters() {
	tests := map[string]map[string]string{
		"chosenBase is required":     {"chosenGlass": "8", "chosenAbvLevel": "1"},
		"chosenGlass is required":    {"chosenBase": "2", "chosenGlass": "", "chosenAbvLevel": "1"},
		"chosenAbvLevel is required": {"chosenBase": "2", "chosenGlass": "8"},
	}

	for message, params := range tests {
		response, err := suite.service.HandleRequest(params)
		suite.Require().ErrorIs(err, recommend.ErrInvalidParameter)
		suite.ErrorContains(err, message)
		suite.Nil(response)
	}
}

func (suite *ServiceTestSuite) TestHandleRequest_NonIntegerParameter() {
	response, err := suite.service.HandleRequest(map[string]string{
		"chosenBase":     "2",
		"chosenGlass":    "8",
		"chosenAbvLevel": "1.5",
	})

	suite.Require().ErrorIs(err, recommend.ErrInvalidParameter)
	suite.ErrorContains(err, `chosenAbvLevel must be an integer, got "1.5"`)
	suite.Nil(response)
}

func (suite *ServiceTestSuite) TestHandleRequest_InvalidAbvLevel() {
	response, err := suite.service.HandleRequest(map[string]string{
		"chosenBase":     "2",
		"chosenGlass":    "8",
		"chosenAbvLevel": "5",
	})

	suite.Require().ErrorIs(err, recommend.ErrInvalidAbvLevel)
	suite.NotErrorIs(err, recommend.ErrInvalidParameter)
	suite.Nil(response)
}

func (suite *ServiceTestSuite) TestParseQuery() {
	query, err := recommend.ParseQuery(map[string]string{
		"chosenBase":     "5",
		"chosenGlass":    "0",
		"chosenAbvLevel": "1",
		"ignored":        "x",
	})

	suite.Require().NoError(err)
	suite.Equal(recommend.Query{Base: 5, Glass: 0, AbvLevel: recommend.AbvLevelMild}, query)
}
