package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sprintertech/sprinter-intents/api"
	"github.com/sprintertech/sprinter-intents/api/handlers"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/intent"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite

	router http.Handler
}

func TestRunRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	service := intent.NewIntentService(chain.DefaultRegistry(), nil)
	s.router = api.NewRouter(
		handlers.NewChainsHandler(service),
		handlers.NewQuoteHandler(service),
		handlers.NewStatusHandler(service),
	)
}

func (s *RouterTestSuite) Test_ChainRoute() {
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/chains/arb", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "0xaa37dc.arbitrum")
}

func (s *RouterTestSuite) Test_MethodNotAllowed() {
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/quote", nil))

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
}
