package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-intents/api/handlers"
)

func NewRouter(
	chainsHandler *handlers.ChainsHandler,
	quoteHandler *handlers.QuoteHandler,
	statusHandler *handlers.StatusHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/chains", chainsHandler.HandleList).Methods("GET")
	r.HandleFunc("/v1/chains/{chain}", chainsHandler.HandleGet).Methods("GET")
	r.HandleFunc("/v1/quote", quoteHandler.HandleQuote).Methods("POST")
	r.HandleFunc("/v1/status/{taskId}", statusHandler.HandleRequest).Methods("GET")
	return r
}

func Serve(
	ctx context.Context,
	addr string,
	chainsHandler *handlers.ChainsHandler,
	quoteHandler *handlers.QuoteHandler,
	statusHandler *handlers.StatusHandler,
) {
	server := &http.Server{
		Addr:        addr,
		Handler:     NewRouter(chainsHandler, quoteHandler, statusHandler),
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
