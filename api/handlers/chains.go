package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sprintertech/sprinter-intents/config/chain"
)

type ChainRegistry interface {
	GetSupportedChains() []chain.Chain
	GetChainConfig(c chain.Chain) (chain.ChainConfig, error)
}

type ChainResponse struct {
	Chain          chain.Chain     `json:"chain"`
	Type           chain.ChainType `json:"type"`
	NID            string          `json:"nid"`
	CAIP           string          `json:"caip"`
	NativeToken    string          `json:"nativeToken"`
	IntentContract string          `json:"intentContract,omitempty"`
	PackageID      string          `json:"packageId,omitempty"`
	StorageID      string          `json:"storageId,omitempty"`
	Tokens         []chain.Token   `json:"tokens"`
}

func NewChainResponse(cfg chain.ChainConfig) ChainResponse {
	resp := ChainResponse{
		Chain:       cfg.Chain(),
		Type:        cfg.Type(),
		NID:         cfg.NID(),
		CAIP:        cfg.CAIP(),
		NativeToken: cfg.NativeToken(),
		Tokens:      cfg.Tokens(),
	}
	switch cfg := cfg.(type) {
	case *chain.EvmChainConfig:
		resp.IntentContract = cfg.IntentContract.Hex()
	case *chain.SuiChainConfig:
		resp.PackageID = cfg.PackageID
		resp.StorageID = cfg.StorageID
	}
	return resp
}

type ChainsHandler struct {
	registry ChainRegistry
}

func NewChainsHandler(registry ChainRegistry) *ChainsHandler {
	return &ChainsHandler{
		registry: registry,
	}
}

// HandleList returns configs of all supported chains
func (h *ChainsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	supported := h.registry.GetSupportedChains()
	chains := make([]ChainResponse, 0, len(supported))
	for _, c := range supported {
		cfg, err := h.registry.GetChainConfig(c)
		if err != nil {
			IntentError(w, err)
			return
		}
		chains = append(chains, NewChainResponse(cfg))
	}

	JSONResponse(w, chains)
}

// HandleGet returns the config of the requested chain
func (h *ChainsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c, ok := vars["chain"]
	if !ok || c == "" {
		JSONError(w, fmt.Errorf("missing 'chain'"), http.StatusBadRequest)
		return
	}

	cfg, err := h.registry.GetChainConfig(chain.Chain(c))
	if err != nil {
		IntentError(w, err)
		return
	}

	JSONResponse(w, NewChainResponse(cfg))
}
