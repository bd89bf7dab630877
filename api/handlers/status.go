package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sprintertech/sprinter-intents/protocol/solver"
)

type StatusGetter interface {
	GetStatus(ctx context.Context, req *solver.StatusRequest) (*solver.StatusResponse, error)
}

type StatusResponse struct {
	Status     solver.StatusCode `json:"status"`
	StatusName string            `json:"statusName"`
	TxHash     string            `json:"txHash"`
}

type StatusHandler struct {
	statuses StatusGetter
}

func NewStatusHandler(statuses StatusGetter) *StatusHandler {
	return &StatusHandler{
		statuses: statuses,
	}
}

// HandleRequest returns the solver status of the requested task
func (h *StatusHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	taskID, ok := vars["taskId"]
	if !ok || taskID == "" {
		JSONError(w, fmt.Errorf("missing 'taskId'"), http.StatusBadRequest)
		return
	}

	res, err := h.statuses.GetStatus(r.Context(), &solver.StatusRequest{TaskID: taskID})
	if err != nil {
		IntentError(w, err)
		return
	}

	JSONResponse(w, StatusResponse{
		Status:     res.Output.Status,
		StatusName: res.Output.Status.String(),
		TxHash:     res.Output.TxHash,
	})
}
