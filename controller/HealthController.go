package controller

import (
	"net/http"
	"sync/atomic"

	"github.com/yukondude/Cinch/utils"
)

type HealthController interface {
	HandleReadyRequest(w http.ResponseWriter, r *http.Request)
	HandleLiveRequest(w http.ResponseWriter, r *http.Request)
}

// NewHealthController reports ready once true is received on readyChan.
func NewHealthController(readyChan chan bool) HealthController {
	c := &healthControllerImpl{}
	utils.SafeAsync(func() {
		c.watchReady(readyChan)
	})
	return c
}

type healthControllerImpl struct {
	ready atomic.Bool
}

func (h *healthControllerImpl) HandleReadyRequest(w http.ResponseWriter, r *http.Request) {
	if h.ready.Load() {
		w.WriteHeader(http.StatusOK) // any code in (>=200 & <400)
		return
	}
	w.WriteHeader(http.StatusNotFound) // any code >= 400
}

func (h *healthControllerImpl) HandleLiveRequest(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *healthControllerImpl) watchReady(readyChan chan bool) {
	h.ready.Store(<-readyChan)
}
