package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/play-with-docker/ayah-proxy/core"
)

func (h *handlers) closeSession(rw http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	sessionId := vars["sessionId"]

	session, err := h.core.SessionGet(sessionId)
	if err != nil {
		if core.SessionNotFound(err) {
			rw.WriteHeader(http.StatusNotFound)
			return
		}
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.core.SessionClose(session); err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(http.StatusOK)
}
