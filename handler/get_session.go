package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/play-with-docker/ayah-proxy/core"
)

func (h *handlers) getSession(rw http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	sessionId := vars["sessionId"]

	session, err := h.core.SessionGet(sessionId)

	if err != nil {
		if core.SessionNotFound(err) {
			rw.WriteHeader(http.StatusNotFound)
			return
		} else {
			rw.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	json.NewEncoder(rw).Encode(session)
}
