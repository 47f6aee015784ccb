package handler

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/play-with-docker/ayah-proxy/core"
	"github.com/play-with-docker/ayah-proxy/templates"
)

func (h *handlers) sessionPage(rw http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	sessionId := vars["sessionId"]

	markup, err := h.core.RecordConversion(sessionId)
	if err != nil {
		if core.SessionNotFound(err) {
			rw.WriteHeader(http.StatusNotFound)
			return
		}
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	page, tmplErr := templates.GetSessionTemplate(h.conf.RootPath, markup)
	if tmplErr != nil {
		log.Println(tmplErr)
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}
	rw.Write(page)
}
