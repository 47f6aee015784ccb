package handler

import "net/http"

func (h *handlers) ping(rw http.ResponseWriter, req *http.Request) {
	rw.Write([]byte("pong"))
}
