package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"
)

func (h *handlers) newSession(rw http.ResponseWriter, req *http.Request) {
	req.ParseForm()
	sessionSecret := req.Form.Get("session_secret")

	if !h.conf.BypassVerification && !h.verifiedVisitor(req) {
		if !h.ayah.ScoreSession(sessionSecret) {
			nonHumansCounter.Inc()
			// User it not a human
			rw.WriteHeader(http.StatusConflict)
			rw.Write([]byte("Only humans are allowed!"))
			return
		}
		humansCounter.Inc()
	}

	s, err := h.core.SessionNew(sessionSecret)
	if err != nil {
		log.Println(err)
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.markVerified(rw, s.Id)
	http.Redirect(rw, req, fmt.Sprintf("/p/%s", s.Id), http.StatusFound)
}

// A visitor that already passed verification carries an encoded session_id
// cookie and is not scored again.
func (h *handlers) verifiedVisitor(req *http.Request) bool {
	cookie, _ := req.Cookie("session_id")
	if cookie == nil {
		return false
	}

	var value string
	if err := h.conf.Cookie.Decode("session_id", cookie.Value, &value); err != nil {
		log.Println(err)
		return false
	}
	return true
}

func (h *handlers) markVerified(rw http.ResponseWriter, sessionId string) {
	encoded, err := h.conf.Cookie.Encode("session_id", sessionId)
	if err != nil {
		log.Println(err)
		return
	}
	http.SetCookie(rw, &http.Cookie{
		Name:    "session_id",
		Value:   encoded,
		Expires: time.Now().Add(1 * time.Hour),
	})
}
