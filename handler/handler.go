package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/play-with-docker/ayah-proxy/ayah"
	"github.com/play-with-docker/ayah-proxy/core"
	"github.com/play-with-docker/ayah-proxy/templates"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	humansCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sessions_scored_human",
		Help: "Sessions scored as human",
	})
	nonHumansCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sessions_scored_non_human",
		Help: "Sessions scored as non human",
	})
)

func init() {
	prometheus.MustRegister(humansCounter)
	prometheus.MustRegister(nonHumansCounter)
}

type handlers struct {
	conf config
	core core.Core
	ayah ayah.Ayah
}

type config struct {
	BypassVerification bool
	RootPath           string
	Cookie             *securecookie.SecureCookie
}

func NewConfig() config {
	return config{
		RootPath:           ".",
		BypassVerification: false,
		Cookie:             securecookie.New([]byte("salmonrosado"), nil).MaxAge(int((1 * time.Hour).Seconds())),
	}
}

func New(conf config, c core.Core, a ayah.Ayah) (http.Handler, error) {
	h := &handlers{conf: conf, core: c, ayah: a}
	r := mux.NewRouter()

	r.HandleFunc("/ping", h.ping).Methods("GET")
	r.HandleFunc("/sessions/{sessionId}", h.getSession).Methods("GET")
	r.HandleFunc("/sessions/{sessionId}", h.closeSession).Methods("DELETE")
	r.HandleFunc("/p/{sessionId}", h.sessionPage).Methods("GET")

	r.Handle("/metrics", promhttp.Handler())

	// Generic routes
	r.HandleFunc("/", h.welcome).Methods("GET")
	r.HandleFunc("/", h.newSession).Methods("POST")

	return r, nil
}

func (h *handlers) welcome(rw http.ResponseWriter, req *http.Request) {
	if h.conf.BypassVerification {
		http.ServeFile(rw, req, h.conf.RootPath+"/www/bypass.html")
		return
	}

	welcome, tmplErr := templates.GetWelcomeTemplate(h.conf.RootPath, h.ayah.GetChallengeMarkup())
	if tmplErr != nil {
		log.Println(tmplErr)
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}
	rw.Write(welcome)
}
