package core

import (
	"log"
	"time"

	"github.com/play-with-docker/ayah-proxy/ayah"
	"github.com/play-with-docker/ayah-proxy/event"
	"github.com/play-with-docker/ayah-proxy/id"
	"github.com/play-with-docker/ayah-proxy/storage"
	"github.com/play-with-docker/ayah-proxy/types"
	"github.com/prometheus/client_golang/prometheus"
)

var sessionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "sessions",
	Help: "Sessions",
})

func init() {
	prometheus.MustRegister(sessionsGauge)
}

type Core interface {
	SessionNew(sessionSecret string) (*types.Session, error)
	SessionGet(id string) (*types.Session, error)
	SessionClose(session *types.Session) error
	RecordConversion(id string) (string, error)
}

type core struct {
	generator id.Generator
	storage   storage.StorageApi
	event     event.EventApi
	ayah      ayah.Ayah
	duration  time.Duration
}

func New(g id.Generator, s storage.StorageApi, e event.EventApi, a ayah.Ayah, duration time.Duration) *core {
	return &core{generator: g, storage: s, event: e, ayah: a, duration: duration}
}

func (c *core) setGauges() {
	count, err := c.storage.SessionCount()
	if err != nil {
		log.Println(err)
		return
	}
	sessionsGauge.Set(float64(count))
}
