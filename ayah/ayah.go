// Package ayah talks to the "Are You a Human" (AYAH) PlayThru web service.
// It builds the markup a page embeds to present a challenge, asks the
// scoring endpoint whether a played session belongs to a human, and builds
// the tracking markup that reports a conversion for a scored session.
package ayah

import (
	"log"
	"net/http"
	"net/url"
	"os"
)

type Ayah interface {
	GetChallengeMarkup() string
	ScoreSession(sessionSecret string) bool
	RecordConversion(sessionSecret string) string
}

// Poster is the transport used for the scoring call. http.Client satisfies
// it; tests substitute it to count and inspect outbound calls.
type Poster interface {
	PostForm(url string, data url.Values) (*http.Response, error)
}

type Config struct {
	// Host of the AYAH web service, e.g. "ws.areyouahuman.com".
	WebServiceHost string
	// Public key identifying this publisher to the challenge script.
	PublisherKey string
	// Shared secret authenticating scoring calls. Never embedded in markup.
	ScoringKey string

	// Sink for diagnostics. Defaults to stderr.
	Logger *log.Logger
	// Defaults to http.DefaultClient.
	Client Poster
}

type webService struct {
	conf Config
}

func New(conf Config) Ayah {
	if conf.Logger == nil {
		conf.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	if conf.Client == nil {
		conf.Client = http.DefaultClient
	}
	return &webService{conf: conf}
}

const logTag = "[ayah]"

func (ws *webService) logError(args ...interface{}) {
	ws.conf.Logger.Println(append([]interface{}{logTag}, args...)...)
}
