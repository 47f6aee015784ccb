package config

import (
	"flag"
	"os"
	"time"

	"github.com/gorilla/securecookie"
)

var (
	PortNumber     string
	WebServiceHost string
	PublisherKey   string
	ScoringKey     string
	ErrorLogFile   string
	SessionsFile   string
	CookieHashKey  string
	CookieBlockKey string

	SessionDuration time.Duration

	BypassVerification bool

	SecureCookie *securecookie.SecureCookie
)

func ParseFlags() {
	flag.StringVar(&PortNumber, "port", "3000", "Port number")
	flag.StringVar(&WebServiceHost, "ayah-host", envOr("AYAH_WEB_SERVICE_HOST", "ws.areyouahuman.com"), "Host of the AYAH web service")
	flag.StringVar(&PublisherKey, "ayah-publisher-key", os.Getenv("AYAH_PUBLISHER_KEY"), "Publisher key embedded in the challenge markup")
	flag.StringVar(&ScoringKey, "ayah-scoring-key", os.Getenv("AYAH_SCORING_KEY"), "Scoring key used to authenticate scoring calls")
	flag.StringVar(&ErrorLogFile, "error-log", os.Getenv("AYAH_ERROR_LOG"), "File to append web service diagnostics to, stderr when empty")
	flag.StringVar(&SessionsFile, "save", "./sessions", "Tell where to store sessions file")
	flag.StringVar(&CookieHashKey, "cookie-hash-key", "salmonrosado", "Hash key to use for cookies")
	flag.StringVar(&CookieBlockKey, "cookie-block-key", "", "Block key to use to encrypt cookies")
	flag.DurationVar(&SessionDuration, "expiry", 4*time.Hour, "How long sessions live")
	flag.BoolVar(&BypassVerification, "bypass", os.Getenv("AYAH_DISABLED") != "", "Skip human verification")

	flag.Parse()

	var blockKey []byte
	if CookieBlockKey != "" {
		blockKey = []byte(CookieBlockKey)
	}
	SecureCookie = securecookie.New([]byte(CookieHashKey), blockKey).MaxAge(int((1 * time.Hour).Seconds()))
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
