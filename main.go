package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/play-with-docker/ayah-proxy/ayah"
	"github.com/play-with-docker/ayah-proxy/config"
	"github.com/play-with-docker/ayah-proxy/core"
	"github.com/play-with-docker/ayah-proxy/event"
	"github.com/play-with-docker/ayah-proxy/handler"
	"github.com/play-with-docker/ayah-proxy/id"
	"github.com/play-with-docker/ayah-proxy/storage"
	"github.com/urfave/negroni"
)

func main() {
	godotenv.Load()
	config.ParseFlags()

	errorLog := log.New(os.Stderr, "", log.LstdFlags)
	if config.ErrorLogFile != "" {
		f, err := os.OpenFile(config.ErrorLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		errorLog = log.New(f, "", log.LstdFlags)
	}

	a := ayah.New(ayah.Config{
		WebServiceHost: config.WebServiceHost,
		PublisherKey:   config.PublisherKey,
		ScoringKey:     config.ScoringKey,
		Logger:         errorLog,
	})

	s, err := storage.NewFileStorage(config.SessionsFile)
	if err != nil {
		log.Fatal("Error decoding sessions from disk ", err)
	}

	e := event.NewLocalBroker()
	e.OnAny(func(eventType event.EventType, sessionId string, args ...interface{}) {
		log.Printf("Event [%s] session=[%s]\n", eventType, sessionId)
	})

	c := core.New(id.XIDGenerator{}, s, e, a, config.SessionDuration)

	conf := handler.NewConfig()
	conf.BypassVerification = config.BypassVerification
	conf.Cookie = config.SecureCookie

	h, err := handler.New(conf, c, a)
	if err != nil {
		log.Fatal(err)
	}

	n := negroni.Classic()
	n.UseHandler(h)

	log.Println("Listening on port " + config.PortNumber)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.PortNumber, n))
}
