package core

import (
	"log"
	"time"

	"github.com/play-with-docker/ayah-proxy/event"
	"github.com/play-with-docker/ayah-proxy/storage"
	"github.com/play-with-docker/ayah-proxy/types"
)

func (c *core) SessionNew(sessionSecret string) (*types.Session, error) {
	s := &types.Session{}
	s.Id = c.generator.NewId()
	s.SessionSecret = sessionSecret
	s.CreatedAt = time.Now()
	s.ExpiresAt = s.CreatedAt.Add(c.duration)

	log.Printf("NewSession id=[%s]\n", s.Id)

	if err := c.storage.SessionPut(s); err != nil {
		log.Println(err)
		return nil, err
	}

	c.setGauges()
	c.event.Emit(event.SESSION_NEW, s.Id)

	return s, nil
}

func (c *core) SessionGet(id string) (*types.Session, error) {
	s, err := c.storage.SessionGet(id)
	if err != nil {
		if storage.NotFound(err) {
			return nil, NewSessionNotFound(id)
		}
		return nil, err
	}

	// Expired sessions are closed on access instead of by a reaper loop.
	if time.Now().After(s.ExpiresAt) {
		if err := c.SessionClose(s); err != nil {
			return nil, err
		}
		return nil, NewSessionNotFound(id)
	}

	return s, nil
}

func (c *core) SessionClose(session *types.Session) error {
	if err := c.storage.SessionDelete(session.Id); err != nil {
		log.Println(err)
		return err
	}

	log.Printf("Closed session [%s]\n", session.Id)
	c.setGauges()
	c.event.Emit(event.SESSION_END, session.Id)

	return nil
}

// RecordConversion returns the tracking markup for a session that already
// passed scoring. The first successful call per session emits an event and
// marks the session, later calls just return the markup again.
func (c *core) RecordConversion(id string) (string, error) {
	s, err := c.SessionGet(id)
	if err != nil {
		return "", err
	}

	markup := c.ayah.RecordConversion(s.SessionSecret)

	if markup != "" && !s.ConversionRecorded {
		s.ConversionRecorded = true
		if err := c.storage.SessionPut(s); err != nil {
			log.Println(err)
			return "", err
		}
		c.event.Emit(event.CONVERSION_RECORDED, s.Id)
	}

	return markup, nil
}
