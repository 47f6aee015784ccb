package handler

import "github.com/play-with-docker/ayah-proxy/types"

type mockCore struct {
	sessionNew       func(sessionSecret string) (*types.Session, error)
	sessionGet       func(id string) (*types.Session, error)
	sessionClose     func(session *types.Session) error
	recordConversion func(id string) (string, error)
}

func (m *mockCore) SessionNew(sessionSecret string) (*types.Session, error) {
	return m.sessionNew(sessionSecret)
}

func (m *mockCore) SessionGet(id string) (*types.Session, error) {
	return m.sessionGet(id)
}

func (m *mockCore) SessionClose(session *types.Session) error {
	return m.sessionClose(session)
}

func (m *mockCore) RecordConversion(id string) (string, error) {
	return m.recordConversion(id)
}
