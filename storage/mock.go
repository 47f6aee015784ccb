package storage

import (
	"github.com/play-with-docker/ayah-proxy/types"
	"github.com/stretchr/testify/mock"
)

type Mock struct {
	mock.Mock
}

func (m *Mock) SessionGet(id string) (*types.Session, error) {
	args := m.Called(id)
	s, _ := args.Get(0).(*types.Session)
	return s, args.Error(1)
}

func (m *Mock) SessionGetAll() ([]*types.Session, error) {
	args := m.Called()
	sessions, _ := args.Get(0).([]*types.Session)
	return sessions, args.Error(1)
}

func (m *Mock) SessionPut(session *types.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *Mock) SessionDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *Mock) SessionCount() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
