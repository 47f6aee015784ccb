package storage

import (
	"errors"

	"github.com/play-with-docker/ayah-proxy/types"
)

const notFound = "NotFound"

var NotFoundError = errors.New(notFound)

func NotFound(e error) bool {
	return e != nil && e.Error() == notFound
}

type StorageApi interface {
	SessionGet(id string) (*types.Session, error)
	SessionGetAll() ([]*types.Session, error)
	SessionPut(session *types.Session) error
	SessionDelete(id string) error
	SessionCount() (int, error)
}
