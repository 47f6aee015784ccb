package storage

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/play-with-docker/ayah-proxy/types"
)

type storage struct {
	rw   sync.Mutex
	path string
	db   *DB
}

type DB struct {
	Sessions map[string]*types.Session `json:"sessions"`
}

func (store *storage) SessionGet(id string) (*types.Session, error) {
	store.rw.Lock()
	defer store.rw.Unlock()

	s, found := store.db.Sessions[id]
	if !found {
		return nil, NotFoundError
	}

	return s, nil
}

func (store *storage) SessionGetAll() ([]*types.Session, error) {
	store.rw.Lock()
	defer store.rw.Unlock()

	sessions := make([]*types.Session, len(store.db.Sessions))
	i := 0
	for _, s := range store.db.Sessions {
		sessions[i] = s
		i++
	}

	return sessions, nil
}

func (store *storage) SessionPut(session *types.Session) error {
	store.rw.Lock()
	defer store.rw.Unlock()

	store.db.Sessions[session.Id] = session

	return store.save()
}

func (store *storage) SessionDelete(id string) error {
	store.rw.Lock()
	defer store.rw.Unlock()

	_, found := store.db.Sessions[id]
	if !found {
		return nil
	}
	delete(store.db.Sessions, id)

	return store.save()
}

func (store *storage) SessionCount() (int, error) {
	store.rw.Lock()
	defer store.rw.Unlock()

	return len(store.db.Sessions), nil
}

func (store *storage) load() error {
	file, err := os.Open(store.path)

	if err == nil {
		decoder := json.NewDecoder(file)
		err = decoder.Decode(&store.db)

		if err != nil {
			return err
		}
	} else {
		store.db = &DB{
			Sessions: map[string]*types.Session{},
		}
	}

	file.Close()
	return nil
}

func (store *storage) save() error {
	file, err := os.Create(store.path)
	if err != nil {
		return err
	}
	defer file.Close()
	encoder := json.NewEncoder(file)
	err = encoder.Encode(&store.db)
	return err
}

func NewFileStorage(path string) (StorageApi, error) {
	s := &storage{path: path}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}
