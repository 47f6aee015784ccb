package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/play-with-docker/ayah-proxy/ayah"
	"github.com/play-with-docker/ayah-proxy/event"
	"github.com/play-with-docker/ayah-proxy/id"
	"github.com/play-with-docker/ayah-proxy/storage"
	"github.com/play-with-docker/ayah-proxy/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionNew(t *testing.T) {
	_g := &id.MockGenerator{}
	_s := &storage.Mock{}
	_e := &event.Mock{}
	_a := &ayah.Mock{}

	_g.On("NewId").Return("aaabbbccc")
	_s.On("SessionPut", mock.AnythingOfType("*types.Session")).Return(nil)
	_s.On("SessionCount").Return(1, nil)
	_e.M.On("Emit", event.SESSION_NEW, "aaabbbccc", mock.Anything).Return()

	c := New(_g, _s, _e, _a, time.Hour)

	before := time.Now()
	s, err := c.SessionNew("sess123")

	assert.Nil(t, err)
	assert.NotNil(t, s)
	assert.Equal(t, "aaabbbccc", s.Id)
	assert.Equal(t, "sess123", s.SessionSecret)
	assert.WithinDuration(t, before, s.CreatedAt, time.Second)
	assert.WithinDuration(t, before.Add(time.Hour), s.ExpiresAt, time.Second)
	assert.False(t, s.ConversionRecorded)

	_g.AssertExpectations(t)
	_s.AssertExpectations(t)
	_e.M.AssertExpectations(t)
}

func TestSessionNewStorageError(t *testing.T) {
	_g := &id.MockGenerator{}
	_s := &storage.Mock{}
	_e := &event.Mock{}
	_a := &ayah.Mock{}

	_g.On("NewId").Return("aaabbbccc")
	_s.On("SessionPut", mock.AnythingOfType("*types.Session")).Return(fmt.Errorf("disk full"))

	c := New(_g, _s, _e, _a, time.Hour)

	s, err := c.SessionNew("sess123")

	assert.Nil(t, s)
	assert.NotNil(t, err)
	_e.M.AssertNotCalled(t, "Emit", event.SESSION_NEW, "aaabbbccc", mock.Anything)
}

func TestSessionGet(t *testing.T) {
	_g := &id.MockGenerator{}
	_s := &storage.Mock{}
	_e := &event.Mock{}
	_a := &ayah.Mock{}

	expected := &types.Session{Id: "aaabbbccc", ExpiresAt: time.Now().Add(time.Hour)}
	_s.On("SessionGet", "aaabbbccc").Return(expected, nil)
	_s.On("SessionGet", "missing").Return(nil, storage.NotFoundError)

	c := New(_g, _s, _e, _a, time.Hour)

	s, err := c.SessionGet("aaabbbccc")
	assert.Nil(t, err)
	assert.Equal(t, expected, s)

	s, err = c.SessionGet("missing")
	assert.Nil(t, s)
	assert.True(t, SessionNotFound(err))
}

func TestSessionGetExpired(t *testing.T) {
	_g := &id.MockGenerator{}
	_s := &storage.Mock{}
	_e := &event.Mock{}
	_a := &ayah.Mock{}

	expired := &types.Session{Id: "aaabbbccc", ExpiresAt: time.Now().Add(-time.Minute)}
	_s.On("SessionGet", "aaabbbccc").Return(expired, nil)
	_s.On("SessionDelete", "aaabbbccc").Return(nil)
	_s.On("SessionCount").Return(0, nil)
	_e.M.On("Emit", event.SESSION_END, "aaabbbccc", mock.Anything).Return()

	c := New(_g, _s, _e, _a, time.Hour)

	s, err := c.SessionGet("aaabbbccc")

	assert.Nil(t, s)
	assert.True(t, SessionNotFound(err))
	_s.AssertExpectations(t)
	_e.M.AssertExpectations(t)
}

func TestSessionClose(t *testing.T) {
	_g := &id.MockGenerator{}
	_s := &storage.Mock{}
	_e := &event.Mock{}
	_a := &ayah.Mock{}

	_s.On("SessionDelete", "aaabbbccc").Return(nil)
	_s.On("SessionCount").Return(0, nil)
	_e.M.On("Emit", event.SESSION_END, "aaabbbccc", mock.Anything).Return()

	c := New(_g, _s, _e, _a, time.Hour)

	err := c.SessionClose(&types.Session{Id: "aaabbbccc"})

	assert.Nil(t, err)
	_s.AssertExpectations(t)
	_e.M.AssertExpectations(t)
}

func TestRecordConversion(t *testing.T) {
	_g := &id.MockGenerator{}
	_s := &storage.Mock{}
	_e := &event.Mock{}
	_a := &ayah.Mock{}

	session := &types.Session{Id: "aaabbbccc", SessionSecret: "sess123", ExpiresAt: time.Now().Add(time.Hour)}
	markup := `<iframe style="border:none;" height="0" width="0" src="http://example.com/ws/recordConversion/sess123"></iframe>`

	_s.On("SessionGet", "aaabbbccc").Return(session, nil)
	_s.On("SessionPut", session).Return(nil)
	_a.On("RecordConversion", "sess123").Return(markup)
	_e.M.On("Emit", event.CONVERSION_RECORDED, "aaabbbccc", mock.Anything).Return()

	c := New(_g, _s, _e, _a, time.Hour)

	got, err := c.RecordConversion("aaabbbccc")
	assert.Nil(t, err)
	assert.Equal(t, markup, got)
	assert.True(t, session.ConversionRecorded)

	// A second call returns the markup again but does not re-record.
	got, err = c.RecordConversion("aaabbbccc")
	assert.Nil(t, err)
	assert.Equal(t, markup, got)

	_s.AssertNumberOfCalls(t, "SessionPut", 1)
	_e.M.AssertNumberOfCalls(t, "Emit", 1)
}

func TestRecordConversionUnknownSession(t *testing.T) {
	_g := &id.MockGenerator{}
	_s := &storage.Mock{}
	_e := &event.Mock{}
	_a := &ayah.Mock{}

	_s.On("SessionGet", "missing").Return(nil, storage.NotFoundError)

	c := New(_g, _s, _e, _a, time.Hour)

	got, err := c.RecordConversion("missing")
	assert.Equal(t, "", got)
	assert.True(t, SessionNotFound(err))
}

func TestRecordConversionWithoutSecret(t *testing.T) {
	_g := &id.MockGenerator{}
	_s := &storage.Mock{}
	_e := &event.Mock{}
	_a := &ayah.Mock{}

	session := &types.Session{Id: "aaabbbccc", ExpiresAt: time.Now().Add(time.Hour)}
	_s.On("SessionGet", "aaabbbccc").Return(session, nil)
	_a.On("RecordConversion", "").Return("")

	c := New(_g, _s, _e, _a, time.Hour)

	got, err := c.RecordConversion("aaabbbccc")
	assert.Nil(t, err)
	assert.Equal(t, "", got)
	assert.False(t, session.ConversionRecorded)
	_e.M.AssertNotCalled(t, "Emit", event.CONVERSION_RECORDED, "aaabbbccc", mock.Anything)
}
