package handler

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/play-with-docker/ayah-proxy/core"
	"github.com/stretchr/testify/assert"
)

func TestSessionPage(t *testing.T) {
	mockC := &mockCore{}
	mockA := &mockAyah{}

	conf := NewConfig()
	conf.RootPath = ".."
	h, _ := New(conf, mockC, mockA)
	ts := httptest.NewServer(http.Handler(h))
	defer ts.Close()

	// 404 when the session doesn't exist
	mockC.recordConversion = func(id string) (string, error) {
		return "", core.NewSessionNotFound(id)
	}
	res, err := http.Get(fmt.Sprintf("%s/p/no-session", ts.URL))
	assert.Nil(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// The session page embeds the conversion tracking markup
	markup := `<iframe style="border:none;" height="0" width="0" src="http://example.com/ws/recordConversion/sess123"></iframe>`
	mockC.recordConversion = func(id string) (string, error) {
		return markup, nil
	}
	res, err = http.Get(fmt.Sprintf("%s/p/123456", ts.URL))
	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body, readErr := ioutil.ReadAll(res.Body)
	assert.Nil(t, readErr)
	assert.Contains(t, string(body), markup)
}
