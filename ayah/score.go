package ayah

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/url"
)

// ScoreSession asks the web service whether the session identified by
// sessionSecret was played by a human. A blank secret is reported as
// non-human without a remote call. Failures never propagate: anything that
// is not a positive classification comes back as false, with the reason
// logged.
func (ws *webService) ScoreSession(sessionSecret string) bool {
	if sessionSecret == "" {
		return false
	}

	human, err := ws.score(sessionSecret)
	if err != nil {
		ws.logError(err)
		return false
	}

	return human
}

func (ws *webService) score(sessionSecret string) (bool, error) {
	form := url.Values{
		"session_secret": {sessionSecret},
		"scoring_key":    {ws.conf.ScoringKey},
	}

	resp, err := ws.conf.Client.PostForm(fmt.Sprintf("https://%s/ws/scoreGame", ws.conf.WebServiceHost), form)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	var result map[string]json.RawMessage
	if err := json.Unmarshal(body, &result); err != nil {
		return false, fmt.Errorf("malformed authorization result [%s]: %v", body, err)
	}

	raw, found := result["status_code"]
	if !found {
		return false, fmt.Errorf("invalid authorization result [%s]", body)
	}

	// The service has been seen answering both "1" and 1.
	var status interface{}
	if err := json.Unmarshal(raw, &status); err != nil {
		return false, fmt.Errorf("malformed authorization result [%s]: %v", body, err)
	}

	return fmt.Sprintf("%v", status) == "1", nil
}
