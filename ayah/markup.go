package ayah

import (
	"fmt"
	"net/url"
)

const (
	challengeMarkup  = "<div id='AYAH'></div><script src='https://%s/ws/script/%s'></script>"
	conversionMarkup = `<iframe style="border:none;" height="0" width="0" src="http://%s/ws/recordConversion/%s"></iframe>`

	noSessionSecretMessage = "cannot record conversion, no session secret provided"
)

// GetChallengeMarkup returns the div and script tags a page embeds to
// present the PlayThru challenge.
func (ws *webService) GetChallengeMarkup() string {
	return fmt.Sprintf(challengeMarkup, ws.conf.WebServiceHost, url.PathEscape(ws.conf.PublisherKey))
}

// RecordConversion returns the invisible iframe that reports a conversion
// for a scored session. The session secret is embedded verbatim: it is
// minted URL-safe by the web service and only ever echoed back to it.
func (ws *webService) RecordConversion(sessionSecret string) string {
	if sessionSecret == "" {
		ws.logError(noSessionSecretMessage)
		return ""
	}
	return fmt.Sprintf(conversionMarkup, ws.conf.WebServiceHost, sessionSecret)
}
