package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// GetWelcomeTemplate renders the landing page with the PlayThru challenge
// markup embedded. The markup is produced by this codebase, not by users,
// so it is injected unescaped.
func GetWelcomeTemplate(rootPath string, challengeMarkup string) ([]byte, error) {
	welcomeTemplate, tplErr := template.ParseFiles(fmt.Sprintf("%s/www/welcome.html", rootPath))
	if tplErr != nil {
		return nil, tplErr
	}
	var b bytes.Buffer
	tplExecuteErr := welcomeTemplate.Execute(&b, template.HTML(challengeMarkup))
	if tplExecuteErr != nil {
		return nil, tplExecuteErr
	}
	return b.Bytes(), nil
}

// GetSessionTemplate renders the session page with the conversion tracking
// iframe embedded.
func GetSessionTemplate(rootPath string, conversionMarkup string) ([]byte, error) {
	sessionTemplate, tplErr := template.ParseFiles(fmt.Sprintf("%s/www/p.html", rootPath))
	if tplErr != nil {
		return nil, tplErr
	}
	var b bytes.Buffer
	tplExecuteErr := sessionTemplate.Execute(&b, template.HTML(conversionMarkup))
	if tplExecuteErr != nil {
		return nil, tplExecuteErr
	}
	return b.Bytes(), nil
}
