package core

import (
	"fmt"
	"strings"
)

func NewSessionNotFound(sessionId string) error {
	return fmt.Errorf("Session not found [%s]", sessionId)
}

func SessionNotFound(e error) bool {
	return strings.HasPrefix(e.Error(), "Session not found")
}
