package types

import "time"

type Session struct {
	Id                 string    `json:"id"`
	SessionSecret      string    `json:"session_secret"`
	CreatedAt          time.Time `json:"created_at"`
	ExpiresAt          time.Time `json:"expires_at"`
	ConversionRecorded bool      `json:"conversion_recorded"`
}
