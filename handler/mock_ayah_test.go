package handler

type mockAyah struct {
	getChallengeMarkup func() string
	scoreSession       func(sessionSecret string) bool
	recordConversion   func(sessionSecret string) string
}

func (m *mockAyah) GetChallengeMarkup() string {
	return m.getChallengeMarkup()
}

func (m *mockAyah) ScoreSession(sessionSecret string) bool {
	return m.scoreSession(sessionSecret)
}

func (m *mockAyah) RecordConversion(sessionSecret string) string {
	return m.recordConversion(sessionSecret)
}
