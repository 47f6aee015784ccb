package ayah

import "github.com/stretchr/testify/mock"

type Mock struct {
	mock.Mock
}

func (m *Mock) GetChallengeMarkup() string {
	args := m.Called()
	return args.String(0)
}

func (m *Mock) ScoreSession(sessionSecret string) bool {
	args := m.Called(sessionSecret)
	return args.Bool(0)
}

func (m *Mock) RecordConversion(sessionSecret string) string {
	args := m.Called(sessionSecret)
	return args.String(0)
}
