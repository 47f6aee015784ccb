package event

type EventType string

const SESSION_NEW EventType = "session new"
const SESSION_END EventType = "session end"
const CONVERSION_RECORDED EventType = "conversion recorded"

type Handler func(sessionId string, args ...interface{})
type AnyHandler func(eventType EventType, sessionId string, args ...interface{})

type EventApi interface {
	Emit(name EventType, sessionId string, args ...interface{})
	On(name EventType, handler Handler)
	OnAny(handler AnyHandler)
}
