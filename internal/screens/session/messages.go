package session

import "time"

// sessionStartedMsg confirms the session start event was persisted.
type sessionStartedMsg struct {
	Err error
}

// coachTickMsg polls the coach service for a ready explanation.
type coachTickMsg time.Time

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
