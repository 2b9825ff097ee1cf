package session

// feedbackDoneMsg is sent when the user dismisses the feedback view.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent once the engine reports the session finished.
type sessionEndMsg struct{}
