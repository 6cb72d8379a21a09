package core

import "log"

var (
	CopiedMessage = "code copied to clipboard"
	ResetMessage  = "code reset"
)

// DispatchMessage sends a status message. The id doubles as the message
// text unless a value is given.
func (e *editor) DispatchMessage(id string, value ...string) {
	message := id
	if len(value) > 0 {
		message = value[0]
	}
	select {
	case e.updateSignal <- MessageSignal{id, message}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
