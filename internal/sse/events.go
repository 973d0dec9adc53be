package sse

// Event names pushed to room subscribers
const (
	EventRoomUpdate = "room-update"
	EventRoomClosed = "room-closed"
	EventKicked     = "kicked"
	EventMessage    = "chat-message"
	EventShutdown   = "server-shutdown"
)

// Terminal reports whether the subscriber should disconnect after event
func Terminal(event string) bool {
	return event == EventRoomClosed || event == EventKicked || event == EventShutdown
}
