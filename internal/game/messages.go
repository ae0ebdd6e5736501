package game

import "fmt"

// Message is a status line stamped with the frame it was recorded on.
type Message struct {
	Text  string
	Frame uint64
}

// String formats the message for the HUD.
func (m Message) String() string {
	return fmt.Sprintf("%6d %s", m.Frame, m.Text)
}

// MessageLog keeps the most recent messages in a fixed ring. Once full,
// each Add overwrites the oldest entry.
type MessageLog struct {
	ring  []Message
	start int // index of the oldest entry
	count int
}

// NewMessageLog creates a log holding up to size messages.
func NewMessageLog(size int) *MessageLog {
	return &MessageLog{ring: make([]Message, max(0, size))}
}

// Add records text at frame.
func (l *MessageLog) Add(frame uint64, text string) {
	if len(l.ring) == 0 {
		return
	}
	l.ring[(l.start+l.count)%len(l.ring)] = Message{Text: text, Frame: frame}
	if l.count < len(l.ring) {
		l.count++
		return
	}
	l.start = (l.start + 1) % len(l.ring)
}

// Len returns the number of messages held.
func (l *MessageLog) Len() int { return l.count }

// Recent returns a copy of the newest n messages, oldest first.
func (l *MessageLog) Recent(n int) []Message {
	n = max(0, min(n, l.count))
	out := make([]Message, n)
	first := l.start + l.count - n
	for k := range out {
		out[k] = l.ring[(first+k)%len(l.ring)]
	}
	return out
}
