package store

import (
	"sync"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message in a conversation log.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Conversation is the in-memory state of one chat session.
// The first Reserved turns are seed context and are never evicted.
//
// Callers must hold the conversation lock across a read-modify-write
// exchange (append user turn, generate, append reply, trim).
type Conversation struct {
	mu sync.Mutex

	ID        string    `json:"id"`
	Turns     []Turn    `json:"turns"`
	Reserved  int       `json:"reserved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewConversation(id string, seed []Turn) *Conversation {
	now := time.Now()
	turns := make([]Turn, len(seed))
	copy(turns, seed)
	return &Conversation{
		ID:        id,
		Turns:     turns,
		Reserved:  len(seed),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Conversation) Lock()   { c.mu.Lock() }
func (c *Conversation) Unlock() { c.mu.Unlock() }

func (c *Conversation) Append(role, text string) {
	c.Turns = append(c.Turns, Turn{Role: role, Text: text})
	c.UpdatedAt = time.Now()
}

// DropLast removes the most recent turn unless it belongs to the reserved prefix.
func (c *Conversation) DropLast() bool {
	if len(c.Turns) <= c.Reserved {
		return false
	}
	c.Turns = c.Turns[:len(c.Turns)-1]
	return true
}

// Trim applies the retention policy and returns the number of dropped turns.
func (c *Conversation) Trim(max int) int {
	before := len(c.Turns)
	c.Turns = TrimTurns(c.Turns, c.Reserved, max)
	return before - len(c.Turns)
}

// Snapshot returns a copy of the turns, safe to hand to other goroutines.
func (c *Conversation) Snapshot() []Turn {
	out := make([]Turn, len(c.Turns))
	copy(out, c.Turns)
	return out
}

func (c *Conversation) Len() int {
	return len(c.Turns)
}
