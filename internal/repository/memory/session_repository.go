package memory

import (
	"time"

	"plantcare-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps chat conversations in process memory.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewSessionRepository creates the store. A ttl of zero keeps sessions until
// they are deleted or the process exits.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl / 6
		if cleanup < time.Minute {
			cleanup = time.Minute
		}
	}
	return &SessionRepository{
		cache: cache.New(expiration, cleanup),
		ttl:   expiration,
	}
}

// GetOrCreate returns the conversation for id, building it with seed when
// absent. created reports whether this call created it. Concurrent callers
// for the same new id all receive the same conversation.
func (r *SessionRepository) GetOrCreate(id string, seed func() []store.Turn) (conv *store.Conversation, created bool) {
	if conv, ok := r.Get(id); ok {
		return conv, false
	}
	fresh := store.NewConversation(id, seed())
	if err := r.cache.Add(id, fresh, cache.DefaultExpiration); err != nil {
		// lost the race, another request created it first
		if conv, ok := r.Get(id); ok {
			return conv, false
		}
		r.cache.Set(id, fresh, cache.DefaultExpiration)
	}
	return fresh, true
}

// Get returns the conversation and refreshes its expiry.
func (r *SessionRepository) Get(id string) (*store.Conversation, bool) {
	x, found := r.cache.Get(id)
	if !found {
		return nil, false
	}
	conv := x.(*store.Conversation)
	if r.ttl > 0 {
		r.cache.Set(id, conv, cache.DefaultExpiration)
	}
	return conv, true
}

func (r *SessionRepository) Delete(id string) bool {
	_, found := r.cache.Get(id)
	r.cache.Delete(id)
	return found
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
