// File: internal/repository/chat/idgen.go
package chat

import (
	"strconv"
	"sync"
	"time"
)

// idGenerator issues unix-second id tokens. Tokens are strictly increasing
// per generator, so two chats created within the same second still get
// distinct ids, and a freshly created chat never reuses a just-deleted id.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().Unix()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return strconv.FormatInt(now, 10)
}
