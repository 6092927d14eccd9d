package orderControllers

import (
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestClientSetConcurrentRegistration(t *testing.T) {
	conns := make([]*websocket.Conn, 8)
	for i := range conns {
		conns[i] = &websocket.Conn{}
	}

	var wg sync.WaitGroup
	for _, conn := range conns {
		wg.Add(1)
		go func(c *websocket.Conn) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				addWSClient(c)
				removeWSClient(c)
			}
		}(conn)
	}
	wg.Wait()

	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	assert.Empty(t, wsClients)
}
