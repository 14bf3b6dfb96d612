package rate

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter enforces a token-bucket rate per client id. Idle clients are
// swept after the configured expiry so the map does not grow unbounded.
type Limiter struct {
	limitRPS float64
	burst    int
	expiry   time.Duration

	mu      sync.Mutex
	clients map[string]*client
	done    chan struct{}
}

type client struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func New(limitRPS float64, burst int, expiry time.Duration) *Limiter {
	l := &Limiter{
		limitRPS: limitRPS,
		burst:    burst,
		expiry:   expiry,
		clients:  make(map[string]*client),
		done:     make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow reports whether the client identified by id may proceed.
func (l *Limiter) Allow(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[id]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rate.Limit(l.limitRPS), l.burst)}
		l.clients[id] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter.Allow()
}

// Stop terminates the background sweeper.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
		}

		l.mu.Lock()
		for id, cl := range l.clients {
			if time.Since(cl.lastAccess) > l.expiry {
				delete(l.clients, id)
			}
		}
		l.mu.Unlock()
	}
}

// Every converts a minimum interval between requests to a rate.
func Every(interval time.Duration) float64 {
	return float64(rate.Every(interval))
}
