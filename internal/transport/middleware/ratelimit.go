package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP with one token bucket per
// address. Buckets idle longer than twice the sweep interval are dropped.
type RateLimiter struct {
	clients  sync.Map // ip -> *client
	idleTTL  time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen stamp
}

type stamp struct {
	mu sync.Mutex
	t  time.Time
}

func (a *stamp) store(t time.Time) {
	a.mu.Lock()
	a.t = t
	a.mu.Unlock()
}

func (a *stamp) load() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.t
}

// NewRateLimiter starts the sweep goroutine. Call Stop on shutdown.
func NewRateLimiter(sweepInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{idleTTL: 2 * sweepInterval, done: make(chan struct{})}
	go rl.sweep(sweepInterval)
	return rl
}

// Stop ends the sweep goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// Limit allows perMinute requests per client IP with a burst of the same
// size. perMinute <= 0 disables the limit.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		every := rate.Every(time.Minute / time.Duration(perMinute))
		retryAfter := strconv.Itoa(int(math.Ceil(60/float64(perMinute))) + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.clientFor(remoteHost(r), every, perMinute).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) clientFor(ip string, every rate.Limit, burst int) *rate.Limiter {
	now := time.Now()
	v, ok := rl.clients.Load(ip)
	if !ok {
		c := &client{limiter: rate.NewLimiter(every, burst)}
		v, _ = rl.clients.LoadOrStore(ip, c)
	}
	c := v.(*client)
	c.lastSeen.store(now)
	return c.limiter
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.clients.Range(func(ip, v any) bool {
				if now.Sub(v.(*client).lastSeen.load()) > rl.idleTTL {
					rl.clients.Delete(ip)
				}
				return true
			})
		}
	}
}

// remoteHost strips the port from RemoteAddr.
func remoteHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
