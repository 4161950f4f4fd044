package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// Buckets idle longer than this are dropped once the table is full
	limiterIdle = 10 * time.Minute
	// Upper bound of tracked client addresses
	limiterCapacity = 10000
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client address. The table is
// bounded: when it reaches its capacity, idle clients are evicted first
// and then the least recently seen one.
type IPRateLimiter struct {
	ips      map[string]*visitor
	mu       sync.Mutex
	r        rate.Limit
	b        int
	idle     time.Duration
	capacity int
	now      func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:      make(map[string]*visitor),
		r:        r,
		b:        b,
		idle:     limiterIdle,
		capacity: limiterCapacity,
		now:      time.Now,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	v, exists := i.ips[ip]
	if !exists {
		if len(i.ips) >= i.capacity {
			i.evict(now)
		}
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// evict drops idle clients, or the least recently seen one if none is
// idle. The caller holds the lock.
func (i *IPRateLimiter) evict(now time.Time) {
	var oldest string
	for ip, v := range i.ips {
		if now.Sub(v.lastSeen) > i.idle {
			delete(i.ips, ip)
			continue
		}
		if oldest == "" || v.lastSeen.Before(i.ips[oldest].lastSeen) {
			oldest = ip
		}
	}
	if len(i.ips) >= i.capacity && oldest != "" {
		delete(i.ips, oldest)
	}
}

// Len returns the number of tracked clients
func (i *IPRateLimiter) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// clientIP strips the port from the remote address
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LimitMiddleware rejects requests beyond the client's rate
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.getLimiter(clientIP(r)).Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}
