package middleware

import (
	"sync"
	"time"
)

// LoginRateLimiter counts failed login attempts per client IP.
// Limit: 5 attempts per minute.
type LoginRateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

func NewLoginRateLimiter() *LoginRateLimiter {
	rl := &LoginRateLimiter{
		attempts: make(map[string]*attemptInfo),
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether ip may make another attempt.
func (r *LoginRateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	info, exists := r.attempts[ip]
	if !exists {
		return true
	}

	if now.Sub(info.firstAt) > time.Minute {
		delete(r.attempts, ip)
		return true
	}

	return info.count < 5
}

// RecordFailure registers one failed attempt for ip.
func (r *LoginRateLimiter) RecordFailure(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	info, exists := r.attempts[ip]
	if !exists || now.Sub(info.firstAt) > time.Minute {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return
	}
	info.count++
}

// Reset clears the counter after a successful login.
func (r *LoginRateLimiter) Reset(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, ip)
}

func (r *LoginRateLimiter) cleanup() {
	for range time.Tick(5 * time.Minute) {
		r.mu.Lock()
		cutoff := time.Now().Add(-time.Minute)
		for ip, info := range r.attempts {
			if info.firstAt.Before(cutoff) {
				delete(r.attempts, ip)
			}
		}
		r.mu.Unlock()
	}
}
