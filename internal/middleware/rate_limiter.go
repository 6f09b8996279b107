package middleware

import (
	"net/http"
	"sync"
	"time"

	"comidapp/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ipLimiter is a fixed-window per-IP counter. A window resets lazily on the
// first request after it expires; a purge goroutine drops IPs that never
// come back.
type ipLimiter struct {
	limit   int
	window  time.Duration
	mensaje string

	mu      sync.Mutex
	windows map[string]*ipWindow
}

type ipWindow struct {
	count int
	hasta time.Time
}

func newIPLimiter(limit int, window time.Duration, mensaje string) *ipLimiter {
	l := &ipLimiter{
		limit:   limit,
		window:  window,
		mensaje: mensaje,
		windows: map[string]*ipWindow{},
	}
	go l.purgeLoop()
	return l
}

func (l *ipLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[ip]
	if !ok || now.After(w.hasta) {
		w = &ipWindow{hasta: now.Add(l.window)}
		l.windows[ip] = w
	}
	w.count++
	return w.count <= l.limit, w.hasta
}

func (l *ipLimiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, w := range l.windows {
			if now.After(w.hasta) {
				delete(l.windows, ip)
				purged++
			}
		}
		l.mu.Unlock()
		if purged > 0 {
			log.Debug().Int("purged", purged).Msg("rate limiter windows purged")
		}
	}
}

func (l *ipLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, hasta := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", hasta.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

// RateLimiter caps requests per IP across the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}

// LoginRateLimiter caps login attempts to 10 per minute per IP, slowing down
// credential stuffing.
func LoginRateLimiter() gin.HandlerFunc {
	return newIPLimiter(10, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}
