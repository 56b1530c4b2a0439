package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/ItemRegistry_Go/internal/logger"
	"github.com/osse101/ItemRegistry_Go/internal/metrics"
)

// GuardLimits configures a ClientGuard. Counters reset every Window.
type GuardLimits struct {
	Window            time.Duration
	RequestsPerWindow int
	FailedAuthAlert   int
	NotFoundAlert     int
}

// DefaultGuardLimits returns the limits the server runs with
func DefaultGuardLimits() GuardLimits {
	return GuardLimits{
		Window:            RateLimitWindow,
		RequestsPerWindow: RateLimitPerWindow,
		FailedAuthAlert:   FailedAuthAlertCount,
		NotFoundAlert:     NotFoundAlertCount,
	}
}

type clientStats struct {
	requests   int
	failedAuth int
	notFound   int
}

// ClientGuard keeps per-client counters for the item API: request volume,
// failed admin logins and lookups of unknown item ids.
type ClientGuard struct {
	mu          sync.Mutex
	limits      GuardLimits
	proxies     []netip.Prefix
	clients     map[string]*clientStats
	windowStart time.Time
	now         func() time.Time
}

// NewClientGuard creates a guard. trustedProxies holds addresses or CIDR
// ranges whose X-Forwarded-For header is believed; bad entries are skipped.
func NewClientGuard(limits GuardLimits, trustedProxies []string) *ClientGuard {
	return &ClientGuard{
		limits:      limits,
		proxies:     parseTrustedProxies(trustedProxies),
		clients:     make(map[string]*clientStats),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

func parseTrustedProxies(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				slog.Warn(LogMsgBadTrustedProxy, "proxy", entry, "error", err)
				continue
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			slog.Warn(LogMsgBadTrustedProxy, "proxy", entry, "error", err)
			continue
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes
}

func (g *ClientGuard) trusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range g.proxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP returns the address a request is attributed to. Behind a trusted
// proxy that is the last X-Forwarded-For hop, otherwise the peer address.
func (g *ClientGuard) ClientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	if !g.trusted(remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	if hop := strings.TrimSpace(hops[len(hops)-1]); hop != "" {
		return hop
	}
	return remoteIP
}

// statsLocked returns the counters of ip, starting a new window if the
// current one has ended. Caller must hold g.mu.
func (g *ClientGuard) statsLocked(ip string) *clientStats {
	if now := g.now(); now.Sub(g.windowStart) >= g.limits.Window {
		g.clients = make(map[string]*clientStats)
		g.windowStart = now
	}
	st, ok := g.clients[ip]
	if !ok {
		st = &clientStats{}
		g.clients[ip] = st
	}
	return st
}

// Allow counts a request from ip and reports whether it is within the limit.
// When it is not, retryAfter is the time left in the current window.
func (g *ClientGuard) Allow(ip string) (ok bool, retryAfter time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.statsLocked(ip)
	st.requests++
	if st.requests <= g.limits.RequestsPerWindow {
		return true, 0
	}

	metrics.HTTPGuardEvents.WithLabelValues(guardEventRateLimited).Inc()
	if st.requests == g.limits.RequestsPerWindow+1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "limit", g.limits.RequestsPerWindow, "window", g.limits.Window)
	}
	return false, g.windowStart.Add(g.limits.Window).Sub(g.now())
}

// RecordFailedAuth counts a rejected admin request from ip
func (g *ClientGuard) RecordFailedAuth(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.statsLocked(ip)
	st.failedAuth++
	metrics.HTTPGuardEvents.WithLabelValues(guardEventAuthFailed).Inc()
	if st.failedAuth == g.limits.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", st.failedAuth)
	}
}

// RecordNotFound counts a lookup of an unknown item by ip
func (g *ClientGuard) RecordNotFound(ip, path string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.statsLocked(ip)
	st.notFound++
	metrics.HTTPGuardEvents.WithLabelValues(guardEventNotFound).Inc()
	if st.notFound == g.limits.NotFoundAlert {
		slog.Warn(SecurityAlertItemScan, "ip", ip, "count", st.notFound, "last_path", path)
	}
}

// GuardMiddleware rate limits clients and feeds item lookups that miss back
// into the guard
func GuardMiddleware(guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := guard.ClientIP(r)

			if ok, retryAfter := guard.Allow(ip); !ok {
				secs := int(retryAfter.Round(time.Second) / time.Second)
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(max(secs, 1)))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			if rw.statusCode == http.StatusNotFound && strings.HasPrefix(r.URL.Path, ItemRoutePrefix) {
				guard.RecordNotFound(ip, r.URL.Path)
			}
		})
	}
}

// AuthMiddleware validates the API key on every request it wraps.
// An empty apiKey disables the check, which config only allows on local setups.
func AuthMiddleware(apiKey string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			slog.Warn(LogMsgAuthDisabled)
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAPIKey)

			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := guard.ClientIP(r)
				guard.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// APIHeadersMiddleware sets the headers every JSON response carries.
// Admin responses are never cached.
func APIHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentTypeOptions, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			if strings.HasPrefix(r.URL.Path, AdminRoutePrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
