package middleware

// realip.go resolves the client address the rate limiter and access log
// see. Forwarding headers are honored only when the connection itself
// comes from a configured proxy, so a direct client cannot spoof its way
// past the per-IP limiter by sending its own X-Real-IP.

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// TrustedRealIP returns middleware that rewrites r.RemoteAddr to the
// client address reported by X-Real-IP or X-Forwarded-For, provided the
// request arrived from one of the given proxy networks. Entries may be
// prefixes ("10.0.0.0/8") or bare addresses ("127.0.0.1"); invalid
// entries are logged and skipped. With no trusted proxies configured the
// headers are ignored entirely.
func TrustedRealIP(proxies []string) func(http.Handler) http.Handler {
	trusted := parseProxyList(proxies)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if peer, ok := peerAddr(r.RemoteAddr); ok && addrTrusted(trusted, peer) {
				if client, ok := forwardedClient(r.Header); ok {
					r.RemoteAddr = client.String()
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// parseProxyList converts the configured proxy entries into prefixes.
// A bare address becomes a single-address prefix.
func parseProxyList(entries []string) []netip.Prefix {
	var prefixes []netip.Prefix
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if p, err := netip.ParsePrefix(entry); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}
		if a, err := netip.ParseAddr(entry); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(a, a.BitLen()))
			continue
		}
		slog.Warn("ignoring invalid trusted proxy entry", "entry", entry)
	}
	return prefixes
}

// peerAddr extracts the connection's source address from RemoteAddr,
// which may arrive with or without a port.
func peerAddr(remote string) (netip.Addr, bool) {
	if host, _, err := net.SplitHostPort(remote); err == nil {
		remote = host
	}
	a, err := netip.ParseAddr(remote)
	return a, err == nil
}

// addrTrusted reports whether a falls inside any trusted proxy network.
func addrTrusted(trusted []netip.Prefix, a netip.Addr) bool {
	for _, p := range trusted {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

// forwardedClient picks the client address out of the forwarding headers.
// X-Real-IP wins when present; otherwise the first hop of the
// X-Forwarded-For chain is used. Values that do not parse as an address
// are rejected outright rather than passed through.
func forwardedClient(h http.Header) (netip.Addr, bool) {
	if v := strings.TrimSpace(h.Get("X-Real-IP")); v != "" {
		a, err := netip.ParseAddr(v)
		return a, err == nil
	}
	if v := h.Get("X-Forwarded-For"); v != "" {
		first, _, _ := strings.Cut(v, ",")
		a, err := netip.ParseAddr(strings.TrimSpace(first))
		return a, err == nil
	}
	return netip.Addr{}, false
}
