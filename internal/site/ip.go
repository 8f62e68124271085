package site

import (
	"net/http"
	"strings"
)

// ipHeaders are checked in order of reliability. CF-Connecting-IP wins when
// the deployment sits behind Cloudflare; the X-Forwarded variants may carry a
// comma-separated chain where the first element is the client.
var ipHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
	"X-Client-IP",
	"X-Forwarded",
}

// ClientIP extracts the requesting client's IP from proxy headers, falling
// back to the connection's remote address. Returns "" when nothing is known.
func ClientIP(req *http.Request) string {
	for _, h := range ipHeaders {
		v := req.Header.Get(h)
		if v == "" {
			continue
		}
		if i := strings.IndexByte(v, ','); i >= 0 {
			v = v[:i]
		}
		return strings.TrimSpace(v)
	}
	if host := req.RemoteAddr; host != "" {
		if i := strings.LastIndexByte(host, ':'); i >= 0 {
			return host[:i]
		}
		return host
	}
	return ""
}
