package pkg

import (
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// covers requests coming through the local docker bridge
var localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1:\d{1,5}`)

func IPIsLocal(ipAddr string) bool {
	// used in local development ?
	if strings.HasPrefix(ipAddr, "127.0.0.1:") {
		return true
	}

	return localDockerIpRegex.MatchString(ipAddr)
}

// ReadUserIP reads the client IP address from the reverse proxy headers,
// falling back to the connection remote address.
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = r.Header.Get("X-Forwarded-For")
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	// X-Forwarded-For can hold the whole proxy chain, the client comes first
	if commaIdx := strings.Index(ipAddr, ","); commaIdx > 0 {
		ipAddr = strings.TrimSpace(ipAddr[:commaIdx])
	}

	// used in development
	if IPIsLocal(ipAddr) {
		log.Debugf("read user IP: local dev request, returning localhost")
		return "localhost", nil
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}

	if net.ParseIP(ipAddr) == nil {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}

	return ipAddr, nil
}
