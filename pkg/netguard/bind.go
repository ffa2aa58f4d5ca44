package netguard

import (
	"fmt"
	"net"
	"strings"
)

// EnsureLocalOnly rejects non-loopback bind addresses.
func EnsureLocalOnly(addr string) error {
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	host = strings.TrimSpace(host)
	if strings.EqualFold(host, "localhost") {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return nil
	}
	return fmt.Errorf("refusing to bind non-loopback address %q; the demo API is local-only", addr)
}
