package utils

import (
	"net"
	"net/url"
	"strings"
)

// privateNetworks covers RFC1918, loopback, and link-local ranges, v4 and v6.
var privateNetworks = func() []*net.IPNet {
	cidrs := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"127.0.0.0/8",
		"169.254.0.0/16",
		"::1/128",
		"fe80::/10",
		"fc00::/7",
	}
	nets := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, network, err := net.ParseCIDR(c)
		if err != nil {
			panic(err)
		}
		nets = append(nets, network)
	}
	return nets
}()

// IsAllowedOrigin checks whether an Origin header value should be trusted.
// The dashboard is a LAN service: localhost, private/link-local IPs, .local
// hostnames, and single-label hostnames are allowed; public origins are not.
func IsAllowedOrigin(origin string) bool {
	if origin == "" {
		return false
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}

	hostname := parsed.Hostname()

	if hostname == "localhost" {
		return true
	}
	if strings.HasSuffix(hostname, ".local") {
		return true
	}
	if !strings.Contains(hostname, ".") {
		return true
	}

	if ip := net.ParseIP(hostname); ip != nil {
		for _, network := range privateNetworks {
			if network.Contains(ip) {
				return true
			}
		}
	}

	return false
}
