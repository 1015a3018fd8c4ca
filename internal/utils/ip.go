package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealClientIP resolves the caller behind reverse proxies.
func GetRealClientIP(c *gin.Context) string {
	ipHeaders := []string{
		"CF-Connecting-IP", // Cloudflare
		"X-Real-IP",        // Nginx, Caddy
		"X-Forwarded-For",
		"X-Client-IP",
	}

	for _, header := range ipHeaders {
		ipList := c.Request.Header.Get(header)
		if ipList == "" {
			continue
		}
		// X-Forwarded-For may carry a chain; the first valid entry is the client.
		for _, ip := range strings.Split(ipList, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" && isValidIP(ip) {
				return ip
			}
		}
	}

	ip, _, err := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))
	if err == nil && isValidIP(ip) {
		return ip
	}

	return ""
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// MatchIPRule supports a single IP, a CIDR block or a trailing '*' prefix (172.16.5.*).
func MatchIPRule(ip, rule string) bool {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return false
	}
	if rule == ip {
		return true
	}
	if strings.HasSuffix(rule, "*") {
		return strings.HasPrefix(ip, strings.TrimSuffix(rule, "*"))
	}
	if _, cidr, err := net.ParseCIDR(rule); err == nil {
		parsed := net.ParseIP(ip)
		return parsed != nil && cidr.Contains(parsed)
	}
	return false
}

// MatchAnyIPRule reports whether ip hits one of rules.
func MatchAnyIPRule(ip string, rules []string) bool {
	for _, r := range rules {
		if MatchIPRule(ip, r) {
			return true
		}
	}
	return false
}
