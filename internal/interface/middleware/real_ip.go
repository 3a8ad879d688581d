package middleware

import "github.com/gin-gonic/gin"

// remoteIPHeaders are honoured only when the peer is a trusted proxy.
// Order sets priority: Cloudflare first, then the usual forwarding headers.
var remoteIPHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// TrustProxies limits which peers may set the client IP through forwarding
// headers. An empty list trusts none, so the TCP peer address is used.
func TrustProxies(engine *gin.Engine, proxies []string) error {
	engine.ForwardedByClientIP = true
	engine.RemoteIPHeaders = append([]string(nil), remoteIPHeaders...)
	return engine.SetTrustedProxies(proxies)
}

// RealIP sets the resolved client IP into Gin context (key: "real_ip").
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}

// ClientIP returns the address resolved by RealIP, falling back to Gin's.
func ClientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
