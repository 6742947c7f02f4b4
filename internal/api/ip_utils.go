package api

import (
	"net"
	"net/http"
	"strings"
)

// getClientIP：解析待查询 IP
// 背景：优先显式参数，其次常见反向代理头，最后回退远端地址。
// 约束：头部存在伪造风险，部署在不可信代理之后时需由网关过滤。
func getClientIP(r *http.Request) string {
	if q := strings.TrimSpace(r.URL.Query().Get("ip")); q != "" {
		return q
	}
	h := r.Header
	if x := h.Get("x-forwarded-for"); x != "" {
		return strings.TrimSpace(strings.Split(x, ",")[0])
	}
	for _, k := range []string{"cf-connecting-ip", "x-real-ip", "x-client-ip"} {
		if x := h.Get(k); x != "" {
			return strings.TrimSpace(x)
		}
	}
	if x := h.Get("forwarded"); x != "" {
		i := strings.Index(strings.ToLower(x), "for=")
		if i >= 0 {
			y := x[i+4:]
			if p := strings.IndexAny(y, ";,"); p >= 0 {
				y = y[:p]
			}
			return forwardedNode(y)
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// forwardedNode：解析 Forwarded 头中的 for= 节点，去掉引号、IPv6 方括号与端口
func forwardedNode(v string) string {
	v = strings.Trim(strings.TrimSpace(v), "\"")
	if host, _, err := net.SplitHostPort(v); err == nil {
		return host
	}
	return strings.Trim(v, "[]")
}
