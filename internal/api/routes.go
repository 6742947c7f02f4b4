// 包 api：集中注册只读查询路由，主入口只负责挂载
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"geo-rd/internal/cache"
	"geo-rd/internal/iplocate"
	"geo-rd/internal/logger"
	"geo-rd/internal/metrics"
	"geo-rd/pkg/geord"
)

const tableCacheControl = "public, max-age=3600"

// BuildRoutes：返回独立 ServeMux，由主入口挂载到 API_BASE 前缀下
// 约束：c 与 loc 可为 nil，分别表示不缓存、不提供 /ip。
func BuildRoutes(ds *geord.Dataset, c cache.Store, loc *iplocate.Locator) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/provinces", tableHandler("provinces", c, func(q url.Values) answer { return provinceAnswer(ds, q) }))
	mux.Handle("/municipalities", tableHandler("municipalities", c, func(q url.Values) answer { return municipalityAnswer(ds, q) }))
	mux.Handle("/districts", tableHandler("districts", c, func(q url.Values) answer { return districtAnswer(ds, q) }))

	mux.HandleFunc("/ip", func(w http.ResponseWriter, r *http.Request) {
		if !allowGet(w, r) {
			return
		}
		metrics.RequestsTotal.WithLabelValues("ip").Inc()
		ip := getClientIP(r)
		res, err := loc.Lookup(ip)
		switch {
		case errors.Is(err, iplocate.ErrDisabled):
			writeJSON(w, http.StatusServiceUnavailable, "no-store", errorBody{Error: "ip lookup disabled"})
		case errors.Is(err, iplocate.ErrBadIP):
			metrics.IPLookupsTotal.WithLabelValues("bad_ip").Inc()
			writeJSON(w, http.StatusBadRequest, "no-store", errorBody{Error: "bad ip"})
		case err != nil:
			metrics.IPLookupsTotal.WithLabelValues("error").Inc()
			logger.L().Error("ip_lookup_error", "ip", ip, "err", err)
			writeJSON(w, http.StatusInternalServerError, "no-store", errorBody{Error: "lookup failed"})
		default:
			if res.Province == nil {
				metrics.IPLookupsTotal.WithLabelValues("miss").Inc()
			} else {
				metrics.IPLookupsTotal.WithLabelValues("hit").Inc()
			}
			writeJSON(w, http.StatusOK, "no-store", res)
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if !allowGet(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, "no-store", map[string]any{"status": "ok", "rows": ds.Stats()})
	})
	return mux
}

// tableHandler：参照表查询的通用处理（缓存读穿 + 指标）
// 约束：仅缓存 200 响应；缓存键使用排序后的查询串，参数顺序不同的请求共享条目。
func tableHandler(route string, c cache.Store, resolve func(url.Values) answer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowGet(w, r) {
			return
		}
		tBegin := time.Now()
		defer func() {
			metrics.RequestDurationMs.WithLabelValues(route).Observe(float64(time.Since(tBegin).Microseconds()) / 1000)
		}()
		metrics.RequestsTotal.WithLabelValues(route).Inc()
		q := r.URL.Query()
		key := "geo:/" + route + "?" + q.Encode()
		if c != nil {
			if b, ok := c.Get(r.Context(), key); ok {
				writeRaw(w, http.StatusOK, tableCacheControl, b)
				return
			}
		}
		a := resolve(q)
		if a.empty {
			metrics.EmptyResultsTotal.WithLabelValues(route).Inc()
		}
		b, err := json.Marshal(a.body)
		if err != nil {
			logger.L().Error("json_encode_error", "route", route, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if a.status == http.StatusOK && c != nil {
			c.Set(r.Context(), key, b)
		}
		cc := tableCacheControl
		if a.status != http.StatusOK {
			cc = "no-store"
		}
		writeRaw(w, a.status, cc, b)
	})
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("allow", "GET, HEAD")
	writeJSON(w, http.StatusMethodNotAllowed, "no-store", errorBody{Error: "method not allowed"})
	return false
}

func writeJSON(w http.ResponseWriter, status int, cacheControl string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, cacheControl, b)
}

func writeRaw(w http.ResponseWriter, status int, cacheControl string, b []byte) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", cacheControl)
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
