// 程序入口：仅负责读取配置、初始化依赖并启动服务；API 注册在 internal/api 以便扩展
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"geo-rd/internal/api"
	"geo-rd/internal/cache"
	"geo-rd/internal/iplocate"
	"geo-rd/internal/logger"
	"geo-rd/internal/metrics"
	"geo-rd/internal/middleware"
	"geo-rd/internal/store"
	"geo-rd/internal/utils"
	"geo-rd/pkg/geord"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	// 日志初始化
	l := logger.Setup()
	l.Debug("log_init_ok")
	if err := run(l); err != nil {
		l.Error("server_exit", "err", err)
		os.Exit(1)
	}
}

// run：初始化依赖并阻塞在监听上；返回前释放 Redis 与 mmdb 句柄
func run(l *slog.Logger) error {
	apiBase := os.Getenv("API_BASE")
	if apiBase == "" {
		apiBase = "/api"
	}
	l.Debug("config_api_base", "base", apiBase)

	ds, err := loadDataset(context.Background())
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	st := ds.Stats()
	metrics.DatasetRows.WithLabelValues("provinces").Set(float64(st.Provinces))
	metrics.DatasetRows.WithLabelValues("municipalities").Set(float64(st.Municipalities))
	metrics.DatasetRows.WithLabelValues("districts").Set(float64(st.Districts))
	l.Info("dataset_ready", "provinces", st.Provinces, "municipalities", st.Municipalities, "districts", st.Districts)

	rc := utils.OpenRedisFromEnv()
	if rc == nil {
		l.Info("redis_disabled")
	} else {
		if err := rc.Ping(context.Background()).Err(); err != nil {
			l.Error("redis_ping_error", "err", err)
		} else {
			l.Info("redis_ping_ok")
		}
		defer rc.Close()
	}
	ttl := time.Duration(utils.EnvInt("CACHE_TTL_S", 3600)) * time.Second
	c := cache.NewTiered(cache.NewLRU(utils.EnvInt("CACHE_LRU_SIZE", 1024), ttl), rc, ttl, l)

	// 背景：未配置 mmdb 时 /ip 返回 503，其余路由不受影响
	loc, err := iplocate.Open(os.Getenv("GEOIP_DB_PATH"), ds)
	if err != nil {
		l.Error("geoip_open_error", "err", err)
		loc = nil
	} else if loc.Enabled() {
		l.Info("geoip_ready", "path", os.Getenv("GEOIP_DB_PATH"))
	} else {
		l.Info("geoip_disabled")
	}
	defer loc.Close()

	mux := http.NewServeMux()
	apiMux := api.BuildRoutes(ds, c, loc)
	mux.Handle(apiBase+"/", http.StripPrefix(apiBase, apiMux))
	mux.Handle(apiBase+"/metrics", metrics.Handler())

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	handler := logger.AccessMiddleware(l)(mux)
	handler = middleware.Wrap(handler)
	s := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}
	l.Info("listening", "addr", addr)
	if err := s.ListenAndServe(); err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return nil
}

// loadDataset：按 GEO_SOURCE 选择数据来源
// 约束：postgres 来源加载失败即启动失败，不回退到内置数据。
func loadDataset(ctx context.Context) (*geord.Dataset, error) {
	if os.Getenv("GEO_SOURCE") != "postgres" {
		return geord.Default(), nil
	}
	db, err := utils.OpenPostgresFromEnv()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return store.AttachDB(db).LoadDataset(ctx)
}
