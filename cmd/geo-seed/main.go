// geo-seed：将内置参照数据写入 PostgreSQL，供 GEO_SOURCE=postgres 的服务读取
package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"geo-rd/internal/logger"
	"geo-rd/internal/migrate"
	"geo-rd/internal/store"
	"geo-rd/internal/utils"
	"geo-rd/pkg/geord"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	l := logger.Setup()

	db, err := utils.OpenPostgresFromEnv()
	if err != nil {
		l.Error("db_open_error", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Error("db_ping_error", "err", err)
		os.Exit(1)
	}
	if err := migrate.EnsureSchema(ctx, db); err != nil {
		l.Error("schema_error", "err", err)
		os.Exit(1)
	}

	ds := geord.Default()
	tBegin := time.Now()
	if err := store.AttachDB(db).Seed(ctx, ds); err != nil {
		l.Error("seed_error", "err", err)
		os.Exit(1)
	}
	st := ds.Stats()
	l.Info("seed_done", "provinces", st.Provinces, "municipalities", st.Municipalities, "districts", st.Districts, "ms", time.Since(tBegin).Milliseconds())
}
