package migrate

import (
	"context"
	"database/sql"

	"geo-rd/internal/logger"
)

// EnsureSchema：创建参照表；ord 列记录原始表内顺序，读取时按 ord 排序还原
// 约束：使用 IF NOT EXISTS，可重复执行。
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS _geo_provinces (
            code TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            ord INT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS _geo_municipalities (
            code TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            province_code TEXT NOT NULL,
            ord INT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_geo_municipalities_province ON _geo_municipalities(province_code)`,
		`CREATE TABLE IF NOT EXISTS _geo_districts (
            code TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            province_code TEXT NOT NULL,
            municipality_code TEXT NOT NULL,
            ord INT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_geo_districts_municipality ON _geo_districts(municipality_code)`,
	}
	for i, s := range stmts {
		logger.L().Debug("schema_exec", "idx", i)
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	logger.L().Debug("schema_done")
	return nil
}
