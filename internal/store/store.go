// 包 store：参照表的 PostgreSQL 数据源；读取用于服务启动，写入仅供 geo-seed 工具使用
package store

import (
	"context"
	"database/sql"
	"fmt"

	"geo-rd/internal/logger"
	"geo-rd/pkg/geord"

	"github.com/lib/pq"
)

// Store：持有连接池
type Store struct {
	db *sql.DB
}

func AttachDB(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) DB() *sql.DB { return s.db }

// LoadDataset：按 ord 顺序读取三张表并构建只读数据集
// 异常：任一查询或扫描失败直接返回，启动方应视为致命错误。
func (s *Store) LoadDataset(ctx context.Context) (*geord.Dataset, error) {
	var provinces []geord.Province
	err := s.scan(ctx, "SELECT code, name FROM _geo_provinces ORDER BY ord", func(rows *sql.Rows) error {
		var p geord.Province
		if err := rows.Scan(&p.Code, &p.Name); err != nil {
			return err
		}
		provinces = append(provinces, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load provinces: %w", err)
	}
	var municipalities []geord.Municipality
	err = s.scan(ctx, "SELECT code, name, province_code FROM _geo_municipalities ORDER BY ord", func(rows *sql.Rows) error {
		var m geord.Municipality
		if err := rows.Scan(&m.Code, &m.Name, &m.ProvinceCode); err != nil {
			return err
		}
		municipalities = append(municipalities, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load municipalities: %w", err)
	}
	var districts []geord.District
	err = s.scan(ctx, "SELECT code, name, province_code, municipality_code FROM _geo_districts ORDER BY ord", func(rows *sql.Rows) error {
		var d geord.District
		if err := rows.Scan(&d.Code, &d.Name, &d.ProvinceCode, &d.MunicipalityCode); err != nil {
			return err
		}
		districts = append(districts, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load districts: %w", err)
	}
	logger.L().Debug("store_load_done", "provinces", len(provinces), "municipalities", len(municipalities), "districts", len(districts))
	return geord.New(provinces, municipalities, districts), nil
}

func (s *Store) scan(ctx context.Context, query string, each func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := each(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Seed：在单个事务内同步整个数据集，ord 取表内下标
// 约束：先删除数据集中不存在的行再 upsert，库表与数据集一一对应；重复执行结果一致。
func (s *Store) Seed(ctx context.Context, ds *geord.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	prune := []struct {
		table string
		codes []string
	}{
		{"_geo_districts", codesOf(ds.Districts(), func(d geord.District) string { return d.Code })},
		{"_geo_municipalities", codesOf(ds.Municipalities(), func(m geord.Municipality) string { return m.Code })},
		{"_geo_provinces", codesOf(ds.Provinces(), func(p geord.Province) string { return p.Code })},
	}
	for _, p := range prune {
		res, err := tx.ExecContext(ctx, `DELETE FROM `+p.table+` WHERE code <> ALL($1)`, pq.Array(p.codes))
		if err != nil {
			return fmt.Errorf("prune %s: %w", p.table, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			logger.L().Info("seed_pruned", "table", p.table, "rows", n)
		}
	}

	stmtProv, err := tx.PrepareContext(ctx, `INSERT INTO _geo_provinces(code, name, ord) VALUES($1,$2,$3)
        ON CONFLICT (code) DO UPDATE SET name=EXCLUDED.name, ord=EXCLUDED.ord`)
	if err != nil {
		return err
	}
	defer stmtProv.Close()
	for i, p := range ds.Provinces() {
		if _, err := stmtProv.ExecContext(ctx, p.Code, p.Name, i); err != nil {
			return fmt.Errorf("seed province %s: %w", p.Code, err)
		}
	}

	stmtMun, err := tx.PrepareContext(ctx, `INSERT INTO _geo_municipalities(code, name, province_code, ord) VALUES($1,$2,$3,$4)
        ON CONFLICT (code) DO UPDATE SET name=EXCLUDED.name, province_code=EXCLUDED.province_code, ord=EXCLUDED.ord`)
	if err != nil {
		return err
	}
	defer stmtMun.Close()
	for i, m := range ds.Municipalities() {
		if _, err := stmtMun.ExecContext(ctx, m.Code, m.Name, m.ProvinceCode, i); err != nil {
			return fmt.Errorf("seed municipality %s: %w", m.Code, err)
		}
	}

	stmtDist, err := tx.PrepareContext(ctx, `INSERT INTO _geo_districts(code, name, province_code, municipality_code, ord) VALUES($1,$2,$3,$4,$5)
        ON CONFLICT (code) DO UPDATE SET name=EXCLUDED.name, province_code=EXCLUDED.province_code, municipality_code=EXCLUDED.municipality_code, ord=EXCLUDED.ord`)
	if err != nil {
		return err
	}
	defer stmtDist.Close()
	for i, d := range ds.Districts() {
		if _, err := stmtDist.ExecContext(ctx, d.Code, d.Name, d.ProvinceCode, d.MunicipalityCode, i); err != nil {
			return fmt.Errorf("seed district %s: %w", d.Code, err)
		}
	}
	return tx.Commit()
}

func codesOf[T any](rows []T, codeOf func(T) string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, codeOf(r))
	}
	return out
}
