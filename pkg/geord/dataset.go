package geord

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"
)

// 随库打包的参照数据
//
//go:embed data/*.json
var bundled embed.FS

const (
	ProvincesFile      = "provinces.json"
	MunicipalitiesFile = "municipalities.json"
	DistrictsFile      = "districts.json"
)

// Dataset：三张只读参照表的快照
// 约束：构造后不再修改；所有查询返回新分配的切片，调用方修改结果不会影响后续查询。
type Dataset struct {
	provinces      []Province
	municipalities []Municipality
	districts      []District
}

// New：由调用方提供的三张表构建数据集
// 约束：入参会被复制，调用方之后修改原切片不影响数据集。
func New(provinces []Province, municipalities []Municipality, districts []District) *Dataset {
	return &Dataset{
		provinces:      clone(provinces),
		municipalities: clone(municipalities),
		districts:      clone(districts),
	}
}

// Load：从文件系统读取三张表（JSON 数组）
// 约定：fsys 根目录下须包含 provinces.json、municipalities.json、districts.json。
// 异常：任一文件缺失或解析失败直接返回，错误中携带文件名。
func Load(fsys fs.FS) (*Dataset, error) {
	ds := &Dataset{}
	if err := decodeFile(fsys, ProvincesFile, &ds.provinces); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, MunicipalitiesFile, &ds.municipalities); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, DistrictsFile, &ds.districts); err != nil {
		return nil, err
	}
	return ds, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("geord: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("geord: parse %s: %w", name, err)
	}
	return nil
}

// Bundled：返回随库打包的数据文件系统（根目录即数据文件）
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

var (
	defaultOnce sync.Once
	defaultDS   *Dataset
)

// Default：进程级默认数据集，首次调用时解析内置数据
// 约束：内置数据无法解析时 panic，进程无法提供任何查询。
func Default() *Dataset {
	defaultOnce.Do(func() {
		ds, err := Load(Bundled())
		if err != nil {
			panic(err)
		}
		defaultDS = ds
	})
	return defaultDS
}

// Stats：各表行数
func (d *Dataset) Stats() Stats {
	return Stats{
		Provinces:      len(d.provinces),
		Municipalities: len(d.municipalities),
		Districts:      len(d.districts),
	}
}
