package geord

func provinceCode(p Province) string { return p.Code }
func provinceName(p Province) string { return p.Name }

// Provinces：全部省，按表内顺序
func (d *Dataset) Provinces() []Province {
	return clone(d.provinces)
}

// ProvinceByCode：按编码查找；输入会 trim，空输入返回未命中
func (d *Dataset) ProvinceByCode(code string) (Province, bool) {
	return byCode(d.provinces, code, provinceCode)
}

// ProvinceByName：按名称查找（大小写不敏感，完全匹配）
func (d *Dataset) ProvinceByName(name string) (Province, bool) {
	return byName(d.provinces, name, provinceName)
}

// ProvincesByNameLike：名称包含 fragment 的全部省；空片段返回空集
func (d *Dataset) ProvincesByNameLike(fragment string) []Province {
	return byNameLike(d.provinces, fragment, provinceName)
}

// ExcludeProvincesByCode：排除给定编码后的省
// 注意：与 ProvinceByCode 不同，编码原样比较，不做 trim。
func (d *Dataset) ExcludeProvincesByCode(codes ...string) []Province {
	return excluding(d.provinces, codes, provinceCode)
}
