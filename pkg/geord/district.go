package geord

func districtCode(x District) string { return x.Code }
func districtName(x District) string { return x.Name }
func districtProvince(x District) string { return x.ProvinceCode }
func districtMunicipality(x District) string { return x.MunicipalityCode }

// Districts：全部市辖区，按表内顺序
func (d *Dataset) Districts() []District {
	return clone(d.districts)
}

func (d *Dataset) DistrictByCode(code string) (District, bool) {
	return byCode(d.districts, code, districtCode)
}

func (d *Dataset) DistrictByName(name string) (District, bool) {
	return byName(d.districts, name, districtName)
}

func (d *Dataset) DistrictsByNameLike(fragment string) []District {
	return byNameLike(d.districts, fragment, districtName)
}

func (d *Dataset) ExcludeDistrictsByCode(codes ...string) []District {
	return excluding(d.districts, codes, districtCode)
}

// DistrictsByProvince：按记录自带的省编码过滤，不经由市级表
func (d *Dataset) DistrictsByProvince(provinceCode string) []District {
	return byParent(d.districts, provinceCode, districtProvince)
}

func (d *Dataset) DistrictsByMunicipality(municipalityCode string) []District {
	return byParent(d.districts, municipalityCode, districtMunicipality)
}

// ExcludeDistrictsByMunicipality：市编码原样比较，不做 trim
func (d *Dataset) ExcludeDistrictsByMunicipality(municipalityCodes ...string) []District {
	return excluding(d.districts, municipalityCodes, districtMunicipality)
}

// ExcludeDistrictsByProvince：省编码原样比较，不做 trim
func (d *Dataset) ExcludeDistrictsByProvince(provinceCodes ...string) []District {
	return excluding(d.districts, provinceCodes, districtProvince)
}
