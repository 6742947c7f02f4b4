package geord

// 包级快捷函数：均委托给 Default()

func Provinces() []Province { return Default().Provinces() }
func ProvinceByCode(code string) (Province, bool) { return Default().ProvinceByCode(code) }
func ProvinceByName(name string) (Province, bool) { return Default().ProvinceByName(name) }
func ProvincesByNameLike(fragment string) []Province {
	return Default().ProvincesByNameLike(fragment)
}
func ExcludeProvincesByCode(codes ...string) []Province {
	return Default().ExcludeProvincesByCode(codes...)
}

func Municipalities() []Municipality { return Default().Municipalities() }
func MunicipalityByCode(code string) (Municipality, bool) {
	return Default().MunicipalityByCode(code)
}
func MunicipalityByName(name string) (Municipality, bool) {
	return Default().MunicipalityByName(name)
}
func MunicipalitiesByNameLike(fragment string) []Municipality {
	return Default().MunicipalitiesByNameLike(fragment)
}
func ExcludeMunicipalitiesByCode(codes ...string) []Municipality {
	return Default().ExcludeMunicipalitiesByCode(codes...)
}
func MunicipalitiesByProvince(provinceCode string) []Municipality {
	return Default().MunicipalitiesByProvince(provinceCode)
}
func ExcludeMunicipalitiesByProvince(provinceCodes ...string) []Municipality {
	return Default().ExcludeMunicipalitiesByProvince(provinceCodes...)
}

func Districts() []District { return Default().Districts() }
func DistrictByCode(code string) (District, bool) { return Default().DistrictByCode(code) }
func DistrictByName(name string) (District, bool) { return Default().DistrictByName(name) }
func DistrictsByNameLike(fragment string) []District {
	return Default().DistrictsByNameLike(fragment)
}
func ExcludeDistrictsByCode(codes ...string) []District {
	return Default().ExcludeDistrictsByCode(codes...)
}
func DistrictsByProvince(provinceCode string) []District {
	return Default().DistrictsByProvince(provinceCode)
}
func DistrictsByMunicipality(municipalityCode string) []District {
	return Default().DistrictsByMunicipality(municipalityCode)
}
func ExcludeDistrictsByMunicipality(municipalityCodes ...string) []District {
	return Default().ExcludeDistrictsByMunicipality(municipalityCodes...)
}
func ExcludeDistrictsByProvince(provinceCodes ...string) []District {
	return Default().ExcludeDistrictsByProvince(provinceCodes...)
}
