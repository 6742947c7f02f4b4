package geord

func municipalityCode(m Municipality) string { return m.Code }
func municipalityName(m Municipality) string { return m.Name }
func municipalityProvince(m Municipality) string { return m.ProvinceCode }

// Municipalities：全部市，按表内顺序
func (d *Dataset) Municipalities() []Municipality {
	return clone(d.municipalities)
}

func (d *Dataset) MunicipalityByCode(code string) (Municipality, bool) {
	return byCode(d.municipalities, code, municipalityCode)
}

func (d *Dataset) MunicipalityByName(name string) (Municipality, bool) {
	return byName(d.municipalities, name, municipalityName)
}

func (d *Dataset) MunicipalitiesByNameLike(fragment string) []Municipality {
	return byNameLike(d.municipalities, fragment, municipalityName)
}

// ExcludeMunicipalitiesByCode：编码原样比较，不做 trim
func (d *Dataset) ExcludeMunicipalitiesByCode(codes ...string) []Municipality {
	return excluding(d.municipalities, codes, municipalityCode)
}

// MunicipalitiesByProvince：某省下的全部市；不校验省编码是否存在
func (d *Dataset) MunicipalitiesByProvince(provinceCode string) []Municipality {
	return byParent(d.municipalities, provinceCode, municipalityProvince)
}

// ExcludeMunicipalitiesByProvince：排除给定省下的市，省编码原样比较
func (d *Dataset) ExcludeMunicipalitiesByProvince(provinceCodes ...string) []Municipality {
	return excluding(d.municipalities, provinceCodes, municipalityProvince)
}
