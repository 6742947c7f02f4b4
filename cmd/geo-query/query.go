package main

import (
	"fmt"
	"strings"

	"geo-rd/pkg/geord"
)

type options struct {
	table        string
	code         string
	name         string
	like         string
	province     string
	municipality string
	exclude      string
}

// 逗号分隔，各项不 trim
func (o options) excludeCodes() []string {
	if o.exclude == "" {
		return nil
	}
	return strings.Split(o.exclude, ",")
}

// run：按与 HTTP 接口相同的优先级选择查询，返回表头与行
func run(ds *geord.Dataset, o options) ([]string, [][]string, error) {
	switch o.table {
	case "provinces":
		return []string{"code", "name"}, provinceRows(ds, o), nil
	case "municipalities":
		return []string{"code", "name", "province"}, municipalityRows(ds, o), nil
	case "districts":
		return []string{"code", "name", "province", "municipality"}, districtRows(ds, o), nil
	}
	return nil, nil, fmt.Errorf("unknown table %q", o.table)
}

func one[T any](v T, ok bool) []T {
	if !ok {
		return nil
	}
	return []T{v}
}

func provinceRows(ds *geord.Dataset, o options) [][]string {
	var ps []geord.Province
	switch {
	case o.code != "":
		ps = one(ds.ProvinceByCode(o.code))
	case o.name != "":
		ps = one(ds.ProvinceByName(o.name))
	case o.like != "":
		ps = ds.ProvincesByNameLike(o.like)
	case o.exclude != "":
		ps = ds.ExcludeProvincesByCode(o.excludeCodes()...)
	default:
		ps = ds.Provinces()
	}
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, []string{p.Code, p.Name})
	}
	return rows
}

func municipalityRows(ds *geord.Dataset, o options) [][]string {
	var ms []geord.Municipality
	switch {
	case o.code != "":
		ms = one(ds.MunicipalityByCode(o.code))
	case o.name != "":
		ms = one(ds.MunicipalityByName(o.name))
	case o.like != "":
		ms = ds.MunicipalitiesByNameLike(o.like)
	case o.province != "":
		ms = ds.MunicipalitiesByProvince(o.province)
	case o.exclude != "":
		ms = ds.ExcludeMunicipalitiesByCode(o.excludeCodes()...)
	default:
		ms = ds.Municipalities()
	}
	rows := make([][]string, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, []string{m.Code, m.Name, m.ProvinceCode})
	}
	return rows
}

func districtRows(ds *geord.Dataset, o options) [][]string {
	var dd []geord.District
	switch {
	case o.code != "":
		dd = one(ds.DistrictByCode(o.code))
	case o.name != "":
		dd = one(ds.DistrictByName(o.name))
	case o.like != "":
		dd = ds.DistrictsByNameLike(o.like)
	case o.municipality != "":
		dd = ds.DistrictsByMunicipality(o.municipality)
	case o.province != "":
		dd = ds.DistrictsByProvince(o.province)
	case o.exclude != "":
		dd = ds.ExcludeDistrictsByCode(o.excludeCodes()...)
	default:
		dd = ds.Districts()
	}
	rows := make([][]string, 0, len(dd))
	for _, d := range dd {
		rows = append(rows, []string{d.Code, d.Name, d.ProvinceCode, d.MunicipalityCode})
	}
	return rows
}
