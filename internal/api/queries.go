package api

import (
	"net/url"

	"geo-rd/pkg/geord"
)

// 查询参数优先级：code > name > like > 上级过滤 > 上级排除 > exclude > 全量
// exclude 类参数可重复出现，值原样传入，不做 trim。

func provinceAnswer(ds *geord.Dataset, q url.Values) answer {
	switch {
	case q.Has("code"):
		return found(ds.ProvinceByCode(q.Get("code")))
	case q.Has("name"):
		return found(ds.ProvinceByName(q.Get("name")))
	case q.Has("like"):
		return list(ds.ProvincesByNameLike(q.Get("like")))
	case q.Has("exclude"):
		return list(ds.ExcludeProvincesByCode(q["exclude"]...))
	}
	return list(ds.Provinces())
}

func municipalityAnswer(ds *geord.Dataset, q url.Values) answer {
	switch {
	case q.Has("code"):
		return found(ds.MunicipalityByCode(q.Get("code")))
	case q.Has("name"):
		return found(ds.MunicipalityByName(q.Get("name")))
	case q.Has("like"):
		return list(ds.MunicipalitiesByNameLike(q.Get("like")))
	case q.Has("province"):
		return list(ds.MunicipalitiesByProvince(q.Get("province")))
	case q.Has("exclude_province"):
		return list(ds.ExcludeMunicipalitiesByProvince(q["exclude_province"]...))
	case q.Has("exclude"):
		return list(ds.ExcludeMunicipalitiesByCode(q["exclude"]...))
	}
	return list(ds.Municipalities())
}

func districtAnswer(ds *geord.Dataset, q url.Values) answer {
	switch {
	case q.Has("code"):
		return found(ds.DistrictByCode(q.Get("code")))
	case q.Has("name"):
		return found(ds.DistrictByName(q.Get("name")))
	case q.Has("like"):
		return list(ds.DistrictsByNameLike(q.Get("like")))
	case q.Has("municipality"):
		return list(ds.DistrictsByMunicipality(q.Get("municipality")))
	case q.Has("province"):
		return list(ds.DistrictsByProvince(q.Get("province")))
	case q.Has("exclude_municipality"):
		return list(ds.ExcludeDistrictsByMunicipality(q["exclude_municipality"]...))
	case q.Has("exclude_province"):
		return list(ds.ExcludeDistrictsByProvince(q["exclude_province"]...))
	case q.Has("exclude"):
		return list(ds.ExcludeDistrictsByCode(q["exclude"]...))
	}
	return list(ds.Districts())
}
