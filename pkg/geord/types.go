// 包 geord：多米尼加共和国行政区划（省 → 市 → 区）的只读查询库
// 背景：三张参照表在进程内只加载一次，之后所有查询均为对内存数据的纯函数过滤；不做持久化、不做写入、不校验数据一致性。
// 约束：不依赖项目内部代码，可被其他程序直接作为库引用。
package geord

// Province：省级行政区
type Province struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Municipality：市级行政区，ProvinceCode 指向所属省
type Municipality struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ProvinceCode string `json:"provinceCode"`
}

// District：市辖区（distrito municipal）
// 约束：ProvinceCode 与 MunicipalityCode 均为记录自带属性，查询时不回查市级表。
type District struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	ProvinceCode     string `json:"provinceCode"`
	MunicipalityCode string `json:"municipalityCode"`
}

// Stats：各表行数
type Stats struct {
	Provinces      int `json:"provinces"`
	Municipalities int `json:"municipalities"`
	Districts      int `json:"districts"`
}
