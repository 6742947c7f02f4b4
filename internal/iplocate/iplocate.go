// 包 iplocate：IP → 省级行政区
// 背景：读取 MaxMind GeoIP2/GeoLite2 City 库，取一级行政区（subdivision）后映射到参照表中的省。
// 约束：仅处理国家为 DO 的结果；映射顺序为 ISO 3166-2 编号 → 名称精确匹配 → 名称片段唯一匹配。
package iplocate

import (
	"errors"
	"net"
	"strings"

	"geo-rd/pkg/geord"

	"github.com/oschwald/geoip2-golang"
)

const countryISO = "DO"

var (
	ErrDisabled = errors.New("iplocate: no geoip database configured")
	ErrBadIP    = errors.New("iplocate: bad ip")
)

// place：库中与映射相关的最小字段
type place struct {
	Country      string
	Subdivisions []subdivision
}

type subdivision struct {
	IsoCode string
	Names   []string
}

type lookuper interface {
	lookup(ip net.IP) (place, error)
}

type mmdb struct{ r *geoip2.Reader }

func (m mmdb) lookup(ip net.IP) (place, error) {
	c, err := m.r.City(ip)
	if err != nil {
		return place{}, err
	}
	p := place{Country: c.Country.IsoCode}
	for _, s := range c.Subdivisions {
		p.Subdivisions = append(p.Subdivisions, subdivision{
			IsoCode: s.IsoCode,
			Names:   []string{s.Names["es"], s.Names["en"]},
		})
	}
	return p, nil
}

// Locator：并发安全（geoip2.Reader 与数据集均只读）
type Locator struct {
	src    lookuper
	closer func() error
	ds     *geord.Dataset
}

// Result：查询结果；Province 为 nil 表示未能映射
type Result struct {
	IP          string          `json:"ip"`
	Country     string          `json:"country"`
	Subdivision string          `json:"subdivision"`
	Province    *geord.Province `json:"province"`
}

// Open：打开 mmdb 文件；path 为空时返回禁用状态的 Locator
func Open(path string, ds *geord.Dataset) (*Locator, error) {
	if path == "" {
		return &Locator{ds: ds}, nil
	}
	r, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &Locator{src: mmdb{r: r}, closer: r.Close, ds: ds}, nil
}

func (l *Locator) Enabled() bool { return l != nil && l.src != nil }

func (l *Locator) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer()
}

// Lookup：解析 IP 并映射到省
func (l *Locator) Lookup(ip string) (Result, error) {
	if !l.Enabled() {
		return Result{}, ErrDisabled
	}
	ip = strings.TrimSpace(ip)
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return Result{}, ErrBadIP
	}
	p, err := l.src.lookup(parsed)
	if err != nil {
		return Result{}, err
	}
	res := Result{IP: ip, Country: p.Country}
	if p.Country != countryISO || len(p.Subdivisions) == 0 {
		return res, nil
	}
	sub := p.Subdivisions[0]
	for _, n := range sub.Names {
		if n != "" {
			res.Subdivision = n
			break
		}
	}
	if prov, ok := MatchProvince(l.ds, sub.IsoCode, sub.Names...); ok {
		res.Province = &prov
	}
	return res, nil
}

// MatchProvince：由 ISO 3166-2 子码（DO-25 中的 25）或行政区名称找到省
// 背景：ISO 编号与国家统计局省编码前两位一致。
func MatchProvince(ds *geord.Dataset, isoCode string, names ...string) (geord.Province, bool) {
	iso := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(isoCode)), countryISO+"-")
	if len(iso) == 2 {
		if p, ok := ds.ProvinceByCode(iso + "0000"); ok {
			return p, true
		}
	}
	for _, n := range names {
		n = normalizeName(n)
		if n == "" {
			continue
		}
		if p, ok := ds.ProvinceByName(n); ok {
			return p, true
		}
		if like := ds.ProvincesByNameLike(n); len(like) == 1 {
			return like[0], true
		}
	}
	return geord.Province{}, false
}

// normalizeName：去掉 "Provincia de" / "Province" 等修饰
func normalizeName(n string) string {
	n = strings.TrimSpace(n)
	for _, prefix := range []string{"Provincia de ", "Provincia ", "Province of "} {
		if len(n) > len(prefix) && strings.EqualFold(n[:len(prefix)], prefix) {
			n = n[len(prefix):]
			break
		}
	}
	for _, suffix := range []string{" Province", " Provincia"} {
		if len(n) > len(suffix) && strings.EqualFold(n[len(n)-len(suffix):], suffix) {
			n = n[:len(n)-len(suffix)]
			break
		}
	}
	return strings.TrimSpace(n)
}
