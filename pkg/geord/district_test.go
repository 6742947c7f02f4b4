package geord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistrictLookups(t *testing.T) {
	ds := Default()

	d, ok := ds.DistrictByCode("250102")
	require.True(t, ok)
	assert.Equal(t, District{Code: "250102", Name: "Pedro García", ProvinceCode: "250000", MunicipalityCode: "250100"}, d)

	byName, ok := ds.DistrictByName("pedro garcía")
	require.True(t, ok)
	assert.Equal(t, d, byName)

	_, ok = ds.DistrictByCode(" ")
	assert.False(t, ok)
	_, ok = ds.DistrictByName("")
	assert.False(t, ok)

	for _, d := range ds.Districts() {
		got, ok := ds.DistrictByCode(d.Code)
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
}

func TestDistrictByNameReturnsFirstMatch(t *testing.T) {
	// "El Limón" exists in several municipalities; table order decides.
	d, ok := Default().DistrictByName("EL LIMÓN")
	require.True(t, ok)
	assert.Equal(t, "100102", d.Code)
}

func TestDistrictsByNameLike(t *testing.T) {
	ds := Default()

	blank := ds.DistrictsByNameLike(" ")
	assert.NotNil(t, blank)
	assert.Empty(t, blank)
	assert.Empty(t, ds.DistrictsByNameLike(""))

	var codes []string
	for _, d := range ds.DistrictsByNameLike("LAGUNAS") {
		codes = append(codes, d.Code)
	}
	assert.Equal(t, []string{"020402", "090105", "110102"}, codes)

	exact, ok := ds.DistrictByName("Pedro García")
	require.True(t, ok)
	assert.Contains(t, ds.DistrictsByNameLike("garcía"), exact)

	for _, d := range ds.Districts() {
		assert.Contains(t, ds.DistrictsByNameLike(d.Name), d)
	}
}

func TestDistrictsByParent(t *testing.T) {
	ds := Default()

	byMun := ds.DistrictsByMunicipality("250100")
	names := make([]string, 0, len(byMun))
	for _, d := range byMun {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Pedro García", "La Canela", "San Francisco de Jacagua", "Hato del Yaque"}, names)

	var expected []District
	for _, d := range ds.Districts() {
		if d.ProvinceCode == "250000" {
			expected = append(expected, d)
		}
	}
	assert.Equal(t, expected, ds.DistrictsByProvince("250000"))
	assert.Equal(t, expected, ds.DistrictsByProvince("\t250000"))

	assert.Empty(t, ds.DistrictsByProvince(""))
	assert.Empty(t, ds.DistrictsByMunicipality(" "))
	assert.Empty(t, ds.DistrictsByMunicipality("250900"))
}

func TestExcludeDistricts(t *testing.T) {
	ds := Default()
	all := ds.Districts()

	t.Run("by code", func(t *testing.T) {
		got := ds.ExcludeDistrictsByCode("250102")
		assert.Len(t, got, len(all)-1)
		for _, d := range got {
			assert.NotEqual(t, "250102", d.Code)
		}
	})

	t.Run("by every code", func(t *testing.T) {
		codes := make([]string, 0, len(all))
		for _, d := range all {
			codes = append(codes, d.Code)
		}
		got := ds.ExcludeDistrictsByCode(codes...)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("by municipality", func(t *testing.T) {
		got := ds.ExcludeDistrictsByMunicipality("250100", "020100")
		for _, d := range got {
			assert.NotContains(t, []string{"250100", "020100"}, d.MunicipalityCode)
		}
		removed := len(ds.DistrictsByMunicipality("250100")) + len(ds.DistrictsByMunicipality("020100"))
		assert.Len(t, got, len(all)-removed)
	})

	t.Run("by every province", func(t *testing.T) {
		var codes []string
		for _, p := range ds.Provinces() {
			codes = append(codes, p.Code)
		}
		assert.Empty(t, ds.ExcludeDistrictsByProvince(codes...))
	})

	t.Run("untrimmed parent codes match nothing", func(t *testing.T) {
		assert.Equal(t, all, ds.ExcludeDistrictsByMunicipality(" 250100"))
		assert.Equal(t, all, ds.ExcludeDistrictsByProvince("250000\n"))
	})
}

func TestDistrictParentCodesAreNotJoined(t *testing.T) {
	// The district's own attributes drive the filter even when no such
	// municipality exists.
	ds := New(nil, nil, []District{
		{Code: "990102", Name: "Huérfano", ProvinceCode: "990000", MunicipalityCode: "990100"},
	})
	assert.Len(t, ds.DistrictsByMunicipality("990100"), 1)
	assert.Len(t, ds.DistrictsByProvince("990000"), 1)
}
