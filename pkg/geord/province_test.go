package geord

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ProvinceSuite struct {
	suite.Suite
	ds *Dataset
}

func (s *ProvinceSuite) SetupTest() {
	s.ds = Default()
}

func TestProvinceSuite(t *testing.T) {
	suite.Run(t, new(ProvinceSuite))
}

func (s *ProvinceSuite) TestByCode() {
	s.Run("finds Santiago", func() {
		p, ok := s.ds.ProvinceByCode("250000")
		s.Require().True(ok)
		s.Equal(Province{Code: "250000", Name: "Santiago"}, p)
	})

	s.Run("trims input", func() {
		p, ok := s.ds.ProvinceByCode("  250000\t")
		s.Require().True(ok)
		s.Equal("Santiago", p.Name)
	})

	s.Run("empty and blank input is absent", func() {
		for _, in := range []string{"", "   ", "\n"} {
			_, ok := s.ds.ProvinceByCode(in)
			s.False(ok, "input %q", in)
		}
	})

	s.Run("unknown code is absent", func() {
		_, ok := s.ds.ProvinceByCode("990000")
		s.False(ok)
	})

	s.Run("every record round-trips", func() {
		for _, p := range s.ds.Provinces() {
			got, ok := s.ds.ProvinceByCode(p.Code)
			s.Require().True(ok)
			s.Equal(p, got)
		}
	})
}

func (s *ProvinceSuite) TestByName() {
	s.Run("finds Santiago", func() {
		p, ok := s.ds.ProvinceByName("Santiago")
		s.Require().True(ok)
		s.Equal(Province{Code: "250000", Name: "Santiago"}, p)
	})

	s.Run("is case insensitive", func() {
		upper, ok := s.ds.ProvinceByName("SANTIAGO")
		s.Require().True(ok)
		lower, ok := s.ds.ProvinceByName("santiago")
		s.Require().True(ok)
		s.Equal(upper, lower)
	})

	s.Run("folds accented names", func() {
		p, ok := s.ds.ProvinceByName(" SAN PEDRO DE MACORÍS ")
		s.Require().True(ok)
		s.Equal("230000", p.Code)
	})

	s.Run("partial name is absent", func() {
		_, ok := s.ds.ProvinceByName("Santia")
		s.False(ok)
	})

	s.Run("empty is absent", func() {
		_, ok := s.ds.ProvinceByName("  ")
		s.False(ok)
	})
}

func (s *ProvinceSuite) TestByNameLike() {
	s.Run("keeps table order", func() {
		expected := []Province{
			{Code: "210000", Name: "San Cristóbal"},
			{Code: "220000", Name: "San Juan"},
			{Code: "230000", Name: "San Pedro de Macorís"},
			{Code: "250000", Name: "Santiago"},
			{Code: "260000", Name: "Santiago Rodríguez"},
			{Code: "310000", Name: "San José de Ocoa"},
			{Code: "320000", Name: "Santo Domingo"},
		}
		s.Equal(expected, s.ds.ProvincesByNameLike("San"))
	})

	s.Run("empty fragment returns empty slice", func() {
		got := s.ds.ProvincesByNameLike(" ")
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("contains every exact name match", func() {
		p, ok := s.ds.ProvinceByName("Monte Plata")
		s.Require().True(ok)
		s.Contains(s.ds.ProvincesByNameLike("te pla"), p)
	})

	s.Run("no match returns empty slice", func() {
		got := s.ds.ProvincesByNameLike("zzz")
		s.NotNil(got)
		s.Empty(got)
	})
}

func (s *ProvinceSuite) TestExcludeByCode() {
	s.Run("drops Santiago only", func() {
		var expected []Province
		for _, p := range s.ds.Provinces() {
			if p.Code != "250000" {
				expected = append(expected, p)
			}
		}
		s.Equal(expected, s.ds.ExcludeProvincesByCode("250000"))
	})

	s.Run("excluding every code empties the table", func() {
		var codes []string
		for _, p := range s.ds.Provinces() {
			codes = append(codes, p.Code)
		}
		got := s.ds.ExcludeProvincesByCode(codes...)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("codes are compared untrimmed", func() {
		s.Len(s.ds.ExcludeProvincesByCode(" 250000 "), len(s.ds.Provinces()))
	})

	s.Run("no codes returns everything", func() {
		s.Equal(s.ds.Provinces(), s.ds.ExcludeProvincesByCode())
	})
}

func (s *ProvinceSuite) TestResultsAreCopies() {
	all := s.ds.Provinces()
	all[0].Name = "changed"
	like := s.ds.ProvincesByNameLike("Santiago")
	like[0].Code = "000000"

	p, ok := s.ds.ProvinceByCode("250000")
	s.Require().True(ok)
	s.Equal("Santiago", p.Name)
	s.NotEqual("changed", s.ds.Provinces()[0].Name)
}
