package mapper

import (
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
)

func CountryToDTO(e domain.Country) dto.CountryDTO {
	return dto.CountryDTO{
		ID:          idPtr(e.ID),
		CountryName: clone(e.CountryName),
		Region:      regionRef(e.Region),
	}
}

func CountryToEntity(d dto.CountryDTO) domain.Country {
	return domain.Country{
		ID:          idValue(d.ID),
		CountryName: clone(d.CountryName),
		Region:      regionFromRef(d.Region),
	}
}

func CountriesToDTOs(es []domain.Country) []dto.CountryDTO { return mapAll(es, CountryToDTO) }

func CountriesToEntities(ds []dto.CountryDTO) []domain.Country { return mapAll(ds, CountryToEntity) }

// PartialUpdateCountry copies the non-nil fields of d onto e.
func PartialUpdateCountry(e *domain.Country, d dto.CountryDTO) {
	patch(&e.CountryName, d.CountryName)
	if r := regionFromRef(d.Region); r != nil {
		e.Region = r
	}
}

func countryRef(e *domain.Country) *dto.CountryDTO {
	if e == nil {
		return nil
	}
	return &dto.CountryDTO{ID: idPtr(e.ID)}
}

func countryFromRef(d *dto.CountryDTO) *domain.Country {
	if d == nil || d.ID == nil {
		return nil
	}
	return &domain.Country{ID: *d.ID}
}
