package mapper

import (
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
)

func LocationToDTO(e domain.Location) dto.LocationDTO {
	return dto.LocationDTO{
		ID:            idPtr(e.ID),
		StreetAddress: clone(e.StreetAddress),
		PostalCode:    clone(e.PostalCode),
		City:          clone(e.City),
		StateProvince: clone(e.StateProvince),
		Country:       countryRef(e.Country),
	}
}

func LocationToEntity(d dto.LocationDTO) domain.Location {
	return domain.Location{
		ID:            idValue(d.ID),
		StreetAddress: clone(d.StreetAddress),
		PostalCode:    clone(d.PostalCode),
		City:          clone(d.City),
		StateProvince: clone(d.StateProvince),
		Country:       countryFromRef(d.Country),
	}
}

func LocationsToDTOs(es []domain.Location) []dto.LocationDTO { return mapAll(es, LocationToDTO) }

func LocationsToEntities(ds []dto.LocationDTO) []domain.Location {
	return mapAll(ds, LocationToEntity)
}

// PartialUpdateLocation copies the non-nil fields of d onto e.
func PartialUpdateLocation(e *domain.Location, d dto.LocationDTO) {
	patch(&e.StreetAddress, d.StreetAddress)
	patch(&e.PostalCode, d.PostalCode)
	patch(&e.City, d.City)
	patch(&e.StateProvince, d.StateProvince)
	if c := countryFromRef(d.Country); c != nil {
		e.Country = c
	}
}

func locationRef(e *domain.Location) *dto.LocationDTO {
	if e == nil {
		return nil
	}
	return &dto.LocationDTO{ID: idPtr(e.ID)}
}

func locationFromRef(d *dto.LocationDTO) *domain.Location {
	if d == nil || d.ID == nil {
		return nil
	}
	return &domain.Location{ID: *d.ID}
}
