package mapper

import (
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
)

func RegionToDTO(e domain.Region) dto.RegionDTO {
	return dto.RegionDTO{
		ID:         idPtr(e.ID),
		RegionName: clone(e.RegionName),
	}
}

func RegionToEntity(d dto.RegionDTO) domain.Region {
	return domain.Region{
		ID:         idValue(d.ID),
		RegionName: clone(d.RegionName),
	}
}

func RegionsToDTOs(es []domain.Region) []dto.RegionDTO { return mapAll(es, RegionToDTO) }

func RegionsToEntities(ds []dto.RegionDTO) []domain.Region { return mapAll(ds, RegionToEntity) }

// PartialUpdateRegion copies the non-nil fields of d onto e.
func PartialUpdateRegion(e *domain.Region, d dto.RegionDTO) {
	patch(&e.RegionName, d.RegionName)
}

func regionRef(e *domain.Region) *dto.RegionDTO {
	if e == nil {
		return nil
	}
	return &dto.RegionDTO{ID: idPtr(e.ID)}
}

func regionFromRef(d *dto.RegionDTO) *domain.Region {
	if d == nil || d.ID == nil {
		return nil
	}
	return &domain.Region{ID: *d.ID}
}
