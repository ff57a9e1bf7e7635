package repositories

import (
	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// scopeBuildings applies a building restriction to a query. Callers
// must have short-circuited empty scopes already; the query layer is
// never invoked with an empty restriction list.
func scopeBuildings(q *gorm.DB, column string, scope domain.BuildingScope) *gorm.DB {
	if scope.Unrestricted() {
		return q
	}
	return q.Where(column+" IN ?", scope.BuildingIDs())
}

// tenancyBuildingJoin joins a tenancies query up the unit->room->floor
// chain so floors.building_id is addressable.
func tenancyBuildingJoin(q *gorm.DB) *gorm.DB {
	return q.
		Joins("JOIN units ON units.id = tenancies.unit_id").
		Joins("JOIN rooms ON rooms.id = units.room_id").
		Joins("JOIN floors ON floors.id = rooms.floor_id")
}
