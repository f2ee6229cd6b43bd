package repository

import (
	"context"

	"agenda/internal/domain/entity"
)

// GroupRepository persists the groups collection as one whole value.
type GroupRepository interface {
	// SaveGroup replaces any group with the same id, or appends it.
	SaveGroup(ctx context.Context, group *entity.Group) error

	// FindAllGroups returns every group in stored order.
	FindAllGroups(ctx context.Context) ([]*entity.Group, error)

	// DeleteGroup removes the group with id. Unknown ids are a no-op.
	DeleteGroup(ctx context.Context, id string) error

	// ClearGroups writes an empty collection.
	ClearGroups(ctx context.Context) error
}
