package usecase

import (
	"context"

	"agenda/internal/domain/entity"
)

// CreateGroupInput carries a new group's name and the members the user added
type CreateGroupInput struct {
	Name         string
	MemberEmails []string
}

// GroupUsecase defines the interface for group management use cases
type GroupUsecase interface {
	// CreateGroup stores a group owned by the current user
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*entity.Group, error)

	// ListGroups returns every stored group
	ListGroups(ctx context.Context) ([]*entity.Group, error)

	// DeleteGroup removes a group and drops it from the user's group list
	DeleteGroup(ctx context.Context, id string) error
}
