package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	"agenda/internal/errors"
	"agenda/internal/usecase"
	"agenda/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	GroupRepo repository.GroupRepository
	UserRepo  repository.UserRepository
	Clock     service.Clock
	Logger    *slog.Logger
}

// groupService implements the GroupUsecase interface.
type groupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	clock     service.Clock
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		groupRepo: params.GroupRepo,
		userRepo:  params.UserRepo,
		clock:     params.Clock,
		validate:  validator.New(),
		logger:    params.Logger,
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateGroup stores a group with the added members plus the creator, and
// records the group on the creator's profile.
func (srv *groupService) CreateGroup(ctx context.Context, input *usecase.CreateGroupInput) (*entity.Group, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrGroupNameRequired
	}

	if len(input.MemberEmails) == 0 {
		return nil, domainerrors.ErrGroupMembersRequired
	}

	user, err := srv.userRepo.FindUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	members, err := srv.collectMembers(input.MemberEmails, user.Email)
	if err != nil {
		return nil, err
	}

	group := &entity.Group{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedBy: user.ID,
		CreatedAt: srv.clock.Now(),
		Members:   append(members, util.NormalizeEmail(user.Email)),
	}

	if err := srv.groupRepo.SaveGroup(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to save group")
	}

	user.Groups = append(user.Groups, group.ID)
	if err := srv.userRepo.SaveUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to add group to user")
	}

	srv.log(ctx).Info("Group created",
		slog.String("group_id", group.ID),
		slog.Int("members", len(members)),
	)

	return group, nil
}

// collectMembers applies the per-member rules and returns lower-cased addresses.
func (srv *groupService) collectMembers(emails []string, ownEmail string) ([]string, error) {
	members := make([]string, 0, len(emails))
	own := util.NormalizeEmail(ownEmail)

	for _, raw := range emails {
		email := util.NormalizeEmail(raw)
		if email == "" {
			return nil, domainerrors.ErrMemberEmailRequired
		}

		if err := srv.validate.Var(email, "email"); err != nil {
			return nil, domainerrors.ErrInvalidEmail.WithDetails(raw)
		}

		if slices.Contains(members, email) {
			return nil, domainerrors.ErrMemberAlreadyAdded.WithDetails(email)
		}

		if email == own {
			return nil, domainerrors.ErrCannotAddSelf
		}

		members = append(members, email)
	}

	return members, nil
}

func (srv *groupService) ListGroups(ctx context.Context) ([]*entity.Group, error) {
	groups, err := srv.groupRepo.FindAllGroups(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find groups")
	}

	return groups, nil
}

// DeleteGroup removes the group and drops it from the user's group list.
// Events that referenced the group are left as they are.
func (srv *groupService) DeleteGroup(ctx context.Context, id string) error {
	if err := srv.groupRepo.DeleteGroup(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete group")
	}

	user, err := srv.userRepo.FindUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !slices.Contains(user.Groups, id) {
		return nil
	}

	user.Groups = slices.DeleteFunc(user.Groups, func(groupID string) bool {
		return groupID == id
	})
	if err := srv.userRepo.SaveUser(ctx, user); err != nil {
		return errors.Wrap(err, "failed to remove group from user")
	}

	srv.log(ctx).Info("Group deleted", slog.String("group_id", id))

	return nil
}
