package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"agenda/internal/delivery/api/response"
	"agenda/internal/domain/entity"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
	Logger  *slog.Logger
}

// GroupHandler holds dependencies for group-related handlers
type GroupHandler struct {
	groupUC usecase.GroupUsecase
	logger  *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{
		groupUC: params.GroupUC,
		logger:  params.Logger,
	}
}

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	Name         string   `json:"name"`
	MemberEmails []string `json:"member_emails"`
}

// CreateGroupResponse is the created group plus a confirmation line
type CreateGroupResponse struct {
	Group   *entity.Group `json:"group"`
	Message string        `json:"message"`
}

// CreateGroup handles group creation
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}

	group, err := h.groupUC.CreateGroup(c.Request().Context(), &usecase.CreateGroupInput{
		Name:         req.Name,
		MemberEmails: req.MemberEmails,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateGroupResponse{
		Group:   group,
		Message: fmt.Sprintf(`Group "%s" has been created with %d member(s)`, group.Name, len(req.MemberEmails)),
	})
}

// ListGroups handles listing groups
func (h *GroupHandler) ListGroups(c echo.Context) error {
	groups, err := h.groupUC.ListGroups(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups)
}

// DeleteGroup handles group removal
func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	if err := h.groupUC.DeleteGroup(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Group deleted successfully")
}
