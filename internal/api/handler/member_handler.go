package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/dto"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/service"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
	"github.com/VEXUM-ai/shift-management-app-sub000/pkg/response"
)

// MemberHandler 成员模块 HTTP 处理器
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler 创建 MemberHandler
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// ListMembers 获取成员列表
// GET /api/v1/members
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": members})
}

// GetMember 获取成员详情
// GET /api/v1/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "成员ID不能为空")
		return
	}

	member, err := h.memberSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.OK(c, member)
}

// CreateMember 注册成员
// POST /api/v1/members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	member, err := h.memberSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.Created(c, member)
}

// UpdateMember 更新成员
// PUT /api/v1/members/:id
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "成员ID不能为空")
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	member, err := h.memberSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.OK(c, member)
}

// DeleteMember 删除成员
// DELETE /api/v1/members/:id
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "成员ID不能为空")
		return
	}

	if err := h.memberSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleMemberError 统一处理成员模块业务错误
func (h *MemberHandler) handleMemberError(c *gin.Context, err error) {
	var vErr *apperrors.ValidationError
	var nErr *apperrors.NotFoundError

	switch {
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, 400, 10001, "参数校验失败", vErr.Error())
	case errors.As(err, &nErr):
		response.NotFound(c, 11001, "成员不存在")
	default:
		response.InternalError(c)
	}
}
