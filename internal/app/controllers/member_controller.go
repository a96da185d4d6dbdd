package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberapi/internal/app/models/dto"
	"github.com/yigit/memberapi/internal/app/services"
	"github.com/yigit/memberapi/internal/middleware"
)

// MemberController handles member-related operations
type MemberController struct {
	memberService services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// GetAllMembers lists every member
// @Summary Get all members
// @Description Retrieves every stored member as a JSON array, ordered by ID
// @Tags members
// @Produce json
// @Success 200 {array} dto.MemberResponse "Members retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router / [get]
func (c *MemberController) GetAllMembers(ctx *gin.Context) {
	members, err := c.memberService.FindAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMemberListResponse(members))
}

// GetMemberOne retrieves member 1. Query parameters are ignored; use
// /members/{id} for other members.
// @Summary Get member 1
// @Description Retrieves the member with ID 1 regardless of request parameters
// @Tags members
// @Produce json
// @Success 200 {object} dto.MemberResponse "Member retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /memberOne [get]
func (c *MemberController) GetMemberOne(ctx *gin.Context) {
	c.respondWithMember(ctx, services.DefaultMemberID)
}

// GetMemberByID retrieves a member by path ID
// @Summary Get member details
// @Description Retrieves detailed information about a specific member by its ID
// @Tags members
// @Produce json
// @Param id path int true "Member ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MemberResponse "Member retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/{id} [get]
func (c *MemberController) GetMemberByID(ctx *gin.Context) {
	var req dto.MemberIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	c.respondWithMember(ctx, req.ID)
}

func (c *MemberController) respondWithMember(ctx *gin.Context, id int64) {
	member, err := c.memberService.FindMemberOne(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMemberResponse(member))
}
