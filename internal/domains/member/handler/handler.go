package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"rebook-backend/internal/domains/member/model"
	"rebook-backend/internal/domains/member/service"
	"rebook-backend/internal/shared/auth"
	"rebook-backend/internal/shared/response"
	"rebook-backend/pkg/jwt"
)

type MemberHandler struct {
	memberService service.ServiceInterface
	tokens        *jwt.Manager
}

func NewMemberHandler(memberService service.ServiceInterface, tokens *jwt.Manager) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		tokens:        tokens,
	}
}

type profileBody struct {
	response.Base
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// GetProfile returns the authenticated member's own profile
// GET /api/v1/members/me
func (h *MemberHandler) GetProfile(c *gin.Context) {
	claims, authErr := auth.Authenticate(h.tokens, c.GetHeader("Authorization"))
	if authErr != nil {
		response.Fail(c, authErr.Kind, authErr.Message)
		return
	}

	member, err := h.memberService.GetProfile(c.Request.Context(), claims.MemberID)
	if err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			response.Fail(c, response.KindNotFound, err.Error())
			return
		}
		log.Error().Err(err).Str("member_id", claims.MemberID).Msg("Error getting member profile")
		response.FailWithError(c, response.KindInternal, "failed to get profile", err)
		return
	}

	c.JSON(http.StatusOK, profileBody{
		Base:     response.OK("profile retrieved"),
		ID:       member.ID,
		Email:    member.Email,
		Nickname: member.Nickname,
	})
}
