package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"rebook-backend/internal/domains/review/model"
	"rebook-backend/internal/domains/review/service"
	"rebook-backend/internal/shared/auth"
	"rebook-backend/internal/shared/response"
	"rebook-backend/pkg/jwt"
)

// ReviewHandler is the request gate for the review endpoints: it
// authenticates the bearer token, validates input, delegates to the
// service and maps every outcome onto the response envelope.
type ReviewHandler struct {
	reviewService service.ServiceInterface
	tokens        *jwt.Manager
}

func NewReviewHandler(reviewService service.ServiceInterface, tokens *jwt.Manager) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		tokens:        tokens,
	}
}

// =====================================================
// RESPONSE SHAPES
// =====================================================

// reviewBody is the success payload shared by create and update
type reviewBody struct {
	response.Base
	ReviewID string `json:"reviewId"`
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
}

type listBody struct {
	response.Base
	model.ReviewPage
}

// =====================================================
// ENDPOINTS
// =====================================================

// CreateReview creates a review on a book
// POST /api/v1/reviews/:book_id
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	bookID := c.Param("book_id")

	// Step 1: Authenticate the bearer token
	claims, authErr := auth.Authenticate(h.tokens, c.GetHeader("Authorization"))
	if authErr != nil {
		response.Fail(c, authErr.Kind, authErr.Message)
		return
	}

	// Step 2: Bind and validate the body
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.KindBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.Fail(c, response.KindBadRequest, err.Error())
		return
	}

	// Step 3: Delegate to the service with the identity as a parameter
	review, err := h.reviewService.Register(c.Request.Context(), bookID, req, claims.MemberID)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyReviewed) {
			response.Fail(c, response.KindBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("book_id", bookID).Msg("Error creating review")
		response.FailWithError(c, response.KindInternal, "failed to create review", err)
		return
	}

	c.JSON(http.StatusOK, reviewBody{
		Base:     response.OK("review created"),
		ReviewID: review.ID,
		Nickname: review.Nickname,
		Content:  review.Content,
		Rating:   review.Rating,
	})
}

// UpdateReview replaces the content of the caller's own review
// PUT /api/v1/reviews/:review_id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	reviewID := c.Param("review_id")

	claims, authErr := auth.Authenticate(h.tokens, c.GetHeader("Authorization"))
	if authErr != nil {
		response.Fail(c, authErr.Kind, authErr.Message)
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.KindBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.Fail(c, response.KindBadRequest, err.Error())
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), reviewID, req.Content, claims.MemberID)
	if err != nil {
		if errors.Is(err, model.ErrNotOwner) {
			response.Fail(c, response.KindForbidden, err.Error())
			return
		}
		log.Error().Err(err).Str("review_id", reviewID).Msg("Error updating review")
		response.FailWithError(c, response.KindInternal, "failed to update review", err)
		return
	}

	c.JSON(http.StatusOK, reviewBody{
		Base:     response.OK("review updated"),
		ReviewID: review.ID,
		Nickname: review.Nickname,
		Content:  review.Content,
		Rating:   review.Rating,
	})
}

// DeleteReview removes the caller's own review
// DELETE /api/v1/reviews/:review_id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID := c.Param("review_id")

	claims, authErr := auth.Authenticate(h.tokens, c.GetHeader("Authorization"))
	if authErr != nil {
		response.Fail(c, authErr.Kind, authErr.Message)
		return
	}

	err := h.reviewService.Delete(c.Request.Context(), reviewID, claims.MemberID)
	if err != nil {
		if errors.Is(err, model.ErrNotOwner) {
			response.Fail(c, response.KindForbidden, err.Error())
			return
		}
		log.Error().Err(err).Str("review_id", reviewID).Msg("Error deleting review")
		response.FailWithError(c, response.KindInternal, "failed to delete review", err)
		return
	}

	c.JSON(http.StatusOK, response.OK("review deleted"))
}

// ListReviews returns one page of a book's reviews. Public, no token.
// GET /api/v1/reviews/book/:book_id?page=0&size=10
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	bookID := c.Param("book_id")

	// Zero-based page, size defaults to 10. Non-numeric params fall back
	// to the defaults instead of failing the request: Atoi leaves the
	// value at zero and the service clamps it.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(model.DefaultPageSize)))

	reviewPage, err := h.reviewService.ListByBook(c.Request.Context(), bookID, page, size)
	if err != nil {
		log.Error().Err(err).Str("book_id", bookID).Msg("Error retrieving review list")
		response.FailWithError(c, response.KindInternal, "failed to retrieve review list", err)
		return
	}

	c.JSON(http.StatusOK, listBody{
		Base:       response.OK("review list retrieved"),
		ReviewPage: *reviewPage,
	})
}
