package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"rebook-backend/internal/domains/book/model"
	"rebook-backend/internal/domains/book/service"
	"rebook-backend/internal/shared/response"
)

// BookHandler serves the public, read-only catalog endpoints
type BookHandler struct {
	bookService service.ServiceInterface
}

func NewBookHandler(bookService service.ServiceInterface) *BookHandler {
	return &BookHandler{bookService: bookService}
}

type listBody struct {
	response.Base
	model.BookPage
}

type detailBody struct {
	response.Base
	model.BookDetail
}

// ListBooks returns one page of catalog summaries
// GET /api/v1/books?page=0&size=10
func (h *BookHandler) ListBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(model.DefaultPageSize)))

	bookPage, err := h.bookService.List(c.Request.Context(), page, size)
	if err != nil {
		log.Error().Err(err).Msg("Error retrieving book list")
		response.FailWithError(c, response.KindInternal, "failed to retrieve book list", err)
		return
	}

	c.JSON(http.StatusOK, listBody{
		Base:     response.OK("book list retrieved"),
		BookPage: *bookPage,
	})
}

// GetBookDetail returns a book with its review aggregates
// GET /api/v1/books/:book_id
func (h *BookHandler) GetBookDetail(c *gin.Context) {
	bookID := c.Param("book_id")

	detail, err := h.bookService.GetDetail(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.Fail(c, response.KindNotFound, err.Error())
			return
		}
		log.Error().Err(err).Str("book_id", bookID).Msg("Error retrieving book detail")
		response.FailWithError(c, response.KindInternal, "failed to retrieve book detail", err)
		return
	}

	c.JSON(http.StatusOK, detailBody{
		Base:       response.OK("book detail retrieved"),
		BookDetail: *detail,
	})
}
