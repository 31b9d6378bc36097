package handler

import (
	"net/http"
	"strconv"

	"markd/internal/delivery/http/middleware"
	"markd/internal/delivery/http/response"
	"markd/internal/domain/entity"
	domainerrors "markd/internal/domain/errors"
	"markd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BookmarkHandler handles bookmark CRUD for the authenticated user.
type BookmarkHandler struct {
	bookmarkUsecase usecase.BookmarkUsecase
}

// NewBookmarkHandler is the constructor for BookmarkHandler.
func NewBookmarkHandler(bookmarkUsecase usecase.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{bookmarkUsecase: bookmarkUsecase}
}

type bookmarkResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link"`
}

func toBookmarkResponse(bookmark *entity.Bookmark) *bookmarkResponse {
	return &bookmarkResponse{
		ID:          bookmark.ID,
		Title:       bookmark.Title,
		Description: bookmark.Description,
		Link:        bookmark.Link,
	}
}

// Create adds a bookmark owned by the caller.
func (h *BookmarkHandler) Create(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	input := new(usecase.CreateBookmarkInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	bookmark, err := h.bookmarkUsecase.Create(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toBookmarkResponse(bookmark))
}

// List returns every bookmark owned by the caller.
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	bookmarks, err := h.bookmarkUsecase.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	items := make([]*bookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		items = append(items, toBookmarkResponse(bookmark))
	}

	return response.Success(c, http.StatusOK, items)
}

// GetByID returns one bookmark if the caller owns it.
func (h *BookmarkHandler) GetByID(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	bookmarkID, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	bookmark, err := h.bookmarkUsecase.GetByID(c.Request().Context(), userID, bookmarkID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark))
}

// UpdateByID applies a partial update to an owned bookmark.
func (h *BookmarkHandler) UpdateByID(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	bookmarkID, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	input := new(usecase.EditBookmarkInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	bookmark, err := h.bookmarkUsecase.UpdateByID(c.Request().Context(), userID, bookmarkID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark))
}

// DeleteByID removes an owned bookmark.
func (h *BookmarkHandler) DeleteByID(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	bookmarkID, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	if err := h.bookmarkUsecase.DeleteByID(c.Request().Context(), userID, bookmarkID); err != nil {
		return err
	}

	return response.Success(c, http.StatusNoContent, nil)
}

// parseBookmarkID reads the :id path parameter. A non-numeric id cannot match
// any bookmark, so it surfaces as the same access-denied error as a missing one.
func parseBookmarkID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrBookmarkAccessDenied.WithDetails("invalid bookmark id")
	}

	return id, nil
}
