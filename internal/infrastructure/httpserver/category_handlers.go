package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
)

func (s *Server) listCategories(c echo.Context) error {
	res, err := s.categorySvc.ListCategories(c.Request().Context())
	if err != nil {
		return s.backendError(c, err)
	}
	return respondCached(c, res)
}

func (s *Server) getCategoryBySlug(c echo.Context) error {
	cat, err := s.categorySvc.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.backendError(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (s *Server) listAdminCategories(c echo.Context) error {
	cats, err := s.categorySvc.ListAdminCategories(c.Request().Context())
	if err != nil {
		return s.backendError(c, err)
	}
	return c.JSON(http.StatusOK, cats)
}

func (s *Server) createCategory(c echo.Context) error {
	var req catalog.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cat, err := s.categorySvc.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return s.backendError(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (s *Server) updateCategory(c echo.Context) error {
	var req catalog.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cat, err := s.categorySvc.UpdateCategory(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return s.backendError(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (s *Server) deleteCategory(c echo.Context) error {
	if err := s.categorySvc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return s.backendError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) toggleCategory(c echo.Context) error {
	cat, err := s.categorySvc.ToggleCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.backendError(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}
