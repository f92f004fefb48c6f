package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
)

func (s *Server) listVideos(c echo.Context) error {
	var params catalog.ListVideosParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&params); err != nil {
		return err
	}
	res, err := s.videoSvc.ListVideos(c.Request().Context(), params)
	if err != nil {
		return s.backendError(c, err)
	}
	return respondCached(c, res)
}

func (s *Server) getTrending(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return err
	}
	res, err := s.videoSvc.GetTrending(c.Request().Context(), limit)
	if err != nil {
		return s.backendError(c, err)
	}
	return respondCached(c, res)
}

func (s *Server) getVideo(c echo.Context) error {
	res, err := s.videoSvc.GetVideo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.backendError(c, err)
	}
	return respondCached(c, res)
}

func (s *Server) getRecommendations(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return err
	}
	res, err := s.videoSvc.GetRecommendations(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return s.backendError(c, err)
	}
	return respondCached(c, res)
}

func (s *Server) likeVideo(c echo.Context) error {
	res, err := s.videoSvc.LikeVideo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.backendError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) listAdminVideos(c echo.Context) error {
	var params catalog.AdminVideoParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&params); err != nil {
		return err
	}
	page, err := s.videoSvc.ListAdminVideos(c.Request().Context(), params)
	if err != nil {
		return s.backendError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (s *Server) updateVideo(c echo.Context) error {
	var req catalog.UpdateVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	v, err := s.videoSvc.UpdateVideo(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return s.backendError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (s *Server) deleteVideo(c echo.Context) error {
	if err := s.videoSvc.DeleteVideo(c.Request().Context(), c.Param("id")); err != nil {
		return s.backendError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// limitParam reads the optional "limit" query parameter; 0 means the family default.
func limitParam(c echo.Context) (int, error) {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
	}
	if limit < 0 || limit > 100 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "limit must be between 0 and 100")
	}
	return limit, nil
}
