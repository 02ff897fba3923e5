package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type pageQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=10" binding:"min=1,max=1000"`
}

func (s *Server) ListModules(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination"})
		return
	}

	modules, err := s.Planner.ListModules(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (s *Server) GetModule(c *gin.Context) {
	module, err := s.Planner.GetModule(c.Request.Context(), c.Param("course_code"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

func (s *Server) SearchModules(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination"})
		return
	}

	modules, err := s.Planner.SearchModules(c.Request.Context(), c.Param("term"), q.Skip, q.Limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (s *Server) CourseCodes(c *gin.Context) {
	codes, err := s.Planner.CourseCodes(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}

func (s *Server) Faculties(c *gin.Context) {
	faculties, err := s.Planner.Faculties(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, faculties)
}

func (s *Server) ModulesInFaculty(c *gin.Context) {
	modules, err := s.Planner.ModulesInFaculty(c.Request.Context(), c.Param("faculty"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (s *Server) CountModules(c *gin.Context) {
	n, err := s.Planner.CountModules(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": n})
}
