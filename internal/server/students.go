package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/curriculum/internal/auth"
	"github.com/agenthands/curriculum/internal/core"
	"github.com/agenthands/curriculum/internal/core/model"
)

func (s *Server) GetStudent(c *gin.Context) {
	student, err := s.Planner.GetStudent(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (s *Server) UpdateStudent(c *gin.Context) {
	var update model.Student
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	student, err := s.Planner.UpdateStudent(c.Request.Context(), auth.Subject(c), update)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (s *Server) Recommend(c *gin.Context) {
	studentID := c.Param("student_id")
	if studentID != auth.Subject(c) {
		s.fail(c, core.ErrForbidden)
		return
	}

	recs, err := s.Planner.Recommend(c.Request.Context(), studentID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (s *Server) Register(c *gin.Context) {
	var reg model.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id, password and email are required"})
		return
	}

	resp, err := s.Auth.Register(c.Request.Context(), reg)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (s *Server) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	resp, err := s.Auth.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
