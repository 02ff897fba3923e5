package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/agenthands/curriculum/internal/auth"
	"github.com/agenthands/curriculum/internal/core/model"
)

// Planner is the catalog, student and recommendation surface the routes use.
type Planner interface {
	ListModules(ctx context.Context, skip, limit int) ([]model.Module, error)
	GetModule(ctx context.Context, courseCode string) (*model.Module, error)
	SearchModules(ctx context.Context, term string, skip, limit int) ([]model.Module, error)
	CourseCodes(ctx context.Context) ([]string, error)
	Faculties(ctx context.Context) ([]string, error)
	ModulesInFaculty(ctx context.Context, faculty string) ([]model.ModuleSummary, error)
	CountModules(ctx context.Context) (int64, error)

	GetStudent(ctx context.Context, studentID string) (*model.Student, error)
	UpdateStudent(ctx context.Context, subject string, update model.Student) (*model.Student, error)

	Recommend(ctx context.Context, studentID string) (*model.Recommendations, error)
}

type Authenticator interface {
	Register(ctx context.Context, reg model.Registration) (*model.AuthenticationResponse, error)
	Authenticate(ctx context.Context, studentID, password string) (*model.AuthenticationResponse, error)
}

type Server struct {
	Planner  Planner
	Auth     Authenticator
	Tokens   *auth.TokenIssuer
	Log      *zap.Logger
	Gatherer prometheus.Gatherer
}

func NewServer(planner Planner, authn Authenticator, tokens *auth.TokenIssuer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		Planner:  planner,
		Auth:     authn,
		Tokens:   tokens,
		Log:      log,
		Gatherer: prometheus.DefaultGatherer,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.Log), instrument())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{})))

	modules := r.Group("/modules")
	modules.GET("", s.ListModules)
	modules.GET("/:course_code", s.GetModule)
	modules.GET("/search/:term", s.SearchModules)
	modules.GET("/get/course-codes", s.CourseCodes)
	modules.GET("/get/faculties", s.Faculties)
	modules.GET("/get/number-of-modules", s.CountModules)
	modules.GET("/faculty/:faculty", s.ModulesInFaculty)

	authn := r.Group("/auth")
	authn.POST("/register", s.Register)
	authn.POST("/login", s.Login)

	protected := auth.RequireToken(s.Tokens)

	students := r.Group("/students")
	students.GET("/:student_id", s.GetStudent)
	students.PUT("", protected, s.UpdateStudent)

	r.GET("/recommendations/:student_id", protected, s.Recommend)

	return r
}
