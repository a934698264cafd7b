package telemetry

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stratobyte/flightcore/internal/logging"
	"github.com/stratobyte/flightcore/pkg/ecs"
	"github.com/zerodha/logf"
)

// Server is the read-only telemetry/rendering HTTP boundary of spec.md
// §6.6. It never mutates the world; starting it is optional and its
// absence never affects core behavior.
type Server struct {
	engine *gin.Engine
	world  *ecs.World
	sched  *ecs.Scheduler
	log    *logf.Logger
}

// NewServer builds a Server reading from world/sched on a gin.New()
// engine with gin.Recovery() and the logf request-logging middleware in
// place of gin.Default()'s stock logger.
func NewServer(world *ecs.World, sched *ecs.Scheduler, log *logf.Logger) *Server {
	s := &Server{world: world, sched: sched, log: log}

	r := gin.New()
	r.Use(gin.Recovery(), logging.HTTPMiddleware(log))

	r.GET("/", s.handleIndex)
	r.GET("/snapshot", s.handleSnapshot)
	r.GET("/stats", s.handleStats)

	s.engine = r
	return s
}

// Run starts the HTTP server and blocks, mirroring the teacher's
// r.Run(addr) call in cmd/server/main.go.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// ServeHTTP implements http.Handler, delegating to the underlying
// gin.Engine; used directly by httptest in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) handleIndex(c *gin.Context) {
	stats := Stats(s.world, s.sched)
	if err := statusPage(stats).Render(c.Request.Context(), c.Writer); err != nil {
		s.log.Error("failed to render status page", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func (s *Server) handleSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, Snapshot(s.world))
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, Stats(s.world, s.sched))
}
