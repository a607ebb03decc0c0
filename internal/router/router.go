package router

import (
	"time"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/config"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/handler"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/middleware"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/repository"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// Repositories
	departamentoRepo := repository.NewDepartamentoRepository(db)
	funcionarioRepo := repository.NewFuncionarioRepository(db)
	relatorioRepo := repository.NewRelatorioRepository(db)

	// Services
	departamentoSvc := service.NewDepartamentoService(departamentoRepo)
	funcionarioSvc := service.NewFuncionarioService(funcionarioRepo, departamentoRepo)
	relatorioSvc := service.NewRelatorioService(relatorioRepo)

	// Handlers
	departamentosH := handler.NewDepartamentosHandler(departamentoSvc)
	funcionariosH := handler.NewFuncionariosHandler(funcionarioSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// Routes
	r.GET("/health", handler.Health(db))

	r.GET("/dashboard", relatoriosH.Dashboard)
	r.GET("/reports", relatoriosH.Relatorio)
	r.GET("/reports/export", relatoriosH.Exportar)

	departments := r.Group("/departments")
	{
		departments.GET("", departamentosH.Listar)
		departments.GET("/:id", departamentosH.ObterPorID)
		departments.POST("", departamentosH.Criar)
		departments.PUT("/:id", departamentosH.Atualizar)
		departments.DELETE("/:id", departamentosH.Excluir)
	}

	employees := r.Group("/employees")
	{
		employees.GET("", funcionariosH.Listar)
		employees.GET("/:id", funcionariosH.ObterPorID)
		employees.POST("", funcionariosH.Criar)
		employees.PUT("/:id", funcionariosH.Atualizar)
		employees.DELETE("/:id", funcionariosH.Excluir)
	}

	return r
}
