package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/philmade/gather-shop/internal/handler/api"
	"github.com/philmade/gather-shop/internal/handler/middleware"
	"github.com/philmade/gather-shop/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	helpHandler *api.HelpHandler,
	menuHandler *api.MenuHandler,
	orderHandler *api.OrderHandler,
	feedbackHandler *api.FeedbackHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, helpHandler, menuHandler, orderHandler, feedbackHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	helpHandler *api.HelpHandler,
	menuHandler *api.MenuHandler,
	orderHandler *api.OrderHandler,
	feedbackHandler *api.FeedbackHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/help")
	})

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine, []route{
		{Method: http.MethodGet, Path: "/help", Handler: helpHandler.Help},
		{Method: http.MethodGet, Path: "/menu", Handler: menuHandler.GetMenu},
		{Method: http.MethodGet, Path: "/menu/:category", Handler: menuHandler.GetCategory},
		{Method: http.MethodGet, Path: "/products/:id/options", Handler: menuHandler.GetProductOptions},
		{Method: http.MethodPost, Path: "/order", Handler: orderHandler.CreateCakeOrder},
		{Method: http.MethodPost, Path: "/order/product", Handler: orderHandler.CreateProductOrder},
		{Method: http.MethodGet, Path: "/order/:id", Handler: orderHandler.GetOrder},
		{Method: http.MethodPut, Path: "/order/:id/payment", Handler: orderHandler.SubmitPayment},
		{Method: http.MethodPost, Path: "/feedback", Handler: feedbackHandler.Submit},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(engine *gin.Engine, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			engine.GET(r.Path, r.Handler)
		case http.MethodPost:
			engine.POST(r.Path, r.Handler)
		case http.MethodPut:
			engine.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			engine.DELETE(r.Path, r.Handler)
		default:
			engine.Any(r.Path, r.Handler)
		}
	}
}
