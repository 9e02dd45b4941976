// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/JRebertt/Cursos/internal/handler"
	"github.com/JRebertt/Cursos/internal/middleware"
	"github.com/JRebertt/Cursos/internal/server"

	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Instrument(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h, middlewares)

	registerUserRoutes(router, h)
	registerMealRoutes(router, h, middlewares.Session)
	registerTransactionRoutes(router, h, middlewares.Session)

	return router
}

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")

	users.POST("", handler.HandleNoContent(h.User.Handler, h.User.CreateUser, http.StatusCreated))
}

// registerMealRoutes mounts /meals. The static /summary route wins over /:id.
func registerMealRoutes(r *echo.Echo, h *handler.Handlers, session *middleware.SessionMiddleware) {
	meals := r.Group("/meals", session.RequireSession)

	meals.POST("", handler.HandleNoContent(h.Meal.Handler, h.Meal.CreateMeal, http.StatusCreated))
	meals.GET("", handler.Handle(h.Meal.Handler, h.Meal.ListMeals, http.StatusOK))
	meals.GET("/summary", handler.Handle(h.Meal.Handler, h.Meal.GetMealSummary, http.StatusOK))
	meals.GET("/:id", handler.Handle(h.Meal.Handler, h.Meal.GetMeal, http.StatusOK))
	meals.PUT("/:id", handler.HandleNoContent(h.Meal.Handler, h.Meal.UpdateMeal, http.StatusAccepted))
	meals.DELETE("/:id", handler.HandleString(h.Meal.Handler, h.Meal.DeleteMeal, http.StatusAccepted))
}

// registerTransactionRoutes mounts /transactions. Creating needs no session;
// reads do.
func registerTransactionRoutes(r *echo.Echo, h *handler.Handlers, session *middleware.SessionMiddleware) {
	transactions := r.Group("/transactions")

	transactions.POST("", handler.HandleNoContent(h.Transaction.Handler, h.Transaction.CreateTransaction, http.StatusCreated))

	guarded := transactions.Group("", session.RequireSession)
	guarded.GET("", handler.Handle(h.Transaction.Handler, h.Transaction.ListTransactions, http.StatusOK))
	guarded.GET("/summary", handler.Handle(h.Transaction.Handler, h.Transaction.GetSummary, http.StatusOK))
	guarded.GET("/:id", handler.Handle(h.Transaction.Handler, h.Transaction.GetTransaction, http.StatusOK))
}
