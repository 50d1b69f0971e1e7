package fx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Nojands/FinanzApp/config"
	"github.com/Nojands/FinanzApp/internal/logger"
	"github.com/Nojands/FinanzApp/internal/middleware"
	"github.com/Nojands/FinanzApp/internal/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
		startServer,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	limiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.Health)
	router.NoRoute(handler.NotFound)

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser(limiter))
	{
		private.GET("/dashboard", handler.GetDashboard)

		reports := private.Group("/reports")
		{
			reports.GET("/summary", handler.GetReportSummary)
			reports.GET("/monthly-trend", handler.GetMonthlyTrend)
		}

		projections := private.Group("/projections")
		{
			projections.GET("/monthly", handler.ProjectMonthly)
			projections.GET("/biweekly", handler.ProjectBiweekly)
		}

		simulations := private.Group("/simulations")
		{
			simulations.POST("", handler.CreateSimulation)
			simulations.GET("", handler.ListSimulations)
			simulations.DELETE("/:id", handler.DeleteSimulation)
		}

		incomes := private.Group("/incomes")
		{
			incomes.POST("", handler.CreateIncome)
			incomes.GET("", handler.ListIncomes)
			incomes.GET("/:id", handler.GetIncome)
			incomes.PATCH("/:id", handler.UpdateIncome)
			incomes.DELETE("/:id", handler.DeleteIncome)
		}

		loans := private.Group("/loans")
		{
			loans.POST("", handler.CreateLoan)
			loans.GET("", handler.ListLoans)
			loans.GET("/:id", handler.GetLoan)
			loans.PATCH("/:id", handler.UpdateLoan)
			loans.DELETE("/:id", handler.DeleteLoan)
		}

		creditCards := private.Group("/credit-cards")
		{
			creditCards.POST("", handler.CreateCreditCard)
			creditCards.GET("", handler.ListCreditCards)
			creditCards.GET("/:id", handler.GetCreditCard)
			creditCards.PATCH("/:id", handler.UpdateCreditCard)
			creditCards.DELETE("/:id", handler.DeleteCreditCard)
			creditCards.POST("/:id/charges", handler.CreateCharge)
			creditCards.GET("/:id/charges", handler.ListCharges)
			creditCards.POST("/:id/charges/:chargeId/pay-ahead", handler.PayChargeAhead)
		}

		installments := private.Group("/installments")
		{
			installments.POST("", handler.CreatePurchase)
			installments.GET("", handler.ListPurchases)
			installments.GET("/:id", handler.GetPurchase)
			installments.DELETE("/:id", handler.DeletePurchase)
			installments.POST("/:id/pay-ahead", handler.PayPurchaseAhead)
		}

		settings := private.Group("/settings")
		{
			settings.GET("", handler.GetSettings)
			settings.PUT("", handler.UpdateSettings)
		}

		ledger := private.Group("/ledger")
		{
			ledger.POST("", handler.CreateEntry)
			ledger.GET("", handler.ListEntries)
			ledger.GET("/totals", handler.GetLedgerTotals)
			ledger.DELETE("/:id", handler.DeleteEntry)
		}

		private.GET("/alerts", handler.ListAlerts)
	}
}

func startServer(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info().
				Str("address", srv.Addr).
				Str("environment", cfg.App.Environment).
				Msg("Servidor iniciando")
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return srv.Shutdown(ctx)
		},
	})
}
