package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"hospital-api-server/internal/analytics"
	"hospital-api-server/internal/config"
	"hospital-api-server/internal/handlers"
	"hospital-api-server/internal/metrics"
	"hospital-api-server/internal/middleware"
	"hospital-api-server/internal/store"
	"hospital-api-server/internal/utils"
)

// Dependencies are the long-lived objects the router wires into handlers.
type Dependencies struct {
	Store    store.Store
	Logger   zerolog.Logger
	Metrics  *metrics.HTTPMetrics
	Gatherer prometheus.Gatherer
	Clock    func() time.Time
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.Recovery(deps.Logger),
		cors.New(corsConfig(cfg)),
	)
	SetupRoutes(router, deps)
	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	if len(cfg.Origins) == 0 || (len(cfg.Origins) == 1 && cfg.Origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Origins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	return corsConfig
}

// handle registers path with and without a trailing slash so neither form
// is answered with a redirect.
func handle(register func(string, ...gin.HandlerFunc) gin.IRoutes, path string, handlers ...gin.HandlerFunc) {
	register(path, handlers...)
	register(path+"/", handlers...)
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	svc := analytics.NewService(deps.Store)
	if deps.Clock != nil {
		svc = svc.WithClock(deps.Clock)
	}

	// Initialize handlers
	appointmentHandler := handlers.NewAppointmentHandler(deps.Store, deps.Logger, deps.Metrics)
	analyticsHandler := handlers.NewAnalyticsHandler(svc, deps.Logger, deps.Metrics)
	directoryHandler := handlers.NewDirectoryHandler(deps.Store, deps.Logger)
	healthHandler := handlers.NewHealthHandler(deps.Store, deps.Logger)

	appointmentRoutes := router.Group("/appointments")
	{
		handle(appointmentRoutes.POST, "", middleware.RequireJSON(), appointmentHandler.CreateAppointment)
	}

	analyticsRoutes := router.Group("/analytics")
	{
		handle(analyticsRoutes.GET, "/doctors-with-appointments", analyticsHandler.DoctorsWithAppointments)
		handle(analyticsRoutes.GET, "/patient-medical-history/:id", analyticsHandler.PatientMedicalHistory)
		handle(analyticsRoutes.GET, "/top-specialties", analyticsHandler.TopSpecialties)
		handle(analyticsRoutes.GET, "/cancelled-appointments", analyticsHandler.CancelledAppointments)
		handle(analyticsRoutes.GET, "/monthly-appointments", analyticsHandler.MonthlyAppointments)
		handle(analyticsRoutes.GET, "/active-patients", analyticsHandler.ActivePatients)
		handle(analyticsRoutes.GET, "/doctor-availability/:day", analyticsHandler.DoctorAvailability)
	}

	doctorRoutes := router.Group("/doctors")
	{
		handle(doctorRoutes.POST, "", middleware.RequireJSON(), directoryHandler.CreateDoctor)
		handle(doctorRoutes.GET, "/:id", directoryHandler.GetDoctor)
	}

	patientRoutes := router.Group("/patients")
	{
		handle(patientRoutes.POST, "", middleware.RequireJSON(), directoryHandler.CreatePatient)
		handle(patientRoutes.GET, "/:id", directoryHandler.GetPatient)
	}

	router.GET("/health", healthHandler.Health)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Wrong methods on known paths fall through to NoRoute as well.
	router.HandleMethodNotAllowed = false
	router.NoRoute(utils.RouteNotFound)
}
