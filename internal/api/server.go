package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/harismriti/sadhna-api/docs"
	v1 "github.com/harismriti/sadhna-api/internal/api/handler/v1"
	"github.com/harismriti/sadhna-api/internal/api/middleware"
	"github.com/harismriti/sadhna-api/internal/config"
	"github.com/harismriti/sadhna-api/internal/repository"
	"github.com/harismriti/sadhna-api/internal/repository/dao"
	"github.com/harismriti/sadhna-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	sadhnaHandler := s.initSadhnaHandler(db)
	reportHandler := s.initReportHandler(db)
	s.MountHandlers(authHandler, sadhnaHandler, reportHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	uSvc := service.NewUserService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc, uSvc)

	return handler
}

func (s *Server) initSadhnaHandler(db *gorm.DB) *v1.SadhnaHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	entryRepo := repository.NewEntryRepository(dao.NewEntryDAO(db))
	svc := service.NewSadhnaService(entryRepo, userRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewSadhnaHandler(svc, uSvc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	entryRepo := repository.NewEntryRepository(dao.NewEntryDAO(db))
	svc := service.NewReportService(entryRepo, userRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewReportHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, sadhnaHandler *v1.SadhnaHandler, reportHandler *v1.ReportHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/register", authHandler.HandleRegister)
		auth.POST("/auth/login", authHandler.HandleLogin)
		auth.GET("/auth/mentors", authHandler.HandleGetMentors)
	}

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	profile := s.Router.Group(basePath, verifyJWT)
	{
		profile.GET("/auth/me", authHandler.HandleGetMe)
		profile.PUT("/auth/profile", authHandler.HandleUpdateProfile)
	}

	sadhna := s.Router.Group(basePath, verifyJWT)
	{
		sadhna.POST("/sadhna", sadhnaHandler.HandleUpsertEntry)
		sadhna.GET("/sadhna/my-entries", sadhnaHandler.HandleGetMyEntries)
		sadhna.DELETE("/sadhna/:id", sadhnaHandler.HandleDeleteEntry)

		// Mentor views.
		sadhna.GET("/sadhna/devotees-entries", sadhnaHandler.HandleGetDevoteesEntries)
		sadhna.GET("/sadhna/devotee-history/:devoteeId", sadhnaHandler.HandleGetDevoteeHistory)

		// Peer views.
		sadhna.GET("/sadhna/peer-devotees", sadhnaHandler.HandleGetPeerDevotees)
		sadhna.GET("/sadhna/peer-entries", sadhnaHandler.HandleGetPeerEntries)
		sadhna.GET("/sadhna/peer-history/:peerId", sadhnaHandler.HandleGetPeerHistory)

		// Reports.
		sadhna.GET("/sadhna/weekly-winner", reportHandler.HandleWeeklyWinner)
		sadhna.GET("/sadhna/monthly-winner", reportHandler.HandleMonthlyWinner)
		sadhna.GET("/sadhna/weekly-attendance", reportHandler.HandleWeeklyAttendance)
		sadhna.GET("/sadhna/monthly-attendance", reportHandler.HandleMonthlyAttendance)
		sadhna.GET("/sadhna/missing-submissions", reportHandler.HandleMissingSubmissions)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Hari Smriti API"
	docs.SwaggerInfo.Description = "Daily sadhna tracking for mentors and devotees."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
