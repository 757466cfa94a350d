package server

import (
	"log"
	"strings"
	"time"

	"anoa.com/sekolahadmin/internal/cache"
	"anoa.com/sekolahadmin/internal/config"
	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/middleware"
	"anoa.com/sekolahadmin/pkg/storage"

	academicsHttp "anoa.com/sekolahadmin/internal/modules/academics/delivery/http"
	academicsRepo "anoa.com/sekolahadmin/internal/modules/academics/repository"
	academicsService "anoa.com/sekolahadmin/internal/modules/academics/service"

	attachmentHttp "anoa.com/sekolahadmin/internal/modules/attachment/delivery/http"
	attachmentService "anoa.com/sekolahadmin/internal/modules/attachment/service"

	authHttp "anoa.com/sekolahadmin/internal/modules/auth/delivery/http"
	authService "anoa.com/sekolahadmin/internal/modules/auth/service"

	identityClient "anoa.com/sekolahadmin/internal/modules/identity/client"
	identityHttp "anoa.com/sekolahadmin/internal/modules/identity/delivery/http"
	identitySearch "anoa.com/sekolahadmin/internal/modules/identity/search"
	identityService "anoa.com/sekolahadmin/internal/modules/identity/service"

	roleHttp "anoa.com/sekolahadmin/internal/modules/role/delivery/http"
	roleRepo "anoa.com/sekolahadmin/internal/modules/role/repository"
	roleService "anoa.com/sekolahadmin/internal/modules/role/service"

	scheduleHttp "anoa.com/sekolahadmin/internal/modules/schedule/delivery/http"
	scheduleRepo "anoa.com/sekolahadmin/internal/modules/schedule/repository"
	scheduleService "anoa.com/sekolahadmin/internal/modules/schedule/service"

	studentHttp "anoa.com/sekolahadmin/internal/modules/student/delivery/http"
	studentRepo "anoa.com/sekolahadmin/internal/modules/student/repository"
	studentService "anoa.com/sekolahadmin/internal/modules/student/service"

	teacherHttp "anoa.com/sekolahadmin/internal/modules/teacher/delivery/http"
	teacherRepo "anoa.com/sekolahadmin/internal/modules/teacher/repository"
	teacherService "anoa.com/sekolahadmin/internal/modules/teacher/service"

	userHttp "anoa.com/sekolahadmin/internal/modules/user/delivery/http"
	userRepo "anoa.com/sekolahadmin/internal/modules/user/repository"
	userService "anoa.com/sekolahadmin/internal/modules/user/service"

	violationHttp "anoa.com/sekolahadmin/internal/modules/violation/delivery/http"
	violationRepo "anoa.com/sekolahadmin/internal/modules/violation/repository"
	violationService "anoa.com/sekolahadmin/internal/modules/violation/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	users := userRepo.NewUserRepository(db)

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Printf("cloudinary storage unavailable, uploads will fail: %v", err)
		imageStorage = nil
	}

	var searchIndex identitySearch.Index
	if cfg.MeiliMasterKey != "" {
		meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		searchIndex = identitySearch.NewMeiliIndex(meiliClient)
	}

	var cacheStore cache.Cache
	var publisher events.Publisher
	if redisClient != nil {
		cacheStore = cache.NewRedisCache(redisClient)
		publisher = events.NewRedisPublisher(redisClient)
	} else {
		cacheStore = cache.NewMemoryCache()
		publisher = events.NewNoopPublisher()
	}

	provider := identityClient.NewClient(cfg.ClerkAPIURL, cfg.ClerkSecretKey)
	directory := identityService.NewDirectoryService(provider, cacheStore, searchIndex, cfg.IdentityCacheTTL)
	identityHandler := identityHttp.NewIdentityHandler(directory)

	userSvc := userService.NewUserService(users, directory, publisher)
	userHandler := userHttp.NewUserHandler(userSvc)

	roleSvc := roleService.NewRoleService(roleRepo.NewRoleRepository(db), publisher)
	roleHandler := roleHttp.NewRoleHandler(roleSvc)

	studentSvc := studentService.NewStudentService(studentRepo.NewStudentRepository(db), publisher)
	studentHandler := studentHttp.NewStudentHandler(studentSvc)

	teacherSvc := teacherService.NewTeacherService(teacherRepo.NewTeacherRepository(db), publisher)
	teacherHandler := teacherHttp.NewTeacherHandler(teacherSvc)

	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo.NewScheduleRepository(db), publisher)
	scheduleHandler := scheduleHttp.NewScheduleHandler(scheduleSvc)

	academicsSvc := academicsService.NewAcademicsService(academicsRepo.NewAcademicsRepository(db), publisher)
	academicsHandler := academicsHttp.NewAcademicsHandler(academicsSvc)

	violationSvc := violationService.NewViolationService(violationRepo.NewViolationRepository(db), publisher)
	violationHandler := violationHttp.NewViolationHandler(violationSvc)

	attachmentSvc := attachmentService.NewAttachmentService(imageStorage, cfg.CloudinaryUploadFolder)
	attachmentHandler := attachmentHttp.NewAttachmentHandler(attachmentSvc)

	authSvc := authService.NewAuthService(users, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := authHttp.NewAuthHandler(authSvc)

	wsHandler := events.NewWSHandler(redisClient)

	router := gin.New()
	setupCORS(router, cfg.AllowedOrigins)
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin(users))
		{
			admin.POST("/users", userHandler.CreateUser)
			admin.PUT("/users/:id", userHandler.UpdateUser)
			admin.DELETE("/users/:id", userHandler.DeleteUser)
			admin.POST("/users/:id/roles", userHandler.AssignRole)
			admin.DELETE("/users/:id/roles/:roleId", userHandler.RemoveRole)

			admin.POST("/role", roleHandler.CreateRole)
			admin.PUT("/role/:id", roleHandler.UpdateRole)
			admin.DELETE("/role/:id", roleHandler.DeleteRole)

			admin.POST("/students", studentHandler.CreateStudent)
			admin.PUT("/students", studentHandler.UpdateStudent)
			admin.DELETE("/students", studentHandler.DeleteStudent)

			admin.POST("/teachers", teacherHandler.CreateTeacher)
			admin.PUT("/teachers", teacherHandler.UpdateTeacher)
			admin.DELETE("/teachers", teacherHandler.DeleteTeacher)

			admin.POST("/schedules", scheduleHandler.CreateSchedule)
			admin.PUT("/schedules", scheduleHandler.UpdateSchedule)
			admin.DELETE("/schedules", scheduleHandler.DeleteSchedule)

			admin.POST("/major", academicsHandler.CreateMajor)
			admin.PUT("/major/:id", academicsHandler.UpdateMajor)
			admin.DELETE("/major/:id", academicsHandler.DeleteMajor)

			admin.POST("/academicyear", academicsHandler.CreateAcademicYear)
			admin.PUT("/academicyear/:id", academicsHandler.UpdateAcademicYear)
			admin.DELETE("/academicyear/:id", academicsHandler.DeleteAcademicYear)

			admin.POST("/classes", academicsHandler.CreateClass)
			admin.PUT("/classes/:id", academicsHandler.UpdateClass)
			admin.DELETE("/classes/:id", academicsHandler.DeleteClass)

			admin.POST("/subjects", academicsHandler.CreateSubject)
			admin.PUT("/subjects/:id", academicsHandler.UpdateSubject)
			admin.DELETE("/subjects/:id", academicsHandler.DeleteSubject)

			admin.POST("/typeviolations", violationHandler.CreateType)
			admin.PUT("/typeviolations/:id", violationHandler.UpdateType)
			admin.DELETE("/typeviolations/:id", violationHandler.DeleteType)

			admin.POST("/clerk/refresh", identityHandler.RefreshIdentities)
		}

		protected.GET("/users", userHandler.GetAllUsers)
		protected.GET("/users/directory", userHandler.GetDirectory)
		protected.GET("/users/:id", userHandler.GetUser)
		protected.GET("/role", roleHandler.GetAllRoles)
		protected.GET("/students", studentHandler.GetAllStudents)
		protected.GET("/teachers", teacherHandler.GetAllTeachers)
		protected.GET("/schedules", scheduleHandler.GetAllSchedules)
		protected.GET("/major", academicsHandler.GetAllMajors)
		protected.GET("/academicyear", academicsHandler.GetAllAcademicYears)
		protected.GET("/classes", academicsHandler.GetAllClasses)
		protected.GET("/subjects", academicsHandler.GetAllSubjects)
		protected.GET("/typeviolations", violationHandler.GetAllTypes)

		// Teachers record violations, so mutations stay behind plain auth
		protected.GET("/violations", violationHandler.GetAllViolations)
		protected.POST("/violations", violationHandler.CreateViolation)
		protected.PUT("/violations/:id", violationHandler.UpdateViolation)
		protected.DELETE("/violations/:id", violationHandler.DeleteViolation)

		protected.GET("/clerk/users", identityHandler.ListIdentityUsers)
		protected.GET("/clerk/users/search", identityHandler.SearchIdentityUsers)

		protected.POST("/upload", attachmentHandler.Upload)
		protected.GET("/events/ws", wsHandler.HandleWebSocket)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
