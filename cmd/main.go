package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignPatientHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/assign_patient"
	dischargePatientHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/discharge_patient"
	getHospitalOccupancyHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/get_hospital_occupancy"
	getPatientHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/get_patient"
	getPatientsHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/get_patients"
	getPatientsByRoomHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/get_patients_by_room"
	getRoomHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/get_room"
	getRoomOccupancyHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/get_room_occupancy"
	getRoomsHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/get_rooms"
	reassignPatientHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/reassign_patient"
	registerPatientHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/register_patient"
	updatePatientHandler "github.com/m04kA/HBT-OccupancyService/internal/api/handlers/update_patient"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	"github.com/m04kA/HBT-OccupancyService/internal/config"
	hospitalRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/hospital"
	patientRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/patient"
	roomRepo "github.com/m04kA/HBT-OccupancyService/internal/infra/storage/room"
	userServiceClient "github.com/m04kA/HBT-OccupancyService/internal/integrations/userservice"
	patientsService "github.com/m04kA/HBT-OccupancyService/internal/service/patients"
	roomsService "github.com/m04kA/HBT-OccupancyService/internal/service/rooms"
	assignPatientUC "github.com/m04kA/HBT-OccupancyService/internal/usecase/assign_patient"
	dischargePatientUC "github.com/m04kA/HBT-OccupancyService/internal/usecase/discharge_patient"
	reassignPatientUC "github.com/m04kA/HBT-OccupancyService/internal/usecase/reassign_patient"
	"github.com/m04kA/HBT-OccupancyService/pkg/dbmetrics"
	"github.com/m04kA/HBT-OccupancyService/pkg/logger"
	"github.com/m04kA/HBT-OccupancyService/pkg/metrics"
	"github.com/m04kA/HBT-OccupancyService/pkg/simpletxmanager"
	"github.com/m04kA/HBT-OccupancyService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HBT-OccupancyService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента UserService
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		roomRepository     *roomRepo.Repository
		patientRepository  *patientRepo.Repository
		hospitalRepository *hospitalRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		roomRepository = roomRepo.NewRepository(wrappedDB)
		patientRepository = patientRepo.NewRepository(wrappedDB)
		hospitalRepository = hospitalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		roomRepository = roomRepo.NewRepository(db)
		patientRepository = patientRepo.NewRepository(db)
		hospitalRepository = hospitalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	patientSvc := patientsService.NewService(
		patientRepository,
		roomRepository,
		log,
	)
	roomSvc := roomsService.NewService(
		roomRepository,
		patientRepository,
		hospitalRepository,
		log,
	)

	// Инициализируем use cases аллокатора
	assignPatientUseCase := assignPatientUC.NewUseCase(
		patientRepository,
		roomRepository,
		hospitalRepository,
		txMgr,
		log,
	)
	reassignPatientUseCase := reassignPatientUC.NewUseCase(
		patientRepository,
		roomRepository,
		hospitalRepository,
		txMgr,
		log,
	)
	dischargePatientUseCase := dischargePatientUC.NewUseCase(
		patientRepository,
		roomRepository,
		hospitalRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	assignPatient := assignPatientHandler.NewHandler(assignPatientUseCase, log)
	reassignPatient := reassignPatientHandler.NewHandler(reassignPatientUseCase, log)
	dischargePatient := dischargePatientHandler.NewHandler(dischargePatientUseCase, log)
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	getRoomOccupancy := getRoomOccupancyHandler.NewHandler(roomSvc, log)
	getHospitalOccupancy := getHospitalOccupancyHandler.NewHandler(roomSvc, log)
	registerPatient := registerPatientHandler.NewHandler(patientSvc, log)
	getPatients := getPatientsHandler.NewHandler(patientSvc, log)
	getPatient := getPatientHandler.NewHandler(patientSvc, log)
	getPatientsByRoom := getPatientsByRoomHandler.NewHandler(patientSvc, log)
	updatePatient := updatePatientHandler.NewHandler(patientSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют Bearer токен: hospital scope вызывающего
	// приходит только из валидированной сессии
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(userClient, log))

	// --- Размещение ---
	// Размещение пациента в палате
	protected.HandleFunc("/rooms/assign", assignPatient.Handle).Methods(http.MethodPost)

	// Перевод пациента в другую палату (или повторное поступление)
	protected.HandleFunc("/rooms/reassign", reassignPatient.Handle).Methods(http.MethodPut)

	// Выписка пациента
	protected.HandleFunc("/patients/{patientId}/discharge", dischargePatient.Handle).Methods(http.MethodPut)

	// --- Палаты и занятость ---
	// Список палат госпиталя с занятостью
	protected.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Палата по ID
	protected.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// Снимок занятости палаты
	protected.HandleFunc("/rooms/{roomId}/occupancy", getRoomOccupancy.Handle).Methods(http.MethodGet)

	// Агрегированная занятость госпиталя
	protected.HandleFunc("/hospital/occupancy", getHospitalOccupancy.Handle).Methods(http.MethodGet)

	// --- Регистратура пациентов ---
	// Регистрация пациента
	protected.HandleFunc("/patients", registerPatient.Handle).Methods(http.MethodPost)

	// Список пациентов госпиталя (с фильтрами)
	protected.HandleFunc("/patients", getPatients.Handle).Methods(http.MethodGet)

	// Пациенты палаты
	protected.HandleFunc("/patients/room/{roomId}", getPatientsByRoom.Handle).Methods(http.MethodGet)

	// Пациент по ID
	protected.HandleFunc("/patients/{patientId}", getPatient.Handle).Methods(http.MethodGet)

	// Обновление данных пациента
	protected.HandleFunc("/patients/{patientId}", updatePatient.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited gracefully")
}
