package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/order"
	"github.com/jhoicas/almacen-api/internal/application/production"
	"github.com/jhoicas/almacen-api/internal/application/receipt"
	"github.com/jhoicas/almacen-api/internal/application/transaction"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	orderItemRepo := postgres.NewOrderItemRepository(pool)
	receiptRepo := postgres.NewMaterialReceiptRepository(pool)
	receiptItemRepo := postgres.NewMaterialReceiptItemRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	productionItemRepo := postgres.NewProductionItemRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clock := refnum.SystemClock{}
	numbers := refnum.NewMillisGenerator(clock)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, clock)
	unitUC := usecase.NewUnitUseCase(unitRepo, clock)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, clock)
	clientUC := usecase.NewClientUseCase(clientRepo, clock)
	userUC := usecase.NewUserUseCase(userRepo, clock)
	itemUC := usecase.NewItemUseCase(itemRepo, clock)
	productUC := usecase.NewProductUseCase(productRepo, clock)

	orderUC := order.NewUseCase(orderRepo, orderItemRepo, itemRepo, txRunner, numbers, clock)
	receiptUC := receipt.NewUseCase(receiptRepo, receiptItemRepo, itemRepo, txRunner, numbers, clock)
	productionUC := production.NewUseCase(productionRepo, productionItemRepo, itemRepo, productRepo, txRunner, numbers, clock)
	transactionUC := transaction.NewUseCase(transactionRepo, txRunner, numbers, clock)

	// PDF: reporte de existencias
	pdfGenerator := infrapdf.NewMarotoStockReport()
	reportUC := usecase.NewReportUseCase(itemRepo, productRepo, pdfGenerator, clock)

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration, clock)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		UnitUC:        unitUC,
		WarehouseUC:   warehouseUC,
		ClientUC:      clientUC,
		UserUC:        userUC,
		ItemUC:        itemUC,
		ProductUC:     productUC,
		OrderUC:       orderUC,
		ReceiptUC:     receiptUC,
		ProductionUC:  productionUC,
		TransactionUC: transactionUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
