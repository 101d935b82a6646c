// seed puebla la base de datos con datos iniciales de demostración:
// las categorías base del catálogo, dos proveedores y un usuario admin.
//
// Uso: go run ./cmd/seed
// Credenciales del admin: SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD
// (por defecto admin@inventory.local / changeme123).
// Es idempotente: los registros que ya existen se omiten.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/moganraj05/Inventory-Management-System/internal/application/auth"
	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
	"github.com/moganraj05/Inventory-Management-System/internal/domain"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
	"github.com/moganraj05/Inventory-Management-System/internal/infrastructure/postgres"
	"github.com/moganraj05/Inventory-Management-System/pkg/config"
	"github.com/moganraj05/Inventory-Management-System/pkg/logger"
)

var seedCategories = []string{
	"Electronics",
	"Groceries",
	"Stationery",
	"Furniture",
	"Clothing",
	"Medical",
	"Automobile",
	"Hardware",
	"Books",
	"Sports",
}

var seedSuppliers = []entity.Supplier{
	{Name: "Distribuidora Central", Email: "ventas@central.example.com", Phone: "+57 601 555 0101", Address: "Calle 26 # 68-35, Bogotá"},
	{Name: "Importadora del Norte", Email: "contacto@norte.example.com", Phone: "+57 604 555 0202", Address: "Carrera 43A # 1-50, Medellín"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Categorías base del catálogo
	categoryRepo := postgres.NewCategoryRepository(pool)
	for _, name := range seedCategories {
		now := time.Now()
		err := categoryRepo.Create(&entity.Category{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
		switch err {
		case nil:
			log.Info().Str("name", name).Msg("categoría creada")
		case domain.ErrDuplicate:
			log.Info().Str("name", name).Msg("categoría ya existe, omitida")
		default:
			log.Fatal().Err(err).Str("name", name).Msg("crear categoría")
		}
	}

	// Proveedores de demostración
	supplierRepo := postgres.NewSupplierRepository(pool)
	for i := range seedSuppliers {
		s := seedSuppliers[i]
		s.ID = uuid.New().String()
		s.CreatedAt = time.Now()
		s.UpdatedAt = s.CreatedAt
		switch err := supplierRepo.Create(&s); err {
		case nil:
			log.Info().Str("name", s.Name).Msg("proveedor creado")
		case domain.ErrDuplicate:
			log.Info().Str("name", s.Name).Msg("proveedor ya existe, omitido")
		default:
			log.Fatal().Err(err).Str("name", s.Name).Msg("crear proveedor")
		}
	}

	// Usuario administrador inicial
	email := envOr("SEED_ADMIN_EMAIL", "admin@inventory.local")
	password := envOr("SEED_ADMIN_PASSWORD", "changeme123")
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	_, err = authUC.RegisterUser(dto.RegisterRequest{
		Name:     "Administrador",
		Email:    email,
		Password: password,
		Role:     entity.RoleAdmin,
	})
	switch err {
	case nil:
		log.Info().Str("email", email).Msg("usuario admin creado")
	case domain.ErrEmailAlreadyExists:
		log.Info().Str("email", email).Msg("usuario admin ya existe, omitido")
	default:
		log.Fatal().Err(err).Msg("crear usuario admin")
	}

	fmt.Println("seed completado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
