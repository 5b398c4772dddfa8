// seed puebla la base con los datos mínimos de arranque: un usuario ADMIN y
// datos de referencia (categorías, unidades, bodega principal). Es idempotente:
// los registros que ya existen se dejan intactos.
//
// Uso: go run ./cmd/seed
// La contraseña del admin se toma de SEED_ADMIN_PASSWORD (admin12345 por defecto).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()

	// Usuario administrador
	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByUsername("admin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar admin: %v\n", err)
		os.Exit(1)
	}
	if existing == nil {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			password = "admin12345"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
			os.Exit(1)
		}
		admin := &entity.User{
			ID:           uuid.New().String(),
			Username:     "admin",
			FullName:     "Administrador",
			Email:        "admin@almacen.local",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			State:        entity.UserStateActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(admin); err != nil {
			fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("usuario admin creado")
	} else {
		fmt.Println("usuario admin ya existe, no se toca")
	}

	// Unidades de medida básicas
	units := postgres.NewUnitRepository(pool)
	for _, name := range []string{"Unidad", "Kilogramo", "Gramo", "Litro", "Metro", "Caja"} {
		created, err := seedUnit(units, name, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear unidad %q: %v\n", name, err)
			os.Exit(1)
		}
		if created {
			fmt.Printf("unidad %q creada\n", name)
		}
	}

	// Categorías de referencia
	categories := postgres.NewCategoryRepository(pool)
	for _, c := range []struct{ name, desc string }{
		{"Materia Prima", "Insumos para producción"},
		{"Producto Terminado", "Productos listos para venta"},
		{"Insumos Generales", "Material de consumo interno"},
	} {
		created, err := seedCategory(categories, c.name, c.desc, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear categoría %q: %v\n", c.name, err)
			os.Exit(1)
		}
		if created {
			fmt.Printf("categoría %q creada\n", c.name)
		}
	}

	// Bodega principal
	warehouses := postgres.NewWarehouseRepository(pool)
	list, err := warehouses.List(1, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar bodegas: %v\n", err)
		os.Exit(1)
	}
	if len(list) == 0 {
		w := &entity.Warehouse{
			ID:          uuid.New().String(),
			Name:        "Bodega Principal",
			Location:    "Sede central",
			Description: "Bodega por defecto",
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := warehouses.Create(w); err != nil {
			fmt.Fprintf(os.Stderr, "crear bodega: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("bodega principal creada")
	}

	fmt.Println("seed completado")
}

func seedUnit(repo *postgres.UnitRepo, name string, now time.Time) (bool, error) {
	existing, err := repo.GetByName(name)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	u := &entity.Unit{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return true, repo.Create(u)
}

func seedCategory(repo *postgres.CategoryRepo, name, desc string, now time.Time) (bool, error) {
	existing, err := repo.GetByName(name)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: desc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return true, repo.Create(c)
}
