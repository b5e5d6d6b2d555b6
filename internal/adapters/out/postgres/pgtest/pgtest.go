// Package pgtest starts a throwaway PostgreSQL container with the storefront
// schema for integration tests, and seeds the rows those tests need.
package pgtest

import (
	"context"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated database inside a running container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Reset empties every table.
func (d *Database) Reset() error {
	return postgres.TruncateAll(d.DB)
}

func (d *Database) Stop(ctx context.Context) error {
	return d.Container.Terminate(ctx)
}

// SeedUser inserts an account with the given role.
func (d *Database) SeedUser(ctx context.Context, name, email string, role user.Role) (*user.User, error) {
	u, err := user.NewUser(kernel.NewUUID(), name, email, role)
	if err != nil {
		return nil, err
	}
	dto := userrepo.FromDomain(u)
	if err = d.DB.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// SeedProduct inserts a product sold by seller.
func (d *Database) SeedProduct(ctx context.Context, name, price string, stock int, seller kernel.UUID) (*product.Product, error) {
	p, err := product.NewProduct(product.Params{
		ID:       kernel.NewUUID(),
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		SellerID: seller,
		Sizes:    []string{"S", "M", "L"},
	})
	if err != nil {
		return nil, err
	}
	dto := catalogrepo.ProductFromDomain(p)
	if err = d.DB.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Stock reads the current stock of a product.
func (d *Database) Stock(ctx context.Context, id kernel.UUID) (int, error) {
	var stock int
	err := d.DB.WithContext(ctx).Model(&catalogrepo.ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Pluck("stock", &stock).Error
	return stock, err
}
