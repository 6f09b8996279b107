package infra

import (
	"fmt"

	"comidapp/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables. TranslateError is enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey — the storage layer's rejection
// is the only concurrency-correctness mechanism for the uniqueness invariants
// (venta.pedido_id, calificacion.pedido_id, repartidor.usuario_id, names).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Rol{},
		&model.Cliente{},
		&model.Usuario{},
		&model.Categoria{},
		&model.Producto{},
		&model.Combo{},
		&model.Oferta{},
		&model.Repartidor{},
		&model.Entrega{},
		&model.Pedido{},
		&model.PedidoItem{},
		&model.Venta{},
		&model.Calificacion{},
		&model.CalificacionProducto{},
	)
}
