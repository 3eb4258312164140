package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/deployappsa/absensi/internal/bootstrap"
	"github.com/deployappsa/absensi/internal/shared/connection"
)

// infra membawa koneksi eksternal yang opsional: semuanya nil saat
// STORAGE_DRIVER=memory dan REDIS_ADDR kosong.
type infra struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

// BuildApp menyiapkan infrastruktur sesuai konfigurasi lalu merangkai semua
// modul beserta route-nya ke router.
func BuildApp(router *gin.Engine, cfg Config, audit bootstrap.AuditLogger) error {
	var inf infra

	if cfg.StorageDriver == DriverPostgres {
		gormDB, err := connection.ConnectGORMWithRetry(
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			cfg.DBSSLMode,
			5,
		)
		if err != nil {
			return err
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}

		if err := connection.RunMigrations(sqlDB); err != nil {
			return err
		}

		inf.gormDB = gormDB
		inf.sqlDB = sqlDB
	}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
		inf.rdb = rdb
	}

	return registerModules(router, cfg, inf, audit)
}
