package main

import (
	"context"
	"errors"
	"log"

	"frases/internal/config"
	"frases/internal/db"
	"frases/internal/model"
	"frases/internal/repository"
	"frases/internal/service"
)

func main() {
	log.Println("Starting admin provisioning...")

	cfg := config.Load()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Usuario{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	adminService := service.NewAdminService(repository.NewUsuarioRepository(gormDB))

	created, err := adminService.ProvisionAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		if errors.Is(err, service.ErrMissingCredentials) {
			log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
		}
		log.Fatalf("Failed to provision admin: %v", err)
	}

	if created {
		log.Printf("Admin %s created", cfg.AdminEmail)
	} else {
		log.Printf("Admin %s already existed, password updated", cfg.AdminEmail)
	}
}
