package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"deadline-management-api/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB() {
	var err error

	// Get database credentials from environment variables
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbDatabase := os.Getenv("DB_DATABASE")
	dbUsername := os.Getenv("DB_USERNAME")
	dbPassword := os.Getenv("DB_PASSWORD")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbUsername,
		dbPassword,
		dbHost,
		dbPort,
		dbDatabase,
	)

	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	debugSQL := strings.ToLower(os.Getenv("DEBUG_SQL"))

	logLevel := logger.Info
	if environment == "production" && debugSQL != "true" {
		logLevel = logger.Warn
	}

	config := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}

	DB, err = gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// The submissions unique index on (deadline_id, submitted_by) comes from
	// the model tags; migration keeps it in place on fresh databases.
	if err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Deadline{},
		&models.Submission{},
	); err != nil {
		log.Fatal("Failed to migrate database schema:", err)
	}

	seedRoles()

	log.Println("Database connected successfully")
}

func seedRoles() {
	roles := []models.Role{
		{RoleID: models.RoleUser, Role: "user"},
		{RoleID: models.RoleAdmin, Role: "admin"},
	}
	for _, role := range roles {
		if err := DB.Where("role_id = ?", role.RoleID).FirstOrCreate(&role).Error; err != nil {
			log.Printf("Warning: failed to seed role %q: %v", role.Role, err)
		}
	}
}
