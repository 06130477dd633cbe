package database

import (
	"fmt"
	"log"

	"LibraryHub/src/core/config"
	"LibraryHub/src/core/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

func ConnectDB() {
	// Fetch configuration values from environment or config files
	host := config.Config("DB_HOST")
	port := config.Config("DB_PORT")
	user := config.Config("DB_USER")
	password := config.Config("DB_PASSWORD")
	dbname := config.Config("DB_NAME")

	// Build the connection string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbname)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "",
			SingularTable: false,
		},
	})
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	fmt.Println("Database successfully connected!")
}

// Migrate creates or updates the library tables. The unique index on
// user_rewards (user_id, reward_id) is required for safe reward granting.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.QuizQuestion{},
		&models.QuizAttempt{},
		&models.Reward{},
		&models.UserReward{},
		&models.SystemLog{},
		&models.PasswordReset{},
	)
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}
