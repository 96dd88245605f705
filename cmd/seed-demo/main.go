// Fixture loader: seeds the demo users and submissions explicitly.
// cmd/seed-demo/main.go
package main

import (
	"flag"
	"log"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/config"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/models"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/services"

	"github.com/joho/godotenv"
)

func main() {
	force := flag.Bool("force", false, "clear existing data and reseed")
	flag.Parse()

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	if err := config.DB.AutoMigrate(&models.User{}, &models.Submission{}, &models.Comment{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := services.SeedDemoData(config.DB, *force); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	log.Println("Seeding completed!")
}
