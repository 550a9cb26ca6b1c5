package main

import (
	"log"

	"quizhub/config"
	"quizhub/models"
	"quizhub/seed"
)

// Administrative bootstrap: wipes the quiz tables and reloads them from the
// configured dataset file, falling back to the built-in quizzes.
func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Printf("Seeding database from %s", cfg.SeedFile)
	if err := seed.LoadFile(db, cfg.SeedFile); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	var quizCount, questionCount, optionCount int64
	db.Model(&models.Quiz{}).Count(&quizCount)
	db.Model(&models.Question{}).Count(&questionCount)
	db.Model(&models.Option{}).Count(&optionCount)

	log.Println("Database seeded successfully")
	log.Printf("  Quizzes:   %d", quizCount)
	log.Printf("  Questions: %d", questionCount)
	log.Printf("  Options:   %d", optionCount)
}
