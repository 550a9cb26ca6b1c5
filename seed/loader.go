package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"quizhub/models"

	"gorm.io/gorm"
)

// Load wipes the quiz tables and inserts the dataset in input order,
// propagating generated parent IDs to children. The whole load is one
// transaction. Destructive: any existing quizzes are removed first.
func Load(db *gorm.DB, dataset *Dataset) error {
	if err := db.AutoMigrate(&models.Quiz{}, &models.Question{}, &models.Option{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Children first so the delete works without relying on DB cascades.
		for _, model := range []interface{}{&models.Option{}, &models.Question{}, &models.Quiz{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear existing data: %w", err)
			}
		}

		for _, quizDef := range dataset.Quizzes {
			quiz := models.Quiz{Title: quizDef.Title}
			if err := tx.Create(&quiz).Error; err != nil {
				return fmt.Errorf("failed to create quiz %q: %w", quizDef.Title, err)
			}

			for _, questionDef := range quizDef.Questions {
				question := models.Question{
					QuizID: quiz.ID,
					Text:   questionDef.Text,
				}
				if err := tx.Create(&question).Error; err != nil {
					return fmt.Errorf("failed to create question %q: %w", questionDef.Text, err)
				}

				for _, optionDef := range questionDef.Options {
					option := models.Option{
						QuestionID: question.ID,
						Text:       optionDef.Text,
						IsCorrect:  optionDef.IsCorrect,
					}
					if err := tx.Create(&option).Error; err != nil {
						return fmt.Errorf("failed to create option %q: %w", optionDef.Text, err)
					}
				}
			}
		}
		return nil
	})
}

// LoadFile seeds from a JSON dataset file. A missing or malformed file falls
// back to the built-in defaults so the system is always usable.
func LoadFile(db *gorm.DB, path string) error {
	return Load(db, readDataset(path))
}

func readDataset(path string) *Dataset {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: %s not available, using default data: %v", path, err)
		return DefaultDataset()
	}

	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		log.Printf("Warning: failed to parse %s, using default data: %v", path, err)
		return DefaultDataset()
	}
	return &dataset
}
