package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"skytails/internal/config"
	"skytails/internal/db"
	"skytails/internal/model"
	"skytails/internal/repository"
)

// Seeds the demo household shown on the sample dashboard. Runs through the
// same transactional repository as real onboarding, so re-running against a
// seeded database fails cleanly on the unique indexes.
func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Pet{}, &model.Plan{}, &model.SignupEvent{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), 10)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	user := &model.User{
		Username:     "demo@skytails.example",
		Email:        "demo@skytails.example",
		PasswordHash: string(hashed),
		Country:      "US",
	}
	pet := &model.Pet{
		Name: "Buddy",
		Type: model.PetTypeDog,
		Age:  3,
	}
	plan := &model.Plan{
		Tier:                model.PlanTierCore,
		MonthlyContribution: 50,
	}

	onboardingRepo := repository.NewOnboardingRepository(gormDB)
	if err := onboardingRepo.CreateUserWithData(context.Background(), user, pet, plan); err != nil {
		log.Fatalf("Failed to seed demo household: %v", err)
	}

	log.Printf("Seeded demo user %d (%s) with pet %q and %s plan", user.ID, user.Email, pet.Name, plan.Tier)
}
