package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/config"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/db"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/repository"
)

const seedPassword = "password123"

func strPtr(s string) *string { return &s }

func seedUsers() []model.User {
	return []model.User{
		{
			Name:  "Asha Citizen",
			Email: "citizen@urbanuplift.dev",
			Role:  model.RoleCitizen,
		},
		{
			Name:               "CleanCity Foundation",
			Email:              "ngo@urbanuplift.dev",
			Role:               model.RoleNGO,
			OrganizationID:     strPtr("ORG-1001"),
			RegistrationNumber: strPtr("NGO/2021/0042"),
		},
		{
			Name:       "R. Kumar",
			Email:      "official@urbanuplift.dev",
			Role:       model.RoleGovt,
			EmployeeID: strPtr("EMP-2207"),
			Department: strPtr("Public Works"),
		},
		{
			Name:        "NSS Unit Lead",
			Email:       "nss@urbanuplift.dev",
			Role:        model.RoleNSS,
			CollegeID:   strPtr("CLG-17"),
			CollegeRole: strPtr("coordinator"),
		},
	}
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Report{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	created := 0
	var citizen *model.User
	for _, user := range seedUsers() {
		existing, err := userRepo.FindByEmail(ctx, user.Email)
		if err == nil {
			log.Printf("User %s already exists, skipping", user.Email)
			if existing.Role == model.RoleCitizen {
				citizen = existing
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", user.Email, err)
		}

		user.PasswordHash = string(hashed)
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatalf("Failed to create user %s: %v", user.Email, err)
		}
		if user.Role == model.RoleCitizen {
			u := user
			citizen = &u
		}
		created++
	}
	log.Printf("Created %d users (password: %q)", created, seedPassword)

	if citizen == nil {
		log.Println("No citizen user available, skipping sample reports")
		return
	}

	sampleReports := []model.Report{
		{
			Description: "Deep pothole near the main bus stop, two-wheelers swerving into traffic",
			Category:    "pothole",
			Status:      model.ReportStatusPending,
			Priority:    model.PriorityMedium,
			AIPriority:  model.PriorityMedium,
			Location:    "MG Road, near bus stop 12",
			District:    strPtr("Central"),
			State:       strPtr("Tamil Nadu"),
			CreatedByID: citizen.ID,
		},
		{
			Description: "Sewage overflowing onto the footpath for three days",
			Category:    "sewage overflow",
			Status:      model.ReportStatusInProgress,
			Priority:    model.PriorityHigh,
			AIPriority:  model.PriorityHigh,
			Location:    "4th Cross, Gandhi Nagar",
			District:    strPtr("North"),
			State:       strPtr("Tamil Nadu"),
			CreatedByID: citizen.ID,
		},
	}

	for i := range sampleReports {
		if err := reportRepo.Create(ctx, &sampleReports[i]); err != nil {
			log.Fatalf("Failed to create sample report: %v", err)
		}
	}
	log.Printf("Created %d sample reports", len(sampleReports))

	log.Println("Seed completed")
}
