// Command seed loads the demo dataset into MongoDB: the well-known demo
// accounts (password "password"), a handful of apartments and their opening
// bills, building expenses and the next general assembly. Running it twice
// is safe; existing users are left untouched.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/syndicma/syndic-platform/internal/auth"
	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/infrastructure/config"
	mongodb "github.com/syndicma/syndic-platform/internal/infrastructure/db/mongo"
	"github.com/syndicma/syndic-platform/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	hash, err := hasher.Hash("password")
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	seedUsers := []*domain.User{
		{Email: "admin@syndic.ma", Name: "Ahmed Alaoui", Phone: "+212 6 12 34 56 78", Role: domain.RoleAdmin, Status: domain.StatusActive},
		{Email: "fatima.zahra@email.com", Name: "Fatima Zahra", Phone: "+212 6 11 22 33 44", Role: domain.RoleOwner, Status: domain.StatusActive},
		{Email: "youssef.benali@email.com", Name: "Youssef Benali", Phone: "+212 6 55 66 77 88", Role: domain.RoleOwner, Status: domain.StatusActive},
		{Email: "mohammed.idriss@email.com", Name: "Mohammed Idrissi", Phone: "+212 6 87 65 43 21", Role: domain.RoleTenant, Status: domain.StatusActive},
		{Email: "khadija.hasni@email.com", Name: "Khadija Hasni", Phone: "+212 6 99 88 77 66", Role: domain.RoleAccountant, Status: domain.StatusActive},
	}

	created := make(map[string]string, len(seedUsers))
	fresh := false
	for _, u := range seedUsers {
		u.PasswordHash = hash
		u.CreatedAt = now
		u.UpdatedAt = now

		record, err := users.Create(ctx, u)
		if errors.Is(err, domain.ErrUserExists) {
			existing, err := users.FindByEmail(ctx, u.Email)
			if err != nil {
				log.Fatal().Err(err).Str("email", u.Email).Msg("seed lookup failed")
			}
			created[u.Email] = existing.ID
			log.Info().Str("email", u.Email).Msg("user already seeded")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("seed user failed")
		}
		created[u.Email] = record.ID
		fresh = true
		log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("user seeded")
	}

	if !fresh {
		log.Info().Msg("dataset already present, skipping the rest of the seed")
		return
	}

	apartments := mongodb.NewApartmentRepository(db)
	bills := mongodb.NewBillRepository(db)

	seedApartments := []*domain.Apartment{
		{Number: "1A", Floor: 1, SizeM2: 85, Rooms: 3, Status: domain.ApartmentOccupied, MonthlyFee: 2500, OwnerID: created["fatima.zahra@email.com"]},
		{Number: "1B", Floor: 1, SizeM2: 95, Rooms: 4, Status: domain.ApartmentOccupied, MonthlyFee: 2800, OwnerID: created["fatima.zahra@email.com"]},
		{Number: "2A", Floor: 2, SizeM2: 75, Rooms: 2, Status: domain.ApartmentVacant, MonthlyFee: 2200, OwnerID: created["youssef.benali@email.com"]},
	}

	dueDate := time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	for _, a := range seedApartments {
		a.CreatedAt = now
		a.UpdatedAt = now

		apartment, err := apartments.Create(ctx, a)
		if err != nil {
			log.Fatal().Err(err).Str("number", a.Number).Msg("seed apartment failed")
		}

		_, err = bills.Create(ctx, &domain.Bill{
			ApartmentID: apartment.ID,
			OwnerID:     apartment.OwnerID,
			Amount:      apartment.MonthlyFee,
			Type:        domain.BillMonthly,
			Description: "Monthly syndic fee",
			Status:      domain.BillPending,
			DueDate:     dueDate,
			CreatedAt:   now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("number", a.Number).Msg("seed bill failed")
		}
		log.Info().Str("number", a.Number).Msg("apartment seeded")
	}

	expenses := mongodb.NewExpenseRepository(db)
	accountantID := created["khadija.hasni@email.com"]
	paidAt := now.AddDate(0, 0, -5)

	seedExpenses := []*domain.Expense{
		{Description: "Elevator maintenance contract", Amount: 4500, Category: "Maintenance", Vendor: "OTIS Maroc", Status: domain.ExpensePaid, ApprovedBy: "Ahmed Alaoui", CreatedByID: accountantID, CreatedAt: now.AddDate(0, 0, -10), PaidAt: &paidAt},
		{Description: "Cleaning service - monthly", Amount: 3200, Category: "Cleaning", Vendor: "CleanPro Services", Status: domain.ExpenseApproved, ApprovedBy: "Ahmed Alaoui", CreatedByID: accountantID, CreatedAt: now.AddDate(0, 0, -3)},
		{Description: "Garden landscaping", Amount: 1800, Category: "Landscaping", Vendor: "Jardins du Maroc", Status: domain.ExpensePending, CreatedByID: accountantID, CreatedAt: now},
	}
	for _, e := range seedExpenses {
		if _, err := expenses.Create(ctx, e); err != nil {
			log.Fatal().Err(err).Str("description", e.Description).Msg("seed expense failed")
		}
		log.Info().Str("description", e.Description).Msg("expense seeded")
	}

	meetings := mongodb.NewMeetingRepository(db)
	meeting := &domain.Meeting{
		Title:       "Annual General Assembly",
		Description: "Yearly review of the building budget and works",
		ScheduledAt: time.Date(now.Year(), now.Month(), 1, 18, 0, 0, 0, time.UTC).AddDate(0, 1, 0),
		Location:    "Building community hall",
		Type:        domain.MeetingGeneral,
		Status:      domain.MeetingScheduled,
		Agenda:      []string{"Budget review", "Facade renovation project", "Election of the syndic board"},
		Votes: []*domain.Vote{{
			ID:       "facade-renovation",
			Question: "Approve the facade renovation budget of 120,000 MAD?",
			Options:  []string{"Approve", "Reject", "Abstain"},
			Status:   domain.VoteActive,
			Ballots:  map[string]string{},
		}},
		CreatedAt: now,
	}
	if _, err := meetings.Create(ctx, meeting); err != nil {
		log.Fatal().Err(err).Str("title", meeting.Title).Msg("seed meeting failed")
	}
	log.Info().Str("title", meeting.Title).Msg("meeting seeded")

	log.Info().Msg("seed complete")
}
