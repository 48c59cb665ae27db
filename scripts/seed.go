package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sportmap-ro/backend/internal/adapters/database"
	"github.com/sportmap-ro/backend/internal/adapters/search"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/postgres"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/typesense"
	"github.com/sportmap-ro/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	var searchRepo *search.TypesenseAdapter
	if err == nil {
		searchRepo = search.NewTypesenseAdapter(tsClient)
		if err := searchRepo.InitSchema(context.Background()); err != nil {
			log.Printf("Failed to init search schema: %v", err)
		}
	}

	facilityRepo := database.NewFacilityAdapter(pgClient)
	fieldRepo := database.NewSportsFieldAdapter(pgClient)
	coachRepo := database.NewCoachAdapter(pgClient)
	seoRepo := database.NewSEOPageAdapter(pgClient)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				sports_fields,
				suggestions,
				facilities,
				coaches,
				seo_pages,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	price := func(v float64) *float64 { return &v }
	now := time.Now()

	// 1. Seed facilities
	facilities := []*entities.Facility{
		{
			ID:          uuid.New().String(),
			Name:        "Baza Sportivă Gheorgheni",
			Slug:        "baza-sportiva-gheorgheni",
			Kind:        entities.KindSportsBase,
			Address:     entities.Address{Street: "Aleea Stadionului 2", City: "Cluj-Napoca", County: "Cluj"},
			Coordinates: &entities.MapCoordinates{Latitude: 46.7712, Longitude: 23.6236},
			PhoneNumber: "+40 745 000 001",
			Email:       "contact@bazagheorgheni.ro",
			Sports:      []string{"fotbal", "tenis"},
			Features:    []string{"nocturna", "vestiare", "parcare"},
			Status:      entities.StatusApproved,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Arena Tineretului",
			Slug:        "arena-tineretului",
			Kind:        entities.KindSportsBase,
			Address:     entities.Address{Street: "Str. Tineretului 10", City: "Bucuresti", County: "Bucuresti"},
			PhoneNumber: "+40 745 000 002",
			Sports:      []string{"baschet", "volei"},
			Status:      entities.StatusApproved,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Service Biciclete Velo",
			Slug:        "service-biciclete-velo",
			Kind:        entities.KindRepairShop,
			Address:     entities.Address{Street: "Str. Horea 44", City: "Cluj-Napoca", County: "Cluj"},
			PhoneNumber: "+40 745 000 003",
			Sports:      []string{"ciclism"},
			Status:      entities.StatusApproved,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Magazin Echipamente ProSport",
			Slug:        "magazin-echipamente-prosport",
			Kind:        entities.KindEquipmentShop,
			Address:     entities.Address{Street: "Bd. Decebal 5", City: "Timisoara", County: "Timis"},
			PhoneNumber: "+40 745 000 004",
			Sports:      []string{"fotbal", "tenis", "alergare"},
			Status:      entities.StatusPending,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	for _, f := range facilities {
		if err := facilityRepo.Create(ctx, f); err != nil {
			log.Printf("Failed to create facility %s: %v", f.Name, err)
			continue
		}
		if searchRepo != nil {
			if err := searchRepo.Index(ctx, f); err != nil {
				log.Printf("Failed to index facility %s: %v", f.Name, err)
			}
		}
	}

	// 2. Seed fields with weekly slots for the first base
	fields := []*entities.SportsField{
		{
			ID:         uuid.New().String(),
			FacilityID: facilities[0].ID,
			Name:       "Teren 1 (fotbal)",
			Sport:      "fotbal",
			Surface:    "gazon sintetic",
			SlotSize:   60,
			TimeSlots: []entities.TimeSlot{
				{Day: "monday", StartTime: "08:00", EndTime: "18:00", Status: entities.SlotOpen, Price: price(80)},
				{Day: "monday", StartTime: "18:00", EndTime: "23:00", Status: entities.SlotOpen, Price: price(120)},
				{Day: "saturday", StartTime: "09:00", EndTime: "22:00", Status: entities.SlotOpen, Price: price(150)},
				{Day: "sunday", StartTime: "09:00", EndTime: "14:00", Status: entities.SlotClosed},
			},
		},
		{
			ID:         uuid.New().String(),
			FacilityID: facilities[0].ID,
			Name:       "Teren 2 (tenis)",
			Sport:      "tenis",
			Surface:    "zgura",
			Covered:    true,
			SlotSize:   60,
			TimeSlots: []entities.TimeSlot{
				{Day: "monday", StartTime: "07:00", EndTime: "22:00", Status: entities.SlotOpen, Price: price(60)},
				{Day: "friday", StartTime: "22:00", EndTime: "01:00", Status: entities.SlotOpen, IsPriceUnspecified: true},
			},
		},
	}
	if err := fieldRepo.ReplaceForFacility(ctx, facilities[0].ID, fields); err != nil {
		log.Printf("Failed to seed fields: %v", err)
	}

	// 3. Seed coaches
	coaches := []*entities.Coach{
		{
			ID:           uuid.New().String(),
			Name:         "Andrei Popescu",
			Slug:         "andrei-popescu",
			City:         "Cluj-Napoca",
			County:       "Cluj",
			Sports:       []string{"tenis"},
			PhoneNumber:  "+40 745 100 001",
			PricePerHour: price(120),
			Status:       entities.StatusApproved,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New().String(),
			Name:         "Ioana Marin",
			Slug:         "ioana-marin",
			City:         "Bucuresti",
			County:       "Bucuresti",
			Sports:       []string{"inot"},
			PhoneNumber:  "+40 745 100 002",
			PricePerHour: price(150),
			Status:       entities.StatusApproved,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, c := range coaches {
		if err := coachRepo.Create(ctx, c); err != nil {
			log.Printf("Failed to create coach %s: %v", c.Name, err)
		}
	}

	// 4. Seed SEO metadata for the main landing pages
	seoPages := []*entities.SEOPage{
		{
			ID:          uuid.New().String(),
			Path:        "/",
			Title:       "SportMap - terenuri, baze sportive si antrenori in Romania",
			Description: "Gaseste terenuri de sport, baze sportive, antrenori si magazine de echipamente din orasul tau.",
			Keywords:    "teren fotbal, teren tenis, baza sportiva, antrenor",
		},
		{
			ID:          uuid.New().String(),
			Path:        "/terenuri/cluj",
			Title:       "Terenuri de sport in Cluj",
			Description: "Toate bazele sportive din judetul Cluj, cu program si preturi.",
		},
	}
	for _, p := range seoPages {
		if err := seoRepo.Create(ctx, p); err != nil {
			log.Printf("Failed to create seo page %s: %v", p.Path, err)
		}
	}

	log.Printf("Seeded %d facilities, %d fields, %d coaches, %d seo pages",
		len(facilities), len(fields), len(coaches), len(seoPages))
}
