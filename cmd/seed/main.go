package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and seeds the default admin plus demo data
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("RES-POS ADMIN - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.Admin{},
		&models.Restaurant{},
		&models.Category{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	seedAdmin()
	seedRestaurants()
	seedCategories()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seed Complete!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/admin/login with the admin credentials")
	fmt.Println("3. Use the returned token for authenticated requests")
	fmt.Println()
}

// seedAdmin creates the default dashboard admin if it doesn't exist.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD, with dev defaults.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@respos.dev"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("✓ Admin '%s' already exists, skipping", email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	passwordHash, err := services.GetAdminAuthService().HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.Admin{
		Email:        email,
		Name:         "Platform Admin",
		PasswordHash: passwordHash,
		Status:       "active",
	}
	if err := config.Gorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("✓ Admin created: %s", email)
}

// seedRestaurants inserts the demo collection with staggered join dates so the
// newest-first ordering is deterministic.
func seedRestaurants() {
	var count int64
	config.Gorm.Model(&models.Restaurant{}).Count(&count)
	if count > 0 {
		log.Printf("✓ Restaurants already seeded (%d rows), skipping", count)
		return
	}

	type seedRow struct {
		name, cuisine, owner, phone, email, address, city, state, status, commission, revenue string
	}
	rows := []seedRow{
		{"Tokyo Sushi Bar", "Japanese", "Kenji Watanabe", "+1 415-555-0101", "kenji@tokyosushi.com", "88 Geary St", "San Francisco", "CA", "active", "5.00", "45200.00"},
		{"Mario's Italian Bistro", "Italian", "Mario Rossi", "+1 212-555-0102", "mario@mariosbistro.com", "412 Mulberry St", "New York", "NY", "active", "4.50", "38750.50"},
		{"Casa Mexico", "Mexican", "Lucia Hernandez", "+1 512-555-0103", "lucia@casamexico.com", "1200 S Congress Ave", "Austin", "TX", "active", "5.00", "29980.25"},
		{"Le Petit Café", "French", "Amélie Laurent", "+1 305-555-0104", "amelie@lepetitcafe.com", "730 Ocean Dr", "Miami", "FL", "inactive", "6.00", "18400.00"},
		{"Golden Dragon", "Chinese", "Wei Chen", "+1 206-555-0105", "wei@goldendragon.com", "510 Maynard Ave S", "Seattle", "WA", "active", "5.00", "33120.75"},
		{"Spice Route", "Indian", "Priya Sharma", "+1 408-555-0106", "priya@spiceroute.com", "2500 El Camino Real", "San Jose", "CA", "active", "4.00", "27600.00"},
		{"The Smokehouse", "BBQ", "Hank Dawson", "+1 615-555-0107", "hank@smokehouse.com", "99 Broadway", "Nashville", "TN", "blocked", "5.50", "15230.00"},
		{"Athens Taverna", "Greek", "Nikos Papadopoulos", "+1 312-555-0108", "nikos@athenstaverna.com", "340 S Halsted St", "Chicago", "IL", "active", "5.00", "21890.40"},
		{"Seoul Kitchen", "Korean", "Minji Park", "+1 213-555-0109", "minji@seoulkitchen.com", "3300 W 6th St", "Los Angeles", "CA", "active", "5.00", "31475.00"},
		{"Bangkok Street", "Thai", "Somchai Prasert", "+1 503-555-0110", "somchai@bangkokstreet.com", "815 SW Alder St", "Portland", "OR", "inactive", "4.50", "12940.00"},
		{"Burger Junction", "American", "Tom Bradley", "+1 303-555-0111", "tom@burgerjunction.com", "1450 Larimer St", "Denver", "CO", "active", "5.00", "40210.90"},
		{"Saigon Pho House", "Vietnamese", "Linh Nguyen", "+1 713-555-0112", "linh@saigonpho.com", "11210 Bellaire Blvd", "Houston", "TX", "active", "4.00", "19750.00"},
		{"Mama's Pizzeria", "Italian", "Gina Romano", "+1 617-555-0113", "gina@mamaspizzeria.com", "255 Hanover St", "Boston", "MA", "active", "5.00", "36500.00"},
		{"Falafel King", "Middle Eastern", "Omar Haddad", "+1 734-555-0114", "omar@falafelking.com", "605 S Main St", "Ann Arbor", "MI", "active", "4.50", "14820.60"},
		{"Ocean Catch", "Seafood", "Sarah Mitchell", "+1 619-555-0115", "sarah@oceancatch.com", "789 Harbor Dr", "San Diego", "CA", "active", "6.00", "48930.00"},
	}

	base := time.Now().AddDate(0, 0, -len(rows))
	for i, r := range rows {
		restaurant := models.Restaurant{
			Name:           r.name,
			Cuisine:        r.cuisine,
			OwnerName:      r.owner,
			Phone:          r.phone,
			Email:          r.email,
			Address:        r.address,
			City:           r.city,
			State:          r.state,
			Status:         r.status,
			CommissionRate: r.commission,
			Revenue:        r.revenue,
			JoinedDate:     base.AddDate(0, 0, i),
		}
		if err := config.Gorm.Create(&restaurant).Error; err != nil {
			log.Fatalf("Failed to seed restaurant %q: %v", r.name, err)
		}
	}
	log.Printf("✓ Seeded %d restaurants", len(rows))
}

func seedCategories() {
	var count int64
	config.Gorm.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Printf("✓ Categories already seeded (%d rows), skipping", count)
		return
	}

	type seedRow struct {
		name, description string
		active            bool
	}
	rows := []seedRow{
		{"Italian", "Pasta, pizza and classic trattoria fare", true},
		{"Japanese", "Sushi, ramen and izakaya dining", true},
		{"Mexican", "Tacos, burritos and regional Mexican cooking", true},
		{"Indian", "Curries, tandoor and South Asian cuisine", true},
		{"Chinese", "Cantonese, Sichuan and dim sum", true},
		{"American", "Burgers, grills and comfort food", true},
		{"French", "Bistro and fine dining", false},
		{"Seafood", "Fresh catch and raw bars", true},
	}

	for _, r := range rows {
		category := models.Category{
			Name:        r.name,
			Description: r.description,
			IsActive:    r.active,
		}
		if err := config.Gorm.Create(&category).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", r.name, err)
		}
	}
	log.Printf("✓ Seeded %d categories", len(rows))
}
