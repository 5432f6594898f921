package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"glambook/internal/database"
	"glambook/internal/domain"
)

func main() {
	db, err := database.Connect("glambook.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Artist{},
		&domain.Service{},
		&domain.AvailabilityWindow{},
		&domain.TimeOffRange{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM time_off_ranges")
	db.Exec("DELETE FROM availability_windows")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM artists")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	clients := []domain.User{}
	clientEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	for i, email := range clientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleClient,
			Name:         fmt.Sprintf("Клиент %d", i+1),
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
		}
		db.Create(&client)
		clients = append(clients, client)
	}

	// ================== ARTISTS ==================
	log.Println("Creating artists...")

	artistSpecs := []struct {
		email, name, city string
	}{
		{"aruzhan@glambook.kz", "Аружан Б.", "Алматы"},
		{"madina@glambook.kz", "Мадина К.", "Астана"},
	}

	artists := []domain.Artist{}
	for _, spec := range artistSpecs {
		hash, _ := bcrypt.GenerateFromPassword([]byte("artist123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        spec.email,
			PasswordHash: string(hash),
			Role:         domain.RoleArtist,
			Name:         spec.name,
		}
		db.Create(&user)

		artist := domain.Artist{
			UserID:      user.ID,
			DisplayName: spec.name,
			City:        spec.city,
			Rating:      4.8,
			IsActive:    true,
		}
		db.Create(&artist)
		artists = append(artists, artist)
		log.Println("Artist created:", spec.email, "/ artist123")
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")

	serviceSpecs := []struct {
		name     string
		duration int
		price    float64
	}{
		{"Маникюр", 60, 8000},
		{"Окрашивание", 120, 25000},
		{"Стрижка", 45, 6000},
	}

	for _, a := range artists {
		for _, spec := range serviceSpecs {
			db.Create(&domain.Service{
				ArtistID:        a.ID,
				Name:            spec.name,
				DurationMinutes: spec.duration,
				Price:           spec.price,
				IsActive:        true,
			})
		}
	}

	// ================== AVAILABILITY ==================
	log.Println("Creating availability windows...")

	workdays := []domain.Weekday{
		domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday,
	}
	for _, a := range artists {
		for _, wd := range workdays {
			db.Create(&domain.AvailabilityWindow{
				ArtistID:           a.ID,
				Weekday:            wd,
				StartTime:          "09:00",
				EndTime:            "18:00",
				GranularityMinutes: 30,
				BufferMinutes:      15,
				Enabled:            true,
			})
		}
		db.Create(&domain.AvailabilityWindow{
			ArtistID:           a.ID,
			Weekday:            domain.Saturday,
			StartTime:          "10:00",
			EndTime:            "15:00",
			GranularityMinutes: 30,
			BufferMinutes:      15,
			Enabled:            true,
		})
	}

	// Time off for the first artist next week
	nextWeek := time.Now().AddDate(0, 0, 7)
	db.Create(&domain.TimeOffRange{
		ArtistID:  artists[0].ID,
		StartDate: time.Date(nextWeek.Year(), nextWeek.Month(), nextWeek.Day(), 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(nextWeek.Year(), nextWeek.Month(), nextWeek.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 2),
		Reason:    "Отпуск",
	})

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 11, 0, 0, 0, time.Local)
	db.Create(&domain.Booking{
		ArtistID:   artists[0].ID,
		CustomerID: clients[0].ID,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     domain.BookingConfirmed,
	})

	log.Println("Seed complete.")
}
