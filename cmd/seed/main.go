package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Domenick1991/travelgo/config"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var destinations = []string{
	"Bangkok, Thailand",
	"Bali, Indonesia",
	"Dubai, UAE",
	"London, UK",
	"Malibu, USA",
	"New York, USA",
	"Paris, France",
	"Rome, Italy",
	"Seoul, South Korea",
	"Sydney, Australia",
	"Tokyo, Japan",
	"Venice, Italy",
}

type sampleBooking struct {
	travelerName string
	passportNum  string
	destination  string
	flightDate   string
	hotelName    string
	status       string
	price        float64
}

var bookings = []sampleBooking{
	{"Ronald Lee Kai Ren", "A10021626", "Tokyo, Japan", "2025-12-01", "Shinjuku Granbell Hotel", "Confirmed", 4500},
	{"Lee Ho Yi", "B10293847", "Paris, France", "2025-11-15", "Hotel Ritz Paris", "Pending", 8200},
	{"ZengYu", "C10025775", "New York, USA", "2026-01-10", "The Plaza", "Confirmed", 6000},
	{"Dai Ziqiu", "D10023717", "Seoul, South Korea", "2025-10-20", "Lotte Hotel Seoul", "Cancelled", 3200},
	{"Sarah Connor", "E99887766", "London, UK", "2025-09-05", "The Savoy", "Confirmed", 5400},
	{"John Wick", "F55664433", "Rome, Italy", "2025-12-25", "Continental Hotel", "Pending", 7000},
	{"Tony Stark", "G11223344", "Malibu, USA", "2025-08-15", "N/A", "Confirmed", 1200},
	{"Peter Parker", "H99882211", "Venice, Italy", "2025-07-01", "Hotel Danieli", "Confirmed", 2800},
}

// Seeds the reference destinations and a demo user with sample bookings,
// writing straight to the store.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `TRUNCATE bookings, destinations`); err != nil {
		log.Fatalf("clear existing data: %v", err)
	}
	log.Println("existing data cleared")

	for _, name := range destinations {
		if _, err := pool.Exec(ctx, `INSERT INTO destinations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			log.Fatalf("insert destination %q: %v", name, err)
		}
	}
	log.Printf("%d destinations inserted", len(destinations))

	demoUserID, err := ensureDemoUser(ctx, pool)
	if err != nil {
		log.Fatalf("ensure demo user: %v", err)
	}

	for _, b := range bookings {
		flightDate, err := time.Parse("2006-01-02", b.flightDate)
		if err != nil {
			log.Fatalf("parse flight date %q: %v", b.flightDate, err)
		}
		_, err = pool.Exec(ctx, `INSERT INTO bookings (id, user_id, traveler_name, passport_num, destination, flight_date, hotel_name, status, price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.NewString(), demoUserID, b.travelerName, b.passportNum, b.destination, flightDate, b.hotelName, b.status, b.price)
		if err != nil {
			log.Fatalf("insert booking for %s: %v", b.travelerName, err)
		}
	}
	log.Printf("%d bookings inserted", len(bookings))

	log.Println("seeding complete")
}

func ensureDemoUser(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	var id string
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE username=$1`, "demo").Scan(&id)
	if err == nil {
		return id, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id = uuid.NewString()
	_, err = pool.Exec(ctx, `INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		id, "demo", "demo@travelgo.local", string(hash))
	return id, err
}
