package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// IsPostgres reports whether db speaks PostgreSQL. Some guarantees (the
// booking exclusion constraint) only exist there.
func IsPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

// EnsureBookingConstraints installs the per-artist no-overlap exclusion
// constraint. Two active bookings for the same artist can never hold
// intersecting intervals, whichever instance inserts them. SQLite has no
// equivalent; there the transactional re-check in the booking service is the
// only authority, which is acceptable for single-process development.
func EnsureBookingConstraints(db *gorm.DB) error {
	if !IsPostgres(db) {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint WHERE conname = 'excl_booking_overlap'
    ) THEN
        ALTER TABLE bookings
            ADD CONSTRAINT excl_booking_overlap
            EXCLUDE USING gist (
                artist_id WITH =,
                tstzrange(start_time, end_time, '[)') WITH &&
            )
            WHERE (status NOT IN ('cancelled', 'declined'));
    END IF;
END
$$;
`).Error
}
