package databases

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"robostaff_backend/internals/configs"
	adminModel "robostaff_backend/internals/features/admins/users/model"
	prefModel "robostaff_backend/internals/features/admins/preferences/model"
	eventModel "robostaff_backend/internals/features/events/events/model"
	registrationModel "robostaff_backend/internals/features/events/registrations/model"
	notificationModel "robostaff_backend/internals/features/notifications/model"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=robostaff&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua tabel domain.
// Urutan penting: tabel induk dulu supaya FK anak valid.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&adminModel.AdminUserModel{},
		&prefModel.SitePreferenceModel{},
		&staffModel.StaffModel{},
		&eventModel.EventModel{},
		&eventModel.EventDayModel{},
		&eventModel.EventRoleModel{},
		&registrationModel.StaffEventRegistrationModel{},
		&registrationModel.StaffRolePreferenceModel{},
		&registrationModel.StaffAvailabilityModel{},
		&notificationModel.EmailNotificationModel{},
	)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
