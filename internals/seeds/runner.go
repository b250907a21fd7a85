package seeds

import (
	"log"

	"gorm.io/gorm"

	users "teacher_attendance_backend/internals/seeds/users/auth"
)

const teacherSeedFile = "internals/seeds/users/auth/data_users.json"

// RunAllSeeds: dipanggil dari main kalau RUN_SEEDS=true
func RunAllSeeds(db *gorm.DB) {
	//* User
	n, err := users.SeedTeachersFromJSON(db, teacherSeedFile)
	if err != nil {
		log.Printf("❌ Seed user gagal: %v", err)
		return
	}
	log.Printf("🌱 Seed user selesai: %d baru", n)
}
