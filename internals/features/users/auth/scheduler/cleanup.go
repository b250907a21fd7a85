package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/configs"
	authRepo "teacher_attendance_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler: hapus token_blacklist yang exp-nya lewat.
// Jadwal dari TOKEN_BLACKLIST_CLEANUP_CRON (default @daily).
// Caller wajib Stop() saat shutdown.
func StartBlacklistCleanupScheduler(db *gorm.DB) (*cron.Cron, error) {
	schedule := configs.GetEnv("TOKEN_BLACKLIST_CLEANUP_CRON", "@daily")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, func() { RunBlacklistCleanup(db) }); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[CLEANUP] scheduler token_blacklist aktif (%s)", schedule)
	return c, nil
}

// RunBlacklistCleanup: satu putaran pembersihan (dipanggil cron & test)
func RunBlacklistCleanup(db *gorm.DB) int64 {
	n, err := authRepo.CleanupExpiredBlacklist(db, time.Now())
	if err != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
	} else {
		log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
	}
	return n
}
