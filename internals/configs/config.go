package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret      string
	AccessTokenTTL time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AccessTokenTTL = time.Duration(GetEnvInt("ACCESS_TOKEN_TTL_HOURS", 24)) * time.Hour

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt: baca env integer, fallback ke def kalau kosong/invalid
func GetEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[WARN] %s=%q bukan angka, pakai default %d", key, raw, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}

// =======================
// ATTENDANCE WINDOWS
// =======================

// AttendanceWindows: jam buka-tutup absensi dalam zona sekolah (UTC+offset)
type AttendanceWindows struct {
	UTCOffsetHours int
	CheckInStart   int
	CheckInEnd     int
	CheckOutStart  int
	CheckOutEnd    int
}

func DefaultAttendanceWindows() AttendanceWindows {
	return AttendanceWindows{
		UTCOffsetHours: 1,
		CheckInStart:   7,
		CheckInEnd:     9,
		CheckOutStart:  13,
		CheckOutEnd:    15,
	}
}

// AttendanceConfig membaca window dari ENV; nilai yang tidak masuk akal
// dikembalikan ke default.
func AttendanceConfig() AttendanceWindows {
	def := DefaultAttendanceWindows()
	w := AttendanceWindows{
		UTCOffsetHours: GetEnvInt("SCHOOL_UTC_OFFSET_HOURS", def.UTCOffsetHours),
		CheckInStart:   GetEnvInt("CHECKIN_START_HOUR", def.CheckInStart),
		CheckInEnd:     GetEnvInt("CHECKIN_END_HOUR", def.CheckInEnd),
		CheckOutStart:  GetEnvInt("CHECKOUT_START_HOUR", def.CheckOutStart),
		CheckOutEnd:    GetEnvInt("CHECKOUT_END_HOUR", def.CheckOutEnd),
	}

	if w.UTCOffsetHours < -12 || w.UTCOffsetHours > 14 {
		log.Printf("[WARN] SCHOOL_UTC_OFFSET_HOURS=%d tidak valid, pakai %d", w.UTCOffsetHours, def.UTCOffsetHours)
		w.UTCOffsetHours = def.UTCOffsetHours
	}
	if !validHourRange(w.CheckInStart, w.CheckInEnd) {
		log.Printf("[WARN] window check-in [%d,%d) tidak valid, pakai default", w.CheckInStart, w.CheckInEnd)
		w.CheckInStart, w.CheckInEnd = def.CheckInStart, def.CheckInEnd
	}
	if !validHourRange(w.CheckOutStart, w.CheckOutEnd) {
		log.Printf("[WARN] window check-out [%d,%d) tidak valid, pakai default", w.CheckOutStart, w.CheckOutEnd)
		w.CheckOutStart, w.CheckOutEnd = def.CheckOutStart, def.CheckOutEnd
	}
	return w
}

func validHourRange(start, end int) bool {
	return start >= 0 && end <= 24 && start < end
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if GetEnvBool("DB_LOG_QUERIES", false) {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && err != gormLogger.ErrRecordNotFound:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
