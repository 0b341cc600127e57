package helper

import "time"

// DateOnly memotong jam/menit/detik — semua perbandingan tanggal event
// dilakukan pada granularitas hari (UTC).
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
