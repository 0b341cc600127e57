package helper

import (
	"crypto/rand"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Nama cookie yang membawa token koneksi staff.
const StaffTokenCookie = "staff_token"

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAuthToken membuat token acak (alfanumerik) sepanjang n karakter.
func GenerateAuthToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand gagal hanya kalau OS entropy source rusak
		panic("helper: crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf)
}

// GetStaffToken mengembalikan token staff dari:
// 1) cookie "staff_token"
// 2) Authorization header "Bearer <token>"
func GetStaffToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(StaffTokenCookie)); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// SetStaffTokenCookie memasang cookie token dengan umur maxAgeSeconds.
func SetStaffTokenCookie(c *fiber.Ctx, token string, maxAgeSeconds int) {
	c.Cookie(&fiber.Cookie{
		Name:     StaffTokenCookie,
		Value:    token,
		MaxAge:   maxAgeSeconds,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// ClearStaffTokenCookie menghapus cookie token (logout / anonimisasi).
func ClearStaffTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     StaffTokenCookie,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
