package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi bearer token dan meng-hydrate Locals yang
// dipakai helper tenant (school_admin_ids, school_teacher_ids, ...).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// Simpan raw claims (opsional)
		c.Locals("jwt_claims", claims)

		// === HYDRATE LOCALS YANG DIHARAPKAN HELPER TENANT ===

		// Daftar sekolah per peran; helper tenant membaca elemen pertama
		for _, key := range []string{"school_admin_ids", "school_teacher_ids", "school_ids"} {
			if ids := readStringSlice(claims[key]); len(ids) > 0 {
				c.Locals(key, ids)
			}
		}

		// roles_global (koordinator / owner platform)
		if v, ok := claims["roles_global"]; ok {
			c.Locals("roles_global", readStringSlice(v))
		}

		// user_id: ambil id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals("user_id", strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals("user_id", strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals("user_id", strClaim(claims, "user_id"))
		}

		return c.Next()
	}
}

// RequireSchoolAdmin menolak request tanpa school_admin_ids di token.
func RequireSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := c.Locals("school_admin_ids")
		ids, _ := v.([]string)
		if len(ids) == 0 {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("grading"))
		}
		if _, err := uuid.Parse(strings.TrimSpace(ids[0])); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "school_admin_ids tidak valid di token")
		}
		return c.Next()
	}
}

// RequireTeacher menolak request tanpa peran guru di token.
func RequireTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := c.Locals("school_teacher_ids")
		ids, _ := v.([]string)
		if len(ids) == 0 {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher("grading"))
		}
		return c.Next()
	}
}

// util kecil untuk ambil string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// util: ubah nilai interface{} → []string (robust untuk []string atau []any)
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				s = strings.TrimSpace(s)
				if s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
