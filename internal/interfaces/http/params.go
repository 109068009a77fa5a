package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// queryInt64Ptr parsea un query param numérico opcional. Devuelve nil si está
// ausente o vacío, y ok=false si está presente pero malformado.
func queryInt64Ptr(c *fiber.Ctx, key string) (*int64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return nil, false
	}
	return &n, true
}

// queryIDList parsea un query param CSV de IDs ("1,2,3"). Devuelve nil si está
// ausente, y ok=false ante cualquier entrada malformada.
func queryIDList(c *fiber.Ctx, key string) ([]int64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n <= 0 {
			return nil, false
		}
		ids = append(ids, n)
	}
	return ids, true
}

// queryFecha parsea un query param de fecha YYYY-MM-DD opcional.
func queryFecha(c *fiber.Ctx, key string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return nil, false
	}
	return &d, true
}

// queryIntDefault parsea un entero con valor por defecto y cota superior.
func queryIntDefault(c *fiber.Ctx, key string, def, max int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
