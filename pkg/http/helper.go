package http

import (
	"net/http"
	"strconv"
	"suntravels/pkg/config"
	apperrors "suntravels/pkg/errors"
	"time"
)

// DateLayout is the wire format for calendar dates. Stay and contract
// boundaries are whole days; no clock component crosses the API.
const DateLayout = "2006-01-02"

func ExtractLimitOffset(r *http.Request, cfg *config.Config) (int, int64, error) {
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}

	var offset int64
	if s := query.Get("offset"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid offset parameter: " + s)
		}
		offset = v
	}

	return cfg.NormalizeLimit(limit), config.NormalizeOffset(offset), nil
}

// ExtractDateParam parses a required YYYY-MM-DD query parameter as a UTC date.
func ExtractDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, apperrors.InvalidInput("'" + name + "' query parameter is required")
	}
	d, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.InvalidInput("invalid " + name + " parameter, expected YYYY-MM-DD: " + raw)
	}
	return d, nil
}
