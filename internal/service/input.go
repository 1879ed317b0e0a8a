package service

import (
	"strings"
	"time"

	"github.com/lshigami/studydash/internal/model"
)

type requiredField struct {
	name  string
	empty bool
}

func field(name string, empty bool) requiredField {
	return requiredField{name: name, empty: empty}
}

func requireFields(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if f.empty {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return invalid("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setDate(dst *model.Date, name string, v *string) error {
	if v == nil {
		return nil
	}
	d, err := model.ParseDate(*v)
	if err != nil {
		return invalid("%s: %s", name, err)
	}
	*dst = d
	return nil
}

func setTimeOfDay(dst *model.TimeOfDay, name string, v *string) error {
	if v == nil {
		return nil
	}
	t, err := model.ParseTimeOfDay(*v)
	if err != nil {
		return invalid("%s: %s", name, err)
	}
	*dst = t
	return nil
}

// parseTimestamp accepts RFC 3339 and the zone-less forms browsers send from
// datetime-local inputs, which are read in loc.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalid("activity_time: invalid timestamp %q", s)
}

func validStatus(status string, allowed ...string) bool {
	for _, a := range allowed {
		if status == a {
			return true
		}
	}
	return false
}
