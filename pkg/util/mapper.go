package util

import "time"

// updatedAtKey is normalized to a time.Time (or nil) by RemapKeys.
const updatedAtKey = "updated_at"

// RemapKeys returns a copy of row where every key found in fields is renamed
// to its mapped name. Keys missing from fields are kept as they are.
//
// Queries that join tables with clashing column names alias them (cc_id,
// u_first_name...); this turns such a row back into the field names of the
// entity it describes. A resulting updated_at is always a time.Time or nil.
func RemapKeys(row map[string]interface{}, fields map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(row))
	for key, value := range row {
		if newKey, ok := fields[key]; ok && newKey != "" {
			out[newKey] = value
			continue
		}
		out[key] = value
	}

	if v, ok := out[updatedAtKey]; ok {
		out[updatedAtKey] = normalizeTimeValue(v)
	}
	return out
}

// normalizeTimeValue keeps dates, turns falsy values into nil and parses the rest.
func normalizeTimeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return t
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		return *t
	case string:
		if t == "" {
			return nil
		}
		parsed, err := ParseTime(t)
		if err != nil {
			return nil
		}
		return parsed
	case []byte:
		return normalizeTimeValue(string(t))
	case int64:
		if t == 0 {
			return nil
		}
		return MillisecondsToTime(t)
	case int:
		return normalizeTimeValue(int64(t))
	case float64:
		return normalizeTimeValue(int64(t))
	case bool:
		// true is not a date either
		return nil
	default:
		return nil
	}
}
