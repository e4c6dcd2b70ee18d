package settings

import "strconv"

// extracts the integer-valued settings from a row set. Rows whose value is
// not a pure digit string are skipped silently — system_settings mixes
// numeric quotas with free-text rows.
func IntValues(rows []Setting) map[string]int {
	out := make(map[string]int, len(rows))

	for _, row := range rows {
		if !isDigits(row.Value) {
			continue
		}

		n, err := strconv.Atoi(row.Value)
		if err != nil {
			continue
		}

		out[row.Key] = n
	}

	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
