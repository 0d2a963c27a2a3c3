package achievements

import (
	"strconv"

	"github.com/bnskaggs/PSN-and-Steam-Achievement-Data-Scraper/pkg/models"
)

// ParsePercentages extracts the api_name → percent mapping from a
// GetGlobalAchievementPercentagesForApp payload. Entries without a name, or
// whose percent is not numeric, are skipped; the run continues with the rest.
// An absent or misshapen nesting yields an empty map, not an error.
func ParsePercentages(payload map[string]interface{}) *PercentageMap {
	result := NewPercentageMap()
	for _, item := range nestedList(payload, "achievementpercentages", "achievements") {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		name := stringField(entry, "name")
		if name == "" {
			continue
		}
		percent, ok := floatField(entry, "percent")
		if !ok {
			continue
		}
		result.Set(name, percent)
	}
	return result
}

// ParseSchema extracts achievement metadata from a GetSchemaForGame payload.
// Entries without a name are skipped; missing display fields default to the
// empty string and a missing hidden flag defaults to false.
func ParseSchema(payload map[string]interface{}) *SchemaMap {
	result := NewSchemaMap()
	for _, item := range nestedList(payload, "game", "availableGameStats", "achievements") {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		name := stringField(entry, "name")
		if name == "" {
			continue
		}
		result.Set(name, models.AchievementMeta{
			Title:       stringField(entry, "displayName"),
			Description: stringField(entry, "description"),
			Hidden:      coerceBool(entry["hidden"]),
			Icon:        stringField(entry, "icon"),
			IconGray:    stringField(entry, "icongray"),
		})
	}
	return result
}

// nestedList walks nested JSON objects and returns the list at the end of the
// key path, or nil when any level is missing or not an object.
func nestedList(payload map[string]interface{}, path ...string) []interface{} {
	current := payload
	for i, key := range path {
		value, ok := current[key]
		if !ok {
			return nil
		}
		if i == len(path)-1 {
			list, _ := value.([]interface{})
			return list
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// stringField returns the string at key, or "" when missing or not a string.
func stringField(entry map[string]interface{}, key string) string {
	s, _ := entry[key].(string)
	return s
}

// floatField parses the value at key as a float64, accepting JSON numbers and
// numeric strings.
func floatField(entry map[string]interface{}, key string) (float64, bool) {
	switch v := entry[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceBool maps the schema's loosely-typed hidden field to a bool. The
// truth table is explicit: nil, false, numeric zero and the empty string are
// false; everything else (including the string "0") is true.
func coerceBool(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}
