package models

// AchievementMeta holds the static schema metadata for one achievement.
type AchievementMeta struct {
	Title       string
	Description string
	Hidden      bool
	Icon        string
	IconGray    string
}

// Row is one exported CSV row. String fields mirror the CSV cells exactly:
// Hidden is "true"/"false" and GlobalPercent is either a formatted percentage
// ("42.000000%") or empty when the title has no global stats for the key.
type Row struct {
	APIName       string
	Title         string
	Description   string
	Hidden        string
	Icon          string
	IconGray      string
	GlobalPercent string
}
