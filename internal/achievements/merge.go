package achievements

import (
	"fmt"
	"sort"

	"github.com/bnskaggs/PSN-and-Steam-Achievement-Data-Scraper/pkg/models"
)

// BuildRows joins schema metadata with global percentages into one row per
// achievement and orders them for export. The key set is the union of both
// maps: schema names first, then percentage-only names, each in payload
// order, so rows that tie under the sort keep a reproducible position.
func BuildRows(schema *SchemaMap, percentages *PercentageMap) []models.Row {
	names := make([]string, 0, schema.Len()+percentages.Len())
	names = append(names, schema.Names()...)
	for _, name := range percentages.Names() {
		if _, ok := schema.Get(name); !ok {
			names = append(names, name)
		}
	}

	rows := make([]models.Row, 0, len(names))
	for _, name := range names {
		row := models.Row{APIName: name, Hidden: "false"}
		if meta, ok := schema.Get(name); ok {
			row.Title = meta.Title
			row.Description = meta.Description
			row.Icon = meta.Icon
			row.IconGray = meta.IconGray
			if meta.Hidden {
				row.Hidden = "true"
			}
		}
		if percent, ok := percentages.Get(name); ok {
			row.GlobalPercent = fmt.Sprintf("%.6f%%", percent)
		}
		rows = append(rows, row)
	}

	sortRows(rows, percentages)
	return rows
}

// sortKey is the 3-part ordering for export: rows with a percentage before
// rows without, visible before hidden, then higher percentages first.
type sortKey struct {
	missingPercent int
	hidden         int
	percent        float64
}

func rowSortKey(row models.Row, percentages *PercentageMap) sortKey {
	key := sortKey{}
	if row.GlobalPercent == "" {
		key.missingPercent = 1
	} else if percent, ok := percentages.Get(row.APIName); ok {
		key.percent = percent
	}
	if row.Hidden == "true" {
		key.hidden = 1
	}
	return key
}

func sortRows(rows []models.Row, percentages *PercentageMap) {
	sort.SliceStable(rows, func(i, j int) bool {
		a := rowSortKey(rows[i], percentages)
		b := rowSortKey(rows[j], percentages)
		if a.missingPercent != b.missingPercent {
			return a.missingPercent < b.missingPercent
		}
		if a.hidden != b.hidden {
			return a.hidden < b.hidden
		}
		return a.percent > b.percent
	})
}
