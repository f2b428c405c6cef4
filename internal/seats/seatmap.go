package seats

import (
	"sort"

	"ticketops/internal/shared/natsort"
)

// SeatView is one seat as it appears in a seating chart: topology plus
// the occupancy derived for whichever context the caller fetched it in.
// A venue-level fetch carries no event context and every seat reports
// AVAILABLE or BLOCKED only.
type SeatView struct {
	ID          string         `json:"id"`
	SectionName string         `json:"section_name"`
	RowName     string         `json:"row_name"`
	SeatNumber  string         `json:"seat_number"`
	Status      SeatStatus     `json:"status"`
	Category    StatusCategory `json:"category"`
}

// RowGroup is an ordered run of seats sharing (section, row).
type RowGroup struct {
	Name  string     `json:"name"`
	Seats []SeatView `json:"seats"`
}

// SectionGroup is an ordered run of rows sharing a section name.
type SectionGroup struct {
	Name string     `json:"name"`
	Rows []RowGroup `json:"rows"`
}

// BuildSeatMap groups a flat seat list into sections and rows, each level
// in natural label order. The input seats pass through unmodified; every
// input seat appears exactly once in the output.
//
// An empty input yields a nil section list. That is the normal shape for
// a general-admission event with no seat chart, not an error.
func BuildSeatMap(seats []SeatView) []SectionGroup {
	if len(seats) == 0 {
		return nil
	}

	bySection := make(map[string]map[string][]SeatView)
	for _, seat := range seats {
		rows, ok := bySection[seat.SectionName]
		if !ok {
			rows = make(map[string][]SeatView)
			bySection[seat.SectionName] = rows
		}
		rows[seat.RowName] = append(rows[seat.RowName], seat)
	}

	sectionNames := make([]string, 0, len(bySection))
	for name := range bySection {
		sectionNames = append(sectionNames, name)
	}
	sort.SliceStable(sectionNames, func(i, j int) bool {
		return natsort.Less(sectionNames[i], sectionNames[j])
	})

	sections := make([]SectionGroup, 0, len(sectionNames))
	for _, sectionName := range sectionNames {
		rowsByName := bySection[sectionName]

		rowNames := make([]string, 0, len(rowsByName))
		for name := range rowsByName {
			rowNames = append(rowNames, name)
		}
		sort.SliceStable(rowNames, func(i, j int) bool {
			return natsort.Less(rowNames[i], rowNames[j])
		})

		rows := make([]RowGroup, 0, len(rowNames))
		for _, rowName := range rowNames {
			rowSeats := rowsByName[rowName]
			sort.SliceStable(rowSeats, func(i, j int) bool {
				return natsort.Less(rowSeats[i].SeatNumber, rowSeats[j].SeatNumber)
			})
			rows = append(rows, RowGroup{Name: rowName, Seats: rowSeats})
		}

		sections = append(sections, SectionGroup{Name: sectionName, Rows: rows})
	}

	return sections
}

// CountByCategory tallies seats per presentation bucket across a built map.
func CountByCategory(sections []SectionGroup) map[StatusCategory]int {
	counts := make(map[StatusCategory]int)
	for _, section := range sections {
		for _, row := range section.Rows {
			for _, seat := range row.Seats {
				counts[seat.Category]++
			}
		}
	}
	return counts
}
