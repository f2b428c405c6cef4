package seats

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatView(id, section, row, number string, status SeatStatus) SeatView {
	return SeatView{
		ID:          id,
		SectionName: section,
		RowName:     row,
		SeatNumber:  number,
		Status:      status,
		Category:    status.Category(),
	}
}

func TestBuildSeatMapGroupsAndOrders(t *testing.T) {
	seats := []SeatView{
		seatView("s1", "Balcony", "B", "2", StatusAvailable),
		seatView("s2", "Balcony", "B", "10", StatusSold),
		seatView("s3", "Balcony", "A", "1", StatusAvailable),
		seatView("s4", "Arena", "Row 10", "1", StatusReserved),
		seatView("s5", "Arena", "Row 2", "1", StatusAvailable),
	}

	sections := BuildSeatMap(seats)
	require.Len(t, sections, 2)

	// Sections in natural order.
	assert.Equal(t, "Arena", sections[0].Name)
	assert.Equal(t, "Balcony", sections[1].Name)

	// Rows in natural order: "Row 2" before "Row 10".
	require.Len(t, sections[0].Rows, 2)
	assert.Equal(t, "Row 2", sections[0].Rows[0].Name)
	assert.Equal(t, "Row 10", sections[0].Rows[1].Name)

	// Seats within a row in natural order: "2" before "10".
	balconyB := sections[1].Rows[1]
	require.Equal(t, "B", balconyB.Name)
	require.Len(t, balconyB.Seats, 2)
	assert.Equal(t, "2", balconyB.Seats[0].SeatNumber)
	assert.Equal(t, "10", balconyB.Seats[1].SeatNumber)
}

func TestBuildSeatMapEmptyInput(t *testing.T) {
	// No seat chart means general admission, not an error.
	assert.Nil(t, BuildSeatMap(nil))
	assert.Nil(t, BuildSeatMap([]SeatView{}))
}

func TestBuildSeatMapLossless(t *testing.T) {
	var input []SeatView
	sections := []string{"Floor", "Mezzanine", "Balcony"}
	rows := []string{"A", "B", "C"}
	for _, section := range sections {
		for _, row := range rows {
			for n := 1; n <= 12; n++ {
				num := strconv.Itoa(n)
				input = append(input, seatView(section+row+num, section, row, num, StatusAvailable))
			}
		}
	}

	built := BuildSeatMap(input)

	total := 0
	for _, s := range built {
		for _, r := range s.Rows {
			total += len(r.Seats)
		}
	}
	assert.Equal(t, len(input), total, "every input seat appears exactly once")
}

func TestBuildSeatMapDeterministic(t *testing.T) {
	base := []SeatView{
		seatView("s1", "A", "1", "1", StatusAvailable),
		seatView("s2", "A", "1", "2", StatusSold),
		seatView("s3", "A", "2", "1", StatusReserved),
		seatView("s4", "B", "1", "1", StatusBlocked),
		seatView("s5", "B", "1", "10", StatusAvailable),
		seatView("s6", "B", "1", "9", StatusAvailable),
	}

	want := BuildSeatMap(base)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]SeatView, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, BuildSeatMap(shuffled), "output independent of input order")
	}
}

func TestStatusCategoryMapping(t *testing.T) {
	assert.Equal(t, CategoryAvailable, StatusAvailable.Category())
	assert.Equal(t, CategoryReserved, StatusReserved.Category())
	assert.Equal(t, CategorySold, StatusSold.Category())
	assert.Equal(t, CategoryBlocked, StatusBlocked.Category())

	// Statuses this build does not know yet still render, as unknown.
	assert.Equal(t, CategoryUnknown, SeatStatus("HELD").Category())
	assert.Equal(t, CategoryUnknown, SeatStatus("").Category())
}

func TestCountByCategory(t *testing.T) {
	built := BuildSeatMap([]SeatView{
		seatView("s1", "A", "1", "1", StatusAvailable),
		seatView("s2", "A", "1", "2", StatusAvailable),
		seatView("s3", "A", "1", "3", StatusSold),
		seatView("s4", "A", "2", "1", SeatStatus("HELD")),
	})

	counts := CountByCategory(built)
	assert.Equal(t, 2, counts[CategoryAvailable])
	assert.Equal(t, 1, counts[CategorySold])
	assert.Equal(t, 1, counts[CategoryUnknown])
	assert.Zero(t, counts[CategoryBlocked])
}
