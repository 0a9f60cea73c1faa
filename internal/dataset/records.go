package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spboyer/agentplot/internal/models"
)

// Column names used by the simulation logs.
const (
	ColStep        = "step_number"
	ColBird1       = "bird1_id"
	ColBird2       = "bird2_id"
	ColDistance    = "distance"
	ColHeadingDiff = "heading_difference"
	ColFoodAmount  = "food_amount"
)

// DurationColumns names the two positional columns of a headerless
// foraging-duration log.
var DurationColumns = []string{"Food Patch", "Steps"}

// LoadPairs reads a header-bearing flocking log. The step and bird id
// columns are always required; metrics lists the measurement columns the
// caller needs (ColDistance, ColHeadingDiff). Measurement columns that are
// present but not required are parsed too; absent ones are left as NaN.
func LoadPairs(path string, metrics ...string) ([]models.PairRecord, error) {
	required := append([]string{ColStep, ColBird1, ColBird2}, metrics...)

	var (
		records []models.PairRecord
		idx     columnIndex
	)
	onHeader := func(header []string) (err error) {
		idx, err = indexColumns(header, required)
		return err
	}
	err := scanCSV(path, nil, onHeader, func(_ int, _, record []string) error {
		var (
			r   models.PairRecord
			err error
		)
		if r.Step, err = idx.int(record, ColStep); err != nil {
			return err
		}
		if r.Bird1, err = idx.int(record, ColBird1); err != nil {
			return err
		}
		if r.Bird2, err = idx.int(record, ColBird2); err != nil {
			return err
		}
		if r.Distance, err = idx.optionalFloat(record, ColDistance); err != nil {
			return err
		}
		if r.HeadingDiff, err = idx.optionalFloat(record, ColHeadingDiff); err != nil {
			return err
		}
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LoadFood reads a header-bearing food-total log with at least the
// step_number and food_amount columns. When limit is positive only the
// first limit data rows are kept; later rows are still parsed so that a
// malformed row anywhere in the file is reported.
func LoadFood(path string, limit int) ([]models.FoodSample, error) {
	var (
		samples []models.FoodSample
		idx     columnIndex
	)
	onHeader := func(header []string) (err error) {
		idx, err = indexColumns(header, []string{ColStep, ColFoodAmount})
		return err
	}
	err := scanCSV(path, nil, onHeader, func(_ int, _, record []string) error {
		step, err := idx.int(record, ColStep)
		if err != nil {
			return err
		}
		amount, err := idx.float(record, ColFoodAmount)
		if err != nil {
			return err
		}
		if limit > 0 && len(samples) >= limit {
			return nil
		}
		samples = append(samples, models.FoodSample{Step: step, Amount: amount})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// LoadDurations reads a headerless two-column foraging-duration log whose
// columns are (food patch, steps).
func LoadDurations(path string) ([]models.TripDuration, error) {
	var trips []models.TripDuration
	err := scanCSV(path, DurationColumns, nil, func(_ int, _, record []string) error {
		steps, err := parseInt(record[1])
		if err != nil {
			return fmt.Errorf("column %q: %w", DurationColumns[1], err)
		}
		trips = append(trips, models.TripDuration{
			Patch: strings.TrimSpace(record[0]),
			Steps: steps,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// columnIndex maps a column name to its position in the header.
type columnIndex map[string]int

func indexColumns(header, required []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		idx[h] = i
	}
	var missing []string
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s) %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func (c columnIndex) int(record []string, name string) (int, error) {
	v, err := parseInt(record[c[name]])
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

func (c columnIndex) float(record []string, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(record[c[name]]), 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

func (c columnIndex) optionalFloat(record []string, name string) (float64, error) {
	if _, ok := c[name]; !ok {
		return math.NaN(), nil
	}
	return c.float(record, name)
}

// parseInt accepts integers written either plainly ("20") or as integral
// floats ("20.0"), which some simulation exporters emit.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(f), nil
}
