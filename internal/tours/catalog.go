// Package tours serves the static tour catalog: listing with filters and
// sorting, per-tour detail and the date-keyed time slot options a booking
// flow is opened from.
package tours

import (
	"sort"
	"strings"

	"tourvis/pkg/model"
)

type Catalog struct {
	tours   []model.Tour
	options map[int]map[string][]model.TourOption
}

// Filter narrows and orders a listing. Zero values mean "all" and the
// default popularity order.
type Filter struct {
	Search   string
	Category string
	Duration string
	SortBy   string
}

func NewCatalog() *Catalog {
	return &Catalog{
		tours: []model.Tour{
			{
				ID:          1,
				Title:       "Surfing at Sundak Beach",
				Description: "Experience stunning sunsets, white-washed buildings, and crystal-clear waters",
				Price:       250,
				Duration:    "3 days",
				Location:    "Yogyakarta",
				Rating:      4.8,
				Reviews:     124,
				Category:    "Adventure",
				Difficulty:  "Intermediate",
			},
			{
				ID:          2,
				Title:       "Rafting at Progo",
				Description: "Adventure through rapids and scenic landscapes",
				Price:       125,
				Duration:    "1 day",
				Location:    "Central Java",
				Rating:      4.6,
				Reviews:     89,
				Category:    "Adventure",
				Difficulty:  "Beginner",
			},
			{
				ID:          3,
				Title:       "Baturaden Bobocabin",
				Description: "Experience stunning sunsets, white-washed",
				Price:       150,
				Duration:    "2 days",
				Location:    "Central Java",
				Rating:      4.7,
				Reviews:     156,
				Category:    "Nature",
				Difficulty:  "Easy",
			},
			{
				ID:          4,
				Title:       "Dieng Villa View",
				Description: "Experience stunning sunsets, white-washed",
				Price:       750,
				Duration:    "4 days",
				Location:    "Central Java",
				Rating:      4.9,
				Reviews:     203,
				Category:    "Luxury",
				Difficulty:  "Easy",
			},
		},
		options: map[int]map[string][]model.TourOption{
			1: {
				"2025-01-15": {
					{ID: 1, Time: "09:00 AM", Price: 250, Available: 15},
					{ID: 2, Time: "02:00 PM", Price: 250, Available: 8},
					{ID: 3, Time: "05:00 PM", Price: 280, Available: 12},
				},
				"2025-01-16": {
					{ID: 4, Time: "09:00 AM", Price: 250, Available: 20},
					{ID: 5, Time: "02:00 PM", Price: 250, Available: 5},
				},
				"2025-01-17": {
					{ID: 6, Time: "09:00 AM", Price: 250, Available: 18},
					{ID: 7, Time: "11:00 AM", Price: 250, Available: 10},
					{ID: 8, Time: "02:00 PM", Price: 250, Available: 15},
					{ID: 9, Time: "05:00 PM", Price: 280, Available: 7},
				},
			},
		},
	}
}

// List applies the filter and returns a fresh slice ordered per SortBy.
func (c *Catalog) List(f Filter) []model.Tour {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var result []model.Tour
	for _, tour := range c.tours {
		if search != "" && !matchesSearch(tour, search) {
			continue
		}
		if !matchesCategory(tour, f.Category) {
			continue
		}
		if !matchesDuration(tour, f.Duration) {
			continue
		}
		result = append(result, tour)
	}

	switch f.SortBy {
	case "rating":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	case "price-low":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case "price-high":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	default: // "popular"
		sort.SliceStable(result, func(i, j int) bool { return result[i].Reviews > result[j].Reviews })
	}

	return result
}

func (c *Catalog) Get(id int) (model.Tour, bool) {
	for _, tour := range c.tours {
		if tour.ID == id {
			return tour, true
		}
	}
	return model.Tour{}, false
}

// OptionsForDate returns the bookable time slots for the tour on the given
// date, oldest slot first. Dates use the YYYY-MM-DD form the catalog keys by.
func (c *Catalog) OptionsForDate(id int, date string) []model.TourOption {
	byDate, ok := c.options[id]
	if !ok {
		return nil
	}
	return byDate[date]
}

// AvailableDates lists the dates a tour has any options on, sorted.
func (c *Catalog) AvailableDates(id int) []string {
	byDate, ok := c.options[id]
	if !ok {
		return nil
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// TitleFromSlug rebuilds a display title from a URL slug: hyphens become
// spaces and each word is capitalized.
func TitleFromSlug(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func matchesSearch(tour model.Tour, search string) bool {
	return strings.Contains(strings.ToLower(tour.Title), search) ||
		strings.Contains(strings.ToLower(tour.Description), search) ||
		strings.Contains(strings.ToLower(tour.Location), search)
}

func matchesCategory(tour model.Tour, category string) bool {
	if category == "" || category == "all" {
		return true
	}
	return strings.EqualFold(tour.Category, category)
}

// matchesDuration treats "4 days" as four or more, matching the catalog's
// longest bucket.
func matchesDuration(tour model.Tour, duration string) bool {
	if duration == "" || duration == "all" {
		return true
	}
	if duration == "4 days" {
		return durationDays(tour.Duration) >= 4
	}
	return strings.EqualFold(tour.Duration, duration)
}

func durationDays(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0
	}
	days := 0
	for _, r := range strings.TrimSuffix(fields[0], "+") {
		if r < '0' || r > '9' {
			return days
		}
		days = days*10 + int(r-'0')
	}
	return days
}
