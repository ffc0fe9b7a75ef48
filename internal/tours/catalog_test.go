package tours

import (
	"testing"
)

func TestListDefaultOrder(t *testing.T) {
	c := NewCatalog()

	tours := c.List(Filter{})
	if len(tours) != 4 {
		t.Fatalf("len = %d, want 4", len(tours))
	}
	// Most popular first: reviews 203, 156, 124, 89.
	wantIDs := []int{4, 3, 1, 2}
	for i, want := range wantIDs {
		if tours[i].ID != want {
			t.Errorf("tours[%d].ID = %d, want %d", i, tours[i].ID, want)
		}
	}
}

func TestListSorting(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		sortBy  string
		wantIDs []int
	}{
		{"rating", []int{4, 1, 3, 2}},
		{"price-low", []int{2, 3, 1, 4}},
		{"price-high", []int{4, 1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			tours := c.List(Filter{SortBy: tt.sortBy})
			for i, want := range tt.wantIDs {
				if tours[i].ID != want {
					t.Errorf("tours[%d].ID = %d, want %d", i, tours[i].ID, want)
				}
			}
		})
	}
}

func TestListFilters(t *testing.T) {
	c := NewCatalog()

	t.Run("category is case insensitive", func(t *testing.T) {
		tours := c.List(Filter{Category: "adventure"})
		if len(tours) != 2 {
			t.Fatalf("len = %d, want 2", len(tours))
		}
	})

	t.Run("duration buckets", func(t *testing.T) {
		if tours := c.List(Filter{Duration: "1 day"}); len(tours) != 1 || tours[0].ID != 2 {
			t.Errorf("1 day filter = %v", tours)
		}
		if tours := c.List(Filter{Duration: "4 days"}); len(tours) != 1 || tours[0].ID != 4 {
			t.Errorf("4+ days filter = %v", tours)
		}
	})

	t.Run("search matches title and location", func(t *testing.T) {
		if tours := c.List(Filter{Search: "sundak"}); len(tours) != 1 || tours[0].ID != 1 {
			t.Errorf("title search = %v", tours)
		}
		if tours := c.List(Filter{Search: "central java"}); len(tours) != 3 {
			t.Errorf("location search len = %d, want 3", len(tours))
		}
		if tours := c.List(Filter{Search: "nowhere"}); len(tours) != 0 {
			t.Errorf("miss should be empty, got %v", tours)
		}
	})

	t.Run("filters combine", func(t *testing.T) {
		tours := c.List(Filter{Category: "adventure", Duration: "1 day"})
		if len(tours) != 1 || tours[0].ID != 2 {
			t.Errorf("combined = %v", tours)
		}
	})
}

func TestGet(t *testing.T) {
	c := NewCatalog()

	tour, ok := c.Get(1)
	if !ok || tour.Title != "Surfing at Sundak Beach" {
		t.Errorf("Get(1) = %v, %v", tour, ok)
	}

	if _, ok := c.Get(99); ok {
		t.Error("Get(99) should miss")
	}
}

func TestOptions(t *testing.T) {
	c := NewCatalog()

	dates := c.AvailableDates(1)
	want := []string{"2025-01-15", "2025-01-16", "2025-01-17"}
	if len(dates) != len(want) {
		t.Fatalf("dates = %v", dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}

	slots := c.OptionsForDate(1, "2025-01-16")
	if len(slots) != 2 || slots[0].Time != "09:00 AM" {
		t.Errorf("slots = %v", slots)
	}

	if slots := c.OptionsForDate(1, "2025-03-01"); slots != nil {
		t.Errorf("unknown date should have no slots, got %v", slots)
	}
	if slots := c.OptionsForDate(2, "2025-01-15"); slots != nil {
		t.Errorf("tour without options should have none, got %v", slots)
	}
}

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"surfing-at-sundak-beach-experience", "Surfing At Sundak Beach Experience"},
		{"rafting", "Rafting"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleFromSlug(tt.slug); got != tt.want {
			t.Errorf("TitleFromSlug(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}
