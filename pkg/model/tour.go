package model

type Tour struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       int     `json:"price"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
}

// TourOption is one bookable time slot on a specific date.
type TourOption struct {
	ID        int    `json:"id"`
	Time      string `json:"time"`
	Price     int    `json:"price"`
	Available int    `json:"available"`
}
