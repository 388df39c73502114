package model

// Deal is one accommodation offer from the deal catalog.
type Deal struct {
	ID            string  `json:"id"`
	Image         string  `json:"image"`
	Title         string  `json:"title"`
	Price         int     `json:"price"`
	OriginalPrice int     `json:"original_price,omitempty"`
	Discount      int     `json:"discount,omitempty"`
	Rating        float64 `json:"rating"`
	RatingLabel   string  `json:"rating_label,omitempty"`
	ReviewCount   int     `json:"review_count"`
	Provider      string  `json:"provider"`
	Location      string  `json:"location"`
	Distance      string  `json:"distance"`
}

// Activity is one nearby-activity offer from the activity catalog.
type Activity struct {
	ID            string  `json:"id"`
	Image         string  `json:"image"`
	Title         string  `json:"title"`
	Price         int     `json:"price"`
	OriginalPrice int     `json:"original_price,omitempty"`
	Discount      int     `json:"discount,omitempty"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"review_count"`
	Provider      string  `json:"provider"`
	Location      string  `json:"location"`
}
