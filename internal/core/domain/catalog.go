package domain

// Product is a tool available for daily rental.
type Product struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Category    string  `json:"category" bson:"category"`
	PricePerDay float64 `json:"price_per_day" bson:"price_per_day"`
	ImageURL    string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Available   bool    `json:"available" bson:"available"`
}
