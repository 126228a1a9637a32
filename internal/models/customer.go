package models

type Order struct {
	Description   string      `json:"description"`
	PlateSize     PlateSize   `json:"plate_size"`
	DietaryMode   DietaryMode `json:"dietary_mode"`
	RequiredItems []string    `json:"required_items,omitempty"`
}

type Dialogue struct {
	Intro    string `json:"intro"`
	Positive string `json:"positive"`
	Neutral  string `json:"neutral"`
	Negative string `json:"negative"`
}

type Customer struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Order    Order    `json:"order"`
	Dialogue Dialogue `json:"dialogue"`
}

// Fact is a short sourced health tip shown between orders.
type Fact struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	SourceName string `json:"source_name"`
	SourceURL  string `json:"source_url"`
}
