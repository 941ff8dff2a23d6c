package models

// ItemDB represents a catalog item document in the items collection.
// The id is assigned sequentially by the catalog service as a decimal
// string, it is not the store-generated _id.
type ItemDB struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Category    string  `json:"category" bson:"category"`
	Condition   string  `json:"condition" bson:"condition"`
	Description string  `json:"description" bson:"description"`
	Image       string  `json:"image,omitempty" bson:"image,omitempty"`
	AgeDays     int     `json:"age_days" bson:"age_days"`
	AgeYears    float64 `json:"age_years" bson:"age_years"` // age_days / 365, one decimal place
	DateAdded   int64   `json:"date_added" bson:"date_added"`
	UpdatedAt   int64   `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ItemPatch is the partial update applied by a catalog update. Only these
// fields are ever rewritten on an existing item.
type ItemPatch struct {
	Category    string  `bson:"category"`
	Condition   string  `bson:"condition"`
	AgeDays     int     `bson:"age_days"`
	AgeYears    float64 `bson:"age_years"`
	Description string  `bson:"description"`
	UpdatedAt   int64   `bson:"updatedAt"`
}

// ItemFilter is a conjunctive search filter; zero values impose no constraint.
type ItemFilter struct {
	Name        string // case-insensitive substring match
	Category    string // exact match
	Condition   string // exact match
	MaxAgeYears *int   // age_years upper bound, inclusive
}
