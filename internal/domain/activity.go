package domain

type ActivityTheme string

const (
	ThemeNature  ActivityTheme = "nature"
	ThemeHistory ActivityTheme = "history"
	ThemeScience ActivityTheme = "science"
	ThemeArt     ActivityTheme = "art"
)

var Themes = []ActivityTheme{ThemeNature, ThemeHistory, ThemeScience, ThemeArt}

func (t ActivityTheme) Valid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

type Activity struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Cover          string        `json:"cover"`
	Price          float64       `json:"price"`
	AgeRange       string        `json:"age_range"`
	RemainingSlots int           `json:"remaining_slots"`
	Rating         float64       `json:"rating"`
	Theme          ActivityTheme `json:"theme"`
	Duration       string        `json:"duration"`
	Itinerary      []string      `json:"itinerary"`
	Description    string        `json:"description"`
}

type CreateActivityInput struct {
	Title       string
	Price       float64
	Theme       ActivityTheme
	Description string
	Duration    string
	AgeRange    string
}
