package domain

type ScreenName string

const (
	ScreenHome           ScreenName = "home"
	ScreenActivities     ScreenName = "activities"
	ScreenVenues         ScreenName = "venues"
	ScreenProfile        ScreenName = "profile"
	ScreenActivityDetail ScreenName = "activity_detail"
	ScreenVenueDetail    ScreenName = "venue_detail"
)

// Screen is the single "current view" value a client session is on.
// Detail variants carry the item id; the rest leave it empty, so two
// details can never be open at once.
type Screen struct {
	Name   ScreenName `json:"name"`
	ItemID string     `json:"item_id,omitempty"`
}
