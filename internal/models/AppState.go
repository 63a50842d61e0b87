package models

// Profile is the single dashboard owner profile. Avatar is a data-URL
// encoded image, empty when unset.
type Profile struct {
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Skill struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Icon        string `json:"icon,omitempty"`
	AccentImage string `json:"accentImage,omitempty"`
	AccentColor string `json:"accentColor,omitempty"`
}

type Note struct {
	Id   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

type GalleryItem struct {
	Id   string `json:"id"`
	Src  string `json:"src"`
	Date string `json:"date"`
}

// AppState is the aggregate persisted under the main state key and the unit
// of backup/restore.
type AppState struct {
	AccentColor string        `json:"accentColor"`
	Background  string        `json:"background,omitempty"`
	Profile     Profile       `json:"profile"`
	Weather     WeatherState  `json:"weather"`
	Skills      []Skill       `json:"skills"`
	Notes       []Note        `json:"notes"`
	Gallery     []GalleryItem `json:"gallery"`
}

func DefaultAppState() AppState {
	return AppState{
		AccentColor: "#7c3aed",
		Profile: Profile{
			Name: "Your Name",
			Bio:  "Write something short about you",
		},
		Weather: WeatherState{Kind: KindSun, TempC: 23, Description: "Clear skies"},
		Skills: []Skill{
			{Id: NewId("sk"), Name: "Creativity", Level: 72},
			{Id: NewId("sk"), Name: "Organization", Level: 65},
			{Id: NewId("sk"), Name: "Energy", Level: 58},
			{Id: NewId("sk"), Name: "Well-being", Level: 80},
		},
		Notes:   []Note{},
		Gallery: []GalleryItem{},
	}
}

// Clone returns a deep copy. Mutators operate on clones so a previously
// returned state is never modified in place.
func (s AppState) Clone() AppState {
	out := s
	out.Skills = append([]Skill(nil), s.Skills...)
	out.Notes = append([]Note(nil), s.Notes...)
	out.Gallery = append([]GalleryItem(nil), s.Gallery...)
	return out
}

// Normalize repairs a state loaded from an untrusted blob: absent lists
// become empty lists so nil never propagates further.
func (s *AppState) Normalize() {
	if s.Skills == nil {
		s.Skills = []Skill{}
	}
	if s.Notes == nil {
		s.Notes = []Note{}
	}
	if s.Gallery == nil {
		s.Gallery = []GalleryItem{}
	}
}
