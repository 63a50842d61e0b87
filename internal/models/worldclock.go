package models

type City struct {
	Id    string `json:"id"`
	Tz    string `json:"tz"`
	Label string `json:"label"`
}

func DefaultCities() []City {
	return []City{
		{Id: "par", Tz: "Europe/Paris", Label: "Paris"},
		{Id: "nyc", Tz: "America/New_York", Label: "New York"},
		{Id: "tyo", Tz: "Asia/Tokyo", Label: "Tokyo"},
		{Id: "syd", Tz: "Australia/Sydney", Label: "Sydney"},
	}
}
