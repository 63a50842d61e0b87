package services

import "time"

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{"Stay hungry, stay foolish.", "Steve Jobs"},
	{"Simplicity is the ultimate sophistication.", "Leonardo da Vinci"},
	{"What you do every day matters more than what you do once in a while.", "Gretchen Rubin"},
	{"The details are not the details. They make the design.", "Charles Eames"},
	{"Perfection is achieved not when there is nothing more to add, but when there is nothing left to take away.", "Antoine de Saint-Exupéry"},
	{"Make it work, make it right, make it fast.", "Kent Beck"},
}

// QuoteOfTheDay rotates through the fixed table once per day.
func QuoteOfTheDay(now time.Time) Quote {
	day := int(now.UnixMilli() / 86400000 % int64(len(quotes)))
	return quotes[day]
}
