// Package model contains the domain types shared across layers.
package model

// Location is a coordinate pair used to key weather lookups.
type Location struct {
	Lng float64 `json:"lng" bson:"lng"`
	Lat float64 `json:"lat" bson:"lat"`
}

// Place is a named location candidate returned by place search.
type Place struct {
	Name     string   `json:"name" bson:"name"`
	Address  string   `json:"address" bson:"address"`
	Location Location `json:"location" bson:"location"`
}

// Realtime is a current-moment conditions snapshot.
type Realtime struct {
	Temperature float64 `json:"temperature"`
	Skycon      string  `json:"skycon"`
	AQI         float64 `json:"aqi"`
}

// DailyTemperature holds one forecast day's temperature range.
type DailyTemperature struct {
	Date string  `json:"date"`
	Max  float64 `json:"max"`
	Min  float64 `json:"min"`
}

// DailySkycon holds one forecast day's sky condition.
type DailySkycon struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// LifeIndex holds per-day lifestyle advice, one entry per forecast day.
type LifeIndex struct {
	ColdRisk   []string `json:"coldRisk"`
	CarWashing []string `json:"carWashing"`
	Ullergy    []string `json:"ullergy"`
	Dressing   []string `json:"dressing"`
}

// Daily is a multi-day forecast series.
type Daily struct {
	Temperature []DailyTemperature `json:"temperature"`
	Skycon      []DailySkycon      `json:"skycon"`
	LifeIndex   LifeIndex          `json:"lifeIndex"`
}

// Weather aggregates the realtime snapshot and the daily forecast.
// It is only ever built from a complete pair of successful responses.
type Weather struct {
	Realtime Realtime `json:"realtime"`
	Daily    Daily    `json:"daily"`
}
