// Package weather generates reproducible fake weather data. All values are
// derived from a seed built out of the location string and the day of year,
// so the same (location, date) pair always yields the same result.
package weather

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// Conditions is the fixed set of sky conditions, in draw order.
var Conditions = []string{
	"sunny",
	"cloudy",
	"partly cloudy",
	"rainy",
	"foggy",
	"snowy",
	"thunderstorms",
	"clear",
}

// Sample is the current weather for a location.
type Sample struct {
	Location    string `json:"location"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"wind_speed"`
	Unit        string `json:"unit"`
}

// Day is a single day of a forecast.
type Day struct {
	Date            string `json:"date"`
	TemperatureHigh int    `json:"temperature_high"`
	TemperatureLow  int    `json:"temperature_low"`
	Condition       string `json:"condition"`
	Humidity        int    `json:"humidity"`
	WindSpeed       int    `json:"wind_speed"`
}

// seedFor derives the generator seed from the location and the day of year.
// FNV-1a keeps the seed stable across processes; a runtime-randomized hash
// would break the repeatability contract.
func seedFor(location string, date time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(location))
	return int64(h.Sum64()) + int64(date.YearDay())
}

// intBetween draws a uniform integer in [lo, hi], both ends inclusive.
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Current returns the weather sample for location on the given date.
func Current(location string, date time.Time) Sample {
	rng := rand.New(rand.NewSource(seedFor(location, date)))
	return Sample{
		Location:    location,
		Condition:   Conditions[rng.Intn(len(Conditions))],
		Temperature: intBetween(rng, 15, 95),
		Humidity:    intBetween(rng, 30, 90),
		WindSpeed:   intBetween(rng, 5, 25),
		Unit:        "Fahrenheit",
	}
}

// Forecast returns a per-day forecast for location starting at start.
// days is clamped to [1, 7]; out-of-range values are not an error.
func Forecast(location string, days int, start time.Time) []Day {
	if days < 1 {
		days = 1
	} else if days > 7 {
		days = 7
	}

	out := make([]Day, 0, days)
	for i := 0; i < days; i++ {
		target := start.AddDate(0, 0, i)
		rng := rand.New(rand.NewSource(seedFor(location, target)))

		// Draw order matters: each value consumes generator state, so
		// reordering would change every result.
		condition := Conditions[rng.Intn(len(Conditions))]
		temperature := intBetween(rng, 15, 95)
		humidity := intBetween(rng, 30, 90)
		windSpeed := intBetween(rng, 5, 25)

		switch target.Month() {
		case time.December, time.January, time.February:
			temperature -= 25
			if temperature < 10 {
				temperature = 10
			}
			if rng.Intn(3) == 0 {
				condition = "snowy"
			}
		case time.June, time.July, time.August:
			temperature += 15
			if temperature > 100 {
				temperature = 100
			}
		}

		spread := intBetween(rng, 5, 15)
		out = append(out, Day{
			Date:            target.Format("2006-01-02"),
			TemperatureHigh: temperature + spread/2,
			TemperatureLow:  temperature - spread/2,
			Condition:       condition,
			Humidity:        humidity,
			WindSpeed:       windSpeed,
		})
	}
	return out
}
