// Package solar computes sunrise/sunset and the photography twilight
// windows with the NOAA/SunCalc approximation. Accuracy is a couple of
// minutes, plenty for a dashboard arc.
package solar

import (
	"math"
	"time"
)

const (
	dayMs = 86400000.0
	j1970 = 2440588.0
	j2000 = 2451545.0
)

// obliquity of the ecliptic
var e = rad(23.4397)

func rad(d float64) float64 { return d * math.Pi / 180 }

func toJulian(t time.Time) float64 {
	return float64(t.UnixMilli())/dayMs - 0.5 + j1970
}

func fromJulian(j float64) time.Time {
	return time.UnixMilli(int64((j + 0.5 - j1970) * dayMs))
}

func solarMeanAnomaly(d float64) float64 { return rad(357.5291 + 0.98560028*d) }

func eclipticLongitude(m float64) float64 {
	c := rad(1.9148)*math.Sin(m) + rad(0.02)*math.Sin(2*m) + rad(0.0003)*math.Sin(3*m)
	return m + c + rad(102.9372) + math.Pi
}

func declination(l float64) float64 { return math.Asin(math.Sin(l) * math.Sin(e)) }

func julianCycle(d, lw float64) float64 { return math.Round(d - lw/(2*math.Pi)) }

func approxTransit(ht, lw, n float64) float64 { return j2000 + (ht+lw)/(2*math.Pi) + n }

func solarTransitJ(ds, m, l float64) float64 {
	return j2000 + ds + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*l)
}

// Times holds one altitude crossing. Rise and Set are nil in polar
// day/night, when the sun never crosses the altitude.
type Times struct {
	Rise *time.Time
	Set  *time.Time
	Noon time.Time
}

// TimesForAltitude computes when the sun crosses the given altitude (in
// degrees) on the UTC day of date at the given coordinate.
func TimesForAltitude(lat, lon, altitudeDeg float64, date time.Time) Times {
	lw := -rad(lon)
	phi := rad(lat)

	utc := date.UTC()
	dayStart := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	d := toJulian(dayStart) - j2000

	m := solarMeanAnomaly(d)
	l := eclipticLongitude(m)
	dec := declination(l)

	n := julianCycle(d, lw)
	ds := approxTransit(0, lw, n)
	jNoon := solarTransitJ(ds, m, l)
	noon := fromJulian(jNoon)

	h := rad(altitudeDeg)
	cos := (math.Sin(h) - math.Sin(phi)*math.Sin(dec)) / (math.Cos(phi) * math.Cos(dec))
	if cos < -1 || cos > 1 {
		return Times{Noon: noon}
	}

	w := math.Acos(cos)
	rise := fromJulian(solarTransitJ(approxTransit(-w, lw, n), m, l))
	set := fromJulian(solarTransitJ(approxTransit(w, lw, n), m, l))
	return Times{Rise: &rise, Set: &set, Noon: noon}
}

// Window is a half-open time span of the day, used for golden/blue hours.
type Window struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// Arc bundles everything the sun-position card renders.
type Arc struct {
	Sunrise  *time.Time `json:"sunrise"`
	Sunset   *time.Time `json:"sunset"`
	Noon     time.Time  `json:"noon"`
	GoldenAM Window     `json:"goldenAm"`
	GoldenPM Window     `json:"goldenPm"`
	BlueAM   Window     `json:"blueAm"`
	BluePM   Window     `json:"bluePm"`
	// SunFrac is the sun's position in [0,1] between sunrise and sunset,
	// nil outside daylight computation (polar day/night).
	SunFrac *float64 `json:"sunFrac"`
}

// ComputeArc evaluates the standard altitude bands: -0.833° for the visible
// sun, -6° civil twilight (blue hour), -4°..+6° golden hour.
func ComputeArc(lat, lon float64, now time.Time) Arc {
	sun := TimesForAltitude(lat, lon, -0.833, now)
	civ := TimesForAltitude(lat, lon, -6, now)
	glo := TimesForAltitude(lat, lon, -4, now)
	ghi := TimesForAltitude(lat, lon, 6, now)

	arc := Arc{
		Sunrise:  sun.Rise,
		Sunset:   sun.Set,
		Noon:     sun.Noon,
		GoldenAM: Window{From: glo.Rise, To: ghi.Rise},
		GoldenPM: Window{From: ghi.Set, To: glo.Set},
		BlueAM:   Window{From: civ.Rise, To: sun.Rise},
		BluePM:   Window{From: sun.Set, To: civ.Set},
	}

	if sun.Rise != nil && sun.Set != nil {
		span := sun.Set.Sub(*sun.Rise)
		if span > 0 {
			f := float64(now.Sub(*sun.Rise)) / float64(span)
			f = math.Max(0, math.Min(1, f))
			arc.SunFrac = &f
		}
	}
	return arc
}
