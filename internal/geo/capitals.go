package geo

// capitals maps a 2-letter region code to its capital, used when no better
// location is available.
var capitals = map[string]ResolvedLocation{
	"FR": {Lat: 48.8566, Lon: 2.3522, Label: "Paris, FR"},
	"BE": {Lat: 50.8503, Lon: 4.3517, Label: "Bruxelles, BE"},
	"CH": {Lat: 46.948, Lon: 7.4474, Label: "Berne, CH"},
	"DE": {Lat: 52.52, Lon: 13.405, Label: "Berlin, DE"},
	"ES": {Lat: 40.4168, Lon: -3.7038, Label: "Madrid, ES"},
	"IT": {Lat: 41.9028, Lon: 12.4964, Label: "Rome, IT"},
	"PT": {Lat: 38.7223, Lon: -9.1393, Label: "Lisbonne, PT"},
	"NL": {Lat: 52.3676, Lon: 4.9041, Label: "Amsterdam, NL"},
	"GB": {Lat: 51.5074, Lon: -0.1278, Label: "Londres, GB"},
	"IE": {Lat: 53.3498, Lon: -6.2603, Label: "Dublin, IE"},
	"US": {Lat: 38.9072, Lon: -77.0369, Label: "Washington, US"},
	"CA": {Lat: 45.4215, Lon: -75.6972, Label: "Ottawa, CA"},
	"JP": {Lat: 35.6762, Lon: 139.6503, Label: "Tokyo, JP"},
	"KR": {Lat: 37.5665, Lon: 126.978, Label: "Seoul, KR"},
	"CN": {Lat: 39.9042, Lon: 116.4074, Label: "Pékin, CN"},
	"IN": {Lat: 28.6139, Lon: 77.209, Label: "New Delhi, IN"},
	"AU": {Lat: -35.2809, Lon: 149.13, Label: "Canberra, AU"},
	"NZ": {Lat: -41.2866, Lon: 174.7756, Label: "Wellington, NZ"},
	"BR": {Lat: -15.7939, Lon: -47.8828, Label: "Brasília, BR"},
	"MX": {Lat: 19.4326, Lon: -99.1332, Label: "Mexico, MX"},
	"MA": {Lat: 34.0209, Lon: -6.8416, Label: "Rabat, MA"},
	"DZ": {Lat: 36.7538, Lon: 3.0588, Label: "Alger, DZ"},
	"TN": {Lat: 36.8065, Lon: 10.1815, Label: "Tunis, TN"},
	"EG": {Lat: 30.0444, Lon: 31.2357, Label: "Le Caire, EG"},
	"TR": {Lat: 39.9334, Lon: 32.8597, Label: "Ankara, TR"},
	"SE": {Lat: 59.3293, Lon: 18.0686, Label: "Stockholm, SE"},
	"NO": {Lat: 59.9139, Lon: 10.7522, Label: "Oslo, NO"},
	"FI": {Lat: 60.1699, Lon: 24.9384, Label: "Helsinki, FI"},
	"DK": {Lat: 55.6761, Lon: 12.5683, Label: "Copenhague, DK"},
	"PL": {Lat: 52.2297, Lon: 21.0122, Label: "Varsovie, PL"},
	"AT": {Lat: 48.2082, Lon: 16.3738, Label: "Vienne, AT"},
	"CZ": {Lat: 50.0755, Lon: 14.4378, Label: "Prague, CZ"},
	"GR": {Lat: 37.9838, Lon: 23.7275, Label: "Athènes, GR"},
	"RO": {Lat: 44.4268, Lon: 26.1025, Label: "Bucarest, RO"},
}

// defaultRegion is the safe fallback when everything else failed.
const defaultRegion = "FR"
