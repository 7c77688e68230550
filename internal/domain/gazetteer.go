package domain

import "strings"

// DefaultRegionCenter is the coordinate used when no gazetteer entry matches
// a region name. Resolution always succeeds: an unrecognized name analyzes
// the default coordinate instead of erroring.
var DefaultRegionCenter = LatLng{Lat: -6.2088, Lng: 106.8456} // Jakarta

// knownLocation pairs a lowercase match key with its center coordinate.
// Entries are matched in order, so more specific keys must come first.
type knownLocation struct {
	key    string
	center LatLng
}

var gazetteer = []knownLocation{
	{"jakarta", LatLng{Lat: -6.2088, Lng: 106.8456}},
	{"singapore", LatLng{Lat: 1.3521, Lng: 103.8198}},
	{"bangkok", LatLng{Lat: 13.7563, Lng: 100.5018}},
	{"manila", LatLng{Lat: 14.5995, Lng: 120.9842}},
	{"ho chi minh", LatLng{Lat: 10.8231, Lng: 106.6297}},
	{"dhaka", LatLng{Lat: 23.8103, Lng: 90.4125}},
	{"mumbai", LatLng{Lat: 19.076, Lng: 72.8777}},
	{"chennai", LatLng{Lat: 13.0827, Lng: 80.2707}},
	{"tokyo", LatLng{Lat: 35.6762, Lng: 139.6503}},
	{"shanghai", LatLng{Lat: 31.2304, Lng: 121.4737}},
	{"sydney", LatLng{Lat: -33.8688, Lng: 151.2093}},
	{"nairobi", LatLng{Lat: -1.2921, Lng: 36.8219}},
	{"lagos", LatLng{Lat: 6.5244, Lng: 3.3792}},
	{"cairo", LatLng{Lat: 30.0444, Lng: 31.2357}},
	{"london", LatLng{Lat: 51.5074, Lng: -0.1278}},
	{"amsterdam", LatLng{Lat: 52.3676, Lng: 4.9041}},
	{"rotterdam", LatLng{Lat: 51.9244, Lng: 4.4777}},
	{"new york", LatLng{Lat: 40.7128, Lng: -74.006}},
	{"miami", LatLng{Lat: 25.7617, Lng: -80.1918}},
	{"new orleans", LatLng{Lat: 29.9511, Lng: -90.0715}},
	{"san francisco", LatLng{Lat: 37.7749, Lng: -122.4194}},
	{"mexico city", LatLng{Lat: 19.4326, Lng: -99.1332}},
	{"rio de janeiro", LatLng{Lat: -22.9068, Lng: -43.1729}},
	{"sao paulo", LatLng{Lat: -23.5505, Lng: -46.6333}},
}

// ResolveRegion maps a free-text region name to a coordinate. Matching is
// case-insensitive and substring-based in both directions ("Jakarta Utara"
// matches the "jakarta" entry, "york" matches "new york"); the first entry
// that matches wins. Unmatched names fall back to DefaultRegionCenter.
func ResolveRegion(name string) LatLng {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return DefaultRegionCenter
	}
	for _, loc := range gazetteer {
		if strings.Contains(q, loc.key) || strings.Contains(loc.key, q) {
			return loc.center
		}
	}
	return DefaultRegionCenter
}
