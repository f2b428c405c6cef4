package constants

import "time"

// Centralized Redis cache keys and TTLs.
// Pattern: ticketops:{module}:{operation}:{identifier}

const CACHE_PREFIX = "ticketops"

// TTL tiers
const (
	TTL_STATIC_SHORT  = 6 * time.Hour    // reference data (cities)
	TTL_SEMI_STATIC   = 1 * time.Hour    // venue details, event listings
	TTL_DYNAMIC_SHORT = 2 * time.Minute  // per-event seat maps
	TTL_REALTIME      = 30 * time.Second // live availability counts
)

// Cities (reference data, read-through cache)
const (
	CACHE_KEY_CITIES_ALL  = CACHE_PREFIX + ":cities:list"
	CACHE_KEY_CITY_DETAIL = CACHE_PREFIX + ":cities:detail:uuid:" // + city-id
)

// Venues and seating
const (
	CACHE_KEY_VENUE_DETAIL  = CACHE_PREFIX + ":venues:detail:uuid:"   // + venue-id
	CACHE_KEY_VENUE_SEATING = CACHE_PREFIX + ":venues:seating:venue:" // + venue-id[:event:event-id]
)

// Analytics (live aggregates)
const (
	CACHE_KEY_EVENT_STATS = CACHE_PREFIX + ":analytics:event:" // + event-id
)

// Invalidation patterns (used with Redis KEYS + DEL)
const (
	PATTERN_INVALIDATE_CITIES_ALL = CACHE_PREFIX + ":cities:*"
	PATTERN_INVALIDATE_VENUES_ALL = CACHE_PREFIX + ":venues:*"
)

func BuildEventStatsKey(eventID string) string {
	return CACHE_KEY_EVENT_STATS + eventID
}

func BuildCityDetailKey(cityID string) string {
	return CACHE_KEY_CITY_DETAIL + cityID
}

func BuildVenueDetailKey(venueID string) string {
	return CACHE_KEY_VENUE_DETAIL + venueID
}

// BuildVenueSeatingKey keys the seat map per venue, and per venue+event
// when an event context is supplied. The two must never share an entry:
// venue-level maps are topology only.
func BuildVenueSeatingKey(venueID, eventID string) string {
	if eventID == "" {
		return CACHE_KEY_VENUE_SEATING + venueID
	}
	return CACHE_KEY_VENUE_SEATING + venueID + ":event:" + eventID
}
