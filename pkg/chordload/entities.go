package chordload

import "time"

// Provider is a catalog provider (recording artist) dimension record.
// Created once per unique ID seen in catalog source data, never mutated.
type Provider struct {
	ID        string
	Name      string
	Location  string
	Latitude  *float64
	Longitude *float64
}

// FieldValues returns the record's values in statement parameter order.
// The same order is used for ledger rendering of rejected records.
func (p Provider) FieldValues() []any {
	return []any{p.ID, p.Name, p.Location, p.Latitude, p.Longitude}
}

// Item is a catalog item (song) dimension record. Its ProviderID must
// reference a Provider persisted earlier in the same unit; load order is
// provider-then-item so no deferred constraint is needed.
type Item struct {
	ID          string
	Title       string
	ProviderID  string
	ReleaseYear *int
	Duration    float64
}

func (it Item) FieldValues() []any {
	return []any{it.ID, it.Title, it.ProviderID, it.ReleaseYear, it.Duration}
}

// TimeMark is the time dimension record. All fields besides Timestamp are
// pure functions of Timestamp; use DeriveTimeMark to construct one.
type TimeMark struct {
	Timestamp time.Time
	Hour      int
	Day       int
	Week      int
	Month     int
	Year      int
	Weekday   int
}

func (tm TimeMark) FieldValues() []any {
	return []any{tm.Timestamp, tm.Hour, tm.Day, tm.Week, tm.Month, tm.Year, tm.Weekday}
}

// Actor is the user dimension record.
type Actor struct {
	ID        string
	FirstName string
	LastName  string
	Gender    string
	Tier      string
}

func (a Actor) FieldValues() []any {
	return []any{a.ID, a.FirstName, a.LastName, a.Gender, a.Tier}
}

// ActivityFact is one play event. ItemID and ProviderID are resolved by a
// best-effort catalog lookup; both stay nil when no match exists, and the
// fact loads regardless.
type ActivityFact struct {
	Timestamp  time.Time
	ActorID    string
	Tier       string
	ItemID     *string
	ProviderID *string
	SessionID  int
	Location   string
	UserAgent  string
}

func (f ActivityFact) FieldValues() []any {
	return []any{f.Timestamp, f.ActorID, f.Tier, f.ItemID, f.ProviderID, f.SessionID, f.Location, f.UserAgent}
}

// DeriveTimeMark computes the time dimension record for a raw millisecond
// epoch timestamp. All derivation happens in UTC. Weekday is Monday=0.
func DeriveTimeMark(msEpoch int64) TimeMark {
	ts := EpochTime(msEpoch)
	_, week := ts.ISOWeek()
	return TimeMark{
		Timestamp: ts,
		Hour:      ts.Hour(),
		Day:       ts.Day(),
		Week:      week,
		Month:     int(ts.Month()),
		Year:      ts.Year(),
		Weekday:   (int(ts.Weekday()) + 6) % 7,
	}
}

// EpochTime converts a raw millisecond epoch value to a UTC timestamp.
// Fact records derive their timestamp with this independently of the
// TimeMark insert for the same instant.
func EpochTime(msEpoch int64) time.Time {
	return time.UnixMilli(msEpoch).UTC()
}
