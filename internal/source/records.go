// Package source decodes raw JSON-lines source units into typed records.
//
// The field tags mirror the upstream export format; constructing typed
// records at this boundary means field-name mistakes fail at compile time
// instead of at insert time.
package source

import (
	"encoding/json"
	"fmt"

	"github.com/vireodata/chordload/pkg/chordload"
)

// LooseID is a string identifier that upstream exports serialize
// inconsistently as either a JSON string or a bare number. Empty string
// means absent.
type LooseID string

func (id *LooseID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = LooseID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier is neither string nor number: %w", err)
	}
	*id = LooseID(n.String())
	return nil
}

// CatalogRecord is one raw catalog export record: a provider and the single
// item it carries.
type CatalogRecord struct {
	ProviderID       string   `json:"artist_id"`
	ProviderName     string   `json:"artist_name"`
	ProviderLocation string   `json:"artist_location"`
	Latitude         *float64 `json:"artist_latitude"`
	Longitude        *float64 `json:"artist_longitude"`

	ItemID      string `json:"song_id"`
	Title       string `json:"title"`
	ReleaseYear *int   `json:"year"`

	Duration float64 `json:"duration"`
}

// Provider projects the record's provider entity.
func (r CatalogRecord) Provider() chordload.Provider {
	return chordload.Provider{
		ID:        r.ProviderID,
		Name:      r.ProviderName,
		Location:  r.ProviderLocation,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// Item projects the record's item entity, keyed to its provider.
func (r CatalogRecord) Item() chordload.Item {
	return chordload.Item{
		ID:          r.ItemID,
		Title:       r.Title,
		ProviderID:  r.ProviderID,
		ReleaseYear: r.ReleaseYear,
		Duration:    r.Duration,
	}
}

// EventRecord is one raw activity log line. Catalog reference fields
// (Title, ProviderName, Duration) are nullable in the export; nil values
// simply never match a catalog entry during fact lookup.
type EventRecord struct {
	Page      string  `json:"page"`
	Timestamp int64   `json:"ts"`
	ActorID   LooseID `json:"userId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Gender    string  `json:"gender"`
	Tier      string  `json:"level"`

	Title        *string  `json:"song"`
	ProviderName *string  `json:"artist"`
	Duration     *float64 `json:"length"`

	SessionID int    `json:"sessionId"`
	Location  string `json:"location"`
	UserAgent string `json:"userAgent"`
}

// IsPlay reports whether the record is a play event worth loading.
func (r EventRecord) IsPlay() bool {
	return r.Page == chordload.PlayAction
}

// Actor projects the record's actor entity.
func (r EventRecord) Actor() chordload.Actor {
	return chordload.Actor{
		ID:        string(r.ActorID),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Gender:    r.Gender,
		Tier:      r.Tier,
	}
}
