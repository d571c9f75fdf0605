package jobsuche

import (
	"encoding/json"
	"net/http"
)

// Config defines Jobsuche API client settings
type Config struct {
	BaseURL    string
	APIKey     string // the public default key is used when empty
	HTTPClient *http.Client
}

// Client queries the Bundesagentur für Arbeit Jobsuche API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// SearchOptions describe a job search in the upstream query grammar.
// Zero-valued optional fields are omitted from the request.
type SearchOptions struct {
	Was                 string   // free-text query (title, employer, branch)
	Wo                  string   // location name
	Umkreis             *int     // radius in km around Wo
	Arbeitszeit         []string // working-time codes such as vz, tz, ho
	Befristung          []string // contract codes: 1 befristet, 2 unbefristet
	VeroeffentlichtSeit *int     // days since publication
	Size                int      // page size, always sent
	Page                *int     // page number starting at 1
}

// SearchResponse is the upstream search payload
type SearchResponse struct {
	Stellenangebote []Stellenangebot `json:"stellenangebote"`
	MaxErgebnisse   *int64           `json:"maxErgebnisse,omitempty"`
	Page            *int             `json:"page,omitempty"`
	Size            *int             `json:"size,omitempty"`
}

// Stellenangebot is a single search result record
type Stellenangebot struct {
	Refnr                           string     `json:"refnr"`
	Beruf                           string     `json:"beruf"`
	Titel                           *string    `json:"titel,omitempty"`
	Arbeitgeber                     string     `json:"arbeitgeber"`
	Arbeitsort                      Arbeitsort `json:"arbeitsort"`
	AktuelleVeroeffentlichungsdatum *string    `json:"aktuelleVeroeffentlichungsdatum,omitempty"`
	ExterneUrl                      *string    `json:"externeUrl,omitempty"`
}

// Arbeitsort is the workplace attached to a search result
type Arbeitsort struct {
	Ort    *string `json:"ort,omitempty"`
	Plz    *string `json:"plz,omitempty"`
	Region *string `json:"region,omitempty"`
	Land   *string `json:"land,omitempty"`
}

// Zeitraum is an open-ended date range
type Zeitraum struct {
	Von *string `json:"von,omitempty"`
	Bis *string `json:"bis,omitempty"`
}

// JobLocation is the workplace attached to a detail record
type JobLocation struct {
	Adresse *Adresse `json:"adresse,omitempty"`
}

type Adresse struct {
	Ort *string `json:"ort,omitempty"`
	Plz *string `json:"plz,omitempty"`
}

// JobDetails is the upstream detail payload. The API guarantees none of
// these fields, so everything is optional.
type JobDetails struct {
	Refnr                          *string       `json:"refnr,omitempty"`
	Titel                          *string       `json:"titel,omitempty"`
	Stellenbeschreibung            *string       `json:"stellenbeschreibung,omitempty"`
	Arbeitgeber                    *string       `json:"arbeitgeber,omitempty"`
	Arbeitsorte                    []JobLocation `json:"arbeitsorte,omitempty"`
	ArbeitszeitVollzeit            *bool         `json:"arbeitszeitVollzeit,omitempty"`
	Eintrittszeitraum              *Zeitraum     `json:"eintrittszeitraum,omitempty"`
	Veroeffentlichungszeitraum     *Zeitraum     `json:"veroeffentlichungszeitraum,omitempty"`
	Verguetung                     *string       `json:"verguetung,omitempty"`
	Vertragsdauer                  *string       `json:"vertragsdauer,omitempty"`
	StellenangebotsArt             *string       `json:"stellenangebotsArt,omitempty"`
	AllianzpartnerURL              *string       `json:"allianzpartnerUrl,omitempty"`
	ErsteVeroeffentlichungsdatum   *string       `json:"ersteVeroeffentlichungsdatum,omitempty"`
	NurFuerSchwerbehinderte        *bool         `json:"nurFuerSchwerbehinderte,omitempty"`
	IstGeringfuegigeBeschaeftigung *bool         `json:"istGeringfuegigeBeschaeftigung,omitempty"`
	IstArbeitnehmerUeberlassung    *bool         `json:"istArbeitnehmerUeberlassung,omitempty"`
	IstPrivateArbeitsvermittlung   *bool         `json:"istPrivateArbeitsvermittlung,omitempty"`
	QuereinstiegGeeignet           *bool         `json:"quereinstiegGeeignet,omitempty"`
	Chiffrenummer                  *string       `json:"chiffrenummer,omitempty"`

	// Raw carries the undecoded response body so callers can pass
	// through fields this struct does not model.
	Raw json.RawMessage `json:"-"`
}
