package search

import (
	"encoding/json"

	"github.com/stellenwerk/jobsuche-mcp/internal/domain"
	"github.com/stellenwerk/jobsuche-mcp/pkg/jobsuche"
)

// SummaryFromAngebot projects one upstream search record into a
// JobSummary. The title falls back to the occupation field so a
// summary always carries a title.
func SummaryFromAngebot(a jobsuche.Stellenangebot) domain.JobSummary {
	title := a.Beruf
	if a.Titel != nil && *a.Titel != "" {
		title = *a.Titel
	}

	return domain.JobSummary{
		ReferenceNumber: a.Refnr,
		Title:           title,
		Employer:        a.Arbeitgeber,
		Location:        ComposeLocation(a.Arbeitsort.Ort, a.Arbeitsort.Plz),
		PublishedDate:   a.AktuelleVeroeffentlichungsdatum,
		ExternalURL:     a.ExterneUrl,
	}
}

// ComposeLocation renders "{ort} ({plz})". Missing parts never fail:
// no postal code yields just the town, no town yields just the
// parenthesized code, neither yields the empty string.
func ComposeLocation(ort, plz *string) string {
	town := ""
	if ort != nil {
		town = *ort
	}

	if plz == nil || *plz == "" {
		return town
	}
	if town == "" {
		return "(" + *plz + ")"
	}

	return town + " (" + *plz + ")"
}

// FormatDateRange renders an open-ended date range:
// both ends "a - b", start only "ab a", end only "bis b", neither "".
func FormatDateRange(von, bis *string) string {
	switch {
	case von != nil && bis != nil:
		return *von + " - " + *bis
	case von != nil:
		return "ab " + *von
	case bis != nil:
		return "bis " + *bis
	default:
		return ""
	}
}

// DetailFromResponse projects one upstream detail payload into the
// stable JobDetail shape. Attributes the API does not deliver stay
// absent; the raw payload is passed through for forward compatibility.
func DetailFromResponse(refnr string, d *jobsuche.JobDetails) domain.JobDetail {
	detail := domain.JobDetail{
		ReferenceNumber:       refnr,
		Title:                 d.Titel,
		Description:           d.Stellenbeschreibung,
		Employer:              d.Arbeitgeber,
		PartnerURL:            d.AllianzpartnerURL,
		Salary:                d.Verguetung,
		ContractDuration:      d.Vertragsdauer,
		JobType:               d.StellenangebotsArt,
		FirstPublished:        d.ErsteVeroeffentlichungsdatum,
		OnlyForDisabled:       d.NurFuerSchwerbehinderte,
		Fulltime:              d.ArbeitszeitVollzeit,
		IsMinorEmployment:     d.IstGeringfuegigeBeschaeftigung,
		IsTempAgency:          d.IstArbeitnehmerUeberlassung,
		IsPrivateAgency:       d.IstPrivateArbeitsvermittlung,
		CareerChangerSuitable: d.QuereinstiegGeeignet,
		CipherNumber:          d.Chiffrenummer,
		RawData:               d.Raw,
	}

	if len(d.Arbeitsorte) > 0 && d.Arbeitsorte[0].Adresse != nil {
		addr := d.Arbeitsorte[0].Adresse
		if addr.Ort != nil {
			loc := ComposeLocation(addr.Ort, addr.Plz)
			detail.Location = &loc
		}
	}

	if d.ArbeitszeitVollzeit != nil {
		et := "Teilzeit"
		if *d.ArbeitszeitVollzeit {
			et = "Vollzeit"
		}
		detail.EmploymentType = &et
	}

	if d.Eintrittszeitraum != nil {
		entry := FormatDateRange(d.Eintrittszeitraum.Von, d.Eintrittszeitraum.Bis)
		detail.EntryPeriod = &entry
		detail.StartDate = &entry
	}

	if d.Veroeffentlichungszeitraum != nil {
		pub := FormatDateRange(d.Veroeffentlichungszeitraum.Von, d.Veroeffentlichungszeitraum.Bis)
		detail.PublicationPeriod = &pub
	}

	return detail
}

// ApplyFieldFilter projects a detail through the include/exclude sets.
// Include runs first, exclude runs over its result. Unknown field
// names are ignored and the reference number always survives.
func ApplyFieldFilter(detail domain.JobDetail, filter domain.FieldFilter) domain.JobDetail {
	if filter.IsZero() {
		return detail
	}

	raw, err := json.Marshal(detail)
	if err != nil {
		return detail
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return detail
	}

	if len(filter.IncludeFields) > 0 {
		keep := make(map[string]struct{}, len(filter.IncludeFields)+1)
		keep["reference_number"] = struct{}{}
		for _, name := range filter.IncludeFields {
			keep[name] = struct{}{}
		}
		for name := range fields {
			if _, ok := keep[name]; !ok {
				delete(fields, name)
			}
		}
	}

	for _, name := range filter.ExcludeFields {
		if name == "reference_number" {
			continue
		}
		delete(fields, name)
	}

	filtered, err := json.Marshal(fields)
	if err != nil {
		return detail
	}

	var out domain.JobDetail
	if err := json.Unmarshal(filtered, &out); err != nil {
		return detail
	}
	out.ReferenceNumber = detail.ReferenceNumber

	return out
}
