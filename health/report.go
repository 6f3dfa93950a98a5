package health

import "encoding/json"

// Link is a single hypermedia reference in a report.
type Link struct {
	Href string `json:"href"`
}

// Links holds the report's hypermedia references.
type Links struct {
	Self Link `json:"self"`
}

// Detail is the per-component entry of a report. On the wire a detail is
// either a bare color string (direct component) or a nested object with
// its own status and per-aspect colors (aggregating component).
type Detail struct {
	// Status is the component's rolled-up color.
	Status Color

	// Aspects maps aspect name to color for an aggregating component.
	Aspects map[string]Color

	nested bool
}

// MarshalJSON renders a direct detail as its color string and an
// aggregating detail as a {status, details} object.
func (d Detail) MarshalJSON() ([]byte, error) {
	if !d.nested {
		return json.Marshal(d.Status)
	}
	return json.Marshal(struct {
		Status  Color            `json:"status"`
		Details map[string]Color `json:"details"`
	}{d.Status, d.Aspects})
}

// Report is the rolled-up health document produced for a single
// health-check request. It is constructed fresh per request and never
// stored.
type Report struct {
	// Status is "green" unless any component is unhealthy, then "red".
	Status Color `json:"status"`

	// Details maps component name to its detail. Omitted entirely when
	// the check reported no components.
	Details map[string]Detail `json:"details,omitempty"`

	// Links carries the canonical URL of the request that produced the
	// report.
	Links Links `json:"links"`
}

// BuildReport rolls up components into a report. selfURL is the
// canonical URL of the originating request. A nil or empty component
// list produces a green report with no details.
func BuildReport(selfURL string, components []Component) Report {
	report := Report{
		Status: ColorGreen,
		Links:  Links{Self: Link{Href: selfURL}},
	}

	if len(components) == 0 {
		return report
	}

	report.Details = make(map[string]Detail, len(components))
	for _, component := range components {
		detail := Detail{Status: component.Color()}
		if !component.Direct() {
			detail.nested = true
			aspects := component.Aspects()
			detail.Aspects = make(map[string]Color, len(aspects))
			for _, aspect := range aspects {
				detail.Aspects[aspect.Name] = aspect.Color()
			}
		}
		report.Details[component.Name()] = detail

		if detail.Status == ColorRed {
			report.Status = ColorRed
		}
	}

	return report
}
