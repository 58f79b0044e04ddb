// Package domain defines the core value objects produced by the decoding
// and validation engines. All types are immutable after construction:
// the assembler builds a Report once, and no component mutates it afterwards.
package domain

import (
	"time"
)

// Kind identifies the report type encoded in the leading keyword.
type Kind string

// Supported report kinds. A report with no leading keyword decodes as
// METAR, matching common practice on aeronautical data feeds.
const (
	KindMETAR Kind = "METAR"
	KindSPECI Kind = "SPECI"
	KindTAF   Kind = "TAF"
)

// DirectionVariable is the wind direction sentinel for a VRB group,
// where the station reports no prevailing direction.
const DirectionVariable = -1

// Wind speed units as reported on the wire. Values are stored in their
// as-reported unit; no silent conversion is performed.
const (
	UnitKnots          = "kt"
	UnitMetersPerSec   = "m/s"
	UnitKilometersHour = "km/h"
)

// Pressure units for the QNH group.
const (
	UnitHectopascals = "hPa"
	UnitInchesHg     = "inHg"
)

// Wind holds the decoded wind group, plus the optional variable-direction
// range group when it immediately follows the wind group.
type Wind struct {
	// Direction is the prevailing wind direction in degrees (0-360),
	// or DirectionVariable for a VRB group.
	Direction int `json:"direction"`

	// Speed is the sustained wind speed in the as-reported unit.
	Speed int `json:"speed"`

	// Gust is the gust speed, present only when the group carries a
	// G segment.
	Gust *int `json:"gust,omitempty"`

	// Unit is the as-reported speed unit: UnitKnots, UnitMetersPerSec
	// or UnitKilometersHour.
	Unit string `json:"unit"`

	// DirectionRange holds the two bounding directions of a dddVddd
	// group. It is present only when both bounds were reported.
	DirectionRange *[2]int `json:"direction_range,omitempty"`
}

// Visibility holds the decoded prevailing visibility.
type Visibility struct {
	// Value is the visibility in the as-reported unit. Fractional
	// statute miles (1/2SM, 1 1/2SM) decode to the fractional value.
	Value float64 `json:"value"`

	// Unit is "m" for metric four-digit groups or "SM" for statute miles.
	Unit string `json:"unit"`
}

// Cover is the coded cloud amount of a single layer.
type Cover string

// Cloud coverage masks, in the vocabulary of the cloud group prefix.
// VV reports vertical visibility into an obscured sky rather than a
// conventional layer.
const (
	CoverFew       Cover = "FEW"
	CoverScattered Cover = "SCT"
	CoverBroken    Cover = "BKN"
	CoverOvercast  Cover = "OVC"
	CoverSkyClear  Cover = "SKC"
	CoverNoSignif  Cover = "NSC"
	CoverNoneDet   Cover = "NCD"
	CoverVertVis   Cover = "VV"
)

// CloudLayer is one decoded cloud group. Layers keep report order,
// which is significant for ceiling determination.
type CloudLayer struct {
	// Cover is the coverage mask of this layer.
	Cover Cover `json:"cover"`

	// Height is the layer base in feet (the three-digit group times
	// one hundred). Absent for height-less groups such as NSC, and for
	// masked heights (///).
	Height *int `json:"height,omitempty"`

	// Convective is "CB" or "TCU" when the group carries a convective
	// suffix, empty otherwise.
	Convective string `json:"convective,omitempty"`
}

// WeatherGroup is one decoded present-weather group.
type WeatherGroup struct {
	// Intensity is "+", "-", "VC" (in the vicinity), "RE" (recent),
	// or empty for moderate.
	Intensity string `json:"intensity,omitempty"`

	// Descriptor qualifies the phenomena: MI, BC, PR, DR, BL, SH, TS
	// or FZ. Empty when the group has no descriptor.
	Descriptor string `json:"descriptor,omitempty"`

	// Phenomena lists the precipitation/obscuration/other codes of the
	// group in reported order, e.g. ["PL", "RA"] for -TSPLRA.
	Phenomena []string `json:"phenomena,omitempty"`

	// Raw is the group exactly as reported.
	Raw string `json:"raw"`
}

// ClearSky is the sentinel weather entry used when a report carries no
// weather group and no cloud group at all. It is distinct from an
// explicit NSC/SKC layer, which decodes as cloud.
var ClearSky = WeatherGroup{Raw: "clear sky"}

// Pressure holds the decoded altimeter setting (QNH).
type Pressure struct {
	// Value is the pressure in the as-reported unit: whole
	// hectopascals for Q-groups, inches of mercury for A-groups
	// (A2992 stores 29.92).
	Value float64 `json:"value"`

	// Unit is UnitHectopascals or UnitInchesHg.
	Unit string `json:"unit"`
}

// Report is the decoded form of one METAR, SPECI or TAF message.
// Decoding is best effort: any group the extractors cannot claim is
// skipped, so optional fields are nil/empty rather than an error.
type Report struct {
	// Kind is the report type, METAR when no keyword was present.
	Kind Kind `json:"kind"`

	// Corrected reports a COR marker in the header.
	Corrected bool `json:"corrected,omitempty"`

	// Amended reports an AMD marker (TAF only on well-formed input).
	Amended bool `json:"amended,omitempty"`

	// Nil reports a NIL marker: the station transmitted a header with
	// no observation. Such a report decodes to header and time only.
	Nil bool `json:"nil,omitempty"`

	// ICAO is the 4-character station identifier, empty when no
	// ICAO-shaped group followed the header keyword.
	ICAO string `json:"icao"`

	// Time is the absolute UTC observation time, composed from the
	// caller-supplied reference year/month and the in-text DDHHMMZ group.
	Time time.Time `json:"datetime"`

	Wind *Wind `json:"wind,omitempty"`

	// Cavok reports a CAVOK group. When set, Visibility is absent:
	// ceiling and visibility are by definition unrestricted.
	Cavok bool `json:"cavok"`

	Visibility *Visibility `json:"visibility,omitempty"`

	// Weather lists decoded present-weather groups in report order,
	// or the single ClearSky sentinel when neither weather nor cloud
	// was reported.
	Weather []WeatherGroup `json:"weather,omitempty"`

	// Cloud lists decoded cloud layers in report order. Empty exactly
	// when no cloud group was tokenized; an explicit NSC is a single
	// entry, not an empty slice.
	Cloud []CloudLayer `json:"cloud,omitempty"`

	// Temperature and DewTemperature are in whole degrees Celsius,
	// negative values encoded with an M prefix on the wire.
	Temperature    *int `json:"temperature,omitempty"`
	DewTemperature *int `json:"dew_temperature,omitempty"`

	QNH *Pressure `json:"qnh,omitempty"`

	// Auto reports an AUTO (automated station) marker.
	Auto bool `json:"auto"`

	// WindShear keeps WS RWY groups raw; they are claimed so they are
	// not misread as unknown groups, but not decoded further.
	WindShear []string `json:"wind_shear,omitempty"`

	// RunwayVisualRange keeps Rnn/... RVR groups raw, as reported.
	RunwayVisualRange []string `json:"rvr,omitempty"`

	// Trend is the raw trend section (first TEMPO/BECMG/NOSIG group
	// onward, up to RMK). Trend groups are not decoded.
	Trend string `json:"trend,omitempty"`

	// Remarks is the raw text after the RMK marker, structurally
	// separated but not decoded.
	Remarks string `json:"remarks,omitempty"`
}

// HasTime reports whether a time group was decoded.
func (r *Report) HasTime() bool { return !r.Time.IsZero() }
