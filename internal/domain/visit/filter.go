package visit

import (
	"context"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MaxIntValue is the largest value an INTEGER column holds. Larger ages are
// dropped from filters and rejected on create.
const MaxIntValue = math.MaxInt32

// MinNameFilterLen is the shortest patient name fragment that activates the
// name filter.
const MinNameFilterLen = 3

// DateRange bounds created_at inclusively. A zero side is unbounded.
type DateRange struct {
	From time.Time
	To   time.Time
}

// AgeFilter is either an exact age or a one- or two-sided range.
type AgeFilter struct {
	Exact *int
	Min   *int
	Max   *int
}

// FilterCriteria is the typed form of a listing request's query string.
// Nil or empty fields are inactive; active fields are AND-ed.
type FilterCriteria struct {
	DateRange   *DateRange
	DoctorIDs   []uuid.UUID
	ServiceIDs  []uuid.UUID
	PatientName string
	Gender      string
	Age         *AgeFilter
}

// ParseOptions carries the request-time context the parser needs.
type ParseOptions struct {
	Now        time.Time
	Location   *time.Location
	OpenBounds bool
}

func (o ParseOptions) loc() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func (o ParseOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now().In(o.loc())
	}
	return o.Now.In(o.loc())
}

// StartOfDay returns 00:00:00.000 of t's day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay returns 23:59:59.999 of t's day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
}

// Keys are listed snake_case first; the first non-empty spelling wins.
var (
	fromDateKeys   = []string{"from_date", "fromDate"}
	toDateKeys     = []string{"to_date", "toDate"}
	doctorIDKeys   = []string{"doctor_ids", "doctorIds"}
	serviceIDKeys  = []string{"service_ids", "serviceIds"}
	patientKeys    = []string{"patient_name", "patientName"}
	genderKeys     = []string{"gender"}
	exactAgeKeys   = []string{"fixed_age", "age"}
	minAgeKeys     = []string{"min_age", "minAge"}
	maxAgeKeys     = []string{"max_age", "maxAge"}
	dateLayouts    = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02T15:04"}
	dateOnlyLayout = "2006-01-02"
)

// ParseFilters normalizes a listing query string. Values that cannot be
// parsed are dropped and logged; parsing never fails the request.
func ParseFilters(ctx context.Context, q url.Values, opts ParseOptions) FilterCriteria {
	log := zerolog.Ctx(ctx)
	var f FilterCriteria

	f.DateRange = parseDateRange(log, q, opts, opts.OpenBounds)
	f.DoctorIDs = uuidList(log, q, doctorIDKeys)
	f.ServiceIDs = uuidList(log, q, serviceIDKeys)

	if name := first(q, patientKeys); utf8.RuneCountInString(name) >= MinNameFilterLen {
		f.PatientName = name
	}

	switch g := first(q, genderKeys); g {
	case GenderMale, GenderFemale:
		f.Gender = g
	case "":
	default:
		log.Debug().Str("gender", g).Msg("ignoring unsupported gender filter")
	}

	f.Age = parseAge(log, q)
	return f
}

// StatsRange resolves the stats date range. Missing sides always default to
// today's boundaries, whatever the listing bound mode.
func StatsRange(ctx context.Context, q url.Values, opts ParseOptions) DateRange {
	r := parseDateRange(zerolog.Ctx(ctx), q, opts, false)
	if r == nil {
		now := opts.now()
		return DateRange{From: StartOfDay(now, opts.loc()), To: EndOfDay(now, opts.loc())}
	}
	return *r
}

func parseDateRange(log *zerolog.Logger, q url.Values, opts ParseOptions, open bool) *DateRange {
	from, fromOK := parseBound(log, first(q, fromDateKeys), opts.loc(), false)
	to, toOK := parseBound(log, first(q, toDateKeys), opts.loc(), true)
	if !fromOK && !toOK {
		return nil
	}
	if !open {
		now := opts.now()
		if !fromOK {
			from = StartOfDay(now, opts.loc())
		}
		if !toOK {
			to = EndOfDay(now, opts.loc())
		}
	}
	return &DateRange{From: from, To: to}
}

// parseBound parses one side of a date range. A bare date as the upper
// bound covers that whole day.
func parseBound(log *zerolog.Logger, raw string, loc *time.Location, upper bool) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dateOnlyLayout, raw, loc); err == nil {
		if upper {
			return EndOfDay(t, loc), true
		}
		return t, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	log.Debug().Str("value", raw).Msg("ignoring unparseable date bound")
	return time.Time{}, false
}

func parseAge(log *zerolog.Logger, q url.Values) *AgeFilter {
	if raw := first(q, exactAgeKeys); raw != "" {
		if n, ok := nonNegative(log, raw); ok {
			return &AgeFilter{Exact: &n}
		}
	}
	var af AgeFilter
	if n, ok := nonNegative(log, first(q, minAgeKeys)); ok {
		af.Min = &n
	}
	if n, ok := nonNegative(log, first(q, maxAgeKeys)); ok {
		af.Max = &n
	}
	if af.Min == nil && af.Max == nil {
		return nil
	}
	return &af
}

func nonNegative(log *zerolog.Logger, raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > MaxIntValue {
		log.Debug().Str("value", raw).Msg("ignoring invalid age filter")
		return 0, false
	}
	return n, true
}

// values returns every non-empty, trimmed value for key, accepting both the
// repeated form (key=a&key=b), the bracket form (key[]=a) and commas.
func values(q url.Values, key string) []string {
	var out []string
	for _, k := range []string{key, key + "[]"} {
		for _, v := range q[k] {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
	}
	return out
}

// first returns the first non-empty, trimmed single value among keys. Unlike
// values it does not split on commas, so "Doe, John" stays one name.
func first(q url.Values, keys []string) string {
	for _, key := range keys {
		for _, k := range []string{key, key + "[]"} {
			for _, v := range q[k] {
				if v = strings.TrimSpace(v); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

// uuidList reads the first alias that yields at least one valid id, so an
// all-invalid snake_case value does not hide a usable camelCase one.
func uuidList(log *zerolog.Logger, q url.Values, keys []string) []uuid.UUID {
	for _, k := range keys {
		raw := values(q, k)
		if len(raw) == 0 {
			continue
		}
		seen := make(map[uuid.UUID]bool, len(raw))
		var ids []uuid.UUID
		for _, v := range raw {
			id, err := uuid.Parse(v)
			if err != nil {
				log.Debug().Str("key", k).Str("value", v).Msg("ignoring invalid id")
				continue
			}
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			return ids
		}
	}
	return nil
}
