package viewing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// requiredColumns must be present in a raw export header.
var requiredColumns = []string{ColProfile, ColStartTime, ColDuration, ColTitle}

// header maps column names to their index in a row.
type header map[string]int

func readHeader(r *csv.Reader, required []string) (header, error) {
	names, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := make(header, len(names))
	for i, n := range names {
		if i == 0 {
			n = strings.TrimPrefix(n, "\ufeff")
		}
		h[strings.TrimSpace(n)] = i
	}
	for _, col := range required {
		if _, ok := h[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	return h, nil
}

// get returns the trimmed value of col, or "" when the column is absent.
func (h header) get(row []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr
}

// openInput opens path, mapping a missing file to ErrInputNotFound.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// ReadFile reads a raw viewing-activity export. Any malformed row fails the
// whole read.
func ReadFile(path string) ([]ViewRecord, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a raw viewing-activity export from r.
func Decode(r io.Reader) ([]ViewRecord, error) {
	cr := newReader(r)
	h, err := readHeader(cr, requiredColumns)
	if err != nil {
		return nil, err
	}

	var out []ViewRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		rec := ViewRecord{
			Line:                  line,
			Profile:               h.get(row, ColProfile),
			Title:                 h.get(row, ColTitle),
			DeviceType:            h.get(row, ColDeviceType),
			SupplementalVideoType: h.get(row, ColSupplemental),
			Attributes:            h.get(row, ColAttributes),
			Bookmark:              h.get(row, ColBookmark),
			LatestBookmark:        h.get(row, ColLatestBookmark),
			Country:               h.get(row, ColCountry),
		}

		raw := h.get(row, ColStartTime)
		if rec.Start, err = ParseStartTime(raw); err != nil {
			return nil, &RecordError{Line: line, Column: ColStartTime, Value: raw, Err: err}
		}
		raw = h.get(row, ColDuration)
		if rec.Duration, err = ParseDuration(raw); err != nil {
			return nil, &RecordError{Line: line, Column: ColDuration, Value: raw, Err: err}
		}
		out = append(out, rec)
	}
}

// EncodeClean writes the cleaned header and records to w.
func EncodeClean(w io.Writer, records []CleanRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CleanHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.row()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (r CleanRecord) row() []string {
	return []string{
		r.Profile,
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Month),
		strconv.Itoa(r.Day),
		strconv.Itoa(r.Weekday),
		strconv.Itoa(r.Hour),
		strconv.Itoa(r.Minute),
		formatFloat(r.DurationMin),
		formatFloat(r.BingeMin),
		r.Title,
		r.Subtitle,
		r.Season,
		r.Episode,
		r.DeviceType,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ReadCleanFile reads a file written by [EncodeClean].
func ReadCleanFile(path string) ([]CleanRecord, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeClean(f)
}

// DecodeClean reads cleaned records from r. Text columns other than the
// profile and title may be absent.
func DecodeClean(r io.Reader) ([]CleanRecord, error) {
	cr := newReader(r)
	h, err := readHeader(cr, []string{
		ColProfile, ColStartYear, ColStartMonth, ColStartDay, ColStartWeekday,
		ColStartHour, ColStartMinute, ColDurationMin, ColBingeMin, ColTitle,
	})
	if err != nil {
		return nil, err
	}

	var out []CleanRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		p := numParser{h: h, row: row, line: line}

		rec := CleanRecord{
			Profile:     h.get(row, ColProfile),
			Year:        p.intCol(ColStartYear),
			Month:       p.intCol(ColStartMonth),
			Day:         p.intCol(ColStartDay),
			Weekday:     p.intCol(ColStartWeekday),
			Hour:        p.intCol(ColStartHour),
			Minute:      p.intCol(ColStartMinute),
			DurationMin: p.floatCol(ColDurationMin),
			BingeMin:    p.floatCol(ColBingeMin),
			Title:       h.get(row, ColTitle),
			Subtitle:    h.get(row, ColSubtitle),
			Season:      h.get(row, ColSeason),
			Episode:     h.get(row, ColEpisode),
			DeviceType:  h.get(row, ColDeviceType),
		}
		if p.err != nil {
			return nil, p.err
		}
		out = append(out, rec)
	}
}

// numParser parses numeric columns of one row, keeping the first error.
type numParser struct {
	h    header
	row  []string
	line int
	err  error
}

func (p *numParser) intCol(col string) int {
	raw := p.h.get(p.row, col)
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(col, raw)
	}
	return n
}

func (p *numParser) floatCol(col string) float64 {
	raw := p.h.get(p.row, col)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(col, raw)
	}
	return v
}

func (p *numParser) fail(col, raw string) {
	if p.err == nil {
		p.err = &RecordError{Line: p.line, Column: col, Value: raw, Err: ErrMalformedNumber}
	}
}
