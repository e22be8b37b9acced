package viewing

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportHeader = "Profile Name,Start Time,Duration,Attributes,Title,Supplemental Video Type,Device Type,Bookmark,Latest Bookmark,Country\n"

func TestParseStartTime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"netflix export", "2021-03-05 02:15:09", time.Date(2021, 3, 5, 2, 15, 9, 0, time.UTC), false},
		{"rfc3339 with offset", "2021-03-05T02:15:09-05:00", time.Date(2021, 3, 5, 7, 15, 9, 0, time.UTC), false},
		{"iso without zone", "2021-03-05T02:15:09", time.Date(2021, 3, 5, 2, 15, 9, 0, time.UTC), false},
		{"date only", "2021-03-05", time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"padded", "  2021-03-05 02:15:09 ", time.Date(2021, 3, 5, 2, 15, 9, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "yesterday", time.Time{}, true},
		{"bad month", "2021-13-05 02:15:09", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStartTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedTimestamp)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"episode", "0:42:17", 42*time.Minute + 17*time.Second, false},
		{"zero padded hours", "01:02:03", time.Hour + 2*time.Minute + 3*time.Second, false},
		{"long movie", "3:01:00", 3*time.Hour + time.Minute, false},
		{"trailer", "0:00:12", 12 * time.Second, false},
		{"zero", "0:00:00", 0, false},
		{"missing field", "42:17", 0, true},
		{"negative", "-1:00:00", 0, true},
		{"explicit plus", "+1:00:00", 0, true},
		{"minutes overflow", "0:60:00", 0, true},
		{"seconds overflow", "0:00:75", 0, true},
		{"empty", "", 0, true},
		{"words", "an hour", 0, true},
		{"largest", "2562046:59:59", 2562046*time.Hour + 59*time.Minute + 59*time.Second, false},
		{"hours overflow", "2562047:00:00", 0, true},
		{"huge hours", "3000000:00:00", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode(t *testing.T) {
	in := "\ufeff" + exportHeader +
		"Alice,2021-03-05 02:15:09,0:42:17,,Stranger Things: Season 1: Chapter One,,Chrome PC,0:42:17,0:42:17,US (United States)\n" +
		"Bob,2021-03-04 20:00:00,0:00:31,,\"Love, Death & Robots: Volume 1: Sonnie's Edge\",TRAILER,Apple TV,0:00:31,0:00:31,US (United States)\n"

	recs, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	a := recs[0]
	assert.Equal(t, 2, a.Line)
	assert.Equal(t, "Alice", a.Profile)
	assert.True(t, a.Start.Equal(time.Date(2021, 3, 5, 2, 15, 9, 0, time.UTC)))
	assert.Equal(t, 42*time.Minute+17*time.Second, a.Duration)
	assert.Equal(t, "Stranger Things: Season 1: Chapter One", a.Title)
	assert.Equal(t, "Chrome PC", a.DeviceType)
	assert.False(t, a.IsSupplemental())
	assert.Equal(t, "US (United States)", a.Country)

	b := recs[1]
	assert.Equal(t, 3, b.Line)
	assert.Equal(t, "Love, Death & Robots: Volume 1: Sonnie's Edge", b.Title)
	assert.True(t, b.IsSupplemental())

	assert.Equal(t, []string{"Alice", "Bob"}, Profiles(recs))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		wantCol string
	}{
		{"empty input", "", ErrMissingColumn, ""},
		{"missing title", "Profile Name,Start Time,Duration\nA,2021-01-01 00:00:00,0:01:00\n", ErrMissingColumn, ""},
		{"bad timestamp", exportHeader + "A,not-a-time,0:01:00,,T,,TV,,,\n", ErrMalformedTimestamp, ColStartTime},
		{"bad duration", exportHeader + "A,2021-01-01 00:00:00,1 minute,,T,,TV,,,\n", ErrMalformedDuration, ColDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantCol != "" {
				var re *RecordError
				require.ErrorAs(t, err, &re)
				assert.Equal(t, tt.wantCol, re.Column)
				assert.Equal(t, 2, re.Line)
			}
		})
	}
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestCleanRoundTrip(t *testing.T) {
	recs := []CleanRecord{
		{
			Profile: "Alice", Year: 2021, Month: 3, Day: 4, Weekday: 3, Hour: 21, Minute: 15,
			DurationMin: 42.28, BingeMin: 85.5,
			Title: "Stranger Things", Season: "Season 1", Episode: "Chapter One", DeviceType: "Chrome PC",
		},
		{
			Profile: "Alice", Year: 2021, Month: 3, Day: 5, Weekday: 4, Hour: 0, Minute: 1,
			DurationMin: 120, BingeMin: 120,
			Title: "The Irishman", DeviceType: "Apple TV",
		},
	}

	path := filepath.Join(t.TempDir(), "clean.csv")
	var buf bytes.Buffer
	require.NoError(t, EncodeClean(&buf, recs))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(CleanHeader, ","), lines[0])
	assert.Equal(t, "Alice,2021,3,4,3,21,15,42.28,85.5,Stranger Things,,Season 1,Chapter One,Chrome PC", lines[1])

	got, err := ReadCleanFile(path)
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}

func TestDecodeClean_BadNumber(t *testing.T) {
	in := strings.Join(CleanHeader, ",") + "\nA,twenty,3,4,3,21,15,42,42,T,,,,TV\n"
	_, err := DecodeClean(strings.NewReader(in))
	var re *RecordError
	require.ErrorAs(t, err, &re)
	assert.ErrorIs(t, err, ErrMalformedNumber)
	assert.Equal(t, ColStartYear, re.Column)
}

func TestDate(t *testing.T) {
	r := CleanRecord{Year: 2020, Month: 1, Day: 9}
	assert.Equal(t, "2020-01-09", r.Date())
}

func TestMondayWeekday(t *testing.T) {
	assert.Equal(t, 0, MondayWeekday(time.Monday))
	assert.Equal(t, 5, MondayWeekday(time.Saturday))
	assert.Equal(t, 6, MondayWeekday(time.Sunday))
}
