package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/watchhabits/internal/config"
)

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ViewingActivity.csv")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	assert.NoError(t, ValidateFile(file))
	assert.NoError(t, ValidateFile("  "+file+" "))
	assert.Error(t, ValidateFile(""))
	assert.Error(t, ValidateFile(dir))
	assert.Error(t, ValidateFile(filepath.Join(dir, "missing.csv")))

	got, err := filePath("  " + file + " ")
	require.NoError(t, err)
	assert.Equal(t, file, got)
	_, err = os.Stat(got)
	assert.NoError(t, err)
}

func TestValidateYear(t *testing.T) {
	v := ValidateYear(2019)
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2019", false},
		{" 2024 ", false},
		{"2018", true},
		{"twenty", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, v(tt.in) != nil)
		})
	}
}

func TestValidateCount(t *testing.T) {
	v := ValidateCount(5)
	assert.NoError(t, v("1"))
	assert.NoError(t, v("5"))
	assert.Error(t, v("0"))
	assert.Error(t, v("6"))
	assert.Error(t, v("-2"))
	assert.Error(t, v("3.5"))
}

func TestValidateNotEmpty(t *testing.T) {
	assert.NoError(t, ValidateNotEmpty("output.csv"))
	assert.Error(t, ValidateNotEmpty(" \t"))
}

func TestOptions(t *testing.T) {
	assert.Len(t, analysisOptions(), 5)
	opts := unitOptions()
	assert.Len(t, opts, 5)
	assert.Equal(t, "hour of day", opts[4].Key)
}

func TestApplyReport(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, applyReport(&cfg, " 2019 ", "5", config.UnitMonth, config.RankBinge))
	assert.Equal(t, 2019, cfg.StartYear)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, config.UnitMonth, cfg.TimeUnit)
	assert.Equal(t, config.RankBinge, cfg.RankBy)

	before := cfg
	assert.Error(t, applyReport(&cfg, "next year", "5", config.UnitYear, config.RankShow))
	assert.Error(t, applyReport(&cfg, "2020", "ten", config.UnitYear, config.RankShow))
	assert.Equal(t, before, cfg)
}
