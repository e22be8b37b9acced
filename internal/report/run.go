package report

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/backmassage/watchhabits/internal/config"
	"github.com/backmassage/watchhabits/internal/logging"
)

// Run is the report entry point: it loads cfg.InputPath and draws the
// configured analysis to w.
func Run(cfg *config.Config, log *logging.Logger, w io.Writer, profile termenv.Profile) error {
	t, err := Load(cfg.InputPath)
	if err != nil {
		return err
	}
	log.Debug("Loaded %d records from %s", t.Len(), cfg.InputPath)
	return Execute(t, cfg, log, w, profile)
}

// Execute draws the configured analysis of an already loaded table.
func Execute(t *Table, cfg *config.Config, log *logging.Logger, w io.Writer, profile termenv.Profile) error {
	res, err := Analyze(t, OptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	log.Debug("Analysis %s: %d bars", cfg.Analysis, len(res.Values))

	style := DefaultStyle()
	style.Width = cfg.ChartWidth
	return NewChart(w, style, profile).RenderResult(res)
}
