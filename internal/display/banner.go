package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const banner = `              _       _     _           _     _ _
__      ____ _| |_ ___| |__ | |__   __ _| |__ (_) |_ ___
\ \ /\ / / _` + "`" + ` | __/ __| '_ \| '_ \ / _` + "`" + ` | '_ \| | __/ __|
 \ V  V / (_| | || (__| | | | | | | (_| | |_) | | |_\__ \
  \_/\_/ \__,_|\__\___|_| |_|_| |_|\__,_|_.__/|_|\__|___/`

// PrintBanner writes the ASCII art banner to w in magenta when profile has
// colors.
func PrintBanner(w io.Writer, profile termenv.Profile) {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	style := r.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	fmt.Fprintln(w, style.Render(banner))
}
