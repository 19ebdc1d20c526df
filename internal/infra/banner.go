package infra

import (
	"fmt"
	"io"
)

// ANSI Color Codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// BannerInfo is what the startup banner shows.
type BannerInfo struct {
	Version         string
	Exchange        string
	Supported       bool
	Generic         bool // no variant registered, base capabilities only
	Instrumentation string
}

// PrintBanner displays the startup banner with exchange support warnings.
func PrintBanner(w io.Writer, info BannerInfo) {
	color := ColorGreen
	support := "OFFICIALLY SUPPORTED"

	switch {
	case info.Generic:
		color = ColorRed
		support = "UNKNOWN (BASE CAPABILITIES)"
	case !info.Supported:
		color = ColorYellow
		support = "COMMUNITY (NOT OFFICIALLY SUPPORTED)"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s###########################################################%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#                                                         #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#                 Tradescope Trading Bot                  #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#                                                         #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#   EXCHANGE: %-35s #%s\n", color, info.Exchange, ColorReset)
	fmt.Fprintf(w, "%s#   SUPPORT:  %-35s #%s\n", color, support, ColorReset)
	fmt.Fprintf(w, "%s#   FREQAI:   %-35s #%s\n", ColorCyan, info.Instrumentation, ColorReset)
	fmt.Fprintf(w, "%s#   VERSION:  %-35s #%s\n", color, info.Version, ColorReset)
	fmt.Fprintf(w, "%s#                                                         #%s\n", color, ColorReset)

	if info.Generic {
		fmt.Fprintf(w, "%s#   WARNING: exchange has no tested adjustments, some     #%s\n", ColorRed, ColorReset)
		fmt.Fprintf(w, "%s#   features may not work as expected                     #%s\n", ColorRed, ColorReset)
	}

	fmt.Fprintf(w, "%s###########################################################%s\n", color, ColorReset)
	fmt.Fprintln(w)
}
