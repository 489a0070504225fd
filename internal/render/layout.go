// ABOUTME: Layout calculator: derives art and info-panel geometry from terminal size
// ABOUTME: Pure function of its inputs; aspect ratio clamps on the tighter axis, width wins

package render

import "math"

// Layout geometry constants.
const (
	// MinInfoWidth is the smallest useful info panel in display columns.
	MinInfoWidth = 44

	// Gutter separates the art from the info panel.
	Gutter = 4

	// minMatchedHeight floors the art height when it tracks the info
	// panel line count.
	minMatchedHeight = 10

	// promptReserve keeps rows free below the art for the prompt.
	promptReserve = 2
)

// TerminalSize is a whole snapshot of the terminal dimensions; it is
// replaced, never partially updated.
type TerminalSize struct {
	Columns int
	Rows    int
}

// LayoutConfig carries the configured layout constraints.
type LayoutConfig struct {
	MinArtWidth     int
	MinArtHeight    int
	MatchInfoHeight bool
}

// Layout is the derived geometry for one dimension epoch.
type Layout struct {
	ArtWidth  int
	ArtHeight int
	InfoWidth int
}

// ComputeLayout derives the target art size and info panel width.
// aspectW x aspectH is the raw frame geometry whose ratio must be
// preserved; infoLines is the current info panel height. The result is
// a pure function of the arguments: identical inputs yield identical
// output.
func ComputeLayout(size TerminalSize, cfg LayoutConfig, aspectW, aspectH, infoLines int) Layout {
	availW := size.Columns - MinInfoWidth - Gutter
	if availW < cfg.MinArtWidth {
		availW = cfg.MinArtWidth
	}
	availH := size.Rows - promptReserve
	if availH < cfg.MinArtHeight {
		availH = cfg.MinArtHeight
	}

	var artW, artH int
	switch {
	case aspectW <= 0 || aspectH <= 0:
		artW, artH = cfg.MinArtWidth, cfg.MinArtHeight

	case cfg.MatchInfoHeight:
		artH = infoLines
		if artH < minMatchedHeight {
			artH = minMatchedHeight
		}
		if artH > availH {
			artH = availH
		}
		artW = roundRatio(artH, aspectW, aspectH)
		if artW > availW {
			// Width is the tighter constraint; rederive height from it.
			artW = availW
			artH = roundRatio(artW, aspectH, aspectW)
		}

	default:
		artH = availH
		artW = roundRatio(artH, aspectW, aspectH)
		if artW > availW {
			artW = availW
			artH = roundRatio(artW, aspectH, aspectW)
		}
	}

	if artW < cfg.MinArtWidth {
		artW = cfg.MinArtWidth
	}
	if artH < cfg.MinArtHeight {
		artH = cfg.MinArtHeight
	}

	infoW := size.Columns - artW - Gutter
	if infoW < MinInfoWidth {
		infoW = MinInfoWidth
	}

	return Layout{ArtWidth: artW, ArtHeight: artH, InfoWidth: infoW}
}

// roundRatio returns round(base * num / den).
func roundRatio(base, num, den int) int {
	return int(math.Round(float64(base) * float64(num) / float64(den)))
}
