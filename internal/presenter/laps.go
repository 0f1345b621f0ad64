package presenter

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/lapwatch/internal/models"
)

const noneMark = "—"

// LapStatistics returns the lap count and the best and worst splits.
// Worst is reported with two or more laps, even when every split ties.
func LapStatistics(laps []models.Lap) models.LapStats {
	stats := models.LapStats{Count: len(laps)}
	if len(laps) == 0 {
		return stats
	}
	best, worst := laps[0].Split, laps[0].Split
	for _, lap := range laps[1:] {
		if lap.Split < best {
			best = lap.Split
		}
		if lap.Split > worst {
			worst = lap.Split
		}
	}
	stats.Best, stats.HasBest = best, true
	if len(laps) > 1 {
		stats.Worst, stats.HasWorst = worst, true
	}
	return stats
}

// RenderedLaps formats laps newest first. Lap numbers follow recording
// order regardless of display order.
func RenderedLaps(laps []models.Lap) []models.LapRow {
	if len(laps) == 0 {
		return nil
	}
	stats := LapStatistics(laps)
	rows := make([]models.LapRow, 0, len(laps))
	for i := len(laps) - 1; i >= 0; i-- {
		lap := laps[i]
		isBest := stats.HasBest && lap.Split == stats.Best
		rows = append(rows, models.LapRow{
			Number:  lap.Number,
			Total:   FormatTime(lap.Total),
			Split:   FormatTime(lap.Split),
			IsBest:  isBest,
			IsWorst: !isBest && stats.HasWorst && lap.Split == stats.Worst,
		})
	}
	return rows
}

// BestLabel returns the stats-bar text for the best split.
func BestLabel(laps []models.Lap) string {
	stats := LapStatistics(laps)
	if !stats.HasBest {
		return "Best: " + noneMark
	}
	return "Best: " + FormatTime(stats.Best)
}

// WorstLabel returns the stats-bar text for the worst split. Callers that
// want to hide a worst equal to best check LapStatistics first.
func WorstLabel(laps []models.Lap) string {
	stats := LapStatistics(laps)
	if !stats.HasWorst {
		return "Worst: " + noneMark
	}
	return "Worst: " + FormatTime(stats.Worst)
}

// LapsText renders laps for the clipboard, newest first.
func LapsText(laps []models.Lap) string {
	if len(laps) == 0 {
		return ""
	}
	lines := make([]string, 0, len(laps))
	for _, row := range RenderedLaps(laps) {
		lines = append(lines, fmt.Sprintf("Lap %d: %s (+%s)", row.Number, row.Total, row.Split))
	}
	return strings.Join(lines, "\n")
}
