package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"stock-predictor/internal/predictor/dto"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	gainStyle = cellStyle.Foreground(lipgloss.Color("#00FF00"))
	lossStyle = cellStyle.Foreground(lipgloss.Color("#FF0000"))

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

func writeSeries(w io.Writer, format string, resp *dto.SeriesResponse) error {
	if format != outputTable {
		return writeStructured(w, format, resp)
	}

	rows := make([][]string, 0, len(resp.Bars))
	for _, b := range resp.Bars {
		rows = append(rows, []string{
			b.Date,
			formatPrice(b.Open),
			formatPrice(b.High),
			formatPrice(b.Low),
			formatPrice(b.Close),
			strconv.FormatInt(b.Volume, 10),
			formatSigned(b.Change),
			formatSigned(b.ChangePercent) + "%",
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("DATE", "OPEN", "HIGH", "LOW", "CLOSE", "VOLUME", "CHANGE", "CHANGE %").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			// close and both change columns follow the bar's direction
			if (col == 4 || col >= 6) && row >= 0 && row < len(resp.Bars) {
				if resp.Bars[row].Close >= resp.Bars[row].Open {
					return gainStyle
				}
				return lossStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintf(w, "%s  profile=%s  days=%d  base=%s\n%s\n",
		headerStyle.Render("Series"), resp.Profile, resp.Days, formatPrice(resp.BasePrice), t.String())
	return err
}

func writePrediction(w io.Writer, format string, p *dto.PredictionRecordResponse) error {
	if p == nil {
		return fmt.Errorf("no prediction to render")
	}
	if format != outputTable {
		return writeStructured(w, format, p)
	}

	direction := gainStyle
	if p.PriceChange < 0 {
		direction = lossStyle
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Rows(
			[]string{"Symbol", p.Symbol},
			[]string{"Input date", p.InputDate},
			[]string{"Next trading day", p.NextDayDate},
			[]string{"Input close", formatPrice(p.InputClose)},
			[]string{"Predicted price", formatPrice(p.PredictedPrice)},
			[]string{"Price change", formatSigned(p.PriceChange)},
			[]string{"Percent change", formatSigned(p.PercentChange) + "%"},
			[]string{"Confidence", strconv.FormatFloat(p.Confidence*100, 'f', 1, 64) + "%"},
			[]string{"Recommendation", p.Recommendation},
			[]string{"Model", p.ModelUsed},
			[]string{"Volatility", formatPrice(p.Insights.Volatility)},
			[]string{"Support", formatPrice(p.Insights.SupportLevel)},
			[]string{"Resistance", formatPrice(p.Insights.ResistanceLevel)},
			[]string{"Trend", p.Insights.PositionRelativeToAverage},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case col == 0:
				return headerStyle
			case row >= 4 && row <= 6:
				return direction
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, outputTable, outputJSON, outputYAML)
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatSigned(v float64) string {
	if v > 0 {
		return "+" + formatPrice(v)
	}
	return formatPrice(v)
}
