// Command sweepplot renders an HTML report from a latbuilder JSONL trace
// (report.Record lines), following the teacher's go-echarts reporting idiom
// (cmd/analysis, Additionnals/plot_pacs_sweep.go): one components.Page per
// run, one chart per quantity of interest.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type record struct {
	Dimension int       `json:"dimension"`
	Generator string    `json:"generator"`
	Merit     []float64 `json:"merit"`
	Note      string    `json:"note,omitempty"`
}

func readRecords(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r record
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("sweepplot: decoding %q: %w", path, err)
		}
		out = append(out, r)
	}
	return out, scanner.Err()
}

func meritLineChart(title string, recs []record) *charts.Line {
	xLabels := make([]string, len(recs))
	unilevel := make([]opts.LineData, len(recs))
	for i, r := range recs {
		xLabels[i] = fmt.Sprintf("%d", r.Dimension+1)
		var v float64
		if len(r.Merit) > 0 {
			v = r.Merit[len(r.Merit)-1]
		}
		unilevel[i] = opts.LineData{Value: v}
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%d coordinates", len(recs))}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1100px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xLabels).
		AddSeries("merit", unilevel).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return line
}

func main() {
	jsonlPath := flag.String("jsonl", "", "path to a latbuilder JSONL trace")
	outPath := flag.String("out", "sweep_report.html", "output HTML path")
	title := flag.String("title", "CBC search trace", "chart title")
	flag.Parse()

	if *jsonlPath == "" {
		log.Fatal("sweepplot: -jsonl is required")
	}
	recs, err := readRecords(*jsonlPath)
	if err != nil {
		log.Fatalf("sweepplot: %v", err)
	}
	if len(recs) == 0 {
		log.Fatal("sweepplot: no records found")
	}

	page := components.NewPage()
	page.AddCharts(meritLineChart(*title, recs))

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("sweepplot: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("sweepplot: render: %v", err)
	}
	fmt.Println("report written to", *outPath)
}
