// Command finmarket looks up instruments and prints historical series from
// the terminal.
//
//	finmarket search copec
//	finmarket -span 5D chart 8320
//	finmarket -span MAX -frame chart 3969
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	finmarket "github.com/rfuenzalida/finmarket-go"
	"github.com/rfuenzalida/finmarket-go/finframe"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		market     = flag.String("market", "", "market to search (default from config, then chile)")
		span       = flag.String("span", string(finmarket.DefaultSpan), "chart time span (1D 5D 1M 3M 6M 1Y 3Y 5Y 10Y MAX)")
		volume     = flag.Bool("volume", false, "ask the upstream to include volume data")
		frame      = flag.Bool("frame", false, "print the chart as a data frame")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *market == "" {
		*market = cfg.Market
	}

	client := finmarket.NewClient(finmarket.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.timeout(),
	})

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	switch flag.Arg(0) {
	case "search":
		runSearch(client, flag.Arg(1), *market)
	case "chart":
		id, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			log.Fatalf("bad id notation %q: %v", flag.Arg(1), err)
		}
		runChart(client, id, finmarket.TimeSpan(*span), *volume, *frame)
	default:
		usage()
		os.Exit(2)
	}
}

func runSearch(client *finmarket.Client, query, market string) {
	results, err := client.SearchMarket(query, market)
	if err != nil {
		log.Fatalf("search: %v", err)
	}
	if len(results) == 0 {
		fmt.Println("no matches")
		return
	}
	for _, r := range results {
		fmt.Printf("%-10d %-35s %-12s %s\n",
			r.IDNotation, r.Name, r.Symbol.ValueOrZero(), r.Market.ValueOrZero())
	}
}

func runChart(client *finmarket.Client, id int, span finmarket.TimeSpan, volume, asFrame bool) {
	if !span.Recognized() {
		slog.Warn(fmt.Sprintf("span %s is not a documented code, forwarding as-is", span))
	}

	chart, err := client.GetChart(finmarket.ChartRequest{
		IDNotation: id,
		TimeSpan:   span,
		Volume:     volume,
	})
	if err != nil {
		log.Fatalf("chart: %v", err)
	}
	if len(chart.Points) == 0 {
		fmt.Println("no points")
		return
	}

	if asFrame {
		fmt.Println(finframe.New(chart.Points))
		return
	}
	for _, p := range chart.Points {
		fmt.Printf("%s  open=%.*f high=%.*f low=%.*f close=%.*f volume=%d pctrel=%+.2f\n",
			p.Date.Format("2006-01-02 15:04:05"),
			p.Decimals, p.Open, p.Decimals, p.High, p.Decimals, p.Low, p.Decimals, p.Close,
			p.Volume, p.PctRel)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage:
  finmarket [flags] search <query>
  finmarket [flags] chart <id-notation>

flags:
`)
	flag.PrintDefaults()
}
