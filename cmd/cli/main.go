package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"cloud.google.com/go/civil"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/ledger-insights/internal/cashflow"
	"github.com/dvloznov/ledger-insights/internal/config"
	"github.com/dvloznov/ledger-insights/internal/domain"
	"github.com/dvloznov/ledger-insights/internal/ingest"
	"github.com/dvloznov/ledger-insights/internal/insights"
	"github.com/dvloznov/ledger-insights/internal/logger"
)

func main() {
	// A .env next to the binary may provide LEDGER_FILE; absence is fine.
	_ = godotenv.Load()

	log := logger.New(zerolog.InfoLevel)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "report":
		runReport(log)
	case "insights":
		runInsights(log)
	case "goal":
		runGoal(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Ledger Insights CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  report    Monthly cash flow, total savings and emergency runway")
	fmt.Println("  insights  Delayed-gratification insights from the ledger")
	fmt.Println("  goal      Plan a savings goal against a target date")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

// fileFlag registers the shared -file flag, defaulting to $LEDGER_FILE.
func fileFlag(fs *flag.FlagSet) *string {
	return fs.String("file", os.Getenv("LEDGER_FILE"), "Path to the transactions CSV file")
}

func runReport(log zerolog.Logger) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	file := fileFlag(fs)
	fs.Parse(os.Args[2:])

	transactions := loadLedger(log, *file)
	summaries := cashflow.Summarize(transactions)

	header := color.New(color.FgCyan, color.Bold)
	header.Println("Monthly Cash Flow")
	printSummaries(summaries)

	savings := cashflow.TotalSavings(transactions)
	runway := cashflow.Runway(summaries, savings)

	fmt.Printf("\nTotal savings: $%s\n", savings.StringFixed(2))
	if math.IsInf(runway, 1) {
		fmt.Println("Emergency runway: unlimited (no expense history)")
	} else {
		fmt.Printf("Emergency runway: %.1f months\n", runway)
	}
}

func runInsights(log zerolog.Logger) {
	fs := flag.NewFlagSet("insights", flag.ExitOnError)
	file := fileFlag(fs)
	configPath := fs.String("config", "", "Optional YAML tuning file (thresholds, vocabulary, rewards)")
	fs.Parse(os.Args[2:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Loading insight configuration failed")
	}

	transactions := loadLedger(log, *file)
	result := insights.New(cfg).Compose(transactions)

	header := color.New(color.FgCyan, color.Bold)
	header.Println("Delayed Gratification Insights")

	if len(result.Blocks) == 0 {
		fmt.Println("\nNo delayed gratification detected. That's okay - keep working on your goals!")
	}
	for _, block := range result.Blocks {
		fmt.Print(block)
	}
	fmt.Println(result.Summary)
}

func runGoal(log zerolog.Logger) {
	fs := flag.NewFlagSet("goal", flag.ExitOnError)
	file := fileFlag(fs)
	amount := fs.String("amount", "", "Savings goal amount, e.g. 5000")
	date := fs.String("date", "", "Target date (YYYY-MM-DD)")
	fs.Parse(os.Args[2:])

	if *amount == "" || *date == "" {
		log.Fatal().Msg("Usage: cli goal -amount N -date YYYY-MM-DD [-file PATH]")
	}
	goal, err := decimal.NewFromString(*amount)
	if err != nil {
		log.Fatal().Str("amount", *amount).Msg("Goal amount must be numeric")
	}
	target, err := civil.ParseDate(*date)
	if err != nil {
		log.Fatal().Str("date", *date).Msg("Target date must be YYYY-MM-DD")
	}

	transactions := loadLedger(log, *file)
	summaries := cashflow.Summarize(transactions)
	today := civil.DateOf(time.Now())

	plan, err := cashflow.PlanGoal(goal, target, today, summaries)
	if err != nil {
		log.Fatal().Err(err).Msg("Planning the savings goal failed")
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Println("Savings Goal Plan")
	fmt.Printf("Goal amount: $%s\n", goal.StringFixed(2))
	fmt.Printf("Target date: %s (%.1f months away)\n", target, plan.MonthsToTarget)
	fmt.Printf("Required monthly savings: $%s\n", plan.RequiredMonthly.StringFixed(2))
	if plan.Achievable {
		color.Green("Achievable under the current average net cash flow.")
	} else {
		color.Red("Not achievable under the current average net cash flow.")
	}

	if len(plan.Projected) > 0 {
		fmt.Println("\nProjected cash flow with the goal as an expense:")
		printSummaries(plan.Projected)
	}
}

func loadLedger(log zerolog.Logger, path string) []domain.Transaction {
	if path == "" {
		log.Fatal().Msg("A ledger file is required: pass -file or set LEDGER_FILE")
	}

	transactions, err := ingest.LoadCSV(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Loading the ledger failed")
	}
	log.Info().Str("file", path).Int("transactions", len(transactions)).Msg("Ledger loaded")
	return transactions
}

func printSummaries(summaries []cashflow.MonthlySummary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tNET")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.Month, s.Income.StringFixed(2), s.Expenses.StringFixed(2), s.Net.StringFixed(2))
	}
	w.Flush()
}
