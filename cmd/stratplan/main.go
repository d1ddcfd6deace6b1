package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"stratplan/internal/audit"
	"stratplan/internal/narrative"
	"stratplan/internal/plan"
	"stratplan/internal/request"
	"stratplan/internal/server"
)

const appName = "stratplan"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s: strategic plan assembly and narrative generation\n\n", appName)
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [command] [flags]\n\n", appName)
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  plan    Generate a plan and narrative from a YAML request file")
		fmt.Fprintln(os.Stderr, "  serve   Run the HTTP service")
		fmt.Fprintln(os.Stderr, "  help    Show this help")
	}

	args := os.Args[1:]
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		flag.Usage()
		return
	}

	switch args[0] {
	case "plan":
		if err := runPlan(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "serve":
		if err := runServe(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		flag.Usage()
		os.Exit(1)
	}
}

func runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	inputPath := fs.String("input", "", "Path to YAML plan request file")
	jsonPath := fs.String("json", "", "Write the plan JSON to this path instead of stdout")
	startYear := fs.Int("start-year", 0, "Start year for year1/year2/year3 keys (default: current year)")
	cadence := fs.Int("cadence", plan.DefaultMilestoneCadence, "Months between milestones")
	auditDB := fs.String("audit-db", "", "Audit event DB path (empty: audit disabled)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inputPath == "" {
		return fmt.Errorf("%s plan: -input is required", appName)
	}

	req, err := request.LoadFile(*inputPath)
	if err != nil {
		return err
	}

	defaultYear := *startYear
	if defaultYear == 0 {
		defaultYear = time.Now().UTC().Year()
	}
	in, err := request.Convert(req, defaultYear)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	in.ID = "PLAN-" + requestID
	in.MonthsPerMilestone = *cadence

	record := plan.Assemble(in)
	text, err := narrative.Narrate(record)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	data = append(data, '\n')
	if *jsonPath != "" {
		if err := os.WriteFile(*jsonPath, data, 0o644); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
	} else {
		os.Stdout.Write(data)
	}
	fmt.Println()
	fmt.Println(text)

	if *auditDB != "" {
		logger := audit.NewLogger(*auditDB)
		event := audit.PlanGenerated{
			RequestID:   requestID,
			Company:     record.Profile.Name,
			TargetYears: len(record.Targets),
			Narrative:   len(text),
		}
		if err := logger.LogEvent("cli", "plan_generated", event); err != nil {
			fmt.Fprintln(os.Stderr, "audit log failed:", err)
		}
	}

	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	listen := fs.String("listen", "", "Listen address (overrides STRATPLAN_LISTEN)")
	auditDB := fs.String("audit-db", "", "Audit event DB path (overrides STRATPLAN_AUDIT_DB)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.ListenAddr = *listen
	}
	if *auditDB != "" {
		cfg.AuditDBPath = *auditDB
	}

	var logger *audit.Logger
	if cfg.AuditDBPath != "" {
		logger = audit.NewLogger(cfg.AuditDBPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, logger).Run(ctx)
}
