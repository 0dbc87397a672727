package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/asesorlab/estax/internal/breakeven"
	"github.com/asesorlab/estax/internal/calculation"
	"github.com/asesorlab/estax/internal/compare"
	"github.com/asesorlab/estax/internal/config"
	"github.com/asesorlab/estax/internal/domain"
	"github.com/asesorlab/estax/internal/output"
	"github.com/asesorlab/estax/internal/transform"
	"github.com/asesorlab/estax/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logrusEngineLogger implements calculation.Logger over a logrus logger.
type logrusEngineLogger struct {
	log *logrus.Logger
}

func (l logrusEngineLogger) Debugf(format string, args ...any) { l.log.Debugf(format, args...) }
func (l logrusEngineLogger) Infof(format string, args ...any)  { l.log.Infof(format, args...) }
func (l logrusEngineLogger) Warnf(format string, args ...any)  { l.log.Warnf(format, args...) }
func (l logrusEngineLogger) Errorf(format string, args ...any) { l.log.Errorf(format, args...) }

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "estax",
	Short: "Spanish tax and labor cost calculators",
	Long:  "Calculators for the special expatriate regime (Beckham Law) and employer labor costs",
}

// newEngine builds an engine from the global --rates and --debug flags.
func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	ratesFile, _ := cmd.Flags().GetString("rates")
	engine, err := config.NewEngineFromFile(ratesFile)
	if err != nil {
		return nil, err
	}
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		log.SetLevel(logrus.DebugLevel)
		engine.Debug = true
		engine.SetLogger(logrusEngineLogger{log})
	}
	return engine, nil
}

func formatterFor(cmd *cobra.Command) (output.ReportFormatter, error) {
	name, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(name)
	if f == nil {
		return nil, fmt.Errorf("unknown format %q (supported: %v)", name, output.FormatterNames())
	}
	return f, nil
}

var beckhamCmd = &cobra.Command{
	Use:   "beckham",
	Short: "Compare the standard progressive regime against the special flat regime",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		salaryStr, _ := cmd.Flags().GetString("salary")
		additionalStr, _ := cmd.Flags().GetString("additional")
		region, _ := cmd.Flags().GetString("region")

		salary, err := decimal.NewFromString(salaryStr)
		if err != nil {
			return fmt.Errorf("invalid salary %q: %w", salaryStr, err)
		}
		additional, err := decimal.NewFromString(additionalStr)
		if err != nil {
			return fmt.Errorf("invalid additional income %q: %w", additionalStr, err)
		}

		input := domain.ComparisonInput{
			GrossAnnualSalary: salary,
			AdditionalIncome:  additional,
			Region:            region,
		}
		if err := input.Validate(); err != nil {
			return err
		}

		result := engine.CompareRegimes(input)

		formatter, err := formatterFor(cmd)
		if err != nil {
			return err
		}
		data, err := formatter.FormatComparison(input, result)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

// laborInputFromFlags builds and validates a labor-cost input from flags.
func laborInputFromFlags(cmd *cobra.Command) (domain.LaborCostInput, error) {
	salaryStr, _ := cmd.Flags().GetString("salary")
	mode, _ := cmd.Flags().GetString("mode")
	payments, _ := cmd.Flags().GetInt("payments")
	contract, _ := cmd.Flags().GetString("contract")
	employees, _ := cmd.Flags().GetInt("employees")
	risk, _ := cmd.Flags().GetString("risk")

	salary, err := decimal.NewFromString(salaryStr)
	if err != nil {
		return domain.LaborCostInput{}, fmt.Errorf("invalid salary %q: %w", salaryStr, err)
	}

	input := domain.LaborCostInput{
		GrossSalary:     salary,
		SalaryInputMode: domain.SalaryInputMode(mode),
		PaymentsPerYear: payments,
		ContractType:    domain.ContractType(contract),
		EmployeeCount:   employees,
		RiskTier:        domain.RiskTier(risk),
	}
	if err := input.Validate(); err != nil {
		return domain.LaborCostInput{}, err
	}
	return input, nil
}

var laborCmd = &cobra.Command{
	Use:   "labor",
	Short: "Compute employer contributions, deductions and net salary",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		input, err := laborInputFromFlags(cmd)
		if err != nil {
			return err
		}

		result := engine.ComputeLaborCost(input)

		formatter, err := formatterFor(cmd)
		if err != nil {
			return err
		}
		data, err := formatter.FormatLaborCost(input, result)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare labor-cost what-if templates against a base configuration",
	Long: "Computes the base configuration plus one scenario per --template and prints " +
		"a side-by-side comparison with the key differences",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		base, err := laborInputFromFlags(cmd)
		if err != nil {
			return err
		}

		templates, _ := cmd.Flags().GetStringSlice("template")
		if len(templates) == 0 {
			return fmt.Errorf("at least one --template is required (available: %v)",
				transform.CreateBuiltInTemplates().List())
		}
		if 1+len(templates) > compare.MaxScenarios {
			return fmt.Errorf("too many scenarios: base plus %d templates exceeds the limit of %d",
				len(templates), compare.MaxScenarios)
		}

		registry := transform.CreateBuiltInTemplates()
		session := compare.NewSession()

		if _, err := session.Add("base", base, engine.ComputeLaborCost(base)); err != nil {
			return err
		}
		for _, name := range templates {
			tpl, ok := registry.Get(name)
			if !ok {
				return fmt.Errorf("template %q not found (available: %v)", name, registry.List())
			}
			modified, err := transform.ApplyTemplate(base, tpl)
			if err != nil {
				return fmt.Errorf("applying template %s: %w", name, err)
			}
			if _, err := session.Add(tpl.Name, modified, engine.ComputeLaborCost(modified)); err != nil {
				return err
			}
		}

		doc := compare.BuildDocument(session)
		formatName, _ := cmd.Flags().GetString("format")
		switch formatName {
		case "json":
			out, err := (&compare.JSONFormatter{Pretty: true}).Format(doc)
			if err != nil {
				return err
			}
			fmt.Println(out)
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(doc)
			if err != nil {
				return err
			}
			fmt.Print(out)
		default:
			fmt.Print((&compare.TableFormatter{}).Format(doc))
		}
		return nil
	},
}

var breakEvenCmd = &cobra.Command{
	Use:   "break-even",
	Short: "Find the income at which the special flat regime starts saving money",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		region, _ := cmd.Flags().GetString("region")
		solver := breakeven.NewDefaultSolver(engine.Beckham)
		result, err := solver.Solve(region)
		if err != nil {
			return err
		}

		fmt.Println("BREAK-EVEN INCOME ANALYSIS")
		fmt.Println("==========================")
		regionLabel := region
		if regionLabel == "" {
			regionLabel = "default"
		}
		fmt.Printf("Region:            %s\n", regionLabel)
		fmt.Printf("Break-even income: %s\n", output.FormatEuro(result.BreakEvenIncome))
		fmt.Printf("Saving at result:  %s\n", output.FormatEuroCents(result.SavingAtResult))
		if !result.Converged {
			fmt.Println("Warning: solver hit the iteration limit before reaching tolerance")
		}
		fmt.Println("\nBelow this income the standard regime is cheaper; above it the special regime saves money.")
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [rates-file]",
	Short: "Validate a rate-table configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Printf("Rate file %s is valid\n", args[0])
		return nil
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the active rate tables as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(engine.Rates, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive labor-cost playground",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		return tui.Run(engine)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "estax %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func init() {
	rootCmd.PersistentFlags().String("rates", "", "YAML rate-table file (defaults to built-in tables)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("format", "console", "output format: console, json or csv")

	beckhamCmd.Flags().String("salary", "0", "gross annual salary")
	beckhamCmd.Flags().String("additional", "0", "additional annual income")
	beckhamCmd.Flags().String("region", "default", "autonomous community key")

	for _, c := range []*cobra.Command{laborCmd, compareCmd} {
		c.Flags().String("salary", "0", "gross salary")
		c.Flags().String("mode", "annual", "salary input mode: monthly or annual")
		c.Flags().Int("payments", 12, "payments per year: 12 or 14")
		c.Flags().String("contract", "permanent", "contract type: permanent or temporary")
		c.Flags().Int("employees", 1, "number of employees")
		c.Flags().String("risk", "low", "industry risk tier: low, medium or high")
	}
	compareCmd.Flags().StringSlice("template", nil, "what-if template to apply (repeatable)")

	breakEvenCmd.Flags().String("region", "default", "autonomous community key")

	rootCmd.AddCommand(beckhamCmd, laborCmd, compareCmd, breakEvenCmd, validateCmd, ratesCmd, tuiCmd, versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
