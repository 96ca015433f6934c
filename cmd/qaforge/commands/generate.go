package commands

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/qaforge/qaforge/config"
	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/gen"
)

// GenerateCmd generates artifacts locally without the HTTP server
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate QA documentation from a requirement",
	Long:  `Read a requirement from a file (or stdin) and write the test plan, test-case table, and exploratory charters to the output directory.`,
	RunE:  runGenerate,
}

var (
	generateFile    string
	generateOutDir  string
	generatePDFPlan bool
)

func init() {
	GenerateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "Requirement file (default: stdin)")
	GenerateCmd.Flags().StringVarP(&generateOutDir, "out", "o", "", "Output directory (overrides config)")
	GenerateCmd.Flags().BoolVar(&generatePDFPlan, "pdf", false, "Render the test plan as PDF")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	var requirement []byte
	if generateFile != "" {
		requirement, err = os.ReadFile(generateFile)
		if err != nil {
			return errors.Wrapf(err, "failed to read requirement file %s", generateFile)
		}
	} else {
		requirement, err = io.ReadAll(os.Stdin)
		if err != nil {
			return errors.Wrap(err, "failed to read requirement from stdin")
		}
	}

	outDir := cfg.Output.Dir
	if generateOutDir != "" {
		outDir = generateOutDir
	}

	opts := gen.OptionsFromConfig(cfg)
	if generatePDFPlan {
		opts.PlanFormat = "pdf"
	}

	generator := gen.NewGenerator(gen.NewWriter(outDir), opts)
	result, err := generator.Generate(gen.Request{Requirement: string(requirement)})
	if err != nil {
		if errors.IsInvalidRequestError(err) {
			return errors.New("requirement text is required")
		}
		return err
	}

	pterm.Success.Printf("Generated QA documentation for %q\n", result.FeatureName)
	for _, a := range result.Artifacts {
		pterm.Info.Printf("  %s\n", a.FileName)
	}
	pterm.Info.Printf("Test cases: %d, charters: %d, output: %s\n",
		result.TotalTestCases, result.CharterCount, outDir)
	return nil
}
