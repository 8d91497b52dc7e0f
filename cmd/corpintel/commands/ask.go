package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/corpintel/corpintel/internal/config"
	"github.com/corpintel/corpintel/internal/intel"
	"github.com/corpintel/corpintel/internal/intel/orchestrator"
	"github.com/corpintel/corpintel/internal/provider"
	"github.com/corpintel/corpintel/internal/search"
)

var (
	askCompany string
	askWebsite string
	askPlain   bool
)

// Progress line styles
var (
	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D4FF")).
			Bold(true)

	agentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	queryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about a company from the terminal",
	Long: `Run the research pipeline in-process and print the answer.

Example:
  corpintel ask --company "Acme Corp" "who are their main competitors?"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askCompany, "company", "", "Company to research (required)")
	askCmd.Flags().StringVar(&askWebsite, "website", "", "Company website to disambiguate similar names (optional)")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "Print the answer as raw markdown without terminal rendering")
	askCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
	_ = askCmd.MarkFlagRequired("company")
}

func runAsk(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	HandleError(err, "Configuration error")
	HandleError(cfg.Validate(), "Configuration error")

	// Keep the terminal quiet unless the user asked for logs.
	logFlags := logLevelFlags
	if !cmd.Flags().Changed("log-level") {
		logFlags = []string{"error"}
	}
	HandleError(setupLog(logFlags), "Failed to setup logging")

	llm, err := provider.NewAnthropicProvider(cfg.AnthropicAPIKey, provider.Config{
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})
	HandleError(err, "Provider initialization error")

	searchClient := search.NewTavily(search.TavilyConfig{
		APIKey:     cfg.TavilyAPIKey,
		Depth:      cfg.SearchDepth,
		MaxResults: cfg.SearchMaxResults,
	})

	pipeline := orchestrator.New(llm, searchClient, nil)
	req := intel.Request{
		Company:  askCompany,
		Website:  askWebsite,
		Question: strings.Join(args, " "),
	}

	var answer string
	for event := range pipeline.Handle(cmd.Context(), req) {
		switch event.Type {
		case intel.EventVerifyStarted:
			fmt.Fprintln(os.Stderr, stepStyle.Render("Verifying company identity..."))
		case intel.EventVerifyComplete:
			if event.Verified {
				fmt.Fprintln(os.Stderr, agentStyle.Render("Verified: ")+event.Description)
			} else {
				fmt.Fprintln(os.Stderr, queryStyle.Render("Could not verify company, continuing anyway"))
			}
		case intel.EventRoutingStarted:
			fmt.Fprintln(os.Stderr, stepStyle.Render("Routing question..."))
		case intel.EventRoutingComplete:
			labels := make([]string, 0, len(event.Intents))
			for _, it := range event.Intents {
				labels = append(labels, it.Label())
			}
			fmt.Fprintln(os.Stderr, stepStyle.Render("Dispatching: ")+strings.Join(labels, ", "))
		case intel.EventAgentSearching:
			fmt.Fprintln(os.Stderr, queryStyle.Render(fmt.Sprintf("  [%s] searching: %s", event.Intent.Label(), event.Query)))
		case intel.EventAgentSynthesizing:
			fmt.Fprintln(os.Stderr, queryStyle.Render(fmt.Sprintf("  [%s] synthesizing...", event.Intent.Label())))
		case intel.EventAgentComplete:
			fmt.Fprintln(os.Stderr, agentStyle.Render(fmt.Sprintf("  [%s] done", event.Intent.Label())))
		case intel.EventAgentFailed:
			fmt.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf("  [%s] failed: %s", event.Intent.Label(), event.Kind)))
		case intel.EventFinalAnswer:
			answer = event.Text
		case intel.EventError:
			HandleError(fmt.Errorf("%s: %s", event.Kind, event.Message), "Research failed")
		}
	}

	if answer == "" {
		HandleError(fmt.Errorf("pipeline ended without an answer"), "Research failed")
	}

	fmt.Println(renderAnswer(answer))
}

// renderAnswer pretty-prints the markdown answer for the terminal, falling
// back to raw text when rendering is unavailable or disabled.
func renderAnswer(markdown string) string {
	if askPlain {
		return markdown
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
