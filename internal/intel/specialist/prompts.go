package specialist

import (
	"fmt"

	"github.com/corpintel/corpintel/internal/intel"
)

// CompetitorSystemPrompt synthesizes a competitive landscape from search
// evidence.
const CompetitorSystemPrompt = `You are a competitive intelligence analyst.

Given web search results about a company, identify its main competitors and
alternatives. For each competitor, note what it does and how it compares to
the target company.

Guidelines:
- Base every claim on the provided search results; do not invent competitors
- Name 3-5 competitors when the evidence supports it
- Mention the market or segment where they compete
- If the results are thin, say what could be established and what could not
- Write 2-4 concise paragraphs of plain prose, no bullet-point dumps`

// FounderSystemPrompt synthesizes founder and leadership information from
// search evidence.
const FounderSystemPrompt = `You are a corporate research analyst specializing in people.

Given web search results about a company, identify its founders and current
leadership. Include founding year and founder backgrounds when the evidence
shows them.

Guidelines:
- Base every claim on the provided search results; do not invent names
- Distinguish founders from the current CEO when they differ
- Include brief background on key people when available
- If the results are thin, say what could be established and what could not
- Write 1-3 concise paragraphs of plain prose`

// BusinessSystemPrompt synthesizes a business overview from search evidence.
const BusinessSystemPrompt = `You are a business analyst.

Given web search results about a company, summarize what the company does:
its products or services, customers, and business model.

Guidelines:
- Base every claim on the provided search results; do not speculate
- Cover products/services, who buys them, and how the company makes money
- Note industry and scale indicators (employees, funding, revenue) when present
- If the results are thin, say what could be established and what could not
- Write 2-4 concise paragraphs of plain prose`

// systemPromptFor returns the synthesis prompt for the given intent. The
// intent set is closed, so the default arm is unreachable in practice.
func systemPromptFor(intent intel.Intent) string {
	switch intent {
	case intel.IntentCompetitor:
		return CompetitorSystemPrompt
	case intel.IntentFounder:
		return FounderSystemPrompt
	case intel.IntentBusiness:
		return BusinessSystemPrompt
	}
	return BusinessSystemPrompt
}

// closingQuestion is the per-intent question the evidence is synthesized
// against.
func closingQuestion(intent intel.Intent, company string) string {
	switch intent {
	case intel.IntentCompetitor:
		return fmt.Sprintf("Who are the main competitors of %s and how do they compare?", company)
	case intel.IntentFounder:
		return fmt.Sprintf("Who founded %s and who leads it today?", company)
	case intel.IntentBusiness:
		return fmt.Sprintf("What does %s do and how does its business work?", company)
	}
	return fmt.Sprintf("What is known about %s?", company)
}

// synthesisUserMessage assembles the user message for the synthesis call:
// company, optional verified context, the evidence blocks, and the closing
// question.
func synthesisUserMessage(intent intel.Intent, company, companyContext string, evidence []intel.SearchResult) string {
	msg := fmt.Sprintf("Company: %s\n", company)
	if companyContext != "" {
		msg += fmt.Sprintf("Verified Company Context: %s\n", companyContext)
	}
	msg += fmt.Sprintf("\nSearch Results:\n%s\n\n%s", intel.FormatEvidence(evidence), closingQuestion(intent, company))
	return msg
}
