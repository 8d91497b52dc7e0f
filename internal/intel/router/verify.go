package router

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/corpintel/corpintel/internal/intel"
)

// Verification is the result of a company identity check. The description
// becomes the company context threaded through routing and synthesis prompts
// so similarly-named companies don't get conflated.
type Verification struct {
	Verified         bool
	Description      string
	SimilarCompanies []string
	Method           string
}

// verifyReply is the JSON shape the verification prompt asks the model for.
type verifyReply struct {
	TargetCompany struct {
		Name               string `json:"name"`
		Description        string `json:"description"`
		Industry           string `json:"industry"`
		DistinguishingInfo string `json:"distinguishing_info"`
	} `json:"target_company"`
	SimilarCompanies []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"similar_companies"`
	Confidence string `json:"confidence"`
}

// Verify checks the company's identity via its website: one site-scoped
// search, one plain name search to surface similarly-named companies, then a
// model call to analyze the combined results. Search failures degrade to
// fewer results; only a model failure or unparseable reply is an error.
func (r *Router) Verify(ctx context.Context, company, website string) (*Verification, error) {
	siteResults, err := r.search.Search(ctx, fmt.Sprintf("site:%s OR %q %s", website, website, company))
	if err != nil {
		r.logger.Warn("site verification search failed: %v", err)
		siteResults = nil
	}

	nameResults, err := r.search.Search(ctx, company+" company")
	if err != nil {
		r.logger.Warn("name verification search failed: %v", err)
		nameResults = nil
	}

	all := append(siteResults, nameResults...)
	if len(all) == 0 {
		return &Verification{
			Verified:    false,
			Description: fmt.Sprintf("could not verify %s", company),
			Method:      "no search results",
		}, nil
	}

	userMsg := fmt.Sprintf(`Target Company: %s
Website: %s

Search Results:
%s

Analyze these results to identify the target company and any similarly-named companies.`,
		company, website, intel.FormatEvidence(all))

	raw, err := r.llm.Complete(ctx, VerifySystemPrompt+jsonOnlyInstruction, userMsg)
	if err != nil {
		return nil, fmt.Errorf("verification model call failed: %w", err)
	}

	var reply verifyReply
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &reply); err != nil {
		return nil, fmt.Errorf("verification reply is not valid JSON: %w", err)
	}

	description := reply.TargetCompany.Description
	if reply.TargetCompany.Industry != "" {
		description += fmt.Sprintf(" (Industry: %s)", reply.TargetCompany.Industry)
	}
	if reply.TargetCompany.DistinguishingInfo != "" {
		description += " - " + reply.TargetCompany.DistinguishingInfo
	}

	var similar []string
	for _, s := range reply.SimilarCompanies {
		if s.Name == "" {
			continue
		}
		similar = append(similar, s.Name+": "+s.Description)
	}

	return &Verification{
		Verified:         reply.Confidence == "high" || reply.Confidence == "medium",
		Description:      description,
		SimilarCompanies: similar,
		Method:           "website verification via " + website,
	}, nil
}
