// Package anthropic implements the external rewriting collaborator on the
// Anthropic Messages API. Errors returned from Revise are always recoverable
// for the caller: the pipeline falls back to the unrevised draft.
package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
	"github.com/tomsdev9/legalrecours/internal/infrastructure/resilience"
)

const apiVersion = "2023-06-01"

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
	executor   *resilience.Executor
}

type Options struct {
	// Timeout bounds the single revision attempt. The pipeline never
	// retries a revision: a failed attempt falls back immediately.
	Timeout  time.Duration
	Executor *resilience.Executor
}

func New(baseURL, apiKey, model string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		maxTokens:  900,
		httpClient: &http.Client{Timeout: timeout},
		executor:   opts.Executor,
	}
}

// Revise sends the protected draft for stylistic revision and returns the
// revised body. The protected [[...]] substrings must come back verbatim;
// the sanitization layer downstream verifies nothing else is trusted.
func (c *Client) Revise(ctx context.Context, protectedDraft string, org domain.Organism, caseID domain.CaseID) (string, error) {
	if c.apiKey == "" {
		return "", domain.WrapError(domain.ErrTemporary, "revise letter", fmt.Errorf("api key not configured"))
	}

	payload := map[string]any{
		"model":      c.model,
		"max_tokens": c.maxTokens,
		"system":     buildSystem(org, caseID),
		"messages": []map[string]any{
			{"role": "user", "content": buildUserPrompt(protectedDraft, org, caseID)},
		},
	}

	var resp messagesResponse
	call := func(callCtx context.Context) error {
		return c.postJSON(callCtx, "/v1/messages", payload, &resp, "revise")
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "anthropic.revise", call, classifyAnthropicError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", wrapTemporaryIfNeeded("revise letter", err)
	}

	text := resp.firstText()
	if text == "" {
		return "", domain.WrapError(domain.ErrTemporary, "revise letter", fmt.Errorf("empty response content"))
	}
	return text, nil
}

func buildUserPrompt(protectedDraft string, org domain.Organism, caseID domain.CaseID) string {
	return strings.Join([]string{
		"# Meta",
		fmt.Sprintf("organisme: %s / dossier: %s", org, caseID),
		"",
		"# Brouillon à réviser (ne pas modifier ce qui est entre [[...]] )",
		"<<<",
		protectedDraft,
		">>>",
		"",
		"# Sortie",
		`RENVOIE UNIQUEMENT LE CORPS DE LETTRE (sans "Objet", sans politesse, sans signature, sans markdown). 120–170 mots maximum.`,
	}, "\n")
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (r messagesResponse) firstText() string {
	for _, block := range r.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return strings.TrimSpace(block.Text)
		}
	}
	return ""
}
