package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const advisorModel = "gemini-2.5-flash"

const advisorInstruction = `You are the assistant of a crypto and equity
portfolio dashboard. Answer questions about the user's portfolio and the
market using only the reports below. Figures are already converted to the
user's display currency; never invent prices or balances that are not in
the reports. Keep answers short and in markdown.`

// Advisor is the chat session holding the dashboard state as context.
type Advisor struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewAdvisor builds an advisor whose system instruction embeds the rendered
// reports (portfolio, market overview, transactions) as its only source of
// figures.
func NewAdvisor(reports ...string) *Advisor {
	var sys strings.Builder
	sys.WriteString(advisorInstruction)
	for _, r := range reports {
		sys.WriteString("\n\n---\n\n")
		sys.WriteString(r)
	}
	return &Advisor{
		ModelName: advisorModel,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: sys.String()}},
			},
		},
	}
}

// Start creates the underlying chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (a *Advisor) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content, nil
}
