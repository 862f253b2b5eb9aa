package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const analystModel = "gemini-2.0-flash"

const analystInstruction = `You are a personal portfolio analyst.
The user's portfolio summary is provided below in markdown. Answer questions
about it: performance over the different windows, how funds are classified,
and what the figures mean. An 'n/a' figure means the data does not reach far
enough back to compute that return, not that the return was zero. Do not
give investment advice, only explain the data.

%s`

// Analyst is the single expert of the assistant: a chat primed with the
// rendered portfolio summary.
type Analyst struct {
	summary string
	chat    *genai.Chat
}

// NewAnalyst creates an analyst for the given summary markdown.
func NewAnalyst(summaryMarkdown string) *Analyst {
	return &Analyst{summary: summaryMarkdown}
}

// Start opens the chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(fmt.Sprintf(analystInstruction, a.summary), genai.RoleUser),
	}
	chat, err := client.Chats.Create(ctx, analystModel, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("analyst session not started")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
