// Package agent implements the interactive assistant behind the
// 'folio assist' command: a Gemini chat primed with the user's current
// portfolio summary, so questions like "which fund dragged my year down?"
// can be answered from the actual figures.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	analyst *Analyst
}

// New creates an agent talking to the given analyst, writing its output to
// w and reading user input from r (typically stdout and stdin).
func New(w io.Writer, r io.Reader, analyst *Analyst) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), analyst: analyst}
}

const prompt = "assist> "

// Run starts the REPL session. Initial prompts, when given, are consumed
// before reading from the user. The session ends on "bye" or EOF.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.analyst.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to folio assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.analyst.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
