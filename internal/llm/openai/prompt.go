package openai

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are a production planning assistant for a circular-knitting factory.
Extract exactly one work item from the user's message and answer with a single JSON object:
{
  "match": true|false,
  "kind": "PRODUCTION"|"SETTINGS",
  "fabric": string,
  "client": string,
  "quantity": number,
  "dailyRate": number,
  "days": number,
  "notes": string
}
Rules:
- If the message does not describe a plannable work item, answer {"match": false}.
- Prefer fabric and client names from the provided lists when the message clearly refers to them.
- Omit or zero any field the message does not state. Never invent quantities.`

// BuildPlanPrompt assembles the chat messages for plan parsing.
func BuildPlanPrompt(text string, fabrics, clients []string) []chatMessage {
	var context strings.Builder
	if len(fabrics) > 0 {
		fmt.Fprintf(&context, "Known fabrics: %s\n", strings.Join(fabrics, ", "))
	}
	if len(clients) > 0 {
		fmt.Fprintf(&context, "Known clients: %s\n", strings.Join(clients, ", "))
	}

	user := text
	if context.Len() > 0 {
		user = context.String() + "\nMessage:\n" + text
	}

	return []chatMessage{
		{Role: "system", Content: planSystemPrompt},
		{Role: "user", Content: user},
	}
}
