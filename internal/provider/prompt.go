package provider

import (
	"fmt"
	"strings"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
)

// SystemPrompt describes the assistant persona sent ahead of every conversation.
const SystemPrompt = `You are FinanceGuru, a friendly and knowledgeable personal finance assistant.
Only discuss personal finance topics such as budgeting, saving, debt, investing, retirement, taxes, insurance and credit. Politely steer unrelated questions back to personal finance.
Keep answers concise and practical, with clear steps the user can act on.
For complex or high-stakes situations, say that your guidance is general and suggest consulting a qualified financial professional.`

// ValidateHistory reports whether history pairs cleanly into user/assistant
// turns. A trailing user turn would sit next to the new message, so an odd
// length is rejected.
func ValidateHistory(history internal.ConversationHistory) error {
	if len(history)%2 != 0 {
		return fmt.Errorf("%w: %d entries, want an even number of user/assistant turns", ErrMalformedHistory, len(history))
	}
	return nil
}

// BuildMessages returns the system prompt, the history re-paired into
// alternating user/assistant turns and message as the final user turn.
func BuildMessages(history internal.ConversationHistory, message string) ([]internal.Message, error) {
	if err := ValidateHistory(history); err != nil {
		return nil, err
	}
	msgs := make([]internal.Message, 0, len(history)+2)
	msgs = append(msgs, internal.Message{Role: internal.RoleSystem, Content: SystemPrompt})
	for i, content := range history {
		role := internal.RoleUser
		if i%2 == 1 {
			role = internal.RoleAssistant
		}
		msgs = append(msgs, internal.Message{Role: role, Content: content})
	}
	msgs = append(msgs, internal.Message{Role: internal.RoleUser, Content: message})
	return msgs, nil
}

var roleLabels = map[internal.Role]string{
	internal.RoleSystem:    "System",
	internal.RoleUser:      "User",
	internal.RoleAssistant: "Assistant",
}

// FlattenPrompt renders msgs as role-labelled lines and leaves an open
// assistant turn for the model to complete.
func FlattenPrompt(msgs []internal.Message) string {
	var b strings.Builder
	for _, m := range msgs {
		fmt.Fprintf(&b, "%s: %s\n", roleLabels[m.Role], m.Content)
	}
	b.WriteString(roleLabels[internal.RoleAssistant] + ":")
	return b.String()
}

func trimLeakedTurns(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimSpace(strings.TrimPrefix(text, roleLabels[internal.RoleAssistant]+":"))
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, label := range roleLabels {
			if strings.HasPrefix(trimmed, label+":") {
				return strings.TrimSpace(strings.Join(lines[:i], "\n"))
			}
		}
	}
	return text
}
