package mascot

import (
	"fmt"
	"strings"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
)

const hintSystemPrompt = `You are Sparky, a cheerful robot mascot helping children aged 6-10 learn basic electronics in a hands-on activity portal. You give tiny nudges, never full solutions, and you never mention anything dangerous beyond battery-and-bulb experiments.`

func buildHintUserMessage(a activities.Activity, st stagegraph.Stage) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Activity: %s (%s)\n", a.Title, a.Subject))
	b.WriteString(fmt.Sprintf("Current stage: %s (%s)\n", st.Name, st.Kind.Label()))

	b.WriteString("\nThe child's mission steps:\n")
	for _, m := range st.Mission {
		b.WriteString(fmt.Sprintf("- %s\n", m))
	}

	b.WriteString(`
Instructions:
The child pressed the hint button, so they are probably stuck.
1. Give one or two short sentences pointing at the mission step they are most likely stuck on.
2. Use words a 7-year-old knows. No jargon beyond battery, wire, bulb, switch, motor.
3. Do not reveal the full solution; nudge toward it.
4. Keep it warm and playful, like a friendly robot buddy.`)

	return b.String()
}
