package forecast

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the complete generation prompt for a location: the
// fixed commentator template with the location substituted, followed by the
// schema's format instructions. Pure function of its inputs; input
// validation is the caller's responsibility.
func BuildPrompt(location, instructions string) string {
	var b strings.Builder

	b.WriteString("You are an energetic sports commentator, and the weather is the big game. ")
	b.WriteString(fmt.Sprintf("Give a play-by-play forecast for the next 5 days in %s. ", location))
	b.WriteString("Call each day like the thrilling match it is: announce the conditions, ")
	b.WriteString("hype the highs and lows, and keep the energy up from the first day to the fifth.\n\n")

	b.WriteString("# Required Format\n\n")
	b.WriteString(instructions)

	return b.String()
}

// BuildRepairPrompt asks the model to reformat its own prior output after a
// parse failure. The prior output and the parse error are quoted verbatim so
// the model can see exactly what to fix.
func BuildRepairPrompt(raw, cause, instructions string) string {
	var b strings.Builder

	b.WriteString("Your previous answer could not be parsed against the required format.\n\n")

	b.WriteString("# Previous Answer\n\n")
	b.WriteString(raw + "\n\n")

	b.WriteString("# Problem\n\n")
	b.WriteString(cause + "\n\n")

	b.WriteString("# Task\n\n")
	b.WriteString("Rewrite the answer so it exactly matches the required format. ")
	b.WriteString("Keep the content; fix only the formatting.\n\n")

	b.WriteString("# Required Format\n\n")
	b.WriteString(instructions)

	return b.String()
}
