package llm

import "fmt"

// LifespanSystemPrompt is the system instruction for the direct AI estimate.
// It forbids refusal: the stage either produces a number or its output fails
// the digit scan and the cascade falls through.
const LifespanSystemPrompt = `You are a professional maintenance engineer with 20+ years of experience.
Your job is to provide accurate maintenance intervals for industrial parts.

CRITICAL INSTRUCTIONS:
- You MUST provide a specific number of months
- NEVER respond with "UNKNOWN" or "I don't know"
- Base your answer on industry standards and manufacturer recommendations
- If you're unsure, provide the most reasonable estimate based on similar parts
- Response format: ONLY the number (e.g., "12" for 12 months)
- No explanations, no additional text, just the number`

// LifespanPrompt builds the user prompt for the direct AI lifespan estimate.
// category and examples come from the part classifier so the model anchors on
// published interval ranges for that part family.
func LifespanPrompt(partName, machineName, manufacturer, partNumber, category, examples string) string {
	if manufacturer == "" {
		manufacturer = "Industrial standard"
	}
	if partNumber == "" {
		partNumber = "N/A"
	}

	return fmt.Sprintf(`MAINTENANCE INTERVAL REQUEST:

Part Details:
- Part Name: %s
- Machine/Equipment: %s
- Manufacturer: %s
- Part Number: %s

Part Category: %s

Industry Standards for %s:
%s

TASK: Determine the recommended maintenance/replacement interval for this specific part.

Consider:
1. Manufacturer specifications (if known)
2. Industry best practices
3. Equipment type and usage
4. Environmental conditions (industrial use)
5. Safety requirements

Provide the interval in MONTHS only. Examples of good responses:
- "6" (for 6 months)
- "12" (for 12 months)
- "24" (for 24 months)

Your response (number only):`, partName, machineName, manufacturer, partNumber, category, category, examples)
}

// SearchAnalysisSystemPrompt is the system instruction for the search-backed
// estimate. Unlike the direct estimate, UNKNOWN is allowed here; no evidence
// means the stage fails and the cascade falls through.
const SearchAnalysisSystemPrompt = `You are a maintenance expert. Extract specific lifespan information from search results. Respond with only a number (months) or 'UNKNOWN'.`

// SearchAnalysisPrompt builds the user prompt that hands web search results
// to the model as evidence.
func SearchAnalysisPrompt(partName, machineName, manufacturer, resultsJSON string) string {
	if manufacturer == "" {
		manufacturer = "Unknown"
	}

	return fmt.Sprintf(`You are a maintenance expert. Analyze the following search results to find the lifespan of this part:

Part Name: %s
Machine/Equipment: %s
Manufacturer: %s

SEARCH RESULTS:
%s

Please analyze these search results and extract:
1. The typical lifespan in months for this part
2. Any specific maintenance intervals mentioned
3. Factors that affect the lifespan

If you find specific lifespan information, respond with ONLY the number of months.
If you cannot find specific information, respond with 'UNKNOWN'.

Examples of valid responses:
- "24" (for 24 months)
- "12" (for 12 months)
- "UNKNOWN" (if no specific information found)`, partName, machineName, manufacturer, resultsJSON)
}
