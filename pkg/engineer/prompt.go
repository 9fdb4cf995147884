package engineer

import (
	"fmt"
	"path/filepath"

	"github.com/codehornets/reverse-api-engineer/pkg/run"
)

// buildPrompt assembles the analysis task description: the archive to read,
// the original capture intent, the required analysis steps, and the fixed
// output locations.
func buildPrompt(harPath, capturePrompt, scriptsDir, instructions string) string {
	prompt := fmt.Sprintf(`Analyze the HAR file at %s and reverse engineer the APIs captured.

Original user prompt: %s

Your task:
1. Read and analyze the HAR file to understand the API calls made
2. Identify authentication patterns (cookies, tokens, headers)
3. Extract request/response patterns for each endpoint
4. Generate a clean, well-documented Python script that replicates these API calls

The Python script should:
- Use the `+"`requests`"+` library
- Include proper authentication handling
- Have functions for each distinct API endpoint
- Include type hints and docstrings
- Handle errors gracefully
- Be production-ready

Save the generated Python script to: %s
Also create a brief README.md in the same folder explaining the APIs discovered.
`, harPath, capturePrompt, filepath.Join(scriptsDir, run.ScriptFileName))

	if instructions != "" {
		prompt += fmt.Sprintf("\n\nAdditional instructions:\n%s", instructions)
	}
	return prompt
}
