// Package prerequisites provides utilities for checking required client tools.
// Commands that shell out to local binaries check here first, so a missing
// tool fails with install instructions instead of an exec error mid-run.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// RsyncTools returns the tools the rsync command shells out to.
func RsyncTools() []Tool {
	return []Tool{
		{
			Name:        "rsync",
			Required:    true,
			Description: "Required for uploading directories to instances",
			InstallURL:  "https://rsync.samba.org/",
		},
		{
			Name:        "ssh",
			Required:    true,
			Description: "Used by rsync as the transport to the instance",
			InstallURL:  "https://www.openssh.com/",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available in PATH.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		if path, err := exec.LookPath(tool.Name); err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckForRsync checks the tools the rsync command needs.
func CheckForRsync() *CheckResults {
	return Check(RsyncTools())
}
