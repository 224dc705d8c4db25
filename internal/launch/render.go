package launch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ec2fab/ec2fab/internal/config"
	"github.com/ec2fab/ec2fab/internal/util/tags"
)

// Colors for the confirm summary and the config table.
var (
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Summary renders a human-readable description of every pending request,
// shown to the operator before confirmation.
func Summary(requests []*Request) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  Launch plan: %d instance(s)", len(requests))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 44)))
	b.WriteString("\n")

	for i, request := range requests {
		title := request.ConfigName
		if name := request.Tags[tags.KeyName]; name != "" {
			title = fmt.Sprintf("%s (%s)", name, request.ConfigName)
		}

		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(fmt.Sprintf("  %d. %s", i+1, title)))
		b.WriteString("\n")
		fmt.Fprintf(&b, "     region:          %s\n", request.Region)
		fmt.Fprintf(&b, "     ami:             %s\n", request.AMI)
		fmt.Fprintf(&b, "     instance type:   %s\n", request.InstanceType)
		fmt.Fprintf(&b, "     key pair:        %s\n", request.KeyName)
		if len(request.SecurityGroups) > 0 {
			fmt.Fprintf(&b, "     security groups: %s\n", strings.Join(request.SecurityGroups, ", "))
		}
		if request.AvailabilityZone != "" {
			fmt.Fprintf(&b, "     placement:       %s\n", request.AvailabilityZone)
		}
		if len(request.Tags) > 0 {
			fmt.Fprintf(&b, "     tags:            %s\n", formatTagPairs(request.Tags))
		}
	}

	return b.String()
}

// ConfigTable renders the launch-config registry as a NAME | DESCRIPTION
// table, in sorted name order.
func ConfigTable(settings *config.Settings) string {
	names := settings.LaunchConfigNames()

	nameWidth := len("NAME")
	for _, name := range names {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Available launch configs"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-*s | %s", nameWidth, "NAME", "DESCRIPTION")))
	b.WriteString("\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s | %s\n", nameWidth, name, settings.LaunchConfigs[name].Description)
	}

	return b.String()
}

func formatTagPairs(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+m[k])
	}
	return strings.Join(pairs, ", ")
}
