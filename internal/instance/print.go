package instance

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Describe renders the instance's attributes as an indented block, one
// attribute per line. With full=false only the commonly needed subset is
// shown.
func Describe(i *Instance, full bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "   id=%s:\n", i.ID)
	attr := func(name, value string) {
		fmt.Fprintf(&b, "      %s=%s\n", name, value)
	}
	attr("state", string(i.State))
	attr("instance_type", i.InstanceType)
	attr("ip_address", i.PublicIP)
	attr("dns_name", i.PublicDNSName)
	attr("private_dns_name", i.PrivateDNSName)
	attr("key_name", i.KeyName)
	attr("tags", formatTags(i.Tags))
	attr("placement", i.AvailabilityZone)
	if full {
		attr("region", i.Region)
		attr("private_ip_address", i.PrivateIP)
		if !i.LaunchTime.IsZero() {
			attr("launch_time", i.LaunchTime.Format(time.RFC3339))
		}
	}
	return b.String()
}

// Summary returns a one-line listing entry for the instance.
func Summary(i *Instance) string {
	line := fmt.Sprintf("%-40s %-14s", i.PrettyName(), i.State)
	if i.PublicDNSName != "" {
		line += " " + i.PublicDNSName
	}
	return strings.TrimRight(line, " ")
}

func formatTags(tags map[string]string) string {
	if len(tags) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+tags[k])
	}
	return strings.Join(pairs, ", ")
}
