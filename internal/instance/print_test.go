package instance

import (
	"strings"
	"testing"
	"time"
)

func testInstance() *Instance {
	return &Instance{
		ID:               "i-1234",
		Region:           "us-east-1",
		State:            StateRunning,
		InstanceType:     "t3.micro",
		KeyName:          "deploy",
		PublicDNSName:    "ec2-1-2-3-4.compute-1.amazonaws.com",
		PrivateDNSName:   "ip-10-0-0-4.ec2.internal",
		PublicIP:         "1.2.3.4",
		PrivateIP:        "10.0.0.4",
		AvailabilityZone: "us-east-1b",
		LaunchTime:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Tags:             map[string]string{"Name": "web1", "Env": "prod"},
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	out := Describe(testInstance(), false)

	for _, want := range []string{
		"id=i-1234:",
		"state=running",
		"instance_type=t3.micro",
		"ip_address=1.2.3.4",
		"dns_name=ec2-1-2-3-4.compute-1.amazonaws.com",
		"private_dns_name=ip-10-0-0-4.ec2.internal",
		"key_name=deploy",
		"tags=Env=prod, Name=web1",
		"placement=us-east-1b",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}

	for _, unwanted := range []string{"region=", "private_ip_address=", "launch_time="} {
		if strings.Contains(out, unwanted) {
			t.Errorf("Expected default output to omit %q, got:\n%s", unwanted, out)
		}
	}
}

func TestDescribe_Full(t *testing.T) {
	t.Parallel()

	out := Describe(testInstance(), true)

	for _, want := range []string{
		"region=us-east-1",
		"private_ip_address=10.0.0.4",
		"launch_time=2026-03-01T12:00:00Z",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected full output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDescribe_NoTags(t *testing.T) {
	t.Parallel()

	inst := testInstance()
	inst.Tags = nil
	out := Describe(inst, false)
	if !strings.Contains(out, "tags=-") {
		t.Errorf("Expected placeholder for empty tags, got:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	out := Summary(testInstance())
	if !strings.HasPrefix(out, "web1 (i-1234)") {
		t.Errorf("Expected summary to start with the pretty name, got: %q", out)
	}
	if !strings.Contains(out, "running") {
		t.Errorf("Expected summary to contain the state, got: %q", out)
	}
	if !strings.HasSuffix(out, "ec2-1-2-3-4.compute-1.amazonaws.com") {
		t.Errorf("Expected summary to end with the DNS name, got: %q", out)
	}
}

func TestSummary_NoDNS(t *testing.T) {
	t.Parallel()

	inst := testInstance()
	inst.PublicDNSName = ""
	inst.State = StatePending
	out := Summary(inst)
	if strings.HasSuffix(out, " ") {
		t.Errorf("Expected trailing padding to be trimmed, got: %q", out)
	}
	if !strings.HasSuffix(out, "pending") {
		t.Errorf("Expected summary to end with the state, got: %q", out)
	}
}
