package ec2

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/ec2fab/ec2fab/internal/instance"
)

func TestRealClient_RunInstance(t *testing.T) {
	t.Parallel()

	var gotInput *ec2.RunInstancesInput
	api := &mockAPI{
		runFunc: func(_ context.Context, params *ec2.RunInstancesInput, _ ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error) {
			gotInput = params
			return &ec2.RunInstancesOutput{
				Instances: []types.Instance{{
					InstanceId: aws.String("i-new"),
					State:      &types.InstanceState{Name: types.InstanceStateNamePending},
				}},
			}, nil
		},
	}

	spec := RunSpec{
		AMI:              "ami-1234",
		InstanceType:     "t3.micro",
		KeyName:          "deploy",
		SecurityGroups:   []string{"web"},
		AvailabilityZone: "us-east-1b",
		Tags:             map[string]string{"Name": "web1", "Env": "prod"},
	}

	inst, err := stubClient(api).RunInstance(context.Background(), "us-east-1", spec)
	if err != nil {
		t.Fatalf("RunInstance() returned error: %v", err)
	}
	if inst.ID != "i-new" {
		t.Errorf("Expected the launched instance id, got: %q", inst.ID)
	}
	if inst.State != instance.StatePending {
		t.Errorf("Expected pending snapshot, got: %q", inst.State)
	}

	if got := aws.ToString(gotInput.ImageId); got != "ami-1234" {
		t.Errorf("Expected image id, got: %q", got)
	}
	if gotInput.InstanceType != types.InstanceType("t3.micro") {
		t.Errorf("Expected instance type, got: %q", gotInput.InstanceType)
	}
	if aws.ToInt32(gotInput.MinCount) != 1 || aws.ToInt32(gotInput.MaxCount) != 1 {
		t.Error("Expected a single-instance launch")
	}
	if got := aws.ToString(gotInput.KeyName); got != "deploy" {
		t.Errorf("Expected key name, got: %q", got)
	}
	if len(gotInput.SecurityGroups) != 1 || gotInput.SecurityGroups[0] != "web" {
		t.Errorf("Expected security groups, got: %v", gotInput.SecurityGroups)
	}
	if gotInput.Placement == nil || aws.ToString(gotInput.Placement.AvailabilityZone) != "us-east-1b" {
		t.Errorf("Expected placement zone, got: %v", gotInput.Placement)
	}

	if len(gotInput.TagSpecifications) != 1 {
		t.Fatalf("Expected one tag specification, got: %d", len(gotInput.TagSpecifications))
	}
	ts := gotInput.TagSpecifications[0]
	if ts.ResourceType != types.ResourceTypeInstance {
		t.Errorf("Expected instance resource type, got: %q", ts.ResourceType)
	}
	if len(ts.Tags) != 2 {
		t.Fatalf("Expected both tags at launch, got: %d", len(ts.Tags))
	}
	// toTags sorts keys, so Env precedes Name.
	if got := aws.ToString(ts.Tags[0].Key); got != "Env" {
		t.Errorf("Expected Env tag first, got: %q", got)
	}
	if got := aws.ToString(ts.Tags[1].Value); got != "web1" {
		t.Errorf("Expected Name tag value, got: %q", got)
	}
}

func TestRealClient_RunInstance_MinimalSpec(t *testing.T) {
	t.Parallel()

	var gotInput *ec2.RunInstancesInput
	api := &mockAPI{
		runFunc: func(_ context.Context, params *ec2.RunInstancesInput, _ ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error) {
			gotInput = params
			return &ec2.RunInstancesOutput{
				Instances: []types.Instance{{InstanceId: aws.String("i-new")}},
			}, nil
		},
	}

	_, err := stubClient(api).RunInstance(context.Background(), "us-east-1", RunSpec{
		AMI:          "ami-1234",
		InstanceType: "t3.micro",
	})
	if err != nil {
		t.Fatalf("RunInstance() returned error: %v", err)
	}

	if gotInput.KeyName != nil {
		t.Errorf("Expected no key name, got: %q", aws.ToString(gotInput.KeyName))
	}
	if gotInput.SecurityGroups != nil {
		t.Errorf("Expected no security groups, got: %v", gotInput.SecurityGroups)
	}
	if gotInput.Placement != nil {
		t.Errorf("Expected no placement, got: %v", gotInput.Placement)
	}
	if gotInput.TagSpecifications != nil {
		t.Errorf("Expected no tag specifications, got: %v", gotInput.TagSpecifications)
	}
}

func TestRealClient_RunInstance_Error(t *testing.T) {
	t.Parallel()

	api := &mockAPI{
		runFunc: func(_ context.Context, _ *ec2.RunInstancesInput, _ ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error) {
			return nil, errors.New("InsufficientInstanceCapacity")
		},
	}

	_, err := stubClient(api).RunInstance(context.Background(), "us-east-1", RunSpec{AMI: "ami-1234"})
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "launching instance from image ami-1234") {
		t.Errorf("Expected wrapped launch error, got: %v", err)
	}
}

func TestRealClient_RunInstance_NoInstances(t *testing.T) {
	t.Parallel()

	api := &mockAPI{
		runFunc: func(_ context.Context, _ *ec2.RunInstancesInput, _ ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error) {
			return &ec2.RunInstancesOutput{}, nil
		},
	}

	_, err := stubClient(api).RunInstance(context.Background(), "us-east-1", RunSpec{AMI: "ami-1234"})
	if err == nil {
		t.Fatal("Expected error for a launch returning no instances")
	}
	if !strings.Contains(err.Error(), "returned no instances") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRealClient_AddTags(t *testing.T) {
	t.Parallel()

	var gotInput *ec2.CreateTagsInput
	api := &mockAPI{
		tagFunc: func(_ context.Context, params *ec2.CreateTagsInput, _ ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error) {
			gotInput = params
			return &ec2.CreateTagsOutput{}, nil
		},
	}

	err := stubClient(api).AddTags(context.Background(), "us-east-1", "i-0abc123", map[string]string{
		"Env":  "staging",
		"Name": "web2",
	})
	if err != nil {
		t.Fatalf("AddTags() returned error: %v", err)
	}

	if len(gotInput.Resources) != 1 || gotInput.Resources[0] != "i-0abc123" {
		t.Errorf("Expected the instance as the tagged resource, got: %v", gotInput.Resources)
	}
	if len(gotInput.Tags) != 2 {
		t.Fatalf("Expected both tags, got: %d", len(gotInput.Tags))
	}
	if got := aws.ToString(gotInput.Tags[0].Key); got != "Env" {
		t.Errorf("Expected sorted tag keys, got first: %q", got)
	}
}

func TestRealClient_AddTags_Empty(t *testing.T) {
	t.Parallel()

	calls := 0
	api := &mockAPI{
		tagFunc: func(_ context.Context, _ *ec2.CreateTagsInput, _ ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error) {
			calls++
			return &ec2.CreateTagsOutput{}, nil
		},
	}

	if err := stubClient(api).AddTags(context.Background(), "us-east-1", "i-0abc123", nil); err != nil {
		t.Fatalf("AddTags() returned error: %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no API call for an empty tag map, got: %d", calls)
	}
}

func TestRealClient_AddTags_Error(t *testing.T) {
	t.Parallel()

	api := &mockAPI{
		tagFunc: func(_ context.Context, _ *ec2.CreateTagsInput, _ ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error) {
			return nil, errors.New("denied")
		},
	}

	err := stubClient(api).AddTags(context.Background(), "us-east-1", "i-0abc123", map[string]string{"Env": "prod"})
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "tagging instance i-0abc123") {
		t.Errorf("Expected wrapped tagging error, got: %v", err)
	}
}
