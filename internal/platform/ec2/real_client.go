package ec2

import (
	"context"
	"errors"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// APIClient is the slice of the EC2 SDK the real client calls. *ec2.Client
// satisfies it; tests substitute a stub.
type APIClient interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
	CreateTags(ctx context.Context, params *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error)
}

// RealClient implements InstanceManager against the AWS EC2 API. One API
// client is established per region on first use and reused afterwards.
type RealClient struct {
	accessKeyID     string
	secretAccessKey string

	mu      sync.Mutex
	clients map[string]APIClient
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithStaticCredentials uses the given key pair instead of the SDK's default
// credential chain.
func WithStaticCredentials(accessKeyID, secretAccessKey string) ClientOption {
	return func(c *RealClient) {
		c.accessKeyID = accessKeyID
		c.secretAccessKey = secretAccessKey
	}
}

// WithAPIClient presets the API client for a region instead of establishing
// one from SDK configuration.
func WithAPIClient(region string, api APIClient) ClientOption {
	return func(c *RealClient) {
		c.clients[region] = api
	}
}

// NewRealClient returns a client that authenticates through the SDK's
// default credential chain unless static credentials are configured.
func NewRealClient(opts ...ClientOption) *RealClient {
	c := &RealClient{clients: make(map[string]APIClient)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// api returns the EC2 API client for a region, establishing it on first use.
func (c *RealClient) api(ctx context.Context, region string) (APIClient, error) {
	if region == "" {
		return nil, &RegionConnectionError{Region: region, Err: errors.New("no region given")}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[region]; ok {
		return client, nil
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if c.accessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.accessKeyID, c.secretAccessKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, &RegionConnectionError{Region: region, Err: err}
	}

	client := ec2.NewFromConfig(cfg)
	c.clients[region] = client
	return client, nil
}
