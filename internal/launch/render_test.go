package launch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	requests, err := NewRequests(testSettings(), "webserver", "web", map[string]string{"Owner": "ops"}, 2)
	require.NoError(t, err)

	out := Summary(requests)

	assert.Contains(t, out, "Launch plan: 2 instance(s)")
	assert.Contains(t, out, "1. web-1 (webserver)")
	assert.Contains(t, out, "2. web-2 (webserver)")
	assert.Contains(t, out, "region:          us-west-2")
	assert.Contains(t, out, "ami:             ami-123")
	assert.Contains(t, out, "instance type:   t3.micro")
	assert.Contains(t, out, "key pair:        deploy")
	assert.Contains(t, out, "security groups: web")
	assert.Contains(t, out, "placement:       us-west-2b")
	assert.Contains(t, out, "Owner=ops")
}

func TestSummary_AnonymousRequest(t *testing.T) {
	t.Parallel()

	requests, err := NewRequests(testSettings(), "worker", "", nil, 1)
	require.NoError(t, err)

	out := Summary(requests)
	assert.Contains(t, out, "1. worker")
	assert.NotContains(t, out, "security groups:")
	assert.NotContains(t, out, "placement:")
}

func TestConfigTable(t *testing.T) {
	t.Parallel()

	out := ConfigTable(testSettings())

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "webserver | Web frontend")
	assert.Contains(t, out, "worker")

	// webserver sorts before worker.
	webserverAt := strings.Index(out, "webserver |")
	workerAt := strings.Index(out, "worker")
	assert.Less(t, webserverAt, workerAt)
}
