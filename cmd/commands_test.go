package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kfpl/internal/capability"
	"kfpl/internal/orchestrator"
	"kfpl/internal/prompt"
	"kfpl/internal/utils"
)

const (
	psRunning   = "CONTAINER ID   NAMES\n1a2b3c4d5e6f   k3d-kfp-local-server-0\n"
	podsRunning = "NAMESPACE   NAME\nkubeflow    ml-pipeline-7d8b9c6f5-x2x9z\n"
)

// testConfig keeps the settle pauses out of the tests and the layered
// config files of the machine running them out of the result.
const testConfig = `
cluster:
  settleInterval: 1ns
pipelines:
  settleInterval: 1ns
runtime:
  cgroupPath: /nonexistent/kfpl/cgroup
`

type harness struct {
	runner    *utils.FakeRunner
	confirmer *prompt.Scripted
	stdout    bytes.Buffer
	stderr    bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{runner: utils.NewFakeRunner(), confirmer: &prompt.Scripted{}}

	originalNewRunner := newRunner
	originalNewConfirmer := newConfirmer
	t.Cleanup(func() {
		newRunner = originalNewRunner
		newConfirmer = originalNewConfirmer
	})
	newRunner = func() utils.Runner { return h.runner }
	newConfirmer = func() orchestrator.Confirmer { return h.confirmer }
	return h
}

func (h *harness) execute(t *testing.T, args ...string) error {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfig), 0o644))

	root := newRootCmd()
	root.SetOut(&h.stdout)
	root.SetErr(&h.stderr)
	root.SetArgs(append([]string{"--config", configPath}, args...))
	return root.Execute()
}

func TestInit_AllPresent(t *testing.T) {
	h := newHarness(t)
	for _, bin := range []string{"curl", "git", "k3d", "kubectl", "kfctl", "k9s", "pip3", "kfp", "docker"} {
		h.runner.Paths[bin] = "/usr/bin/" + bin
	}

	require.NoError(t, h.execute(t, "init"))

	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "Ensuring proper dependencies ...\n"))
	assert.Contains(t, out, "Checking if `curl` is present ... 💯!")
	assert.Contains(t, out, "Checking if `docker` is present ... 💯!")
	assert.Empty(t, h.runner.Calls())
	assert.Empty(t, h.confirmer.Prompts)
}

func TestInit_DeclinedSkipsInstall(t *testing.T) {
	h := newHarness(t)
	for _, bin := range []string{"curl", "git", "k3d", "kubectl", "kfctl", "k9s", "pip3", "kfp"} {
		h.runner.Paths[bin] = "/usr/bin/" + bin
	}

	require.NoError(t, h.execute(t, "init"))

	assert.Equal(t, []string{"`docker` is not present: do you want me to make it so?"}, h.confirmer.Prompts)
	assert.Contains(t, h.stdout.String(), "  Skipping ...")
	assert.Empty(t, h.runner.Calls())
}

func TestInit_StopsAtFirstFailure(t *testing.T) {
	h := newHarness(t)
	h.runner.On("apt-get update", utils.ExitStatus(""))

	err := h.execute(t, "--yes", "init")

	require.Error(t, err)
	step, ok := capability.FailedStep(err)
	require.True(t, ok)
	assert.Equal(t, "Unable to update apt-get.", step)
	assert.Equal(t, []string{"apt-get update"}, h.runner.CommandLines(), "git and later tools are not attempted")
}

func TestServiceStart_KFPOnly(t *testing.T) {
	h := newHarness(t)
	h.runner.
		On("docker ps", utils.FakeResult{Stdout: ""}, utils.FakeResult{Stdout: "k3d-my-cluster-server-0"}).
		On("kubectl get pods", utils.FakeResult{Stdout: ""}, utils.FakeResult{Stdout: podsRunning})

	require.NoError(t, h.execute(t, "-y", "service", "start", "--kfp-only", "-n", "my-cluster", "--kfp-version", "1.0.4"))

	lines := h.runner.CommandLines()
	assert.Contains(t, lines, "k3d cluster create my-cluster --image rancher/k3s:v1.19.2-k3s1 --api-port 0.0.0.0:6443")
	assert.Contains(t, lines, "kubectl apply -k github.com/kubeflow/pipelines/manifests/kustomize/cluster-scoped-resources?ref=1.0.4")
	assert.Contains(t, lines, "kubectl apply -k github.com/kubeflow/pipelines/manifests/kustomize/env/platform-agnostic-pns?ref=1.0.4")
	assert.NotContains(t, strings.Join(lines, "\n"), "kfctl")

	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "Ensuring services are running ...\n"))
	assert.Contains(t, out, "Successfully ensured `k3d cluster`.")
	assert.Contains(t, out, "Successfully ensured `KFP Service`.")
}

func TestServiceStart_FullKubeflowUsesManifest(t *testing.T) {
	h := newHarness(t)
	h.runner.
		On("docker ps", utils.FakeResult{Stdout: psRunning}).
		On("kubectl get pods", utils.FakeResult{Stdout: ""}, utils.FakeResult{Stdout: podsRunning})

	require.NoError(t, h.execute(t, "-y", "service", "start", "--kf-yaml", "https://example.com/kfdef.yaml"))

	lines := h.runner.CommandLines()
	assert.Contains(t, lines, "kfctl apply -V -f https://example.com/kfdef.yaml")
	assert.NotContains(t, strings.Join(lines, "\n"), "k3d cluster create", "a running cluster is left alone")
}

func TestServiceStart_InvalidFlags(t *testing.T) {
	h := newHarness(t)

	err := h.execute(t, "-y", "service", "start", "--k3d-cluster-name", "Not_Valid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cluster.name")
	assert.Empty(t, h.runner.Calls())
}

func TestServiceStop(t *testing.T) {
	h := newHarness(t)
	h.runner.On("docker ps", utils.FakeResult{Stdout: psRunning})
	h.confirmer.Answers = []bool{true}

	require.NoError(t, h.execute(t, "service", "stop"))

	assert.Equal(t, []string{"docker ps --filter name=kfp-local", "k3d cluster delete kfp-local"}, h.runner.CommandLines())
	assert.Equal(t, []string{"`k3d cluster` is present: do you want me to remove it?"}, h.confirmer.Prompts)
	assert.Contains(t, h.stdout.String(), "Successfully removed `k3d cluster`.")
}

func TestServiceStop_NotRunning(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.execute(t, "service", "stop"))

	assert.Equal(t, []string{"docker ps --filter name=kfp-local"}, h.runner.CommandLines())
	assert.Contains(t, h.stdout.String(), "`k3d cluster` is not running!")
}

func TestService_RequiresSubcommand(t *testing.T) {
	h := newHarness(t)
	err := h.execute(t, "service")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please use a subcommand")
}

func TestUI(t *testing.T) {
	h := newHarness(t)
	var copied string
	originalClipboard := clipboardWriteAll
	defer func() { clipboardWriteAll = originalClipboard }()
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}

	require.NoError(t, h.execute(t, "-y", "ui", "--kfp-only", "-p", "9000", "--copy-url"))

	assert.Equal(t, []string{"kubectl port-forward --address 0.0.0.0 -n kubeflow svc/ml-pipeline-ui 9000:80"}, h.runner.CommandLines())
	assert.Equal(t, "http://localhost:9000", copied)
	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "Starting the port forward to the UI ...\n"))
	assert.Contains(t, out, "http://localhost:9000")
}

func TestUI_ClipboardFailureIsNotFatal(t *testing.T) {
	h := newHarness(t)
	originalClipboard := clipboardWriteAll
	defer func() { clipboardWriteAll = originalClipboard }()
	clipboardWriteAll = func(string) error { return errors.New("no clipboard utilities available") }

	require.NoError(t, h.execute(t, "-y", "ui", "--copy-url"))
	assert.Equal(t, []string{"kubectl port-forward --address 0.0.0.0 -n istio-system svc/istio-ingressgateway 8080:80"}, h.runner.CommandLines())
}

func TestStatus_IsReadOnly(t *testing.T) {
	h := newHarness(t)
	h.runner.Paths["kubectl"] = "/usr/local/bin/kubectl"
	h.runner.
		On("docker ps", utils.FakeResult{Err: errors.New("docker not found")}).
		On("kubectl get pods", utils.FakeResult{Stdout: podsRunning})

	require.NoError(t, h.execute(t, "status"))

	assert.Equal(t, []string{"docker ps --filter name=kfp-local", "kubectl get pods --all-namespaces"}, h.runner.CommandLines())
	assert.Empty(t, h.confirmer.Prompts)

	out := h.stdout.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "💯 present (/usr/local/bin/kubectl)")
	assert.Contains(t, out, "docker not found")
	assert.Contains(t, out, "KF Service")
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(t)
	SetVersion("1.2.0")
	require.NoError(t, h.execute(t, "version"))
	assert.Equal(t, "kfpl version 1.2.0\n", h.stdout.String())
}

func TestLogLevelFlag(t *testing.T) {
	h := newHarness(t)
	err := h.execute(t, "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
