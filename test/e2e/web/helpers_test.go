package web_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stackledger/stackledger/pkg/invsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for web service end-to-end tests.
 * This includes container setup, SDK client construction, and assertions.
 */

const (
	testImageName = "stackledger-web-test:latest"

	devAPIKey = "test-dev-api-key-12345"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Web Service Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up Web Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/web/Dockerfile",
		"../../../")
	cmd.Dir = "." // Ensure we're in the test directory
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupWebContainer starts the web service in a container and returns the base URL.
func setupWebContainer(t *testing.T) (string, func()) {
	t.Helper()
	return setupWebContainerWithEnv(t, nil)
}

// setupWebContainerWithEnv starts the web service with extra environment
// variables layered over the test defaults.
func setupWebContainerWithEnv(t *testing.T, extra map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"DATABASE_FILE": "/tmp/inventory.db",
		"DEV_API_KEY":   devAPIKey,
		"ENV":           "test",
		"LOG_LEVEL":     "info",
		"LOG_FORMAT":    "json",
		// Increase rate limits for E2E tests to prevent test failures
		// Tests often make many rapid requests which would otherwise hit the strict production limits
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	}
	for k, v := range extra {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	// Get the mapped port
	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// keyedClient returns an SDK client authenticated with the dev API key.
func keyedClient(baseURL string) *invsdk.Client {
	return invsdk.NewClient(baseURL, invsdk.WithAPIKey(devAPIKey))
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health invsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError verifies an error is an APIError with the given status code.
func assertAPIError(t *testing.T, err error, statusCode int, context string) {
	t.Helper()
	require.Error(t, err, context)
	var apiErr *invsdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, statusCode, apiErr.StatusCode, context)
}
