package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"smoke-token","expires_in":3600,"user":{"id":1,"email":"agent@agency.ae","role":"agent"}}`))
	})
	mux.HandleFunc("GET /api/v1/properties", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer smoke-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Palm Villa","status":"active"}]`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runPPAI(t, binaryPath, home, server.URL,
		"login",
		"--email", "agent@agency.ae",
		"--password", "s3cret",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runPPAI(t, binaryPath, home, server.URL, "property", "list", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Palm Villa")

	stdout, stderr, err = runPPAI(t, binaryPath, home, server.URL, "session")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "user: agent (agent)")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ppai-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ppai")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ppai binary: %s", string(output))
	return binaryPath
}

func runPPAI(t *testing.T, binaryPath, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"PPAI_API_BASE_URL="+baseURL,
		"PPAI_SECRETS_BACKEND=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
