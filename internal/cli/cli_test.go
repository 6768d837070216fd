package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/gemchat/internal/genai"
	"github.com/mithrel/gemchat/internal/prompt"
	"github.com/mithrel/gemchat/internal/session"
)

// isolate points every config, state and home lookup at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("GEMCHAT_ENDPOINT", "")
	t.Setenv("GEMCHAT_OUTPUT", "")
	t.Setenv("GEMCHAT_RENDERER", "")
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// fakeGemini records the prompt texts it receives and answers with reply.
type fakeGemini struct {
	mu      sync.Mutex
	prompts []string
	status  int
	reply   string
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req genai.GenerateContentRequest
	body, _ := io.ReadAll(r.Body)
	if err := json.Unmarshal(body, &req); err == nil && len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
		f.mu.Lock()
		f.prompts = append(f.prompts, req.Contents[0].Parts[0].Text)
		f.mu.Unlock()
	}
	if f.status != 0 {
		w.WriteHeader(f.status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	resp := genai.GenerateContentResponse{Candidates: []genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{{Text: f.reply}}}}}}
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeGemini) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func startGemini(t *testing.T, reply string) (*fakeGemini, string) {
	t.Helper()
	f := &fakeGemini{reply: reply}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv.URL + "/v1beta/models/gemini-2.0-flash:generateContent?key=test"
}

func TestAskPlain(t *testing.T) {
	isolate(t)
	f, url := startGemini(t, "## Intro\nHello world\n\n## Next\nMore text")

	out, err := runCLI(t, "", "ask", "--endpoint", url, "cats")
	require.NoError(t, err)
	assert.Equal(t, "Intro\nHello world\n\nNext\nMore text\n", out)
	assert.Equal(t, []string{"cats"}, f.sent())
}

func TestAskAugmentsLongQuestion(t *testing.T) {
	isolate(t)
	f, url := startGemini(t, "ok")

	_, err := runCLI(t, "", "ask", "--endpoint", url, "Explain", "quantum", "computing")
	require.NoError(t, err)
	require.Len(t, f.sent(), 1)
	assert.Equal(t, prompt.Instruction+"\n\nExplain quantum computing", f.sent()[0])
}

func TestAskFailurePrintsApology(t *testing.T) {
	dir := isolate(t)
	f, url := startGemini(t, "")
	f.status = http.StatusInternalServerError

	out, err := runCLI(t, "", "ask", "--endpoint", url, "cats")
	require.NoError(t, err)
	assert.Equal(t, session.FailureMessage+"\n", out)

	data, err := os.ReadFile(filepath.Join(dir, "state", "gemchat", "gemchat.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "generate content failed")
}

func TestAskJSON(t *testing.T) {
	isolate(t)
	_, url := startGemini(t, "## Title\nbody")

	out, err := runCLI(t, "", "ask", "--endpoint", url, "-o", "json", "hello")
	require.NoError(t, err)

	var got struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		Failed   bool   `json:"failed"`
		Nodes    []struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "hello", got.Question)
	assert.Equal(t, "## Title\nbody", got.Answer)
	assert.False(t, got.Failed)
	require.Len(t, got.Nodes, 2)
	assert.Equal(t, "heading", got.Nodes[0].Kind)
	assert.Equal(t, "Title", got.Nodes[0].Text)
}

func TestAskMarkdownRenderer(t *testing.T) {
	isolate(t)
	_, url := startGemini(t, "# Title\n\n- one\n- **two**")

	out, err := runCLI(t, "", "ask", "--endpoint", url, "--renderer", "markdown", "-o", "ndjson", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		`{"kind":"heading","text":"Title"}`,
		`{"kind":"paragraph","text":"one"}`,
		`{"kind":"paragraph","text":"two"}`,
	}, lines)
}

func TestAskCard(t *testing.T) {
	isolate(t)
	f, url := startGemini(t, "ok")

	_, err := runCLI(t, "", "ask", "--endpoint", url, "--card", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{prompt.Compose(prompt.Cards[1].Text)}, f.sent())

	_, err = runCLI(t, "", "ask", "--endpoint", url, "--card", "9")
	assert.ErrorIs(t, err, prompt.ErrNoCard)
}

func TestAskStdin(t *testing.T) {
	isolate(t)
	f, url := startGemini(t, "ok")

	_, err := runCLI(t, "hey\n", "ask", "--endpoint", url, "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"hey"}, f.sent())
}

func TestAskEmptyQuestion(t *testing.T) {
	isolate(t)
	f, url := startGemini(t, "ok")

	_, err := runCLI(t, "", "ask", "--endpoint", url, "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty question")
	assert.Empty(t, f.sent())
}

func TestAskRequiresEndpoint(t *testing.T) {
	isolate(t)
	_, err := runCLI(t, "", "ask", "cats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is a required field")
}

func TestAskEndpointFromEnv(t *testing.T) {
	isolate(t)
	f, url := startGemini(t, "ok")
	t.Setenv("GEMCHAT_ENDPOINT", url)

	out, err := runCLI(t, "", "ask", "hi")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
	assert.Equal(t, []string{"hi"}, f.sent())
}

func TestCards(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "", "cards")
	require.NoError(t, err)
	for _, c := range prompt.Cards {
		assert.Contains(t, out, c.Text)
	}

	out, err = runCLI(t, "", "cards", "road trip")
	require.NoError(t, err)
	assert.Equal(t, prompt.Cards[0].Text+"\n", out)
}

func TestConfigGenerateSetCheck(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "gemchat", "config.toml")

	out, err := runCLI(t, "", "config", "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, err = runCLI(t, "", "config", "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err = runCLI(t, "", "config", "generate", "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "Config already up to date")

	_, err = runCLI(t, "", "config", "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is a required field")

	_, err = runCLI(t, "", "config", "set", "endpoint", "http://127.0.0.1:9/generate")
	require.NoError(t, err)
	out, err = runCLI(t, "", "config", "check")
	require.NoError(t, err)
	assert.Equal(t, "Config OK\n", out)

	out, err = runCLI(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, err = runCLI(t, "", "config", "set", "ui.word_wrap", "wide")
	assert.Error(t, err)

	out, err = runCLI(t, "", "config", "generate", "--overwrite")
	require.NoError(t, err)
	assert.Contains(t, out, "Backup: "+path+".bak")
}

func TestConfigCheckHonorsFlags(t *testing.T) {
	isolate(t)
	_, err := runCLI(t, "", "config", "check")
	require.Error(t, err)

	out, err := runCLI(t, "", "config", "check", "--endpoint", "http://127.0.0.1:9/generate")
	require.NoError(t, err)
	assert.Equal(t, "Config OK\n", out)

	_, err = runCLI(t, "", "config", "check", "--endpoint", "http://127.0.0.1:9/generate", "--renderer", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renderer must be one of [lines markdown]")
}

func TestCompletion(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")

	_, err = runCLI(t, "", "completion", "tcsh")
	assert.Error(t, err)
}
