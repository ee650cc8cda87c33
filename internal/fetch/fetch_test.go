package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postingHTML(body string) string {
	return `<html><head><title>Job</title></head><body>
<nav>Home | Jobs | About</nav>
<div class="job-description">` + body + `</div>
<form id="application-form"><input name="email"/></form>
<footer>Copyright</footer>
</body></html>`
}

func TestJobText(t *testing.T) {
	description := strings.Repeat("We are hiring a senior backend engineer to build payment services in Go. ", 12)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(postingHTML(description)))
	}))
	defer server.Close()

	result, err := JobText(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.False(t, result.Rendered)
	assert.Contains(t, result.Text, "senior backend engineer")
	assert.NotContains(t, result.Text, "Copyright")
	assert.NotContains(t, result.Text, "Home | Jobs")
}

func TestJobTextTooShort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(postingHTML("Loading...")))
	}))
	defer server.Close()

	_, err := JobText(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JavaScript-rendered")
}

func TestJobTextHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := JobText(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestJobTextInvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"no scheme", "example.com/jobs/1"},
		{"no host", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JobText(context.Background(), tt.url, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid URL")
		})
	}
}

func TestExtractTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain page without any known containers.</p></body></html>`

	text, err := ExtractText(html, ContentSelectors(PlatformUnknown), nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Plain page without any known containers.")
}

func TestExtractTextRemovesNoise(t *testing.T) {
	html := `<html><body>
<div class="job-description">
<p>Build distributed systems.</p>
<div class="eeo-statement">Equal opportunity employer text.</div>
</div>
</body></html>`

	text, err := ExtractText(html, ContentSelectors(PlatformGreenhouse), NoiseSelectors(PlatformGreenhouse))
	require.NoError(t, err)
	assert.Contains(t, text, "Build distributed systems.")
	assert.NotContains(t, text, "Equal opportunity")
}

func TestCleanWhitespace(t *testing.T) {
	in := "  line one  \n\n\n   line two\t\n   \n"
	assert.Equal(t, "line one\nline two", cleanWhitespace(in))
}
