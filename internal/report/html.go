package report

import (
	"html/template"
	"os"
	"strings"

	"github.com/arjunmehta/aply/internal/types"
)

// WriteHTML renders a self-contained review page for a run: every artifact
// with a copy-to-clipboard button, plus the validation summary and scores.
// No external assets, so the file can be opened or mailed as-is.
func WriteHTML(run *Run, path string) error {
	data := htmlData{
		Company:     orDash(run.Bundle.Company),
		Role:        orDash(run.Bundle.Role),
		Country:     run.Bundle.Country,
		GeneratedAt: run.GeneratedAt.Format("2006-01-02 15:04"),
	}
	if run.Country != nil {
		data.Country = run.Country.Name
	}

	for _, artifact := range run.Bundle.Artifacts() {
		data.Artifacts = append(data.Artifacts, htmlArtifact{
			ID:    artifact.Name,
			Title: artifactTitle(artifact.Name),
			Text:  artifact.Text,
			Chars: len(artifact.Text),
			Words: len(strings.Fields(artifact.Text)),
		})
	}

	if v := run.Validation; v != nil {
		data.Passed = v.Passed
		data.Errors = v.ErrorCount()
		data.Warnings = v.WarningCount()
		data.Violations = v.Violations
		data.ATSScores = v.ATSScores
		data.Styles = v.Styles
	}

	f, err := os.Create(path)
	if err != nil {
		return &Error{Path: path, Message: "failed to create HTML report", Cause: err}
	}
	defer func() { _ = f.Close() }()

	if err := pageTemplate.Execute(f, data); err != nil {
		return &Error{Path: path, Message: "failed to render HTML report", Cause: err}
	}
	return nil
}

type htmlData struct {
	Company     string
	Role        string
	Country     string
	GeneratedAt string

	Passed     bool
	Errors     int
	Warnings   int
	Violations []types.Violation
	ATSScores  []types.ATSScore
	Styles     []types.StyleResult

	Artifacts []htmlArtifact
}

type htmlArtifact struct {
	ID    string
	Title string
	Text  string
	Chars int
	Words int
}

func artifactTitle(name string) string {
	switch name {
	case "resume":
		return "Résumé"
	case "cover_letter":
		return "Cover Letter"
	case "email":
		return "Email Template"
	case "linkedin_connection":
		return "LinkedIn Connection Note"
	case "linkedin_followup":
		return "LinkedIn Follow-up"
	default:
		return name
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Application — {{.Company}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f5f6f8; color: #1d2330; }
.wrap { max-width: 860px; margin: 0 auto; padding: 24px 16px 64px; }
header h1 { margin: 0 0 4px; font-size: 1.5rem; }
header p { margin: 0; color: #5a6272; }
.badge { display: inline-block; padding: 2px 10px; border-radius: 12px; font-size: .8rem; font-weight: 600; }
.badge.pass { background: #d9f2e3; color: #176b3a; }
.badge.fail { background: #fbdcdc; color: #8f1f1f; }
section { background: #fff; border: 1px solid #e3e6eb; border-radius: 8px; margin-top: 20px; padding: 16px 20px; }
section h2 { margin: 0 0 10px; font-size: 1.05rem; }
.meta { font-size: .8rem; color: #5a6272; margin-bottom: 8px; }
pre { white-space: pre-wrap; word-wrap: break-word; background: #f8f9fb; border: 1px solid #e3e6eb; border-radius: 6px; padding: 12px; font-size: .85rem; line-height: 1.45; margin: 0; }
button.copy { float: right; border: 1px solid #c6ccd6; background: #fff; border-radius: 6px; padding: 4px 12px; font-size: .8rem; cursor: pointer; }
button.copy:hover { background: #eef1f5; }
table { border-collapse: collapse; width: 100%; font-size: .85rem; }
th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #e3e6eb; }
.sev-error { color: #8f1f1f; font-weight: 600; }
.sev-warning { color: #946200; font-weight: 600; }
</style>
</head>
<body>
<div class="wrap">
<header>
<h1>{{.Company}} — {{.Role}}</h1>
<p>{{.Country}} · generated {{.GeneratedAt}} ·
{{if .Passed}}<span class="badge pass">PASSED</span>{{else}}<span class="badge fail">{{.Errors}} error(s)</span>{{end}}
{{if .Warnings}}<span class="badge fail">{{.Warnings}} warning(s)</span>{{end}}
</p>
</header>

{{if .Violations}}
<section>
<h2>Validation</h2>
<table>
<tr><th>Severity</th><th>Type</th><th>Artifact</th><th>Details</th></tr>
{{range .Violations}}
<tr><td class="sev-{{.Severity}}">{{.Severity}}</td><td>{{.Type}}</td><td>{{.Artifact}}</td><td>{{.Details}}</td></tr>
{{end}}
</table>
</section>
{{end}}

{{if .ATSScores}}
<section>
<h2>Scores</h2>
<table>
<tr><th>Artifact</th><th>ATS</th><th>Human</th></tr>
{{$styles := .Styles}}
{{range .ATSScores}}
{{$a := .Artifact}}
<tr><td>{{.Artifact}}</td><td>{{.Score}}</td><td>{{range $styles}}{{if eq .Artifact $a}}{{.HumanScore}}{{end}}{{end}}</td></tr>
{{end}}
</table>
</section>
{{end}}

{{range .Artifacts}}
<section>
<button class="copy" data-target="{{.ID}}">Copy</button>
<h2>{{.Title}}</h2>
<p class="meta">{{.Words}} words · {{.Chars}} characters</p>
<pre id="{{.ID}}">{{.Text}}</pre>
</section>
{{end}}
</div>

<script>
document.querySelectorAll('button.copy').forEach(function (btn) {
  btn.addEventListener('click', function () {
    var text = document.getElementById(btn.dataset.target).textContent;
    navigator.clipboard.writeText(text).then(function () {
      var old = btn.textContent;
      btn.textContent = 'Copied!';
      setTimeout(function () { btn.textContent = old; }, 1200);
    });
  });
});
</script>
</body>
</html>
`))
