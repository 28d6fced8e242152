package server

import (
	"html/template"

	"github.com/swimtools/psychmark/model"
)

// pageData drives the single page template through its three states:
// fresh form, search results, and error.
type pageData struct {
	Query    string
	Mode     model.Mode
	Searched bool
	Results  []result
	Error    string
}

// result is a match in 1-based presentation form.
type result struct {
	Page int
	Line int
	Text string
}

// NameMode reports whether the swimmer-name radio should be checked.
func (d pageData) NameMode() bool {
	return d.Mode == model.ModeSwimmerName
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Psych Sheet Highlighter</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
.error { color: #a00; }
.warning { color: #860; }
fieldset { margin-bottom: 1rem; }
</style>
</head>
<body>
<h1>Psych Sheet Highlighter</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/search" enctype="multipart/form-data">
  <fieldset>
    <legend>Psych sheet</legend>
    <input type="file" name="sheet" accept="application/pdf" required>
  </fieldset>
  <fieldset>
    <legend>Search</legend>
    <label><input type="radio" name="mode" value="team"{{if not .NameMode}} checked{{end}}> Team code</label>
    <label><input type="radio" name="mode" value="name"{{if .NameMode}} checked{{end}}> Swimmer name</label>
    <br>
    <input type="text" name="query" value="{{.Query}}" placeholder="e.g. MAC-MA or John Smith">
  </fieldset>
  <button type="submit">Search</button>
  <button type="submit" formaction="/highlight">Download Highlighted PDF</button>
</form>
{{if .Searched}}
  {{if .Results}}
    <p>Found {{len .Results}} matching line{{if ne (len .Results) 1}}s{{end}}.</p>
    <table>
      <tr><th>Page</th><th>Line</th><th>Text</th></tr>
      {{range .Results}}<tr><td>{{.Page}}</td><td>{{.Line}}</td><td>{{.Text}}</td></tr>
      {{end}}
    </table>
  {{else}}
    <p class="warning">No matches found.</p>
  {{end}}
{{end}}
</body>
</html>
`
