package web

// pageTemplates holds the dashboard pages. The styling mirrors the TUI
// palette: pink for ICD-10-CM, green for ICD-10-PCS, gray otherwise.
const pageTemplates = `
{{define "head"}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>ChartLens</title>
<style>
  body { font-family: sans-serif; margin: 2rem auto; max-width: 70rem; color: #222; }
  h1 a { color: inherit; text-decoration: none; }
  table { border-collapse: collapse; width: 100%; }
  th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #ddd; }
  .metrics { display: flex; gap: 2rem; margin: 1rem 0; }
  .metric { background: #f6f6f6; padding: 0.8rem 1.2rem; border-radius: 6px; }
  .metric b { display: block; font-size: 1.4rem; }
  .layout { display: flex; gap: 2rem; align-items: flex-start; }
  .codes { flex: 0 0 22rem; }
  .codes label { display: block; margin: 0.2rem 0; }
  .notes { flex: 1; }
  .note { margin-bottom: 1.5rem; }
  .note h3 { margin-bottom: 0.3rem; }
  .note pre { white-space: pre-wrap; font-family: inherit; line-height: 1.5; }
  mark.cm { background: #f5a9b8; }
  mark.pcs { background: #a6e3a1; }
  mark.other { background: #c5c9d4; }
</style>
</head>
<body>
<h1><a href="/">ChartLens</a></h1>
{{end}}

{{define "index"}}
{{template "head" .}}
<h2>Records</h2>
{{if .Records}}
<table>
  <tr><th>Record</th><th>Notes</th><th>Annotations</th><th>Imported</th></tr>
  {{range .Records}}
  <tr>
    <td><a href="/records/{{.ID}}">{{.ID}}</a></td>
    <td>{{.NoteCount}}</td>
    <td>{{.AnnotationCount}}</td>
    <td>{{.ImportedAt.Format "2006-01-02 15:04"}}</td>
  </tr>
  {{end}}
</table>
{{else}}
<p>No records imported yet. Use <code>chartlens record import</code> to add one.</p>
{{end}}
</body>
</html>
{{end}}

{{define "record"}}
{{template "head" .}}
<h2>Record {{.ID}}</h2>
<div class="metrics">
  <div class="metric"><b>{{.Total}}</b> annotations</div>
  <div class="metric"><b>{{.Diagnoses}}</b> diagnoses</div>
  <div class="metric"><b>{{.Procedures}}</b> procedures</div>
  <div class="metric"><b>{{.UniqueCodes}}</b> unique codes</div>
</div>
<div class="layout">
  <form class="codes" method="get">
    <h3>Codes</h3>
    {{range .Groups}}
    <label>
      <input type="checkbox" name="code" value="{{.Code}}" {{if .Checked}}checked{{end}}>
      <mark class="{{.Class}}">{{.Code}}</mark> {{.Label}}
    </label>
    {{end}}
    <p><button type="submit">Highlight</button></p>
  </form>
  <div class="notes">
    {{range .Notes}}
    <div class="note">
      <h3>[{{.Index}}] {{.Category}}{{if .Description}} / {{.Description}}{{end}}</h3>
      <pre>{{range .Segments}}{{if .Highlighted}}<mark class="{{.Class}}">{{.Content}}</mark>{{else}}{{.Content}}{{end}}{{end}}</pre>
    </div>
    {{end}}
  </div>
</div>
</body>
</html>
{{end}}
`
