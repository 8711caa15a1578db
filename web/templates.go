package web

import "html/template"

func newTemplates() *template.Template {
	return template.Must(template.New("page").Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Gantt</title>
  <style>
    :root {
      color-scheme: light;
      --color-critical: #d73a49;
    }
    body {
      margin: 0;
      font-family: "Charter", "Georgia", serif;
      color: #2b2520;
      background: radial-gradient(circle at top left, #f4efe3 0%, #fcfaf6 55%, #f6f2e8 100%);
    }
    header {
      padding: 16px 24px;
      border-bottom: 1px solid #d7cdbd;
      background: rgba(255, 255, 255, 0.72);
    }
    header h1 {
      margin: 0 0 4px 0;
      font-size: 20px;
    }
    header p {
      margin: 0;
      color: #5b5148;
      font-size: 14px;
    }
    main {
      padding: 16px 24px;
    }
    .banner {
      color: var(--color-critical);
      margin: 0 0 12px 0;
      font-size: 14px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
    }
    td, th {
      padding: 6px 8px;
      border-bottom: 1px solid #e5dccd;
      font-size: 14px;
      text-align: left;
      white-space: nowrap;
    }
    td.track {
      width: 60%;
      position: relative;
    }
    .bar {
      position: absolute;
      top: 8px;
      height: 14px;
      border-radius: 4px;
      background: #d8cbb5;
      overflow: hidden;
    }
    .bar .done {
      height: 100%;
      background: #8a7b66;
    }
    .bar.milestone {
      width: 14px !important;
      transform: rotate(45deg);
      border-radius: 2px;
      background: #5b5148;
    }
    tr.is-critical .bar {
      background: #f2b8be;
    }
    tr.is-critical .bar .done {
      background: var(--color-critical);
    }
    tr.is-critical td.name {
      color: var(--color-critical);
      font-weight: 600;
    }
    .muted {
      color: #8a7b66;
    }
  </style>
</head>
<body>
  <header>
    <h1>Timeline</h1>
    {{if .WindowStart}}<p>{{.WindowStart}} .. {{.WindowEnd}} ({{.WindowDays}} days){{if .CriticalLength}} &middot; critical path {{.CriticalLength}}{{end}}</p>{{end}}
  </header>
  <main>
    {{if .Banner}}<p class="banner" role="alert">&#9888; {{.Banner}}</p>{{end}}
    {{if .Rows}}
    <table>
      <thead>
        <tr><th>ID</th><th>Task</th><th>Assignee</th><th>Start</th><th>End</th><th>Progress</th><th>Timeline</th></tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr id="task-{{.ID}}"{{if .Critical}} class="is-critical"{{end}}>
          <td class="muted">{{.ID}}</td>
          <td class="name">{{.Name}}</td>
          <td>{{.Assignee}}</td>
          <td>{{.Start}}</td>
          <td>{{.End}}</td>
          <td>{{.Progress}}%</td>
          <td class="track">{{if .Placed}}<div class="bar{{if .Milestone}} milestone{{end}}" style="left: {{.Left}}%; width: {{.Width}}%">{{if not .Milestone}}<div class="done" style="width: {{.Progress}}%"></div>{{end}}</div>{{end}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{else}}
    <p class="muted">No tasks yet.</p>
    {{end}}
  </main>
</body>
</html>
`
