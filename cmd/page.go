package cmd

import (
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jsphweid/pianoroll/grid"
)

type card struct {
	ID      int
	Title   string
	Focused bool
	SVG     template.HTML
}

type page struct {
	HasData bool
	Focused int
	Main    []card
	Rest    []card
}

func buildPage(g *grid.Grid) page {
	p := page{HasData: g.HasData(), Focused: g.Focused()}
	for _, r := range g.Rolls() {
		c := card{
			ID:      r.ID,
			Title:   r.Title(),
			Focused: r.Focused(),
			SVG:     template.HTML(r.Surface.String()),
		}
		if c.Focused {
			p.Main = append(p.Main, c)
		} else {
			p.Rest = append(p.Rest, c)
		}
	}
	return p
}

func (s *Server) HandlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.forRequest(w, r)
	sess.mu.Lock()
	p := buildPage(sess.grid)
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, p); err != nil {
		log.WithError(err).Error("could not render page")
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Piano rolls</title>
<style>
  body { font-family: sans-serif; margin: 2em; }
  #pianoRollContainer { display: grid; gap: 1em; }
  #pianoRollContainer.grid { grid-template-columns: auto auto auto; }
  #pianoRollContainer.focused { grid-template-columns: 60% 40%; }
  .piano-roll-card { border: 1px solid #ccc; padding: 0.5em; cursor: pointer; }
  .side-div { display: grid; grid-template-columns: auto auto; gap: 0.5em; }
  .main-div .piano-roll-card { cursor: crosshair; }
</style>
</head>
<body>
<button id="loadCSV">Load piano rolls</button>
<div id="pianoRollContainer" class="{{if ge .Focused 0}}focused{{else}}grid{{end}}">
{{- if ge .Focused 0}}
  <div class="main-div">{{range .Main}}{{template "card" .}}{{end}}</div>
  <div class="side-div">{{range .Rest}}{{template "card" .}}{{end}}</div>
{{- else}}
  {{range .Rest}}{{template "card" .}}{{end}}
{{- end}}
</div>
<script>
const post = (url, body) => fetch(url, {
  method: 'POST',
  credentials: 'same-origin',
  headers: {'Content-Type': 'application/json'},
  body: body ? JSON.stringify(body) : undefined,
}).then(r => r.json());

document.getElementById('loadCSV').addEventListener('click', async () => {
  const res = await post('/api/load');
  if (res.detail) { console.error('Error loading data:', res.detail); return; }
  location.reload();
});

document.querySelectorAll('.piano-roll-card').forEach(card => {
  card.addEventListener('click', async () => {
    if (card.dataset.focused === 'true') return;
    await post('/api/focus/' + card.dataset.roll);
    location.reload();
  });
});

const main = document.querySelector('.main-div .piano-roll-card');
if (main) {
  const roll = Number(main.dataset.roll);
  const send = (type, e) => {
    const svg = main.querySelector('svg');
    const r = svg.getBoundingClientRect();
    return post('/api/pointer', {
      type, roll, x: e.clientX, y: e.clientY,
      box: {left: r.left, top: r.top, width: r.width, height: r.height},
    }).then(res => {
      if (res.svg) svg.outerHTML = res.svg;
      return res;
    });
  };
  let queue = Promise.resolve();
  const enqueue = (type, e) => { queue = queue.then(() => send(type, e)); return queue; };

  let down = false;
  main.addEventListener('pointerdown', e => { e.preventDefault(); down = true; enqueue('down', e); });
  main.addEventListener('pointermove', e => { if (down) enqueue('move', e); });
  // released anywhere, so a drag always ends
  document.addEventListener('pointerup', e => {
    down = false;
    enqueue('up', e).then(res => {
      if (res.completed) alert('Selected notes: ' + res.count);
    });
  });
}
</script>
</body>
</html>
{{define "card"}}<div class="piano-roll-card" data-roll="{{.ID}}" data-focused="{{.Focused}}">
  <div class="description">{{.Title}}</div>
  {{.SVG}}
</div>{{end}}
`))
