package site

// layoutTemplate wraps every page. Each page template defines "content".
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.Site.Title}}</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">
  <link rel="stylesheet" href="{{.Links.Asset "style.css"}}">
</head>
<body data-mode="{{.Links.Mode}}" data-search-index="{{.Links.SearchIndex}}" data-search-action="{{.Links.SearchAction}}">
  <header>
    <nav class="navbar">
      <a class="logo" href="{{.PageHref "home"}}">{{.Site.Title}}</a>
      <ul class="nav-links">
        {{- range .Nav.Links}}
        <li><a href="{{.Href}}" class="nav-link{{if .Active}} active{{end}}" data-page="{{.ID}}">{{.Label}}</a></li>
        {{- end}}
      </ul>
      <form class="search-container" action="{{.Links.SearchAction}}" method="get" role="search">
        <input type="search" id="search-input" name="q" value="{{.Query}}" placeholder="Search tournaments, cubes..." autocomplete="off">
        <input type="hidden" name="first" value="1">
        <div class="search-results" id="search-results"></div>
      </form>
      <button class="mobile-menu-btn" type="button" aria-label="Menu"><i class="fas fa-bars"></i></button>
    </nav>
  </header>
  <main class="page-content active" id="{{.Nav.Active}}">
{{template "content" .}}
  </main>
  <footer>
    <p>&copy; {{.Site.Title}}</p>
  </footer>
  <script>
  (function() {
    var id = location.hash.replace(/^#/, "");
    if (!id) return;
    var link = document.querySelector('.nav-link[data-page="' + id + '"]');
    if (link && !link.classList.contains("active")) location.replace(link.href);
  })();
  </script>
  <script src="{{.Links.Asset "script.js"}}"></script>
</body>
</html>`

// partialsTemplate holds the cards shared by several pages.
const partialsTemplate = `
{{define "loading"}}<div class="loading"></div>{{end}}

{{define "home-tournament"}}
        <div class="tournament-img-home">{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}">{{end}}</div>
        <div class="tournament-content-home">
          <h3>{{.Title}}</h3>
          <div class="tournament-meta-home">
            <div><i class="fas fa-calendar-alt"></i> {{.Date}}</div>
            <div><i class="fas fa-map-marker-alt"></i> {{.Location}}</div>
            {{- if .Time}}
            <div><i class="fas fa-clock"></i> {{.Time}}</div>
            {{- end}}
          </div>
          {{.Description}}
        </div>
{{end}}

{{define "tournament-card"}}
        <div class="tournament-card">
          <div class="tournament-header">
            <div class="tournament-img">{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}">{{end}}</div>
            <div class="tournament-title"><h3>{{.Title}}</h3></div>
          </div>
          <div class="tournament-content">
            <div class="tournament-meta">
              <div><i class="fas fa-calendar-alt"></i> {{.Date}}</div>
              <div><i class="fas fa-map-marker-alt"></i> {{.Location}}</div>
              {{- if .Time}}
              <div><i class="fas fa-clock"></i> {{.Time}}</div>
              {{- end}}
            </div>
            {{.Description}}
            {{- if not .Gallery.Empty}}
            <details class="gallery-toggle">
              <summary class="expand-btn toggle-gallery-btn"><span class="show-label">View Event Gallery</span><span class="hide-label">Hide Event Gallery</span></summary>
              <div class="tournament-gallery active" id="gallery-{{.Index}}">
                <h4 class="gallery-title">Event Gallery</h4>
                <div class="gallery-grid">
                  {{- range .Gallery.Preview}}
                  <div class="gallery-item"><img src="{{.}}" alt="{{$.Title}}"></div>
                  {{- end}}
                </div>
                {{- if .GalleryHref}}
                <a class="expand-btn view-all-gallery" href="{{.GalleryHref}}">View All {{len .Gallery.Images}} Photos</a>
                {{- end}}
              </div>
            </details>
            {{- end}}
          </div>
        </div>
{{end}}
`

// pageTemplates holds the "content" block of each page, keyed by name.
var pageTemplates = map[string]string{
	"home": `{{define "content"}}{{with .View}}
    <section class="hero">
      <h1>{{$.Site.Title}}</h1>
      {{- if $.Site.Tagline}}
      <p>{{$.Site.Tagline}}</p>
      {{- end}}
    </section>
    <section class="home-section">
      <h2 class="section-title">Upcoming Tournament</h2>
      <div class="tournament-card-home" id="upcoming-tournament-home">
        {{- if .Upcoming}}{{template "home-tournament" .Upcoming}}{{else if .Loading}}{{template "loading"}}{{else}}<p>No upcoming tournaments found.</p>{{end}}
      </div>
      <a class="btn" href="{{$.PageHref "tournaments"}}">All Tournaments</a>
    </section>
    <section class="home-section">
      <h2 class="section-title">Previous Tournament</h2>
      <div class="tournament-card-home" id="previous-tournament-home">
        {{- if .Previous}}{{template "home-tournament" .Previous}}{{else if .Loading}}{{template "loading"}}{{else}}<p>No previous tournaments found.</p>{{end}}
      </div>
    </section>
    <section class="home-section">
      <h2 class="section-title">Our Cubes</h2>
      <div class="home-cubes-grid" id="home-cubes-grid">
        {{- with .Cubes}}
        {{- if .Loading}}{{template "loading"}}{{else if .Failed}}<p>Error loading cube data</p>{{else if .Empty}}<p>No cubes found.</p>{{else}}
        {{- range .Items}}
        <div class="home-cube-item">
          <div class="home-cube-img">{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}</div>
          <div class="home-cube-caption">
            <h4>{{.Name}}</h4>
            {{- if .Blurb}}
            <p>{{.Blurb}}</p>
            {{- end}}
          </div>
        </div>
        {{- end}}
        {{- end}}
        {{- end}}
      </div>
      <a class="btn" href="{{$.PageHref "cubes"}}">All Cubes</a>
    </section>
{{end}}{{end}}`,

	"tournaments": `{{define "content"}}{{with .View}}
    <section class="page-header"><h1>Tournaments</h1></section>
    <div class="tabs">
      {{- range $.Nav.Tabs}}
      <a href="{{.Href}}" class="tab-btn{{if .Active}} active{{end}}" data-tab="{{.ID}}">{{.Label}}</a>
      {{- end}}
    </div>
    <div class="tab-content active" id="{{.Tab}}-tab">
      <div class="tournament-list" id="{{.Tab}}-tournaments">
        {{- with .Tournaments}}
        {{- if .Loading}}{{template "loading"}}{{else if .Failed}}<p>Error loading tournament data</p>{{else if .Empty}}<p>No tournaments found.</p>{{else}}
        {{- range .Items}}{{template "tournament-card" .}}{{end}}
        {{- end}}
        {{- end}}
      </div>
    </div>
{{end}}{{end}}`,

	"showcase": `{{define "content"}}{{with .View}}
    <section class="page-header"><h1>Showcase</h1></section>
    <div class="showcase-grid" id="showcase-grid">
      {{- if .Loading}}{{template "loading"}}{{else if .Failed}}<p>Error loading showcase data</p>{{else if .Empty}}<p>No showcase items found.</p>{{else}}
      {{- range .Items}}
      <div class="showcase-item">
        <div class="showcase-img">{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}">{{end}}</div>
        <div class="showcase-caption"><p>{{.Title}}</p></div>
      </div>
      {{- end}}
      {{- end}}
    </div>
{{end}}{{end}}`,

	"cubes": `{{define "content"}}{{with .View}}
    <section class="page-header"><h1>Cubes</h1></section>
    <div class="cubes-grid" id="cubes-grid">
      {{- if .Loading}}{{template "loading"}}{{else if .Failed}}<p>Error loading cube data</p>{{else if .Empty}}<p>No cubes found.</p>{{else}}
      {{- range .Items}}
      <div class="cube-card">
        <div class="cube-img">{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}</div>
        <div class="cube-content">
          <h3>{{.Name}}</h3>
          {{.Description}}
          {{- if .Features}}
          <ul class="cube-features">
            {{- range .Features}}
            <li><i class="fas fa-check"></i> {{.}}</li>
            {{- end}}
          </ul>
          {{- end}}
        </div>
      </div>
      {{- end}}
      {{- end}}
    </div>
{{end}}{{end}}`,

	"search": `{{define "content"}}{{with .View}}
    <section class="page-header"><h1>Search</h1></section>
    <div id="search-page-results">
      {{- if .Active}}
      <div class="search-results search-results-page">
        {{- range .Items}}
        <a class="search-result-item" href="{{$.PageHref .Page}}"><strong>{{.Title}}</strong><br><small>Category: {{.Category}}</small></a>
        {{- else}}
        <div class="search-result-item">No results found</div>
        {{- end}}
      </div>
      {{- else}}
      <p class="search-hint">Type at least 2 characters to search.</p>
      {{- end}}
    </div>
{{end}}{{end}}`,

	"gallery": `{{define "content"}}{{with .View}}
    <div class="gallery-modal" id="galleryModal">
      <a class="modal-backdrop" href="{{.CloseURL}}" aria-label="Close gallery"></a>
      <div class="gallery-modal-content">
        <a class="close-gallery" id="closeGallery" href="{{.CloseURL}}" aria-label="Close">&times;</a>
        <h3 id="galleryModalTitle">{{.Title}}</h3>
        <div class="gallery-modal-grid" id="galleryModalGrid">
          {{- range .Images}}
          <div class="gallery-modal-item"><img src="{{.}}" alt="{{$.Title}}"></div>
          {{- end}}
        </div>
      </div>
    </div>
{{end}}{{end}}`,

	"lightbox": `{{define "content"}}{{with .View}}
    <div class="modal lightbox" id="imageModal" data-prev="{{.PrevURL}}" data-next="{{.NextURL}}" data-close="{{.CloseURL}}" data-keys="{{.KeyURL}}">
      <a class="modal-backdrop" href="{{.CloseURL}}" aria-label="Close"></a>
      <a class="close" href="{{.CloseURL}}" aria-label="Close">&times;</a>
      <img class="modal-content" id="modalImage" src="{{.Image}}" alt="">
      <div id="modalCaption">{{.Number}} / {{.Total}}</div>
      <a class="prev" href="{{.PrevURL}}" aria-label="Previous image">&#10094;</a>
      <a class="next" href="{{.NextURL}}" aria-label="Next image">&#10095;</a>
    </div>
{{end}}{{end}}`,
}

// cssContent is the stylesheet of the site.
const cssContent = `:root {
  --primary: #6c3fc4;
  --primary-dark: #4f2b96;
  --accent: #f2b134;
  --bg: #f7f6fb;
  --card: #ffffff;
  --text: #232129;
  --muted: #6b6878;
  --radius: 10px;
  --shadow: 0 2px 10px rgba(0,0,0,0.08);
}

* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--text); line-height: 1.6; }
a { color: var(--primary); }
img { max-width: 100%; display: block; }

header { background: var(--primary); position: sticky; top: 0; z-index: 100; box-shadow: var(--shadow); }
.navbar { max-width: 1200px; margin: 0 auto; padding: 0.8rem 1.5rem; display: flex; align-items: center; gap: 1.5rem; }
.logo { color: #fff; font-size: 1.4rem; font-weight: 700; text-decoration: none; }
.nav-links { display: flex; list-style: none; gap: 1.2rem; }
.nav-link { color: rgba(255,255,255,0.85); text-decoration: none; font-weight: 500; padding-bottom: 2px; border-bottom: 2px solid transparent; }
.nav-link:hover, .nav-link.active { color: #fff; border-bottom-color: var(--accent); }
.mobile-menu-btn { display: none; background: none; border: none; color: #fff; font-size: 1.4rem; cursor: pointer; margin-left: auto; }

.search-container { position: relative; margin-left: auto; }
#search-input { padding: 0.45rem 0.8rem; border-radius: 20px; border: none; width: 230px; }
.search-results { display: none; position: absolute; right: 0; top: 110%; width: 320px; max-height: 380px; overflow-y: auto; background: var(--card); border-radius: var(--radius); box-shadow: var(--shadow); }
.search-results-page { display: block; position: static; width: auto; max-height: none; }
.search-result-item { display: block; padding: 0.7rem 1rem; border-bottom: 1px solid #eee; color: var(--text); text-decoration: none; cursor: pointer; }
.search-result-item:hover { background: #f2eefb; }
.search-hint { color: var(--muted); }

main { max-width: 1200px; margin: 0 auto; padding: 2rem 1.5rem; min-height: 70vh; }
.page-content { display: none; }
.page-content.active { display: block; }
.hero { text-align: center; padding: 2.5rem 1rem; }
.hero h1 { font-size: 2.4rem; color: var(--primary-dark); }
.page-header { margin-bottom: 1.5rem; }
.section-title { margin-bottom: 1rem; color: var(--primary-dark); }
.home-section { margin-bottom: 2.5rem; }
.btn { display: inline-block; margin-top: 1rem; padding: 0.5rem 1.1rem; background: var(--primary); color: #fff; border-radius: 20px; text-decoration: none; }

.tournament-card-home { display: grid; grid-template-columns: 320px 1fr; gap: 1.5rem; background: var(--card); border-radius: var(--radius); box-shadow: var(--shadow); overflow: hidden; }
.tournament-content-home { padding: 1.2rem; }
.tournament-meta-home, .tournament-meta { display: flex; flex-wrap: wrap; gap: 1rem; color: var(--muted); margin: 0.5rem 0; }

.tabs { display: flex; gap: 0.5rem; margin-bottom: 1.5rem; }
.tab-btn { padding: 0.5rem 1.2rem; border-radius: 20px; background: #e6e0f5; color: var(--primary-dark); text-decoration: none; }
.tab-btn.active { background: var(--primary); color: #fff; }
.tab-content { display: none; }
.tab-content.active { display: block; }

.tournament-list { display: grid; gap: 1.5rem; }
.tournament-card { background: var(--card); border-radius: var(--radius); box-shadow: var(--shadow); overflow: hidden; }
.tournament-header { display: grid; grid-template-columns: 260px 1fr; align-items: center; }
.tournament-title { padding: 1rem 1.2rem; }
.tournament-content { padding: 0 1.2rem 1.2rem; }
.expand-btn { display: inline-block; margin-top: 0.8rem; padding: 0.4rem 1rem; border-radius: 20px; border: 1px solid var(--primary); color: var(--primary); background: none; text-decoration: none; cursor: pointer; list-style: none; }
.gallery-toggle summary::-webkit-details-marker { display: none; }
.gallery-toggle .hide-label, .gallery-toggle[open] .show-label { display: none; }
.gallery-toggle[open] .hide-label { display: inline; }
.tournament-gallery { margin-top: 1rem; }
.gallery-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 0.5rem; }
.gallery-item img, .gallery-modal-item img { aspect-ratio: 1; object-fit: cover; border-radius: 6px; }

.showcase-grid, .cubes-grid, .home-cubes-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 1.5rem; }
.showcase-item, .cube-card, .home-cube-item { background: var(--card); border-radius: var(--radius); box-shadow: var(--shadow); overflow: hidden; }
.showcase-caption, .cube-content, .home-cube-caption { padding: 1rem; }
.cube-features { list-style: none; margin-top: 0.6rem; }
.cube-features i { color: var(--primary); margin-right: 0.3rem; }

.lightbox-link { display: block; cursor: zoom-in; }

.modal, .gallery-modal { position: fixed; inset: 0; z-index: 1000; display: flex; align-items: center; justify-content: center; }
.modal-backdrop { position: absolute; inset: 0; background: rgba(10,8,20,0.9); }
.modal-content { position: relative; max-width: 90vw; max-height: 85vh; object-fit: contain; }
#modalCaption { position: absolute; bottom: 1.5rem; color: #ddd; }
.close, .close-gallery { position: absolute; top: 1rem; right: 1.5rem; color: #fff; font-size: 2.4rem; text-decoration: none; z-index: 2; }
.prev, .next { position: absolute; top: 50%; transform: translateY(-50%); color: #fff; font-size: 2rem; padding: 1rem; text-decoration: none; z-index: 2; }
.prev { left: 1rem; }
.next { right: 1rem; }
.gallery-modal-content { position: relative; background: var(--card); border-radius: var(--radius); width: min(1100px, 92vw); max-height: 88vh; overflow-y: auto; padding: 1.5rem; }
.gallery-modal-content .close-gallery { color: var(--text); top: 0.5rem; right: 1rem; }
.gallery-modal-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); gap: 0.6rem; margin-top: 1rem; }

.loading { width: 42px; height: 42px; margin: 2rem auto; border: 4px solid #ddd; border-top-color: var(--primary); border-radius: 50%; animation: spin 0.9s linear infinite; }
@keyframes spin { to { transform: rotate(360deg); } }

footer { text-align: center; padding: 2rem; color: var(--muted); }

@media (max-width: 800px) {
  .navbar { flex-wrap: wrap; }
  .mobile-menu-btn { display: block; }
  .nav-links { display: none; flex-direction: column; width: 100%; }
  .nav-links.active { display: flex; }
  .search-container { width: 100%; }
  #search-input { width: 100%; }
  .tournament-card-home, .tournament-header { grid-template-columns: 1fr; }
  .gallery-grid { grid-template-columns: repeat(2, 1fr); }
}
`

// jsContent drives the mobile menu, live search and lightbox keys.
const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var live = body.getAttribute("data-mode") === "live";

  // ===== Mobile menu =====
  var menuBtn = document.querySelector(".mobile-menu-btn");
  var navLinks = document.querySelector(".nav-links");
  if (menuBtn && navLinks) {
    menuBtn.addEventListener("click", function() {
      navLinks.classList.toggle("active");
    });
  }

  // ===== Search =====
  var input = document.getElementById("search-input");
  var panel = document.getElementById("search-results");
  var pageLinks = {};
  document.querySelectorAll(".nav-link").forEach(function(a) {
    pageLinks[a.getAttribute("data-page")] = a.href;
  });

  function renderResults(res, target, asPanel) {
    target.innerHTML = "";
    if (!res.active) {
      if (asPanel) target.style.display = "none";
      return;
    }
    var items = res.results || [];
    if (items.length === 0) {
      var none = document.createElement("div");
      none.className = "search-result-item";
      none.textContent = "No results found";
      target.appendChild(none);
    }
    items.forEach(function(r) {
      var a = document.createElement("a");
      a.className = "search-result-item";
      a.href = pageLinks[r.page] || "#";
      var strong = document.createElement("strong");
      strong.textContent = r.title;
      var small = document.createElement("small");
      small.textContent = "Category: " + r.category;
      a.appendChild(strong);
      a.appendChild(document.createElement("br"));
      a.appendChild(small);
      target.appendChild(a);
    });
    if (asPanel) target.style.display = "block";
  }

  // Static builds search a prebuilt index with the same rules as the server.
  var index = null;
  function searchIndex(term, done) {
    var q = term.toLowerCase().trim();
    if (q.length < 2) { done({ active: false, results: [] }); return; }
    function run() {
      done({
        active: true,
        results: index.filter(function(e) {
          return (e.title && e.title.toLowerCase().indexOf(q) !== -1) ||
            (e.description && e.description.toLowerCase().indexOf(q) !== -1);
        })
      });
    }
    if (index) { run(); return; }
    fetch(body.getAttribute("data-search-index"))
      .then(function(r) { return r.json(); })
      .then(function(data) { index = data || []; run(); })
      .catch(function() { index = []; run(); });
  }

  var socket = null;
  var pending = null;
  function liveSearch(term) {
    if (!("WebSocket" in window)) return;
    if (!socket || socket.readyState > 1) {
      var proto = location.protocol === "https:" ? "wss://" : "ws://";
      socket = new WebSocket(proto + location.host + "/ws/search");
      socket.onmessage = function(ev) {
        try { renderResults(JSON.parse(ev.data), panel, true); } catch (e) {}
      };
      socket.onopen = function() {
        if (pending !== null) { socket.send(JSON.stringify({ q: pending })); pending = null; }
      };
    }
    if (socket.readyState === 1) {
      socket.send(JSON.stringify({ q: term }));
    } else {
      pending = term;
    }
  }

  if (input && panel) {
    input.addEventListener("input", function() {
      if (live) {
        liveSearch(input.value);
      } else {
        searchIndex(input.value, function(res) { renderResults(res, panel, true); });
      }
    });
    document.addEventListener("click", function(e) {
      if (!input.contains(e.target) && !panel.contains(e.target)) panel.style.display = "none";
    });
  }

  // The static search page has no server, so it searches the index here.
  var pageResults = document.getElementById("search-page-results");
  if (!live && pageResults) {
    var params = new URLSearchParams(location.search);
    var q = params.get("q") || "";
    if (input) input.value = q;
    searchIndex(q, function(res) {
      if (params.get("first") === "1" && res.results.length > 0) {
        location.replace(pageLinks[res.results[0].page]);
        return;
      }
      if (!res.active) return;
      var list = document.createElement("div");
      list.className = "search-results search-results-page";
      pageResults.innerHTML = "";
      pageResults.appendChild(list);
      renderResults(res, list, false);
    });
  }

  // ===== Lightbox keys =====
  var modal = document.getElementById("imageModal");
  if (modal) {
    document.addEventListener("keydown", function(e) {
      if (e.key !== "Escape" && e.key !== "ArrowLeft" && e.key !== "ArrowRight") return;
      if (live) {
        location.href = modal.getAttribute("data-keys") + encodeURIComponent(e.key);
        return;
      }
      var target = { Escape: "data-close", ArrowLeft: "data-prev", ArrowRight: "data-next" }[e.key];
      location.href = modal.getAttribute(target);
    });
  }
})();
`
