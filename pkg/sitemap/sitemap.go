// Package sitemap renders an HTML index of an application's registered routes
// so developers can browse the backend from a single page.
package sitemap

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

const (
	// DefaultAdminLink is the first entry of every sitemap.
	DefaultAdminLink = "/admin/"
	// DefaultTheme is the bootstrap swatch used when none is configured.
	DefaultTheme = "slate"
)

//go:embed res/index.html
var indexTemplate string

//go:embed res/styles.css
var stylesheet string

// Options tweaks sitemap rendering. The zero value is usable.
type Options struct {
	AdminLink string
	Theme     string
	// EntityTypes are extra API URLs appended as GET links (v2 only).
	EntityTypes []string
	// Forbidden endpoints are never listed as spans (v2 only). Nil means
	// DefaultForbidden.
	Forbidden []string
}

// DefaultForbidden lists endpoints hidden from the v2 span list.
var DefaultForbidden = []string{"serve_any_other_file"}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.AdminLink) == "" {
		o.AdminLink = DefaultAdminLink
	}
	if strings.TrimSpace(o.Theme) == "" {
		o.Theme = DefaultTheme
	}
	if o.Forbidden == nil {
		o.Forbidden = DefaultForbidden
	}
	return o
}

// Generate renders the basic sitemap: the admin link followed by every GET
// route that needs no parameters and is not part of the admin site.
func Generate(routes []Route, opts Options) string {
	opts = opts.withDefaults()

	links := []string{opts.AdminLink}
	for _, r := range routes {
		if !r.HasMethod("GET") || !r.HasNoEmptyParams() {
			continue
		}
		url := r.URL()
		if strings.Contains(url, "/admin/") {
			continue
		}
		links = append(links, url)
	}

	var items strings.Builder
	for _, l := range links {
		esc := html.EscapeString(l)
		fmt.Fprintf(&items, "<li><a href='%s'>%s</a></li>", esc, esc)
	}

	return fmt.Sprintf(`<head>
    <title>-- BACKEND --</title>
    <link href="/admin/static/bootstrap/bootstrap3/swatch/%s/bootstrap.min.css?v=3.3.5" rel="stylesheet">
</head>
<body>
    <div style="text-align: center;">
        <p>HOST: <script>document.write('<input style="padding: 5px; width: 300px" type="text" value="'+window.location.href+'" />');</script></p>
        <ul style="text-align: left;">
            %s
        </ul>
    </div>
</body>`, html.EscapeString(opts.Theme), items.String())
}

var (
	hiddenEndpointRE = regexp.MustCompile(`wipe|execute`)
	hiddenRuleRE     = regexp.MustCompile(`static|export|admin`)
	hostRE           = regexp.MustCompile(`//([^.]+)\.[^.]+\.[^/]+(.*)`)
)

// entry is one rendered line of the v2 sitemap.
type entry struct {
	method  string
	url     string
	color   string
	label   string
	summary string
}

// GenerateV2 renders the styled sitemap. Browsable GET routes become links,
// other routes are listed as plain text, each tagged with its method and a
// colour class derived from the URL.
func GenerateV2(routes []Route, opts Options) (string, error) {
	opts = opts.withDefaults()

	var links, spans []entry
	for _, r := range routes {
		if r.HasMethod("GET") && r.HasNoEmptyParams() && !hiddenEndpointRE.MatchString(r.Endpoint) {
			e, err := newEntry(r)
			if err != nil {
				return "", err
			}
			if !strings.Contains(e.url, "admin") {
				links = append(links, e)
			}
			continue
		}
		if hiddenRuleRE.MatchString(r.Path) || isForbidden(r.Endpoint, opts.Forbidden) {
			continue
		}
		e, err := newEntry(r)
		if err != nil {
			return "", err
		}
		spans = append(spans, e)
	}
	for _, u := range opts.EntityTypes {
		links = append(links, entry{method: "GET", url: u, color: "api", label: u})
	}

	adminLink := fmt.Sprintf(`<p><a class="admin" href="%[1]s">Site admin: <span>%[1]s</span></a></p>`,
		html.EscapeString(opts.AdminLink))

	var linkHTML, spanHTML strings.Builder
	for _, e := range links {
		fmt.Fprintf(&linkHTML, `<li><div class="method method-%s">%s</div><a class="apilink-%s" href="%s">%s</a>%s</li>`,
			strings.ToLower(e.method), e.method, e.color, html.EscapeString(e.url), html.EscapeString(e.label), e.summary)
	}
	for _, e := range spans {
		fmt.Fprintf(&spanHTML, `<li><div class="method method-%s">%s</div>%s%s</li>`,
			strings.ToLower(e.method), e.method, html.EscapeString(e.label), e.summary)
	}

	page := strings.NewReplacer(
		"%SWATCH%", html.EscapeString(opts.Theme),
		"%CSS%", stylesheet,
		"%ADMIN_LINK%", adminLink,
		"%ENDPOINT_LINK%", linkHTML.String(),
		"%ENDPOINT_SPAN%", spanHTML.String(),
	).Replace(indexTemplate)
	return page, nil
}

func newEntry(r Route) (entry, error) {
	url := r.URL()
	summary, err := renderSummary(r.Summary)
	if err != nil {
		return entry{}, fmt.Errorf("render summary for %s: %w", r.Path, err)
	}
	return entry{
		method:  r.Method(),
		url:     url,
		color:   ColorClass(url),
		label:   Label(url),
		summary: summary,
	}, nil
}

func isForbidden(endpoint string, forbidden []string) bool {
	for _, f := range forbidden {
		if endpoint == f {
			return true
		}
	}
	return false
}

func renderSummary(md string) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return `<div class="summary">` + strings.TrimSpace(buf.String()) + `</div>`, nil
}

// ColorClass buckets a URL into the css class used to colour its link.
func ColorClass(url string) string {
	switch {
	case strings.Contains(url, "healthcheck"):
		return "other"
	case strings.Contains(url, "admin"):
		return "admin"
	case strings.Contains(url, "accounts"):
		return "accounts"
	case strings.Contains(url, "workspaces"):
		return "workspaces"
	case strings.Contains(url, "boards"):
		return "boards"
	case strings.Contains(url, "objects"):
		return "objects"
	case strings.Contains(url, "api"):
		return "api"
	case url == "/":
		return "root"
	}
	return "other"
}

// Label shortens an absolute URL such as "https://svc.example.com/api/x" to
// "svc:/api/x". Relative URLs are returned unchanged.
func Label(url string) string {
	m := hostRE.FindStringSubmatch(url)
	if len(m) == 3 {
		return m[1] + ":" + m[2]
	}
	return url
}
