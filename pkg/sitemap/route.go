package sitemap

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRoutes is wrapped by every error produced while reading a route
// table.
var ErrInvalidRoutes = errors.New("sitemap: invalid routes")

// Route is one registered URL rule of the application being mapped.
type Route struct {
	// Path is the rule pattern, e.g. "/api/users/<int:id>".
	Path string `yaml:"path"`
	// Endpoint is the handler name the rule dispatches to.
	Endpoint string `yaml:"endpoint"`
	// Methods lists the HTTP methods the rule accepts. Empty means GET.
	Methods []string `yaml:"methods,omitempty"`
	// Arguments names the rule's path parameters. When empty they are taken
	// from the placeholders in Path.
	Arguments []string `yaml:"arguments,omitempty"`
	// Defaults supplies values for path parameters.
	Defaults map[string]string `yaml:"defaults,omitempty"`
	// Summary is an optional Markdown description shown in the v2 sitemap.
	Summary string `yaml:"summary,omitempty"`
}

// RouteTable is the on-disk shape of a routes file.
type RouteTable struct {
	Routes      []Route  `yaml:"routes"`
	EntityTypes []string `yaml:"entity_types,omitempty"`
}

// RouteError describes a malformed entry in a route table.
type RouteError struct {
	Index int
	Msg   string
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("route %d: %s", e.Index, e.Msg)
}

func (e *RouteError) Is(target error) bool { return target == ErrInvalidRoutes }

func (e *RouteError) Unwrap() error { return ErrInvalidRoutes }

// ParseRoutes decodes and validates a YAML route table.
func ParseRoutes(data []byte) (*RouteTable, error) {
	var rt RouteTable
	if err := yaml.Unmarshal(data, &rt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoutes, err)
	}
	for i, r := range rt.Routes {
		if strings.TrimSpace(r.Path) == "" {
			return nil, &RouteError{Index: i, Msg: "path is required"}
		}
		if !strings.HasPrefix(r.Path, "/") {
			return nil, &RouteError{Index: i, Msg: fmt.Sprintf("path %q must start with /", r.Path)}
		}
	}
	return &rt, nil
}

// LoadRoutes reads a YAML route table from r.
func LoadRoutes(r io.Reader) (*RouteTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read routes: %w", err)
	}
	return ParseRoutes(data)
}

var placeholderRE = regexp.MustCompile(`<(?:[^<>:]+:)?([^<>:]+)>`)

// Args returns the names of the rule's path parameters.
func (r Route) Args() []string {
	if len(r.Arguments) > 0 {
		return r.Arguments
	}
	matches := placeholderRE.FindAllStringSubmatch(r.Path, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// HasNoEmptyParams reports whether every path parameter can be filled from
// Defaults, i.e. the route can be visited without extra input.
func (r Route) HasNoEmptyParams() bool {
	return len(r.Defaults) >= len(r.Args())
}

// URL fills path parameters from Defaults. Parameters without a default are
// left as their placeholder.
func (r Route) URL() string {
	return placeholderRE.ReplaceAllStringFunc(r.Path, func(m string) string {
		name := placeholderRE.FindStringSubmatch(m)[1]
		if v, ok := r.Defaults[name]; ok {
			return v
		}
		return m
	})
}

// HasMethod reports whether the route accepts method (case-insensitive).
func (r Route) HasMethod(method string) bool {
	if len(r.Methods) == 0 {
		return strings.EqualFold(method, "GET")
	}
	for _, m := range r.Methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

// Method returns the most significant method the route accepts, in the order
// DELETE, POST, PATCH, PUT, falling back to GET.
func (r Route) Method() string {
	for _, m := range []string{"DELETE", "POST", "PATCH", "PUT"} {
		if r.HasMethod(m) {
			return m
		}
	}
	return "GET"
}
