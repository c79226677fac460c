// Package workspace holds the request, collection, and workspace models and
// their on-disk representation.
package workspace

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Request is a stored HTTP request definition. Headers stay a plain map;
// ordering on the wire is not significant for the requests this tool sends.
type Request struct {
	ID      string            `yaml:"id"`
	Name    string            `yaml:"name"`
	Method  string            `yaml:"method"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Body    string            `yaml:"body,omitempty"`
}

func NewRequest(name, method, url string) Request {
	return Request{
		ID:     uuid.NewString(),
		Name:   name,
		Method: strings.ToUpper(method),
		URL:    url,
	}
}

func (r *Request) SetHeader(key, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
}

func (r *Request) RemoveHeader(key string) {
	delete(r.Headers, key)
}

// HeaderNames returns header keys in stable order for display.
func (r *Request) HeaderNames() []string {
	names := make([]string, 0, len(r.Headers))
	for name := range r.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayName is what lists show for the request.
func (r *Request) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if r.URL != "" {
		return r.Method + " " + r.URL
	}
	return r.Method
}
