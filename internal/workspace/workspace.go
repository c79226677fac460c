package workspace

// Collection groups requests under a name.
type Collection struct {
	Name     string    `yaml:"name"`
	Requests []Request `yaml:"requests,omitempty"`
}

func NewCollection(name string) Collection {
	return Collection{Name: name}
}

func (c *Collection) Add(req Request) {
	c.Requests = append(c.Requests, req)
}

func (c *Collection) Remove(index int) bool {
	if index < 0 || index >= len(c.Requests) {
		return false
	}
	c.Requests = append(c.Requests[:index], c.Requests[index+1:]...)
	return true
}

func (c *Collection) Get(index int) (Request, bool) {
	if index < 0 || index >= len(c.Requests) {
		return Request{}, false
	}
	return c.Requests[index], true
}

// ByID finds a request anywhere in the collection.
func (c *Collection) ByID(id string) (Request, bool) {
	for _, req := range c.Requests {
		if req.ID == id {
			return req, true
		}
	}
	return Request{}, false
}

// Workspace is the top-level persisted document: a named set of collections.
type Workspace struct {
	Name        string       `yaml:"name"`
	Collections []Collection `yaml:"collections,omitempty"`
}

func New(name string) *Workspace {
	return &Workspace{Name: name}
}

func (w *Workspace) AddCollection(c Collection) {
	w.Collections = append(w.Collections, c)
}

func (w *Workspace) RemoveCollection(name string) bool {
	for i, c := range w.Collections {
		if c.Name == name {
			w.Collections = append(w.Collections[:i], w.Collections[i+1:]...)
			return true
		}
	}
	return false
}

func (w *Workspace) Collection(name string) (*Collection, bool) {
	for i := range w.Collections {
		if w.Collections[i].Name == name {
			return &w.Collections[i], true
		}
	}
	return nil, false
}

// RequestCount totals requests across all collections.
func (w *Workspace) RequestCount() int {
	total := 0
	for _, c := range w.Collections {
		total += len(c.Requests)
	}
	return total
}
