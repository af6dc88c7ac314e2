package menu

import (
	"hotel/transport/console/request"
	"hotel/transport/console/response"
)

// HandlerFunc serves one menu option. Failures are written to res by the
// handler itself.
type HandlerFunc func(req *request.Request, res *response.Writer)

type option struct {
	key     string
	label   string
	handler HandlerFunc
}

// Menu maps the option typed by the operator to its handler and renders the
// options in registration order.
type Menu struct {
	options []option
}

func New() *Menu {
	return &Menu{}
}

// Handle registers handler under key. Registering a key twice replaces the
// earlier handler and keeps its position.
func (m *Menu) Handle(key, label string, handler HandlerFunc) {
	for i := range m.options {
		if m.options[i].key == key {
			m.options[i].label = label
			m.options[i].handler = handler

			return
		}
	}

	m.options = append(m.options, option{key: key, label: label, handler: handler})
}

func (m *Menu) Lookup(key string) (HandlerFunc, bool) {
	for _, o := range m.options {
		if o.key == key {
			return o.handler, true
		}
	}

	return nil, false
}

func (m *Menu) Render(res *response.Writer, title, exitLabel string) {
	res.WithTitle(title)

	for _, o := range m.options {
		res.WithMessage(o.key + " - " + o.label)
	}

	res.WithMessage("0 - " + exitLabel)
}
