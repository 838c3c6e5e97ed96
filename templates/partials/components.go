package partials

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
)

//go:embed html/*.html
var files embed.FS

var views = template.Must(template.New("partials").Funcs(templateFuncs).ParseFS(files, "html/*.html"))

func component(name string, data any) templ.Component {
	return templ.FromGoHTML(views.Lookup(name), data)
}

// ContractDocument renders the contract surface alone
func ContractDocument(view ContractView) templ.Component {
	return component("document", view)
}

// CapturePage renders a standalone HTML page holding only the contract
// surface, used as the browser document for rasterization
func CapturePage(view ContractView) templ.Component {
	return component("capture-page", view)
}

func IndexPage(view PageView) templ.Component {
	return component("page", view)
}

func PreviewPanel(view PreviewView) templ.Component {
	return component("preview-panel", view)
}

func ExpandedPreview(view ExpandedPreviewView) templ.Component {
	return component("expanded-preview", view)
}

func ExportStatus(view ExportStatusView) templ.Component {
	return component("export-status", view)
}
