package assets

// Names of the built-in assets.
const (
	DefaultStyleName    = "base"
	DefaultTemplateName = "page"
)

// Page bundles what the page composer needs.
type Page struct {
	Template string
	CSS      string
}

// LoadPage loads the page template and base stylesheet through loader.
func LoadPage(loader AssetLoader) (Page, error) {
	tmpl, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		return Page{}, err
	}
	css, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		return Page{}, err
	}
	return Page{Template: tmpl, CSS: css}, nil
}
