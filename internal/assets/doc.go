// Package assets provides the page stylesheet and HTML template.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in base.css and page.html (go:embed)
//	    ├── FilesystemLoader  - user overrides from a directory on disk
//	    └── AssetResolver     - custom first, embedded fallback
//
// # Directory Structure
//
// An override directory mirrors the embedded layout; any file may be
// omitted to keep the built-in version:
//
//	{basePath}/
//	├── styles/
//	│   └── base.css
//	└── templates/
//	    └── page.html
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
