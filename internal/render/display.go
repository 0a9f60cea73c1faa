package render

import "github.com/pkg/browser"

// BrowserViewer opens rendered figures with the platform's default
// application for the file type.
type BrowserViewer struct{}

// Open launches the viewer for path without waiting for it to exit.
func (BrowserViewer) Open(path string) error {
	return browser.OpenFile(path)
}
