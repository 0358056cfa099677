package tui

import (
	"log"
	"os/exec"
	"runtime"
	"strings"
)

// Effects is the terminal.Host for a local session. Browser-bound effects
// shell out to the platform opener; clear and close are flags the model
// drains after each Execute, since the model owns the transcript and the
// program loop.
type Effects struct {
	// SiteURL prefixes site-relative download paths, e.g. /static/resume.pdf.
	SiteURL string

	clearRequested bool
	closeRequested bool
}

// NewEffects returns a host for a local session rooted at siteURL.
func NewEffects(siteURL string) *Effects {
	return &Effects{SiteURL: strings.TrimRight(siteURL, "/")}
}

func (e *Effects) OpenURL(url string) {
	openInBrowser(url)
}

func (e *Effects) OpenMail(address string) {
	openInBrowser("mailto:" + address)
}

func (e *Effects) Download(path string) {
	if strings.HasPrefix(path, "/") {
		path = e.SiteURL + path
	}
	openInBrowser(path)
}

func (e *Effects) ClearTranscript() {
	e.clearRequested = true
}

func (e *Effects) CloseTerminal() {
	e.closeRequested = true
}

func (e *Effects) takeClear() bool {
	requested := e.clearRequested
	e.clearRequested = false
	return requested
}

func (e *Effects) takeClose() bool {
	requested := e.closeRequested
	e.closeRequested = false
	return requested
}

// openInBrowser is fire-and-forget: there is no completion signal to wait
// on, so failures are only logged.
func openInBrowser(target string) {
	if target == "" {
		return
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("open %s: %v", target, err)
	}
}
