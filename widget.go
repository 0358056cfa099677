// widget.go - Web front end for the simulated terminal. Each submitted line
// is executed server-side and returned as an HTMX fragment; host-environment
// side effects travel back as a data attribute the page script acts on.
package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/zach-dev/internal/terminal"
)

// widgetHost records the side effect a command requested so the response
// fragment can hand it to the browser. One instance per request; the page
// itself is the host environment here.
type widgetHost struct {
	action string
	target string
}

func (h *widgetHost) OpenURL(url string) { h.action, h.target = "open", url }

func (h *widgetHost) OpenMail(address string) { h.action, h.target = "open", "mailto:" + address }

func (h *widgetHost) Download(path string) { h.action, h.target = "download", path }

func (h *widgetHost) ClearTranscript() { h.action = "clear" }

func (h *widgetHost) CloseTerminal() { h.action = "close" }

func setupTerminalRoutes(r *gin.Engine) {
	r.POST("/terminal", func(c *gin.Context) {
		line := c.PostForm("command")

		host := &widgetHost{}
		interp := terminal.New(host, profile())
		res := interp.Execute(line)
		if res == nil {
			// Blank input renders nothing.
			c.String(http.StatusOK, "")
			return
		}

		// Count usage of real commands only; typos stay out of the stats.
		if fields := strings.Fields(line); len(fields) > 0 {
			if name := strings.ToLower(fields[0]); interp.Has(name) {
				go trackCommandUsage(name)
			}
		}

		c.HTML(http.StatusOK, "terminal-line.html", gin.H{
			"command": strings.TrimSpace(line),
			"kind":    string(res.Kind),
			"text":    res.Text,
			"action":  host.action,
			"target":  host.target,
		})
	})

	// Command list for the widget's client-side tab completion
	r.GET("/terminal/commands", func(c *gin.Context) {
		interp := terminal.New(&widgetHost{}, profile())
		c.JSON(http.StatusOK, gin.H{"commands": interp.Commands()})
	})
}
