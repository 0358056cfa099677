package main

import "github.com/Zachkp/zach-dev/internal/terminal"

var (
	AboutMe = `I love building software that’s both useful and fun, and I’m always curious about how things work behind the scenes.
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it’s exploring a
	different language, experimenting with tools, or solving tricky problems.
	When I’m not coding, you’ll usually find me training Muay Thai, shooting pool with friends,
	or chasing down a new challenge outside the screen.`

	ProjectOne = `A terminal-based email client built in Go with fuzzyfinder capabilities
	using the Charmbracelet TUI framework and go-imap.`

	ProjectTwo = `A terminal-based music streaming application built in Go with an elegant TUI
	interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`

	ProjectThree = `A machine learning-powered web application that uses TF-IDF vectorization and cosine
	similarity to recommend games based on content analysis, featuring interactive data visualizations and
	real-time filtering by user reviews and ratings.`

	ProjectFour = `A modern, responsive portfolio website built with Go, Gin framework, and HTMX,
	featuring a fully interactive simulated terminal that doubles as a local TUI app via the
	Charmbracelet Bubble Tea framework.`
)

// Terminal identity content. The same blocks back the web widget and the
// local TUI session.
var (
	WhoamiBlock = `Zach — software developer.

I build terminal apps, web services, and the occasional machine learning
experiment, mostly in Go. Currently into TUIs, clean APIs, and anything
that runs faster than it has any right to.

Type 'ls' to poke around, or 'help' to see everything.`

	ContactBlock = `Let's talk.

  email     zachkordaspotter@gmail.com
  github    https://github.com/Zachkp
  linkedin  https://www.linkedin.com/in/zach-kordas-potter

Or just use the contact form further down the page.`

	AboutFile = `Hey, I'm Zach.

I love building software that's both useful and fun, and I'm always curious
about how things work behind the scenes. Most of my projects start with a
simple idea and turn into a chance to learn something new.

When I'm not coding you'll usually find me training Muay Thai, shooting
pool with friends, or chasing down a new challenge outside the screen.`

	ProjectsFile = `projects
========
mailbag     Terminal email client in Go (Bubble Tea + go-imap)
tunestream  Terminal YouTube Music player (yt-dlp + mpv)
gamerec     ML game recommender (TF-IDF + cosine similarity)
zach-dev    This site: Gin + HTMX + a simulated terminal`

	SkillsFile = `skills
======
languages   Go, Python, JavaScript, SQL
backend     Gin, net/http, sqlite, REST APIs
terminal    Bubble Tea, lipgloss, tcell
tooling     git, Docker, Linux, fly.io`

	ContactFile = `contact
=======
email     zachkordaspotter@gmail.com
github    https://github.com/Zachkp
linkedin  https://www.linkedin.com/in/zach-kordas-potter`
)

// profile assembles the content the interpreter serves.
func profile() terminal.Profile {
	return terminal.Profile{
		Name:        "Zach",
		Whoami:      WhoamiBlock,
		Contact:     ContactBlock,
		GitHubURL:   "https://github.com/Zachkp",
		LinkedInURL: "https://www.linkedin.com/in/zach-kordas-potter",
		Email:       "zachkordaspotter@gmail.com",
		ResumePath:  "/static/ZachResume.pdf",
		Files: map[string]string{
			"about.txt":    AboutFile,
			"projects.txt": ProjectsFile,
			"skills.txt":   SkillsFile,
			"contact.txt":  ContactFile,
		},
	}
}
