package terminal

import (
	"fmt"
	"sort"
	"strings"
)

// registerBuiltins wires the fixed command catalog. Registration order is
// the order help lists them in.
func (in *Interpreter) registerBuiltins() {
	in.Register("help", "List available commands", func(string) (*Result, error) {
		return &Result{Kind: KindHelp, Text: in.helpText()}, nil
	})

	in.Register("whoami", "A little about me", func(string) (*Result, error) {
		return &Result{Kind: KindInfo, Text: in.profile.Whoami}, nil
	})

	in.Register("ls", "List files", func(string) (*Result, error) {
		names := make([]string, 0, len(in.profile.Files))
		for name := range in.profile.Files {
			names = append(names, name)
		}
		sort.Strings(names)
		var b strings.Builder
		for i, name := range names {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "📄 %s", name)
		}
		return &Result{Kind: KindList, Text: b.String()}, nil
	})

	in.Register("cat", "Print a file (try 'cat about.txt')", func(args string) (*Result, error) {
		name := strings.TrimSpace(args)
		if name == "" {
			return nil, fmt.Errorf("usage: cat <filename>")
		}
		content, ok := in.profile.Files[name]
		if !ok {
			return nil, fmt.Errorf("cat: %s: No such file or directory", name)
		}
		return &Result{Kind: KindInfo, Text: content}, nil
	})

	in.Register("contact", "How to reach me", func(string) (*Result, error) {
		return &Result{Kind: KindInfo, Text: in.profile.Contact}, nil
	})

	in.Register("github", "Open my GitHub profile", func(string) (*Result, error) {
		in.host.OpenURL(in.profile.GitHubURL)
		return &Result{Kind: KindSuccess, Text: "Opening GitHub profile..."}, nil
	})

	in.Register("linkedin", "Open my LinkedIn profile", func(string) (*Result, error) {
		in.host.OpenURL(in.profile.LinkedInURL)
		return &Result{Kind: KindSuccess, Text: "Opening LinkedIn profile..."}, nil
	})

	in.Register("email", "Send me an email", func(string) (*Result, error) {
		in.host.OpenMail(in.profile.Email)
		return &Result{Kind: KindSuccess, Text: fmt.Sprintf("Opening mail client for %s...", in.profile.Email)}, nil
	})

	in.Register("cv", "Download my resume", in.downloadResume)
	in.Register("resume", "Download my resume (alias for cv)", in.downloadResume)

	in.Register("clear", "Clear the terminal", func(string) (*Result, error) {
		in.host.ClearTranscript()
		return &Result{Kind: KindSuccess, Text: ""}, nil
	})

	in.Register("exit", "Close the terminal", func(string) (*Result, error) {
		in.host.CloseTerminal()
		return &Result{Kind: KindInfo, Text: "Terminal closed. Press ctrl+t to reopen."}, nil
	})
}

func (in *Interpreter) downloadResume(string) (*Result, error) {
	in.host.Download(in.profile.ResumePath)
	return &Result{Kind: KindSuccess, Text: "Downloading resume..."}, nil
}
