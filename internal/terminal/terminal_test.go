package terminal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyHost struct {
	opened    []string
	mailed    []string
	downloads []string
	cleared   int
	closed    int
}

func (h *spyHost) OpenURL(url string) { h.opened = append(h.opened, url) }

func (h *spyHost) OpenMail(address string) { h.mailed = append(h.mailed, address) }

func (h *spyHost) Download(path string) { h.downloads = append(h.downloads, path) }

func (h *spyHost) ClearTranscript() { h.cleared++ }

func (h *spyHost) CloseTerminal() { h.closed++ }

const aboutContent = "Hey, I'm Test.\n\nI write Go."

func testProfile() Profile {
	return Profile{
		Name:        "Test",
		Whoami:      "Test — developer.",
		Contact:     "email test@example.com",
		GitHubURL:   "https://github.com/test",
		LinkedInURL: "https://www.linkedin.com/in/test",
		Email:       "test@example.com",
		ResumePath:  "/static/resume.pdf",
		Files: map[string]string{
			"about.txt":    aboutContent,
			"projects.txt": "projects",
		},
	}
}

func newTestInterpreter() (*Interpreter, *spyHost) {
	host := &spyHost{}
	return New(host, testProfile()), host
}

func TestExecuteEmptyInput(t *testing.T) {
	in, _ := newTestInterpreter()

	assert.Nil(t, in.Execute(""))
	assert.Nil(t, in.Execute("   "))
	assert.Nil(t, in.Execute("\t  \n"))
}

func TestExecuteUnknownCommand(t *testing.T) {
	in, _ := newTestInterpreter()

	res := in.Execute("nosuchcmd")
	require.NotNil(t, res)
	assert.Equal(t, KindError, res.Kind)
	assert.Contains(t, res.Text, "Command not found: nosuchcmd")
	assert.Contains(t, res.Text, "Type 'help' for available commands.")
}

func TestExecuteCaseInsensitive(t *testing.T) {
	in, _ := newTestInterpreter()

	for _, input := range []string{"whoami", "WHOAMI", "WhoAmI"} {
		res := in.Execute(input)
		require.NotNil(t, res, input)
		assert.Equal(t, KindInfo, res.Kind, input)
		assert.Equal(t, "Test — developer.", res.Text, input)
	}
}

func TestExecuteTrimsAndTokenizes(t *testing.T) {
	in, _ := newTestInterpreter()

	// Runs of whitespace between tokens collapse; the argument still
	// resolves the same file.
	res := in.Execute("  cat    about.txt  ")
	require.NotNil(t, res)
	assert.Equal(t, KindInfo, res.Kind)
	assert.Equal(t, aboutContent, res.Text)
}

func TestAllCommandsReturnNonNilResults(t *testing.T) {
	in, _ := newTestInterpreter()

	for _, name := range in.Commands() {
		input := name
		if name == "cat" {
			input = "cat about.txt"
		}
		res := in.Execute(input)
		require.NotNil(t, res, "command %q", name)
		assert.NotEqual(t, KindError, res.Kind, "command %q", name)
	}
}

func TestExecuteHandlerError(t *testing.T) {
	in, _ := newTestInterpreter()
	in.Register("fail", "always fails", func(string) (*Result, error) {
		return nil, errors.New("something broke")
	})

	res := in.Execute("fail")
	require.NotNil(t, res)
	assert.Equal(t, KindError, res.Kind)
	assert.Equal(t, "something broke", res.Text)
}

func TestExecuteHandlerPanicIsCaught(t *testing.T) {
	in, _ := newTestInterpreter()
	in.Register("boom", "panics", func(string) (*Result, error) {
		panic("kaboom")
	})

	var res *Result
	assert.NotPanics(t, func() { res = in.Execute("boom") })
	require.NotNil(t, res)
	assert.Equal(t, KindError, res.Kind)
	assert.Equal(t, "kaboom", res.Text)
}

func TestExecuteSideEffectOnlyHandler(t *testing.T) {
	in, _ := newTestInterpreter()
	ran := false
	in.Register("noop", "side effect only", func(string) (*Result, error) {
		ran = true
		return nil, nil
	})

	res := in.Execute("noop")
	require.NotNil(t, res)
	assert.True(t, ran)
	assert.Equal(t, KindInfo, res.Kind)
	assert.Empty(t, res.Text)
}

func TestQuitShorthand(t *testing.T) {
	in, host := newTestInterpreter()

	res := in.Execute(":q")
	require.NotNil(t, res)
	assert.Equal(t, KindInfo, res.Kind)
	assert.Equal(t, 1, host.closed)

	// The shorthand is matched verbatim; other casings fall through to
	// normal dispatch and miss.
	res = in.Execute(":Q")
	require.NotNil(t, res)
	assert.Equal(t, KindError, res.Kind)
	assert.Equal(t, 1, host.closed)
}

func TestRegisterReplacesHandlerKeepsOrder(t *testing.T) {
	in, _ := newTestInterpreter()
	before := in.Commands()

	in.Register("help", "replaced", func(string) (*Result, error) {
		return &Result{Kind: KindInfo, Text: "custom help"}, nil
	})

	assert.Equal(t, before, in.Commands())
	res := in.Execute("help")
	require.NotNil(t, res)
	assert.Equal(t, "custom help", res.Text)
}

func TestHelpListsAllCommandsAligned(t *testing.T) {
	in, _ := newTestInterpreter()

	res := in.Execute("help")
	require.NotNil(t, res)
	assert.Equal(t, KindHelp, res.Kind)

	for _, name := range in.Commands() {
		assert.Contains(t, res.Text, name)
	}

	// Two-column alignment: every command's description starts at the same
	// column.
	offsets := map[int]bool{}
	for _, name := range in.Commands() {
		desc := in.commands[name].description
		for _, line := range strings.Split(res.Text, "\n") {
			if strings.HasPrefix(line, "  "+name+" ") && strings.HasSuffix(line, desc) {
				offsets[len(line)-len(desc)] = true
				break
			}
		}
	}
	assert.Len(t, offsets, 1, "descriptions should share one column")
}
