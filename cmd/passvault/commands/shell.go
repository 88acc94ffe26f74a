package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"passvault/internal/crypto"
	"passvault/internal/domain"
	"passvault/internal/menu"
)

// menuChoices maps what the user types to a machine action.
var menuChoices = []struct {
	key    string
	label  string
	action menu.Action
}{
	{"1", "Create a new key", menu.CreateKey},
	{"2", "Load an existing key", menu.LoadKey},
	{"3", "Enter a key manually", menu.SetKey},
	{"4", "Create a new password file", menu.CreateFile},
	{"5", "Load an existing password file", menu.LoadFile},
	{"6", "Add a password", menu.Add},
	{"7", "Get a password", menu.Get},
	{"8", "List sites", menu.List},
	{"q", "Quit", menu.Quit},
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive password manager menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runShell(in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)
	m := menu.New(appCtx.Keys, appCtx.Passwords)

	fmt.Fprintln(out, titleStyle.Render("passvault"))
	for !m.Done() {
		printMenu(out, m)
		choice, err := p.line("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		action, ok := lookupChoice(strings.TrimSpace(choice))
		if !ok {
			fmt.Fprintln(out, errorStyle.Render("Invalid choice!"))
			continue
		}
		if !m.Permitted(action) {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("Cannot %s now (%s).", action, m.State())))
			continue
		}

		req, err := ask(p, action)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, domain.ErrInvalidKey) {
			fmt.Fprintln(out, errorStyle.Render("Error: "+err.Error()))
			continue
		}
		if err != nil {
			return err
		}

		res, err := m.Apply(action, req)
		if err != nil {
			appCtx.Log.Debug("shell action failed", zap.Stringer("action", action), zap.Error(err))
			fmt.Fprintln(out, errorStyle.Render("Error: "+err.Error()))
			continue
		}
		report(out, action, req, res)
	}
	return nil
}

func printMenu(out io.Writer, m *menu.Machine) {
	fmt.Fprintln(out, dimStyle.Render("State: "+m.State().String()))
	for _, c := range menuChoices {
		if m.Permitted(c.action) {
			fmt.Fprintf(out, "  (%s) %s\n", c.key, c.label)
		}
	}
}

func lookupChoice(s string) (menu.Action, bool) {
	for _, c := range menuChoices {
		if c.key == s {
			return c.action, true
		}
	}
	return 0, false
}

// ask collects the inputs action needs. Paths default to the configured files.
func ask(p *prompter, action menu.Action) (menu.Request, error) {
	var req menu.Request
	var err error

	switch action {
	case menu.CreateKey, menu.LoadKey:
		req.Path, err = askPath(p, appCtx.Config.KeyPath())
	case menu.CreateFile, menu.LoadFile:
		req.Path, err = askPath(p, appCtx.Config.PasswordPath())
	case menu.SetKey:
		req.Key, err = askKey(p)
	case menu.Add:
		if req.Site, err = p.line("Enter the site: "); err != nil {
			return req, err
		}
		req.Secret, err = p.secret("Enter the password: ")
	case menu.Get:
		req.Site, err = p.line("What site do you want: ")
	}
	return req, err
}

// askKey reads a key typed as URL-safe base64, the form keygen --show prints.
func askKey(p *prompter) ([]byte, error) {
	s, err := p.secret("Enter the key (base64): ")
	if err != nil {
		return nil, err
	}
	k, err := crypto.UnB64(strings.TrimSpace(s))
	if err != nil || len(k) == 0 {
		return nil, fmt.Errorf("%w: key must be URL-safe base64", domain.ErrInvalidKey)
	}
	return k, nil
}

func askPath(p *prompter, def string) (string, error) {
	s, err := p.line(fmt.Sprintf("Enter path [%s]: ", def))
	if err != nil {
		return "", err
	}
	if s = strings.TrimSpace(s); s == "" {
		return def, nil
	}
	return appCtx.Config.Resolve(s), nil
}

func report(out io.Writer, action menu.Action, req menu.Request, res menu.Result) {
	switch action {
	case menu.CreateKey:
		if res.Warning != nil {
			fmt.Fprintln(out, warnStyle.Render("Warning: "+res.Warning.Error()))
			fmt.Fprintln(out, warnStyle.Render("The key is only held in memory for this session."))
		} else {
			fmt.Fprintf(out, "Key saved to %s\n", req.Path)
		}
		fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(res.Key))
	case menu.LoadKey, menu.SetKey:
		fmt.Fprintf(out, "Key loaded. Fingerprint: %s\n", crypto.Fingerprint(res.Key))
	case menu.CreateFile:
		fmt.Fprintf(out, "Password file created at %s\n", req.Path)
	case menu.LoadFile:
		fmt.Fprintf(out, "Loaded %d site(s) from %s\n", len(appCtx.Passwords.Sites()), req.Path)
	case menu.Add:
		fmt.Fprintf(out, "Stored password for %s\n", req.Site)
	case menu.Get:
		fmt.Fprintf(out, "Password for %s is %s\n", req.Site, res.Secret)
	case menu.List:
		if len(res.Sites) == 0 {
			fmt.Fprintln(out, dimStyle.Render("(no sites)"))
		}
		for _, s := range res.Sites {
			fmt.Fprintln(out, "  "+s)
		}
	case menu.Quit:
		fmt.Fprintln(out, "Bye")
	}
}
