package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
)

// App dispatches the client commands. The token for authenticated commands
// comes from the -token flag or the TRIPMAKER_TOKEN environment variable,
// handled by the entrypoint.
type App struct {
	serverURL string
	token     string
	in        *bufio.Reader
	out       io.Writer
}

func NewApp(serverURL, token string, in io.Reader, out io.Writer) *App {
	return &App{
		serverURL: serverURL,
		token:     token,
		in:        bufio.NewReader(in),
		out:       out,
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  signup            create an account")
	fmt.Fprintln(a.out, "  login             authenticate and print a token")
	fmt.Fprintln(a.out, "  profile           show the profile (requires token)")
	fmt.Fprintln(a.out, "  set [flags]       update profile fields (requires token)")
	fmt.Fprintln(a.out, "      -email -phone -country -language -currency")
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	switch args[0] {
	case "signup":
		return a.signup(ctx)
	case "login":
		return a.login(ctx)
	case "profile":
		return a.showProfile(ctx)
	case "set":
		return a.setProfile(ctx, args[1:])
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) credentials() (string, string, error) {
	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

func (a *App) signup(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	sess, err := NewClient(a.serverURL, "").Signup(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id %s)\nToken: %s\n", sess.Email, sess.ID, sess.Token)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	sess, err := NewClient(a.serverURL, "").Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\nToken: %s\n", sess.Email, sess.Token)
	return nil
}

func (a *App) printProfile(p *Profile) {
	fmt.Fprintf(a.out, "Email:    %s\n", p.Email)
	fmt.Fprintf(a.out, "Phone:    %s\n", p.Phone)
	fmt.Fprintf(a.out, "Country:  %s\n", p.Country)
	fmt.Fprintf(a.out, "Language: %s\n", p.Language)
	fmt.Fprintf(a.out, "Currency: %s\n", p.CurrencyType)
}

func (a *App) showProfile(ctx context.Context) error {
	p, err := NewClient(a.serverURL, a.token).GetProfile(ctx)
	if err != nil {
		return err
	}
	a.printProfile(p)
	return nil
}

func (a *App) setProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.SetOutput(a.out)

	email := fs.String("email", "", "new email")
	phone := fs.String("phone", "", "phone number")
	country := fs.String("country", "", "country")
	language := fs.String("language", "", "language code")
	currency := fs.String("currency", "", "currency code")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only fields the user actually passed make it into the request body.
	var update ProfileUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "email":
			update.Email = email
		case "phone":
			update.Phone = phone
		case "country":
			update.Country = country
		case "language":
			update.Language = language
		case "currency":
			update.CurrencyType = currency
		}
	})

	p, err := NewClient(a.serverURL, a.token).UpdateProfile(ctx, update)
	if err != nil {
		return err
	}
	a.printProfile(p)
	return nil
}
