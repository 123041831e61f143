package main

import (
	"context"
	"flag"
	"fmt"

	"lmsadmin/internal/dto"
	"lmsadmin/internal/form"
	"lmsadmin/internal/validation"
)

func (cli *commandLine) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	creds := dto.Credentials{Email: *email, Password: *password}
	if err := validation.Validate(creds); err != nil {
		cli.printFieldErrors(err)
		return err
	}

	sess, err := cli.gw.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err := cli.sessions.Set(sess); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "signed in as %s\n", sess.User.Email)
	return nil
}

func (cli *commandLine) logout(ctx context.Context) error {
	err := cli.gw.Logout(ctx)
	// the local session goes either way; a dead remote must not trap the
	// user in a signed-in shell
	if clearErr := cli.sessions.Clear(); clearErr != nil {
		return clearErr
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "signed out")
	return nil
}

func (cli *commandLine) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "", "account role (student|instructor)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := dto.RegisterInput{Name: *name, Email: *email, Password: *password, Role: *role}
	if err := validation.Validate(in); err != nil {
		cli.printFieldErrors(err)
		return err
	}
	if err := cli.gw.Register(ctx, in); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "account created")
	return nil
}

func (cli *commandLine) whoami() error {
	sess := cli.sessions.User()
	if sess == nil {
		fmt.Fprintln(cli.out, "not signed in")
		return nil
	}
	fmt.Fprintf(cli.out, "%s <%s> (%s)\n", sess.User.Name, sess.User.Email, sess.User.Role)
	return nil
}

func (cli *commandLine) profile(ctx context.Context, args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}
	switch args[0] {
	case "show":
		return cli.profileShow(ctx)
	case "update":
		return cli.profileUpdate(ctx, args[1:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) profileShow(ctx context.Context) error {
	profile, err := cli.gw.GetProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "name:  %s\n", profile.Name)
	fmt.Fprintf(cli.out, "email: %s\n", profile.Email)
	fmt.Fprintf(cli.out, "role:  %s\n", profile.Role)
	if profile.ProfilePhoto != "" {
		fmt.Fprintf(cli.out, "photo: %s\n", profile.ProfilePhoto)
	}
	return nil
}

func (cli *commandLine) profileUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	photo := fs.String("photo", "", "path to a new profile photo")
	if err := fs.Parse(args); err != nil {
		return err
	}

	current, err := cli.gw.GetProfile(ctx)
	if err != nil {
		return err
	}

	f := form.NewProfileForm(notifier{cli.out}, cli.logger)
	f.OpenEdit(current.ID, dto.ProfileInputFromModel(*current))
	defer f.Close()

	values := f.Values()
	if flagWasSet(fs, "name") {
		values.Name = *name
	}
	if flagWasSet(fs, "email") {
		values.Email = *email
	}
	f.SetValues(values)

	if *photo != "" {
		file, err := dto.NewFileRef(*photo)
		if err != nil {
			return err
		}
		if err := f.SelectPhoto(file); err != nil {
			return err
		}
	}

	err = f.Submit(ctx, func(ctx context.Context, _ form.Mode, _ string, in dto.ProfileInput) error {
		updated, err := cli.gw.UpdateProfile(ctx, in)
		if err != nil {
			return err
		}
		// keep the rehydrated session record in line with the remote
		if sess := cli.sessions.User(); sess != nil {
			sess.User = *updated
			return cli.sessions.Set(sess)
		}
		return nil
	})
	if err != nil {
		cli.printFieldErrors(err)
		return err
	}
	return nil
}
