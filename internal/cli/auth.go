package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/common"
)

// Register prompts for an RGM, a name, and a password typed twice, then
// creates the account. Service failures are rendered and the method returns
// nil so the menu keeps running; only I/O errors propagate.
func (a *App) Register(ctx context.Context) error {
	fmt.Fprintln(a.out, bannerStyle.Render("=== REGISTER (RGM + PASSWORD) ==="))

	rgm, err := GetInt(a.reader, "RGM (numbers only)", a.out)
	if err != nil {
		return err
	}
	name, err := GetRequiredText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	// Confirmation is a shell concern; the service only sees one password.
	if !bytes.Equal(password, confirm) {
		fmt.Fprintln(a.out, errorStyle.Render("Passwords do not match."))
		return nil
	}

	if err := a.users.Register(ctx, rgm, name, password); err != nil {
		a.renderError(err)
		return nil
	}

	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("User registered! RGM: %d", rgm)))
	return nil
}

// Login prompts for credentials and authenticates. On success the user is
// stored as the current session.
func (a *App) Login(ctx context.Context) error {
	fmt.Fprintln(a.out, bannerStyle.Render("=== LOGIN (RGM + PASSWORD) ==="))

	rgm, err := GetInt(a.reader, "RGM", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.users.Authenticate(ctx, rgm, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fmt.Fprintln(a.out, errorStyle.Render("RGM not found."))
		case errors.Is(err, common.ErrorWrongPassword):
			fmt.Fprintln(a.out, errorStyle.Render("Wrong password."))
		default:
			a.renderError(err)
		}
		return nil
	}

	a.user = user
	a.logger.Info(ctx, "user logged in", "rgm", user.ID)
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Login ok! Welcome, %s.", user.Name)))
	return nil
}

// Logout drops the in-memory session.
func (a *App) Logout(ctx context.Context) {
	if a.user != nil {
		a.logger.Info(ctx, "user logged out", "rgm", a.user.ID)
	}
	a.user = nil
}

// renderError prints a typed failure in a user-friendly form. Every core
// error is recoverable; the shell never terminates on one.
func (a *App) renderError(err error) {
	switch {
	case errors.Is(err, common.ErrorDuplicateID):
		fmt.Fprintln(a.out, errorStyle.Render("A user with this RGM already exists."))
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, errorStyle.Render("Project not found."))
	case errors.Is(err, common.ErrorAlreadyAssigned):
		fmt.Fprintln(a.out, warnStyle.Render("This project already has a student assigned."))
	case errors.Is(err, common.ErrorValidation):
		fmt.Fprintln(a.out, warnStyle.Render(err.Error()))
	default:
		fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
	}
}
