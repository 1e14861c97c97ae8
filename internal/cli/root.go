package cli

import (
	"context"
	"fmt"
)

// Root runs the top-level menu: login, register, exit. A successful login
// drops into the project menu and returns here on logout.
func (a *App) Root(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, bannerStyle.Render("========================================"))
		fmt.Fprintln(a.out, bannerStyle.Render("       WELCOME TO PONTE ACADEMICA       "))
		fmt.Fprintln(a.out, bannerStyle.Render("========================================"))
		fmt.Fprintln(a.out, menuStyle.Render("1 - Login (RGM + password)"))
		fmt.Fprintln(a.out, menuStyle.Render("2 - Register"))
		fmt.Fprintln(a.out, menuStyle.Render("0 - Exit"))

		choice, err := GetSimpleText(a.reader, "Choose an option", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			if err := a.Login(ctx); err != nil {
				return
			}
			if a.isLoggedIn() {
				if err := a.ProjectMenu(ctx); err != nil {
					return
				}
			}
		case "2":
			if err := a.Register(ctx); err != nil {
				return
			}
		case "0":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, warnStyle.Render("Invalid option."))
		}
	}
}
