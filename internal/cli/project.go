package cli

import (
	"context"
	"fmt"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/projects"
)

// ProjectMenu runs the logged-in menu until the user logs out. Only I/O
// errors propagate; service failures are rendered and the loop continues.
func (a *App) ProjectMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out, bannerStyle.Render("PONTE ACADEMICA - PROJECTS"))
		fmt.Fprintln(a.out, menuStyle.Render("1 - Register project"))
		fmt.Fprintln(a.out, menuStyle.Render("2 - List projects"))
		fmt.Fprintln(a.out, menuStyle.Render("3 - Update project"))
		fmt.Fprintln(a.out, menuStyle.Render("4 - Delete project"))
		fmt.Fprintln(a.out, menuStyle.Render("5 - Status report"))
		fmt.Fprintln(a.out, menuStyle.Render("6 - Claim a project"))
		fmt.Fprintln(a.out, menuStyle.Render("0 - Logout"))

		choice, err := GetSimpleText(a.reader, "Choose an option", a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.createProject(ctx)
		case "2":
			err = a.listProjects(ctx)
		case "3":
			err = a.updateProject(ctx)
		case "4":
			err = a.deleteProject(ctx)
		case "5":
			err = a.report(ctx)
		case "6":
			err = a.claimProject(ctx)
		case "0":
			a.Logout(ctx)
			return nil
		default:
			fmt.Fprintln(a.out, warnStyle.Render("Invalid option."))
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) createProject(ctx context.Context) error {
	fmt.Fprintln(a.out, bannerStyle.Render("=== REGISTER PROJECT ==="))

	title, err := GetRequiredText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := GetRequiredText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	orgRef, err := GetInt(a.reader, "Organization CNPJ (numbers only)", a.out)
	if err != nil {
		return err
	}

	id, createErr := a.projects.Create(ctx, title, description, orgRef)
	if createErr != nil {
		a.renderError(createErr)
		return nil
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Project registered with id %d!", id)))
	return nil
}

func (a *App) listProjects(ctx context.Context) error {
	fmt.Fprintln(a.out, bannerStyle.Render("=== PROJECTS ==="))

	list, err := a.projects.List(ctx)
	if err != nil {
		a.renderError(err)
		return nil
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, warnStyle.Render("No projects registered."))
		return nil
	}

	fmt.Fprintln(a.out, dimStyle.Render(" ID | TITLE | STUDENT RGM | ORG CNPJ"))
	for _, p := range list {
		fmt.Fprintln(a.out, renderProject(&p))
	}
	return nil
}

func (a *App) updateProject(ctx context.Context) error {
	fmt.Fprintln(a.out, bannerStyle.Render("=== UPDATE PROJECT ==="))

	id, err := GetInt(a.reader, "Project id", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, menuStyle.Render("1 - Title"))
	fmt.Fprintln(a.out, menuStyle.Render("2 - Description"))
	fmt.Fprintln(a.out, menuStyle.Render("3 - Title and description"))
	choice, err := GetSimpleText(a.reader, "What would you like to change?", a.out)
	if err != nil {
		return err
	}

	var title, description *string
	readTitle := choice == "1" || choice == "3"
	readDescription := choice == "2" || choice == "3"
	if !readTitle && !readDescription {
		fmt.Fprintln(a.out, warnStyle.Render("Invalid option."))
		return nil
	}

	if readTitle {
		t, err := GetRequiredText(a.reader, "New title", a.out)
		if err != nil {
			return err
		}
		title = &t
	}
	if readDescription {
		d, err := GetRequiredText(a.reader, "New description", a.out)
		if err != nil {
			return err
		}
		description = &d
	}

	if updateErr := a.projects.Update(ctx, id, title, description); updateErr != nil {
		a.renderError(updateErr)
		return nil
	}
	fmt.Fprintln(a.out, successStyle.Render("Project updated!"))
	return nil
}

func (a *App) deleteProject(ctx context.Context) error {
	fmt.Fprintln(a.out, bannerStyle.Render("=== DELETE PROJECT ==="))

	id, err := GetInt(a.reader, "Project id", a.out)
	if err != nil {
		return err
	}

	if deleteErr := a.projects.Delete(ctx, id); deleteErr != nil {
		a.renderError(deleteErr)
		return nil
	}
	fmt.Fprintln(a.out, successStyle.Render("Project deleted!"))
	return nil
}

func (a *App) report(ctx context.Context) error {
	fmt.Fprintln(a.out, bannerStyle.Render("=== STATUS REPORT ==="))
	fmt.Fprintln(a.out, menuStyle.Render("1 - Available (no student)"))
	fmt.Fprintln(a.out, menuStyle.Render("2 - In progress (student assigned)"))

	choice, err := GetSimpleText(a.reader, "Filter by status", a.out)
	if err != nil {
		return err
	}

	var filter projects.StatusFilter
	var label string
	switch choice {
	case "1":
		filter, label = projects.StatusAvailable, "AVAILABLE"
	case "2":
		filter, label = projects.StatusAssigned, "IN PROGRESS"
	default:
		fmt.Fprintln(a.out, warnStyle.Render("Invalid option."))
		return nil
	}

	list, reportErr := a.projects.Report(ctx, filter)
	if reportErr != nil {
		a.renderError(reportErr)
		return nil
	}

	fmt.Fprintln(a.out, bannerStyle.Render("STATUS REPORT - "+label+" PROJECTS"))
	if len(list) == 0 {
		fmt.Fprintln(a.out, warnStyle.Render("No projects found."))
		return nil
	}
	for _, p := range list {
		fmt.Fprintln(a.out, renderProject(&p))
	}
	fmt.Fprintln(a.out, dimStyle.Render(fmt.Sprintf("Total projects found: %d", len(list))))
	return nil
}

func (a *App) claimProject(ctx context.Context) error {
	fmt.Fprintln(a.out, bannerStyle.Render("=== CLAIM A PROJECT ==="))
	fmt.Fprintln(a.out, dimStyle.Render("Only AVAILABLE projects (no student) can be claimed."))

	available, err := a.projects.Report(ctx, projects.StatusAvailable)
	if err != nil {
		a.renderError(err)
		return nil
	}
	if len(available) == 0 {
		fmt.Fprintln(a.out, warnStyle.Render("There are no available projects right now."))
		return nil
	}
	for _, p := range available {
		fmt.Fprintln(a.out, fmt.Sprintf("%3d - %s", p.ID, p.Title))
	}

	id, err := GetInt(a.reader, "Enter the project id to claim", a.out)
	if err != nil {
		return err
	}

	if claimErr := a.assignments.Claim(ctx, id, a.user.ID); claimErr != nil {
		a.renderError(claimErr)
		return nil
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("You are now assigned to project %d!", id)))
	return nil
}

func renderProject(p *projects.Project) string {
	assignee := "-"
	if p.AssigneeID != nil {
		assignee = fmt.Sprintf("%d", *p.AssigneeID)
	}
	return fmt.Sprintf("%3d | %s | %s | %d", p.ID, p.Title, assignee, p.OrgRef)
}
